// File: services/intelligence/geminiClient.go
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tripweaver/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient implements Client on top of the Gemini API.
type GeminiClient struct {
	client    *genai.Client
	modelName string
	timeout   time.Duration
}

// NewGeminiClient builds a Gemini-backed text generation client.
func NewGeminiClient(apiKey, modelName string, timeout time.Duration) (*GeminiClient, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client, modelName: modelName, timeout: timeout}, nil
}

// Complete sends the ordered message list to the model and returns the
// generated text. A leading system message becomes the system instruction;
// the rest becomes chat history with the final message as the prompt.
func (g *GeminiClient) Complete(ctx context.Context, messages []models.ChatMessage) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	model := g.client.GenerativeModel(g.modelName)

	rest := messages
	if len(rest) > 0 && rest[0].Role == models.RoleSystem {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(rest[0].Content)},
		}
		rest = rest[1:]
	}
	if len(rest) == 0 {
		return "", errors.New("no messages to send")
	}

	chat := model.StartChat()
	for _, m := range rest[:len(rest)-1] {
		role := "user"
		if m.Role == models.RoleAssistant {
			role = "model"
		}
		chat.History = append(chat.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(m.Content)},
		})
	}

	resp, err := chat.SendMessage(ctx, genai.Text(rest[len(rest)-1].Content))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return strings.TrimSpace(sb.String()), nil
}
