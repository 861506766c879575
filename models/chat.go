package models

// Roles used in conversation history and text-generation calls.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is a single turn in a conversation history.
type ChatMessage struct {
	Role    string `json:"role" bson:"role"`
	Content string `json:"content" bson:"content"`
}

// ChatRequest is the payload coming from the frontend into /api/v1/chat.
type ChatRequest struct {
	SessionID   string   `json:"sessionId"`
	Message     string   `json:"message"`
	Destination string   `json:"destination,omitempty"` // optional hint
	Days        int      `json:"days,omitempty"`
	Preferences []string `json:"preferences,omitempty"`
}

// ChatResponse is what the chat handler returns to the frontend.
type ChatResponse struct {
	Message  string `json:"message"`
	Finished bool   `json:"finished"`
}
