package ai

import (
	"context"

	"tripweaver/models"
)

// Client is an opaque text-completion service. Implementations may fail for
// network or quota reasons; callers must treat a failure as recoverable and
// degrade to a fallback value rather than aborting the whole turn.
type Client interface {
	Complete(ctx context.Context, messages []models.ChatMessage) (string, error)
}
