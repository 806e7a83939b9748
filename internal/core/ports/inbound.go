package ports

import (
	"context"

	"github.com/kirillkom/compliance-assistant/internal/core/domain"
)

// Conversationalist is the inbound contract for a single conversation.
// Submissions are fire-and-forget: the caller observes effects through
// the snapshot only.
type Conversationalist interface {
	SubmitText(ctx context.Context, text string) (domain.Message, error)
	SubmitUpload(ctx context.Context, upload domain.UploadDescriptor) (domain.Message, error)
	Snapshot() domain.ConversationSnapshot
}

// ConversationService is the inbound contract for the multi-session API.
type ConversationService interface {
	SubmitText(ctx context.Context, conversationID, text string) (domain.Message, error)
	SubmitUpload(ctx context.Context, conversationID string, upload domain.UploadDescriptor) (domain.Message, error)
	Snapshot(ctx context.Context, conversationID string) (domain.ConversationSnapshot, error)
}

// ComplaintReader is the inbound read model for filed complaints.
type ComplaintReader interface {
	List(ctx context.Context) ([]domain.ComplaintRecord, error)
}
