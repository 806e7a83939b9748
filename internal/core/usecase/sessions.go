package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/kirillkom/compliance-assistant/internal/core/domain"
)

// SessionManager keeps one ConversationPipeline per conversation ID.
// Sessions live for the lifetime of the process; there is no
// persistence across restarts.
type SessionManager struct {
	factory func() *ConversationPipeline

	mu       sync.Mutex
	sessions map[string]*ConversationPipeline
}

func NewSessionManager(factory func() *ConversationPipeline) *SessionManager {
	return &SessionManager{
		factory:  factory,
		sessions: make(map[string]*ConversationPipeline),
	}
}

func (m *SessionManager) SubmitText(ctx context.Context, conversationID, text string) (domain.Message, error) {
	pipeline, err := m.pipeline(conversationID, true)
	if err != nil {
		return domain.Message{}, err
	}
	return pipeline.SubmitText(ctx, text)
}

func (m *SessionManager) SubmitUpload(ctx context.Context, conversationID string, upload domain.UploadDescriptor) (domain.Message, error) {
	pipeline, err := m.pipeline(conversationID, true)
	if err != nil {
		return domain.Message{}, err
	}
	return pipeline.SubmitUpload(ctx, upload)
}

// Snapshot reads an existing conversation; it never creates one.
func (m *SessionManager) Snapshot(_ context.Context, conversationID string) (domain.ConversationSnapshot, error) {
	pipeline, err := m.pipeline(conversationID, false)
	if err != nil {
		return domain.ConversationSnapshot{}, err
	}
	return pipeline.Snapshot(), nil
}

func (m *SessionManager) pipeline(conversationID string, create bool) (*ConversationPipeline, error) {
	id := strings.TrimSpace(conversationID)
	if id == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "resolve conversation", errors.New("conversation id is required"))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	pipeline, ok := m.sessions[id]
	if !ok {
		if !create {
			return nil, domain.WrapError(domain.ErrConversationNotFound, "resolve conversation", errors.New(id))
		}
		pipeline = m.factory()
		m.sessions[id] = pipeline
	}
	return pipeline, nil
}
