package ports

import (
	"bytes"
	"context"

	"github.com/kirillkom/compliance-assistant/internal/core/domain"
)

// LabelScanner produces a label extraction result for an uploaded
// product. The bundled implementation is a simulator; a real OCR
// backend slots in behind the same contract.
type LabelScanner interface {
	Scan(ctx context.Context) (domain.ScanResult, error)
}

// MarketplaceScanner produces a cross-marketplace risk assessment.
type MarketplaceScanner interface {
	Assess(ctx context.Context) (domain.AnomalyResult, error)
}

// ImageMatcher produces a visual-similarity verdict.
type ImageMatcher interface {
	Compare(ctx context.Context) (domain.MatchResult, error)
}

// ComplaintStore persists filed complaint records.
type ComplaintStore interface {
	Create(ctx context.Context, record *domain.ComplaintRecord) error
	List(ctx context.Context) ([]domain.ComplaintRecord, error)
}

// ReportExporter renders complaint records into a downloadable report.
type ReportExporter interface {
	Complaints(records []domain.ComplaintRecord) (*bytes.Buffer, error)
}

// NotificationQueue publishes/consumes complaint-filed toast events.
type NotificationQueue interface {
	PublishComplaintFiled(ctx context.Context, note domain.Notification) error
	SubscribeComplaintFiled(ctx context.Context, handler func(context.Context, domain.Notification) error) error
}
