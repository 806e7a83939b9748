package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/kirillkom/compliance-assistant/internal/core/domain"
	"github.com/kirillkom/compliance-assistant/internal/core/ports"
)

const complaintIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ComplaintFiler creates complaint records and raises the complaint-filed
// notification. Filing succeeds synchronously; persistence and
// notification delivery degrade without failing the chat turn.
type ComplaintFiler struct {
	store       ports.ComplaintStore
	queue       ports.NotificationQueue
	logger      *slog.Logger
	notifyDelay time.Duration
	now         func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

func NewComplaintFiler(
	store ports.ComplaintStore,
	queue ports.NotificationQueue,
	rng *rand.Rand,
	notifyDelay time.Duration,
	logger *slog.Logger,
) *ComplaintFiler {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ComplaintFiler{
		store:       store,
		queue:       queue,
		logger:      logger,
		notifyDelay: notifyDelay,
		now:         time.Now,
		rng:         rng,
	}
}

// File creates and registers a new complaint record. The notification is
// fire-and-forget and arrives about a second after filing.
func (f *ComplaintFiler) File(ctx context.Context) domain.ComplaintRecord {
	record := domain.ComplaintRecord{
		ID:       f.newID(),
		FiledAt:  f.now().UTC(),
		Category: domain.ComplaintCategory,
		Priority: domain.ComplaintPriorityHigh,
		Status:   domain.ComplaintStatusUnderReview,
	}

	if f.store != nil {
		if err := f.store.Create(ctx, &record); err != nil {
			f.logger.Warn("complaint_store_degraded", "complaint_id", record.ID, "error", err)
		}
	}

	f.scheduleNotification(ctx, record)
	return record
}

func (f *ComplaintFiler) scheduleNotification(ctx context.Context, record domain.ComplaintRecord) {
	if f.queue == nil {
		return
	}
	note := domain.Notification{
		Title:       "Complaint Raised Successfully!",
		Description: fmt.Sprintf("Complaint %s has been registered and assigned a tracking ID.", record.ID),
	}
	notifyCtx := context.WithoutCancel(ctx)
	go func() {
		if f.notifyDelay > 0 {
			time.Sleep(f.notifyDelay)
		}
		if err := f.queue.PublishComplaintFiled(notifyCtx, note); err != nil {
			f.logger.Warn("complaint_notification_failed", "complaint_id", record.ID, "error", err)
		}
	}()
}

// newID builds an identifier of the form CPL-<year>-<6 alnum>. Collisions
// are accepted as negligible; a uniqueness registry belongs in front of
// persistence, not here.
func (f *ComplaintFiler) newID() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = complaintIDAlphabet[f.rng.IntN(len(complaintIDAlphabet))]
	}
	return fmt.Sprintf("CPL-%d-%s", f.now().Year(), suffix)
}
