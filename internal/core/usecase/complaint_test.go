package usecase

import (
	"context"
	"errors"
	"math/rand/v2"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/kirillkom/compliance-assistant/internal/core/domain"
)

var complaintIDPattern = regexp.MustCompile(`^CPL-\d{4}-[A-Z0-9]{6}$`)

type fakeComplaintStore struct {
	mu      sync.Mutex
	records []domain.ComplaintRecord
	err     error
}

func (s *fakeComplaintStore) Create(_ context.Context, record *domain.ComplaintRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.records = append(s.records, *record)
	return nil
}

func (s *fakeComplaintStore) List(context.Context) ([]domain.ComplaintRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.ComplaintRecord(nil), s.records...), nil
}

type fakeNotificationQueue struct {
	published chan domain.Notification
	err       error
}

func newFakeNotificationQueue() *fakeNotificationQueue {
	return &fakeNotificationQueue{published: make(chan domain.Notification, 8)}
}

func (q *fakeNotificationQueue) PublishComplaintFiled(_ context.Context, note domain.Notification) error {
	if q.err != nil {
		return q.err
	}
	q.published <- note
	return nil
}

func (q *fakeNotificationQueue) SubscribeComplaintFiled(ctx context.Context, _ func(context.Context, domain.Notification) error) error {
	<-ctx.Done()
	return nil
}

func TestFileProducesWellFormedRecord(t *testing.T) {
	store := &fakeComplaintStore{}
	queue := newFakeNotificationQueue()
	filer := NewComplaintFiler(store, queue, rand.New(rand.NewPCG(7, 7)), 0, nil)

	record := filer.File(context.Background())

	if !complaintIDPattern.MatchString(record.ID) {
		t.Fatalf("complaint id %q does not match CPL-<year>-<6 alnum>", record.ID)
	}
	if record.Category != domain.ComplaintCategory {
		t.Fatalf("expected category %q, got %q", domain.ComplaintCategory, record.Category)
	}
	if record.Priority != domain.ComplaintPriorityHigh {
		t.Fatalf("expected priority %q, got %q", domain.ComplaintPriorityHigh, record.Priority)
	}
	if record.Status != domain.ComplaintStatusUnderReview {
		t.Fatalf("expected status %q, got %q", domain.ComplaintStatusUnderReview, record.Status)
	}

	records, _ := store.List(context.Background())
	if len(records) != 1 || records[0].ID != record.ID {
		t.Fatalf("expected record persisted, got %v", records)
	}
}

func TestFileSendsDelayedNotification(t *testing.T) {
	queue := newFakeNotificationQueue()
	filer := NewComplaintFiler(nil, queue, rand.New(rand.NewPCG(3, 3)), time.Millisecond, nil)

	record := filer.File(context.Background())

	select {
	case note := <-queue.published:
		if note.Title != "Complaint Raised Successfully!" {
			t.Fatalf("unexpected notification title %q", note.Title)
		}
		if want := record.ID; !regexp.MustCompile(regexp.QuoteMeta(want)).MatchString(note.Description) {
			t.Fatalf("expected description to reference %s, got %q", want, note.Description)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("notification was never published")
	}
}

func TestFileSurvivesStoreFailure(t *testing.T) {
	store := &fakeComplaintStore{err: errors.New("db down")}
	queue := newFakeNotificationQueue()
	filer := NewComplaintFiler(store, queue, rand.New(rand.NewPCG(5, 5)), 0, nil)

	record := filer.File(context.Background())
	if record.ID == "" {
		t.Fatal("filing must succeed even when persistence fails")
	}
}

func TestFileIDsAreUniqueEnough(t *testing.T) {
	filer := NewComplaintFiler(nil, nil, rand.New(rand.NewPCG(11, 13)), 0, nil)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := filer.File(context.Background()).ID
		if seen[id] {
			t.Fatalf("duplicate complaint id %s after %d filings", id, i)
		}
		seen[id] = true
	}
}
