package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kirillkom/compliance-assistant/internal/core/domain"
	"github.com/kirillkom/compliance-assistant/internal/core/ports"
)

// Sleeper suspends the current continuation. Tests inject a zero-delay
// implementation instead of sleeping for real.
type Sleeper func(ctx context.Context, d time.Duration)

func sleepFor(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

type PipelineConfig struct {
	ComposeDelayMin     time.Duration
	ComposeDelayMax     time.Duration
	UploadStartDelay    time.Duration
	UploadAnalysisDelay time.Duration
	Sleep               Sleeper
}

func (c PipelineConfig) normalize() PipelineConfig {
	out := c
	if out.ComposeDelayMin <= 0 {
		out.ComposeDelayMin = time.Second
	}
	if out.ComposeDelayMax < out.ComposeDelayMin {
		out.ComposeDelayMax = out.ComposeDelayMin + 2*time.Second
	}
	if out.UploadStartDelay <= 0 {
		out.UploadStartDelay = 1500 * time.Millisecond
	}
	if out.UploadAnalysisDelay <= 0 {
		out.UploadAnalysisDelay = 2500 * time.Millisecond
	}
	if out.Sleep == nil {
		out.Sleep = sleepFor
	}
	return out
}

// ConversationPipeline owns one conversation: its message history, the
// composing/processing flags and the asynchronous turn continuations.
// At most one assistant turn is outstanding at a time; a submission
// arriving while one is pending is rejected, never queued. Completed
// messages are never mutated, so snapshots are safe to hand out.
type ConversationPipeline struct {
	scanner     ports.LabelScanner
	marketplace ports.MarketplaceScanner
	matcher     ports.ImageMatcher
	filer       *ComplaintFiler
	composer    *ResponseComposer
	cfg         PipelineConfig
	logger      *slog.Logger

	mu         sync.Mutex
	rng        *rand.Rand
	messages   []domain.Message
	composing  bool
	processing bool
}

func NewConversationPipeline(
	scanner ports.LabelScanner,
	marketplace ports.MarketplaceScanner,
	matcher ports.ImageMatcher,
	filer *ComplaintFiler,
	composer *ResponseComposer,
	rng *rand.Rand,
	cfg PipelineConfig,
	logger *slog.Logger,
) *ConversationPipeline {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if logger == nil {
		logger = slog.Default()
	}
	p := &ConversationPipeline{
		scanner:     scanner,
		marketplace: marketplace,
		matcher:     matcher,
		filer:       filer,
		composer:    composer,
		cfg:         cfg.normalize(),
		logger:      logger,
		rng:         rng,
	}
	p.messages = append(p.messages, composer.Greeting())
	return p
}

// SubmitText appends the user message synchronously and schedules the
// assistant reply after a randomized composing delay.
func (p *ConversationPipeline) SubmitText(ctx context.Context, text string) (domain.Message, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return domain.Message{}, domain.WrapError(domain.ErrInvalidInput, "submit text", errors.New("text is required"))
	}

	p.mu.Lock()
	if p.composing {
		p.mu.Unlock()
		return domain.Message{}, domain.WrapError(domain.ErrAlreadyInProgress, "submit text", errors.New("previous turn still composing"))
	}
	userMsg := p.appendUserMessageLocked(text)
	p.composing = true
	delay := p.cfg.ComposeDelayMin + p.randDurationLocked(p.cfg.ComposeDelayMax-p.cfg.ComposeDelayMin)
	p.mu.Unlock()

	// Continuations run to completion even if the caller goes away.
	go p.completeTextTurn(context.WithoutCancel(ctx), trimmed, delay)
	return userMsg, nil
}

// SubmitUpload appends the user message synchronously and schedules the
// multi-stage analysis run: status message after the preprocessing
// delay, combined scan+anomaly message after the analysis delay.
func (p *ConversationPipeline) SubmitUpload(ctx context.Context, upload domain.UploadDescriptor) (domain.Message, error) {
	if strings.TrimSpace(upload.Name) == "" {
		return domain.Message{}, domain.WrapError(domain.ErrInvalidInput, "submit upload", errors.New("file name is required"))
	}

	p.mu.Lock()
	if p.composing {
		p.mu.Unlock()
		return domain.Message{}, domain.WrapError(domain.ErrAlreadyInProgress, "submit upload", errors.New("previous turn still composing"))
	}
	userMsg := p.appendUserMessageLocked(fmt.Sprintf("Uploaded %s (%d bytes) for compliance analysis.", upload.Name, upload.SizeBytes))
	p.composing = true
	p.processing = true
	p.mu.Unlock()

	go p.runUploadPipeline(context.WithoutCancel(ctx))
	return userMsg, nil
}

// Snapshot returns a read-only copy of the conversation state.
func (p *ConversationPipeline) Snapshot() domain.ConversationSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	messages := make([]domain.Message, len(p.messages))
	copy(messages, p.messages)
	return domain.ConversationSnapshot{
		Messages:     messages,
		IsComposing:  p.composing,
		IsProcessing: p.processing,
	}
}

func (p *ConversationPipeline) completeTextTurn(ctx context.Context, text string, delay time.Duration) {
	p.cfg.Sleep(ctx, delay)
	reply := p.reply(ctx, text)

	p.mu.Lock()
	p.messages = append(p.messages, reply)
	p.composing = false
	p.mu.Unlock()

	p.logger.Info("turn_completed", "kind", string(reply.Kind))
}

func (p *ConversationPipeline) runUploadPipeline(ctx context.Context) {
	p.cfg.Sleep(ctx, p.cfg.UploadStartDelay)

	status := p.composer.PipelineStarted()
	p.mu.Lock()
	p.messages = append(p.messages, status)
	p.mu.Unlock()

	p.cfg.Sleep(ctx, p.cfg.UploadAnalysisDelay)

	var final domain.Message
	scan, err := p.scanner.Scan(ctx)
	if err != nil {
		final = p.failureReply(domain.IntentScan, err)
	} else if anomaly, assessErr := p.marketplace.Assess(ctx); assessErr != nil {
		final = p.failureReply(domain.IntentAnomaly, assessErr)
	} else {
		final = p.composer.UploadAnalysis(scan, anomaly)
	}

	p.mu.Lock()
	p.messages = append(p.messages, final)
	p.composing = false
	p.processing = false
	p.mu.Unlock()

	p.logger.Info("upload_pipeline_completed", "kind", string(final.Kind))
}

func (p *ConversationPipeline) reply(ctx context.Context, text string) domain.Message {
	switch intent := ClassifyIntent(text); intent {
	case domain.IntentComplaint:
		return p.composer.Complaint(p.filer.File(ctx))
	case domain.IntentScan:
		result, err := p.scanner.Scan(ctx)
		if err != nil {
			return p.failureReply(intent, err)
		}
		return p.composer.Scan(result)
	case domain.IntentAnomaly:
		result, err := p.marketplace.Assess(ctx)
		if err != nil {
			return p.failureReply(intent, err)
		}
		return p.composer.Anomaly(result)
	case domain.IntentImageMatch:
		result, err := p.matcher.Compare(ctx)
		if err != nil {
			return p.failureReply(intent, err)
		}
		return p.composer.ImageMatch(result)
	case domain.IntentLegal:
		return p.composer.Legal()
	case domain.IntentBarcode:
		return p.composer.Barcode()
	default:
		return p.composer.General()
	}
}

// Backend failures never propagate past the conversation boundary; they
// degrade into an apologetic reply.
func (p *ConversationPipeline) failureReply(intent domain.Intent, err error) domain.Message {
	p.logger.Error("analysis_backend_failed", "intent", string(intent), "error", err)
	return p.composer.Apology()
}

// caller holds p.mu
func (p *ConversationPipeline) appendUserMessageLocked(text string) domain.Message {
	msg := domain.Message{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    domain.SenderUser,
		Timestamp: time.Now().UTC(),
		Kind:      domain.KindNormal,
	}
	p.messages = append(p.messages, msg)
	return msg
}

// caller holds p.mu
func (p *ConversationPipeline) randDurationLocked(span time.Duration) time.Duration {
	if span <= 0 {
		return 0
	}
	return time.Duration(p.rng.Int64N(int64(span)))
}
