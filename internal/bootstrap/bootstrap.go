package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/kirillkom/compliance-assistant/internal/config"
	"github.com/kirillkom/compliance-assistant/internal/core/ports"
	"github.com/kirillkom/compliance-assistant/internal/core/usecase"
	"github.com/kirillkom/compliance-assistant/internal/infrastructure/queue/nats"
	"github.com/kirillkom/compliance-assistant/internal/infrastructure/report/excel"
	"github.com/kirillkom/compliance-assistant/internal/infrastructure/repository/postgres"
	"github.com/kirillkom/compliance-assistant/internal/infrastructure/resilience"
	"github.com/kirillkom/compliance-assistant/internal/infrastructure/simulator"
)

type App struct {
	Config config.Config

	Queue         ports.NotificationQueue
	Complaints    ports.ComplaintStore
	Conversations ports.ConversationService
	Exporter      ports.ReportExporter

	closeFn func()
}

func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	db, err := postgres.OpenDB(cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	repo := postgres.NewComplaintRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	executor := resilience.NewExecutor(resilience.DefaultConfig())
	queue, err := nats.NewWithOptions(cfg.NATSURL, cfg.NATSSubject, nats.Options{
		ResilienceExecutor: executor,
	})
	if err != nil {
		return nil, fmt.Errorf("init notification queue: %w", err)
	}

	scanner := simulator.NewScanSimulator(nil)
	marketplace := simulator.NewAnomalySimulator(nil)
	matcher := simulator.NewMatchSimulator(nil)
	composer := usecase.NewResponseComposer(nil)
	filer := usecase.NewComplaintFiler(
		repo,
		queue,
		nil,
		time.Duration(cfg.NotifyDelayMS)*time.Millisecond,
		logger,
	)

	pipelineCfg := usecase.PipelineConfig{
		ComposeDelayMin:     time.Duration(cfg.ComposeDelayMinMS) * time.Millisecond,
		ComposeDelayMax:     time.Duration(cfg.ComposeDelayMaxMS) * time.Millisecond,
		UploadStartDelay:    time.Duration(cfg.UploadStartDelayMS) * time.Millisecond,
		UploadAnalysisDelay: time.Duration(cfg.UploadAnalysisDelayMS) * time.Millisecond,
	}
	sessions := usecase.NewSessionManager(func() *usecase.ConversationPipeline {
		return usecase.NewConversationPipeline(
			scanner,
			marketplace,
			matcher,
			filer,
			composer,
			rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
			pipelineCfg,
			logger,
		)
	})

	return &App{
		Config: cfg,

		Queue:         queue,
		Complaints:    repo,
		Conversations: sessions,
		Exporter:      excel.NewExporter(),

		closeFn: func() {
			queue.Close()
			_ = db.Close()
		},
	}, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}
