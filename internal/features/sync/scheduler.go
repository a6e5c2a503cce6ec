package sync

import (
	"context"

	"go-campfire/internal/config"
	"go-campfire/internal/tasks"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Scheduler runs the roster sync on the configured cadence. With no DSN
// configured the scheduler stays idle.
type Scheduler struct {
	cron       *cron.Cron
	service    SyncService
	dispatcher *tasks.Dispatcher
	config     *config.Config
	logger     *zap.Logger
}

func NewScheduler(lc fx.Lifecycle, service SyncService, dispatcher *tasks.Dispatcher, cfg *config.Config, logger *zap.Logger) *Scheduler {
	s := &Scheduler{
		cron:       cron.New(),
		service:    service,
		dispatcher: dispatcher,
		config:     cfg,
		logger:     logger,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return s.Start()
		},
		OnStop: func(ctx context.Context) error {
			s.Stop()
			return nil
		},
	})
	return s
}

func (s *Scheduler) Start() error {
	if s.config.RosterSyncDSN == "" {
		s.logger.Info("roster sync disabled, no legacy DSN configured")
		return nil
	}

	_, err := s.cron.AddFunc(s.config.RosterSyncSchedule, func() {
		err := s.dispatcher.Dispatch(context.Background(), "roster_sync", func(ctx context.Context) error {
			_, err := s.service.RunRosterSync(ctx)
			return err
		})
		if err != nil {
			s.logger.Error("scheduled roster sync failed", zap.String("action", "roster_sync"), zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("roster sync scheduled", zap.String("schedule", s.config.RosterSyncSchedule))
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
