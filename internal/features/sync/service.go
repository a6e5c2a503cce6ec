package sync

import (
	"context"
	"fmt"
	"time"

	"go-campfire/internal/cache"
	common_models "go-campfire/internal/common/models"
	"go-campfire/internal/features/faction"
	"go-campfire/internal/features/user"
	"go-campfire/pkg/utils"

	"go.uber.org/zap"
)

type SyncService interface {
	// RunRosterSync pulls the active camper roster from the legacy system
	// and upserts users and attendee profiles keyed on external id. Returns
	// the number of processed rows.
	RunRosterSync(ctx context.Context) (int, error)
	ListLogs(ctx context.Context, limit int64) ([]SyncLog, error)
}

type SyncServiceImpl struct {
	Source      RosterSource
	UserRepo    user.UserRepository
	FactionRepo faction.FactionRepository
	LogRepo     SyncLogRepository
	Cache       *cache.Cache
	Logger      *zap.Logger
}

func NewSyncService(
	source RosterSource,
	userRepo user.UserRepository,
	factionRepo faction.FactionRepository,
	logRepo SyncLogRepository,
	c *cache.Cache,
	logger *zap.Logger,
) SyncService {
	return &SyncServiceImpl{
		Source:      source,
		UserRepo:    userRepo,
		FactionRepo: factionRepo,
		LogRepo:     logRepo,
		Cache:       c,
		Logger:      logger,
	}
}

func (s *SyncServiceImpl) ListLogs(ctx context.Context, limit int64) ([]SyncLog, error) {
	return s.LogRepo.List(ctx, limit)
}

func (s *SyncServiceImpl) RunRosterSync(ctx context.Context) (int, error) {
	log := &SyncLog{
		StartTime: time.Now(),
		Status:    "in_progress",
	}
	_ = s.LogRepo.Create(ctx, log)

	processed := 0
	var syncErr error

	defer func() {
		log.EndTime = time.Now()
		log.ProcessedCount = processed
		if syncErr != nil {
			log.Status = "failed"
			log.Error = syncErr.Error()
		} else {
			log.Status = "success"
		}
		_ = s.LogRepo.Update(ctx, log)
	}()

	s.Logger.Info("roster sync started", zap.String("action", "roster_sync"))

	campers, err := s.Source.FetchCampers(ctx)
	if err != nil {
		syncErr = err
		s.Logger.Error("roster fetch failed", zap.String("action", "roster_sync"), zap.Error(err))
		return 0, err
	}

	for _, camper := range campers {
		if err := s.applyCamper(ctx, camper); err != nil {
			syncErr = fmt.Errorf("camper %s: %w", camper.ExternalID, err)
			s.Logger.Error("camper upsert failed",
				zap.String("action", "roster_sync"),
				zap.String("external_id", camper.ExternalID),
				zap.Error(err),
			)
			return processed, syncErr
		}
		processed++
	}

	s.Logger.Info("roster sync finished",
		zap.String("action", "roster_sync"),
		zap.Int("processed", processed),
	)
	return processed, nil
}

func (s *SyncServiceImpl) applyCamper(ctx context.Context, camper LegacyCamper) error {
	u, err := s.UserRepo.FindByUsername(ctx, camper.Email)
	if err != nil {
		u = &user.User{
			Username: camper.Email,
			Status:   "active",
		}
	}
	u.Email = camper.Email
	u.FirstName = camper.FirstName
	u.LastName = camper.LastName
	u.UserType = common_models.UserTypeAttendee
	if err := s.UserRepo.Upsert(ctx, u); err != nil {
		return err
	}

	profile := &faction.AttendeeProfile{
		UserID:     u.ID,
		Slug:       CamperSlug(camper),
		ExternalID: camper.ExternalID,
	}
	if camper.FactionName != "" {
		if f, err := s.FactionRepo.FindBySlug(ctx, utils.Slugify(camper.FactionName)); err == nil {
			profile.FactionID = &f.ID
			profile.OrganizationID = f.OrganizationID
		}
	}
	if err := s.FactionRepo.UpsertAttendeeProfileByExternalID(ctx, profile); err != nil {
		return err
	}

	// Synced rows change enrollment counts, so the cached info row is stale.
	s.Cache.Invalidate(ctx, cache.Key("info_row_data", u.ID.Hex()))
	return nil
}

// CamperSlug derives a stable slug from a legacy row. The external id keeps
// same-named campers distinct.
func CamperSlug(camper LegacyCamper) string {
	return utils.Slugify(fmt.Sprintf("%s %s %s", camper.FirstName, camper.LastName, camper.ExternalID))
}
