package navigation

import (
	"context"
	"fmt"

	"go-campfire/internal/features/menu"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type NavigationService interface {
	// FavoriteKeys returns the user's favorites in insertion order.
	FavoriteKeys(ctx context.Context, userID string) ([]string, error)
	// Toggle flips the key and reports whether it is now favorited.
	Toggle(ctx context.Context, userID string, key string) (bool, error)
	Add(ctx context.Context, userID string, key string) error
	Remove(ctx context.Context, userID string, key string) error
}

type NavigationServiceImpl struct {
	Repo   NavigationRepository
	Logger *zap.Logger
}

func NewNavigationService(repo NavigationRepository, logger *zap.Logger) NavigationService {
	return &NavigationServiceImpl{Repo: repo, Logger: logger}
}

func (s *NavigationServiceImpl) FavoriteKeys(ctx context.Context, userID string) ([]string, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}
	pref, err := s.Repo.GetOrCreate(ctx, id)
	if err != nil {
		return nil, err
	}
	return pref.Favorites, nil
}

func (s *NavigationServiceImpl) Toggle(ctx context.Context, userID string, key string) (bool, error) {
	pref, err := s.load(ctx, userID, key)
	if err != nil {
		return false, err
	}
	favorited := pref.ToggleFavorite(key)
	if err := s.Repo.Save(ctx, pref); err != nil {
		return false, err
	}
	s.Logger.Info("favorite toggled",
		zap.String("action", "favorite_toggle"),
		zap.String("actor_id", userID),
		zap.String("key", key),
		zap.Bool("favorited", favorited),
	)
	return favorited, nil
}

func (s *NavigationServiceImpl) Add(ctx context.Context, userID string, key string) error {
	pref, err := s.load(ctx, userID, key)
	if err != nil {
		return err
	}
	if !pref.AddFavorite(key) {
		return nil
	}
	return s.Repo.Save(ctx, pref)
}

func (s *NavigationServiceImpl) Remove(ctx context.Context, userID string, key string) error {
	pref, err := s.load(ctx, userID, key)
	if err != nil {
		return err
	}
	if !pref.RemoveFavorite(key) {
		return nil
	}
	return s.Repo.Save(ctx, pref)
}

// load validates the key against the menu registry before touching storage,
// so arbitrary strings never end up persisted.
func (s *NavigationServiceImpl) load(ctx context.Context, userID string, key string) (*NavigationPreference, error) {
	if _, ok := menu.FlattenIndex()[key]; !ok {
		return nil, fmt.Errorf("unknown menu key: %s", key)
	}
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}
	return s.Repo.GetOrCreate(ctx, id)
}
