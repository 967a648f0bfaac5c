package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/bistro-service/internal/domain"
	"github.com/spec-kit/bistro-service/internal/events"
	"github.com/spec-kit/bistro-service/internal/persistence"
	"github.com/spec-kit/bistro-service/internal/repository"
)

const (
	menuCacheKey = "menu:list"
	menuCacheTTL = 5 * time.Minute
)

// MenuService serves the public catalog and the admin-gated mutations.
// The list is cached in Redis and invalidated on every mutation; cache
// failures degrade to the database.
type MenuService struct {
	menu       repository.MenuRepository
	reviews    repository.ReviewRepository
	cache      *persistence.Redis
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewMenuService builds the service.
func NewMenuService(menu repository.MenuRepository, reviews repository.ReviewRepository, cache *persistence.Redis, dispatcher events.Dispatcher, logger *zap.Logger) *MenuService {
	return &MenuService{menu: menu, reviews: reviews, cache: cache, dispatcher: dispatcher, logger: logger}
}

// List returns all menu items, preferring the cache.
func (s *MenuService) List(ctx context.Context) ([]domain.MenuItem, error) {
	if cached, err := s.cache.Get(ctx, menuCacheKey); err == nil && cached != "" {
		var items []domain.MenuItem
		if err := json.Unmarshal([]byte(cached), &items); err == nil {
			return items, nil
		}
	}

	items, err := s.menu.List(ctx)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(items); err == nil {
		if err := s.cache.Set(ctx, menuCacheKey, string(encoded), menuCacheTTL); err != nil {
			s.logger.Warn("menu cache write failed", zap.Error(err))
		}
	}
	return items, nil
}

// Get returns a single menu item.
func (s *MenuService) Get(ctx context.Context, id string) (*domain.MenuItem, error) {
	return s.menu.GetByID(ctx, id)
}

// Create inserts a menu item and invalidates the cached list.
func (s *MenuService) Create(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	if err := s.menu.Create(ctx, item); err != nil {
		return nil, err
	}
	s.invalidate(ctx, item.ID, "created")
	return item, nil
}

// Update applies the catalog fields to an existing item; absent ids
// surface a zero modified count.
func (s *MenuService) Update(ctx context.Context, item *domain.MenuItem) (int64, error) {
	modified, err := s.menu.Update(ctx, item)
	if err != nil {
		return 0, err
	}
	if modified > 0 {
		s.invalidate(ctx, item.ID, "updated")
	}
	return modified, nil
}

// Delete removes an item; absent ids surface a zero deleted count.
func (s *MenuService) Delete(ctx context.Context, id string) (int64, error) {
	deleted, err := s.menu.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		s.invalidate(ctx, id, "deleted")
	}
	return deleted, nil
}

// Reviews returns all customer reviews.
func (s *MenuService) Reviews(ctx context.Context) ([]domain.Review, error) {
	return s.reviews.List(ctx)
}

func (s *MenuService) invalidate(ctx context.Context, itemID, action string) {
	if err := s.cache.Delete(ctx, menuCacheKey); err != nil {
		s.logger.Warn("menu cache invalidation failed", zap.Error(err))
	}
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        itemID,
			Type:      events.EventMenuChanged,
			Timestamp: time.Now(),
			Payload:   events.MenuChangedPayload{MenuItemID: itemID, Action: action},
		})
	}
}
