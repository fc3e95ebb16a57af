// File: services/order/service.go
package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/eassylife/b2bportal/config"
	"github.com/eassylife/b2bportal/models"
	"github.com/eassylife/b2bportal/upstream"
	"github.com/eassylife/b2bportal/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrDraftNotFound signals a missing or expired draft.
var ErrDraftNotFound = errors.New("order draft not found or expired")

// Draft is an in-progress order: the form under construction plus the
// catalog/slot data its derivations run on. Drafts live in Redis with a TTL
// and are discarded on successful submission or close.
type Draft struct {
	ID            string                   `json:"id"`
	Form          models.OrderForm         `json:"form"`
	Categories    []models.ServiceCategory `json:"categories"`
	Addresses     []models.Address         `json:"addresses"`
	Slot          *models.SlotTimingData   `json:"slot"`
	LocationZones []models.LocationZone    `json:"locationZones"`
	CityZones     []models.LocationZone    `json:"cityZones"`
	Providers     []models.ProviderCard    `json:"providers"`
	LoadErrors    map[string]string        `json:"loadErrors,omitempty"`
	CreatedAt     time.Time                `json:"createdAt"`
}

// Service drives the order-creation workflow.
type Service interface {
	OpenDraft(ctx context.Context, token string) (*Draft, error)
	ApplyEvent(ctx context.Context, token, draftID string, ev Event) (*Draft, error)
	Submit(ctx context.Context, token, draftID string) error
	CloseDraft(ctx context.Context, draftID string) error
	GetDraft(ctx context.Context, draftID string) (*Draft, error)
}

// DefaultOrderService is the production implementation.
type DefaultOrderService struct {
	API    *upstream.Client
	Cache  *redis.Client
	Drafts *redis.Client
}

func draftTTL() time.Duration {
	minutes := config.AppConfig.DraftTTLMinutes
	if minutes <= 0 {
		minutes = 30
	}
	return time.Duration(minutes) * time.Minute
}

// OpenDraft issues the four upstream fetches concurrently with no mutual
// ordering; each result lands in its own field, so partial population is
// acceptable and arrival order does not matter. Only an authorization loss
// aborts the open outright.
func (s *DefaultOrderService) OpenDraft(ctx context.Context, token string) (*Draft, error) {
	draft := &Draft{
		ID:         uuid.New().String(),
		LoadErrors: map[string]string{},
		CreatedAt:  time.Now(),
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs = map[string]error{}
	)
	fetch := func(name string, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				mu.Lock()
				errs[name] = err
				mu.Unlock()
			}
		}()
	}

	fetch("categories", func() error {
		cats, err := s.categories(ctx, token)
		if err != nil {
			return err
		}
		draft.Categories = cats
		return nil
	})
	fetch("addresses", func() error {
		addrs, err := s.API.Addresses(ctx, token)
		if err != nil {
			return err
		}
		draft.Addresses = addrs
		return nil
	})
	fetch("slotTiming", func() error {
		slot, err := s.API.SlotTiming(ctx, token)
		if err != nil {
			return err
		}
		draft.Slot = slot
		return nil
	})
	fetch("locationZones", func() error {
		zones, err := s.API.Locations(ctx, token, "")
		if err != nil {
			return err
		}
		draft.LocationZones = zones
		return nil
	})
	wg.Wait()

	for name, err := range errs {
		if errors.Is(err, upstream.ErrUnauthorized) {
			return nil, err
		}
		utils.GetLogger().Warn("OpenDraft: fetch failed",
			zap.String("field", name), zap.Error(err))
		draft.LoadErrors[name] = err.Error()
	}

	if err := s.save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// categories serves the catalog tree from the Redis cache when fresh.
func (s *DefaultOrderService) categories(ctx context.Context, token string) ([]models.ServiceCategory, error) {
	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, utils.CatalogCacheKey).Result(); err == nil {
			var cats []models.ServiceCategory
			if err := json.Unmarshal([]byte(data), &cats); err == nil {
				return cats, nil
			}
		}
	}

	cats, err := s.API.Categories(ctx, token)
	if err != nil {
		return nil, err
	}
	if s.Cache != nil {
		if data, err := json.Marshal(cats); err == nil {
			ttl := time.Duration(config.AppConfig.CatalogCacheTTLMinutes) * time.Minute
			if ttl <= 0 {
				ttl = 10 * time.Minute
			}
			if err := s.Cache.Set(ctx, utils.CatalogCacheKey, data, ttl).Err(); err != nil {
				utils.GetLogger().Warn("categories: cache write failed", zap.Error(err))
			}
		}
	}
	return cats, nil
}

// ApplyEvent loads the draft, runs the reducer, performs the two dependent
// fetches (provider search on time selection, city zones on location-zone
// selection) and persists the result.
func (s *DefaultOrderService) ApplyEvent(ctx context.Context, token, draftID string, ev Event) (*Draft, error) {
	draft, err := s.GetDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	Apply(draft, ev)

	switch ev.Kind {
	case SelectTime:
		search := models.ProviderSearch{
			CategoryID:    draft.Form.CategoryID,
			SubcategoryID: draft.Form.SubcategoryID,
			Attributes: []models.AttributeSelection{{
				AttributeID: draft.Form.FilterAttributeID,
				OptionID:    draft.Form.FilterOption,
			}},
			SegmentID: draft.Form.SegmentOption,
		}
		providers, err := s.API.ServiceProviders(ctx, token, search)
		if err != nil {
			if errors.Is(err, upstream.ErrUnauthorized) {
				return nil, err
			}
			utils.GetLogger().Warn("ApplyEvent: provider search failed", zap.Error(err))
			draft.LoadErrors["providers"] = err.Error()
		} else {
			draft.Providers = providers
			delete(draft.LoadErrors, "providers")
		}
	case SelectLocationZone:
		zones, err := s.API.Locations(ctx, token, ev.Value)
		if err != nil {
			if errors.Is(err, upstream.ErrUnauthorized) {
				return nil, err
			}
			utils.GetLogger().Warn("ApplyEvent: city-zone fetch failed", zap.Error(err))
			draft.LoadErrors["cityZones"] = err.Error()
		} else {
			draft.CityZones = zones
			delete(draft.LoadErrors, "cityZones")
		}
	}

	if err := s.save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Submit validates the draft locally, posts the composed form and discards
// the draft on success. A server rejection keeps the draft so the user may
// retry without losing selections.
func (s *DefaultOrderService) Submit(ctx context.Context, token, draftID string) error {
	draft, err := s.GetDraft(ctx, draftID)
	if err != nil {
		return err
	}
	if draft.Form.CategoryID == "" {
		return utils.NewValidationError("categoryId", "category is required")
	}
	if draft.Form.SubcategoryID == "" {
		return utils.NewValidationError("subcategoryId", "subcategory is required")
	}
	if draft.Form.Address == "" {
		return utils.NewValidationError("address", "service address is required")
	}

	if err := s.API.CreateOrder(ctx, token, draft.Form); err != nil {
		return err
	}
	return s.CloseDraft(ctx, draftID)
}

// CloseDraft discards the draft.
func (s *DefaultOrderService) CloseDraft(ctx context.Context, draftID string) error {
	return s.Drafts.Del(ctx, utils.DraftCachePrefix+draftID).Err()
}

// GetDraft loads a draft from Redis.
func (s *DefaultOrderService) GetDraft(ctx context.Context, draftID string) (*Draft, error) {
	data, err := s.Drafts.Get(ctx, utils.DraftCachePrefix+draftID).Result()
	if err == redis.Nil {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}
	var draft Draft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, fmt.Errorf("parse draft: %w", err)
	}
	return &draft, nil
}

func (s *DefaultOrderService) save(ctx context.Context, draft *Draft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}
	if err := s.Drafts.Set(ctx, utils.DraftCachePrefix+draft.ID, data, draftTTL()).Err(); err != nil {
		return fmt.Errorf("cache draft: %w", err)
	}
	return nil
}

var _ Service = (*DefaultOrderService)(nil)
