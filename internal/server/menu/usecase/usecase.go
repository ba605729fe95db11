package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/avelichko/mini-erp-cafe/internal/models"
	"github.com/avelichko/mini-erp-cafe/internal/server/menu/dto"
	"github.com/avelichko/mini-erp-cafe/internal/server/menu/repository"
	"github.com/avelichko/mini-erp-cafe/pkg/cache"
	"github.com/avelichko/mini-erp-cafe/pkg/logger"
	"github.com/avelichko/mini-erp-cafe/pkg/wrapper"
)

const (
	cacheKeyMenuAll       = "menu:all"
	cacheKeyMenuAvailable = "menu:available"
)

type UseCase struct {
	Repo     repository.Repository
	Cache    cache.Cache
	CacheTTL time.Duration
	Logger   *logger.CanonicalLogger
}

type UseCaseInterface interface {
	ListMenu(ctx context.Context, onlyAvailable bool) wrapper.JSONResult
	CreateMenuItem(ctx context.Context, req *dto.CreateMenuItemRequest) wrapper.JSONResult
	UpdateMenuItem(ctx context.Context, id int64, req *dto.UpdateMenuItemRequest) wrapper.JSONResult
	RefreshCache(ctx context.Context) error
}

func NewUseCase(uc UseCase) *UseCase {
	return &uc
}

// ListMenu reads through the Redis cache when one is configured and falls
// back to the database on a miss or cache failure.
func (uc *UseCase) ListMenu(ctx context.Context, onlyAvailable bool) wrapper.JSONResult {
	key := cacheKeyMenuAll
	if onlyAvailable {
		key = cacheKeyMenuAvailable
	}

	if uc.Cache != nil {
		var cached dto.ListMenuResponse
		err := uc.Cache.GetJSON(ctx, key, &cached)
		if err == nil {
			logger.AddToContext(ctx, logger.Bool(logger.FieldCacheHit, true))
			return wrapper.ResponseSuccess(http.StatusOK, cached)
		}
		if !errors.Is(err, cache.ErrMiss) {
			uc.Logger.WithError(err).Error("menu cache read failed, falling back to database")
		}
		logger.AddToContext(ctx, logger.Bool(logger.FieldCacheHit, false))
	}

	items, err := uc.Repo.List(ctx, onlyAvailable)
	if err != nil {
		uc.Logger.WithError(err).Error("failed to list menu items")
		return wrapper.ResponseFailed(http.StatusInternalServerError, "failed to list menu", nil)
	}

	resp := toListResponse(items)

	if uc.Cache != nil {
		if err := uc.Cache.SetJSON(ctx, key, resp, uc.CacheTTL); err != nil {
			uc.Logger.WithError(err).Error("failed to populate menu cache")
		}
	}

	return wrapper.ResponseSuccess(http.StatusOK, resp)
}

func (uc *UseCase) CreateMenuItem(ctx context.Context, req *dto.CreateMenuItemRequest) wrapper.JSONResult {
	if req.Price.Cmp(decimal.Zero) <= 0 {
		return wrapper.ResponseFailed(http.StatusBadRequest, "price must be positive", nil)
	}

	item := &models.MenuItem{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		IsAvailable: req.IsAvailable,
	}

	if err := uc.Repo.Create(ctx, item); err != nil {
		uc.Logger.WithError(err).Error("failed to create menu item")
		return wrapper.ResponseFailed(http.StatusInternalServerError, "failed to create menu item", nil)
	}

	logger.AddToContext(ctx, logger.Int64(logger.FieldMenuItemID, item.ID))
	uc.invalidateCache(ctx)

	return wrapper.ResponseSuccess(http.StatusCreated, toItemResponse(item))
}

func (uc *UseCase) UpdateMenuItem(ctx context.Context, id int64, req *dto.UpdateMenuItemRequest) wrapper.JSONResult {
	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Price != nil {
		if req.Price.Cmp(decimal.Zero) <= 0 {
			return wrapper.ResponseFailed(http.StatusBadRequest, "price must be positive", nil)
		}
		updates["price"] = *req.Price
	}
	if req.IsAvailable != nil {
		updates["is_available"] = *req.IsAvailable
	}

	if len(updates) == 0 {
		return wrapper.ResponseFailed(http.StatusBadRequest, "no fields to update", nil)
	}

	item, err := uc.Repo.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return wrapper.ResponseFailed(http.StatusNotFound, "menu item not found", nil)
		}
		uc.Logger.WithError(err).Error("failed to update menu item")
		return wrapper.ResponseFailed(http.StatusInternalServerError, "failed to update menu item", nil)
	}

	logger.AddToContext(ctx, logger.Int64(logger.FieldMenuItemID, item.ID))
	uc.invalidateCache(ctx)

	return wrapper.ResponseSuccess(http.StatusOK, toItemResponse(item))
}

// RefreshCache re-warms both menu cache keys from the database.
// Wired as a background poller job.
func (uc *UseCase) RefreshCache(ctx context.Context) error {
	if uc.Cache == nil {
		return nil
	}

	all, err := uc.Repo.List(ctx, false)
	if err != nil {
		return err
	}
	if err := uc.Cache.SetJSON(ctx, cacheKeyMenuAll, toListResponse(all), uc.CacheTTL); err != nil {
		return err
	}

	available := make([]models.MenuItem, 0, len(all))
	for _, item := range all {
		if item.IsAvailable {
			available = append(available, item)
		}
	}
	return uc.Cache.SetJSON(ctx, cacheKeyMenuAvailable, toListResponse(available), uc.CacheTTL)
}

func (uc *UseCase) invalidateCache(ctx context.Context) {
	if uc.Cache == nil {
		return
	}
	for _, key := range []string{cacheKeyMenuAll, cacheKeyMenuAvailable} {
		if err := uc.Cache.Delete(ctx, key); err != nil {
			uc.Logger.WithError(err).Error("failed to invalidate menu cache", logger.String("key", key))
		}
	}
}

func toItemResponse(item *models.MenuItem) dto.MenuItemResponse {
	return dto.MenuItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Category:    item.Category,
		Price:       item.Price,
		IsAvailable: item.IsAvailable,
		CreatedAt:   item.CreatedAt,
	}
}

func toListResponse(items []models.MenuItem) dto.ListMenuResponse {
	resp := dto.ListMenuResponse{
		Items: make([]dto.MenuItemResponse, len(items)),
		Total: len(items),
	}
	for i, item := range items {
		resp.Items[i] = toItemResponse(&item)
	}
	return resp
}
