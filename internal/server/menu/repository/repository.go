package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/avelichko/mini-erp-cafe/internal/models"
)

var ErrNotFound = errors.New("menu item not found")

type Repository interface {
	List(ctx context.Context, onlyAvailable bool) ([]models.MenuItem, error)
	Create(ctx context.Context, item *models.MenuItem) error
	GetByID(ctx context.Context, id int64) (*models.MenuItem, error)
	GetByIDs(ctx context.Context, ids []int64) ([]models.MenuItem, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) (*models.MenuItem, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, onlyAvailable bool) ([]models.MenuItem, error) {
	var items []models.MenuItem
	stmt := r.db.WithContext(ctx).Order("category, name")
	if onlyAvailable {
		stmt = stmt.Where("is_available = ?", true)
	}
	if err := stmt.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	return items, nil
}

func (r *repository) Create(ctx context.Context, item *models.MenuItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create menu item: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}
	return &item, nil
}

func (r *repository) GetByIDs(ctx context.Context, ids []int64) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if len(ids) == 0 {
		return items, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get menu items: %w", err)
	}
	return items, nil
}

func (r *repository) Update(ctx context.Context, id int64, updates map[string]interface{}) (*models.MenuItem, error) {
	result := r.db.WithContext(ctx).Model(&models.MenuItem{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update menu item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	return r.GetByID(ctx, id)
}
