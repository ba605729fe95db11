package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/avelichko/mini-erp-cafe/internal/models"
	"github.com/avelichko/mini-erp-cafe/internal/server/orders/dto"
	"github.com/avelichko/mini-erp-cafe/pkg/pubsub"
)

var ErrNotFound = errors.New("order not found")

// ListFilter narrows the order listing. Nil fields are not applied.
type ListFilter struct {
	Status   *models.OrderStatus
	DateFrom *time.Time
	DateTo   *time.Time
	Limit    int
	Offset   int
}

// SummaryFilter narrows and groups the order summary.
// GroupBy is empty, "status", "user_id" or "day".
type SummaryFilter struct {
	Status   *models.OrderStatus
	UserID   *int64
	DateFrom *time.Time
	DateTo   *time.Time
	GroupBy  string
}

// SummaryTotals is one aggregation bucket. Group is empty for
// ungrouped queries.
type SummaryTotals struct {
	Group        string
	CountOrders  int64
	TotalRevenue decimal.Decimal
}

type Repository interface {
	List(ctx context.Context, f ListFilter) ([]models.Order, error)
	GetByID(ctx context.Context, id int64) (*models.Order, error)
	Create(ctx context.Context, order *models.Order) error
	UpdateStatus(ctx context.Context, id int64, status models.OrderStatus, closedAt *time.Time) (*models.Order, error)
	Delete(ctx context.Context, id int64) error
	Summarize(ctx context.Context, f SummaryFilter) ([]SummaryTotals, error)
	PublishOrderEvent(event dto.OrderEvent, channel string) error
}

type repository struct {
	db  *gorm.DB
	pub pubsub.Publisher
}

func NewRepository(db *gorm.DB, publisher pubsub.Publisher) Repository {
	return &repository{db: db, pub: publisher}
}

func (r *repository) List(ctx context.Context, f ListFilter) ([]models.Order, error) {
	stmt := r.db.WithContext(ctx).
		Preload("Items.MenuItem").
		Preload("User").
		Order("created_at DESC")

	if f.Status != nil {
		stmt = stmt.Where("status = ?", *f.Status)
	}
	if f.DateFrom != nil {
		stmt = stmt.Where("created_at >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		stmt = stmt.Where("created_at <= ?", *f.DateTo)
	}
	if f.Limit > 0 {
		stmt = stmt.Limit(f.Limit)
	}
	if f.Offset > 0 {
		stmt = stmt.Offset(f.Offset)
	}

	var orders []models.Order
	if err := stmt.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Items.MenuItem").
		Preload("User").
		First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &order, nil
}

// Create inserts the order and its items in one transaction.
func (r *repository) Create(ctx context.Context, order *models.Order) error {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func (r *repository) UpdateStatus(ctx context.Context, id int64, status models.OrderStatus, closedAt *time.Time) (*models.Order, error) {
	result := r.db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":    status,
			"closed_at": closedAt,
		})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update order status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Cascade is declared on the FK, but delete items explicitly so
		// SQLite test databases without foreign_keys=on behave the same.
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete order items: %w", err)
		}

		result := tx.Delete(&models.Order{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete order: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *repository) Summarize(ctx context.Context, f SummaryFilter) ([]SummaryTotals, error) {
	stmt := r.db.WithContext(ctx).Model(&models.Order{}).
		Joins("JOIN order_items ON order_items.order_id = orders.id")

	if f.Status != nil {
		stmt = stmt.Where("orders.status = ?", *f.Status)
	}
	if f.UserID != nil {
		stmt = stmt.Where("orders.user_id = ?", *f.UserID)
	}
	if f.DateFrom != nil {
		stmt = stmt.Where("orders.created_at >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		stmt = stmt.Where("orders.created_at <= ?", *f.DateTo)
	}

	groupExpr := ""
	switch f.GroupBy {
	case "status":
		groupExpr = "orders.status"
	case "user_id":
		groupExpr = "CAST(orders.user_id AS TEXT)"
	case "day":
		groupExpr = "CAST(DATE(orders.created_at) AS TEXT)"
	case "":
	default:
		return nil, fmt.Errorf("unsupported group_by: %s", f.GroupBy)
	}

	type row struct {
		Grp          string
		CountOrders  int64
		TotalRevenue decimal.Decimal
	}

	var rows []row
	if groupExpr == "" {
		stmt = stmt.Select("COUNT(DISTINCT orders.id) AS count_orders, COALESCE(SUM(order_items.price * order_items.quantity), 0) AS total_revenue")
	} else {
		stmt = stmt.Select(groupExpr + " AS grp, COUNT(DISTINCT orders.id) AS count_orders, COALESCE(SUM(order_items.price * order_items.quantity), 0) AS total_revenue").
			Group(groupExpr).
			Order("grp")
	}

	if err := stmt.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to summarize orders: %w", err)
	}

	totals := make([]SummaryTotals, len(rows))
	for i, rw := range rows {
		totals[i] = SummaryTotals{
			Group:        rw.Grp,
			CountOrders:  rw.CountOrders,
			TotalRevenue: rw.TotalRevenue,
		}
	}
	return totals, nil
}

// PublishOrderEvent publishes an order event to Redis. No-op when pub/sub
// is not configured.
func (r *repository) PublishOrderEvent(event dto.OrderEvent, channel string) error {
	if r.pub == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	if err := r.pub.Publish(ctx, channel, string(payload)); err != nil {
		return fmt.Errorf("failed to publish order event: %w", err)
	}

	return nil
}
