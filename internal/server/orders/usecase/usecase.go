package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/avelichko/mini-erp-cafe/internal/models"
	menurepo "github.com/avelichko/mini-erp-cafe/internal/server/menu/repository"
	"github.com/avelichko/mini-erp-cafe/internal/server/orders/dto"
	"github.com/avelichko/mini-erp-cafe/internal/server/orders/repository"
	userrepo "github.com/avelichko/mini-erp-cafe/internal/server/users/repository"
	"github.com/avelichko/mini-erp-cafe/pkg/logger"
	"github.com/avelichko/mini-erp-cafe/pkg/wrapper"
)

type UseCase struct {
	Repo          repository.Repository
	MenuRepo      menurepo.Repository
	UserRepo      userrepo.Repository
	EventsChannel string
	Logger        *logger.CanonicalLogger
}

type UseCaseInterface interface {
	ListOrders(ctx context.Context, f repository.ListFilter) wrapper.JSONResult
	GetOrder(ctx context.Context, id int64) wrapper.JSONResult
	CreateOrder(ctx context.Context, req *dto.CreateOrderRequest) wrapper.JSONResult
	UpdateOrder(ctx context.Context, id int64, req *dto.UpdateOrderRequest) wrapper.JSONResult
	DeleteOrder(ctx context.Context, id int64) wrapper.JSONResult
	Summary(ctx context.Context, f repository.SummaryFilter) wrapper.JSONResult
}

func NewUseCase(uc UseCase) *UseCase {
	return &uc
}

func (uc *UseCase) ListOrders(ctx context.Context, f repository.ListFilter) wrapper.JSONResult {
	orders, err := uc.Repo.List(ctx, f)
	if err != nil {
		uc.Logger.WithError(err).Error("failed to list orders")
		return wrapper.ResponseFailed(http.StatusInternalServerError, "failed to list orders", nil)
	}

	resp := dto.ListOrdersResponse{
		Orders: make([]dto.OrderResponse, len(orders)),
		Total:  len(orders),
	}
	for i, o := range orders {
		resp.Orders[i] = toOrderResponse(&o)
	}

	return wrapper.ResponseSuccess(http.StatusOK, resp)
}

func (uc *UseCase) GetOrder(ctx context.Context, id int64) wrapper.JSONResult {
	order, err := uc.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return wrapper.ResponseFailed(http.StatusNotFound, "order not found", nil)
		}
		uc.Logger.WithError(err).Error("failed to get order")
		return wrapper.ResponseFailed(http.StatusInternalServerError, "failed to get order", nil)
	}

	logger.AddToContext(ctx, logger.Int64(logger.FieldOrderID, order.ID))

	return wrapper.ResponseSuccess(http.StatusOK, toOrderResponse(order))
}

// CreateOrder opens an order. Every position is validated against the
// menu and the item price is snapshotted so later menu edits cannot
// change what the customer was charged.
func (uc *UseCase) CreateOrder(ctx context.Context, req *dto.CreateOrderRequest) wrapper.JSONResult {
	if _, err := uc.UserRepo.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, userrepo.ErrNotFound) {
			return wrapper.ResponseFailed(http.StatusBadRequest, "user not found", nil)
		}
		uc.Logger.WithError(err).Error("failed to look up order user")
		return wrapper.ResponseFailed(http.StatusInternalServerError, "failed to create order", nil)
	}

	ids := make([]int64, len(req.Items))
	for i, item := range req.Items {
		ids[i] = item.MenuItemID
	}

	menuItems, err := uc.MenuRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.Logger.WithError(err).Error("failed to look up menu items")
		return wrapper.ResponseFailed(http.StatusInternalServerError, "failed to create order", nil)
	}

	byID := make(map[int64]*models.MenuItem, len(menuItems))
	for i := range menuItems {
		byID[menuItems[i].ID] = &menuItems[i]
	}

	order := &models.Order{
		UserID: req.UserID,
		Status: models.OrderStatusOpen,
		Items:  make([]models.OrderItem, len(req.Items)),
	}

	for i, item := range req.Items {
		menuItem, ok := byID[item.MenuItemID]
		if !ok {
			return wrapper.ResponseFailed(http.StatusBadRequest, "unknown menu item", dto.OrderItemRequest{MenuItemID: item.MenuItemID})
		}
		if !menuItem.IsAvailable {
			return wrapper.ResponseFailed(http.StatusBadRequest, "menu item is not available", dto.OrderItemRequest{MenuItemID: item.MenuItemID})
		}

		order.Items[i] = models.OrderItem{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
			Price:      menuItem.Price,
		}
	}

	if err := uc.Repo.Create(ctx, order); err != nil {
		uc.Logger.WithError(err).Error("failed to create order")
		return wrapper.ResponseFailed(http.StatusInternalServerError, "failed to create order", nil)
	}

	logger.AddToContext(ctx,
		logger.Int64(logger.FieldOrderID, order.ID),
		logger.Int(logger.FieldItemCount, len(order.Items)),
	)

	// Re-read with menu items preloaded for the response names
	created, err := uc.Repo.GetByID(ctx, order.ID)
	if err != nil {
		uc.Logger.WithError(err).Error("failed to reload created order")
		return wrapper.ResponseFailed(http.StatusInternalServerError, "failed to create order", nil)
	}

	uc.publishEvent(ctx, dto.EventOrderCreated, created)

	return wrapper.ResponseSuccess(http.StatusCreated, toOrderResponse(created))
}

func (uc *UseCase) UpdateOrder(ctx context.Context, id int64, req *dto.UpdateOrderRequest) wrapper.JSONResult {
	if req.Status == nil {
		return wrapper.ResponseFailed(http.StatusBadRequest, "no fields to update", nil)
	}

	newStatus := models.OrderStatus(*req.Status)
	if !newStatus.IsValid() {
		return wrapper.ResponseFailed(http.StatusBadRequest, "invalid status", nil)
	}

	order, err := uc.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return wrapper.ResponseFailed(http.StatusNotFound, "order not found", nil)
		}
		uc.Logger.WithError(err).Error("failed to get order for update")
		return wrapper.ResponseFailed(http.StatusInternalServerError, "failed to update order", nil)
	}

	if order.Status == newStatus {
		return wrapper.ResponseSuccess(http.StatusOK, toOrderResponse(order))
	}

	// Terminal statuses close the order, reopening clears the close time
	var closedAt *time.Time
	if newStatus.IsTerminal() {
		now := time.Now().UTC()
		closedAt = &now
	}

	updated, err := uc.Repo.UpdateStatus(ctx, id, newStatus, closedAt)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return wrapper.ResponseFailed(http.StatusNotFound, "order not found", nil)
		}
		uc.Logger.WithError(err).Error("failed to update order status")
		return wrapper.ResponseFailed(http.StatusInternalServerError, "failed to update order", nil)
	}

	logger.AddToContext(ctx,
		logger.Int64(logger.FieldOrderID, updated.ID),
		logger.String(logger.FieldOrderStatus, string(updated.Status)),
	)

	uc.publishEvent(ctx, dto.EventOrderStatusChanged, updated)

	return wrapper.ResponseSuccess(http.StatusOK, toOrderResponse(updated))
}

func (uc *UseCase) DeleteOrder(ctx context.Context, id int64) wrapper.JSONResult {
	if err := uc.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return wrapper.ResponseFailed(http.StatusNotFound, "order not found", nil)
		}
		uc.Logger.WithError(err).Error("failed to delete order")
		return wrapper.ResponseFailed(http.StatusInternalServerError, "failed to delete order", nil)
	}

	logger.AddToContext(ctx, logger.Int64(logger.FieldOrderID, id))

	return wrapper.ResponseSuccess(http.StatusNoContent, nil)
}

func (uc *UseCase) Summary(ctx context.Context, f repository.SummaryFilter) wrapper.JSONResult {
	totals, err := uc.Repo.Summarize(ctx, f)
	if err != nil {
		uc.Logger.WithError(err).Error("failed to summarize orders")
		return wrapper.ResponseFailed(http.StatusInternalServerError, "failed to summarize orders", nil)
	}

	if f.GroupBy != "" {
		resp := dto.SummaryResponse{
			GroupBy: f.GroupBy,
			Results: make([]dto.SummaryGroup, len(totals)),
		}
		for i, t := range totals {
			resp.Results[i] = dto.SummaryGroup{
				Group:        t.Group,
				CountOrders:  t.CountOrders,
				TotalRevenue: t.TotalRevenue,
				AverageCheck: averageCheck(t.TotalRevenue, t.CountOrders),
			}
		}
		return wrapper.ResponseSuccess(http.StatusOK, resp)
	}

	resp := dto.SummaryResponse{
		Status:   "all",
		UserID:   f.UserID,
		DateFrom: f.DateFrom,
		DateTo:   f.DateTo,
	}
	if f.Status != nil {
		resp.Status = string(*f.Status)
	}
	if len(totals) > 0 {
		resp.CountOrders = totals[0].CountOrders
		resp.TotalRevenue = totals[0].TotalRevenue
		resp.AverageCheck = averageCheck(totals[0].TotalRevenue, totals[0].CountOrders)
	}

	return wrapper.ResponseSuccess(http.StatusOK, resp)
}

// publishEvent fires an order event. Publish failures are logged and
// never fail the request.
func (uc *UseCase) publishEvent(ctx context.Context, eventType string, order *models.Order) {
	event := dto.OrderEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		OrderID:    order.ID,
		UserID:     order.UserID,
		Status:     string(order.Status),
		OccurredAt: time.Now().UTC(),
	}

	if err := uc.Repo.PublishOrderEvent(event, uc.EventsChannel); err != nil {
		uc.Logger.WithError(err).Error("failed to publish order event",
			logger.String(logger.FieldEventID, event.EventID))
		return
	}

	logger.AddToContext(ctx, logger.String(logger.FieldEventID, event.EventID))
}

func averageCheck(revenue decimal.Decimal, count int64) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return revenue.DivRound(decimal.NewFromInt(count), 2)
}

func toOrderResponse(order *models.Order) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:        order.ID,
		UserID:    order.UserID,
		Status:    string(order.Status),
		CreatedAt: order.CreatedAt,
		ClosedAt:  order.ClosedAt,
		Items:     make([]dto.OrderItemResponse, len(order.Items)),
	}

	for i, item := range order.Items {
		ir := dto.OrderItemResponse{
			ID:         item.ID,
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
			Price:      item.Price,
		}
		if item.MenuItem != nil {
			ir.MenuItemName = item.MenuItem.Name
		}
		resp.Items[i] = ir
	}

	return resp
}
