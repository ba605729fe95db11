package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/avelichko/mini-erp-cafe/internal/config"
	"github.com/avelichko/mini-erp-cafe/internal/models"
	menurepo "github.com/avelichko/mini-erp-cafe/internal/server/menu/repository"
	"github.com/avelichko/mini-erp-cafe/internal/server/orders/dto"
	"github.com/avelichko/mini-erp-cafe/internal/server/orders/repository"
	"github.com/avelichko/mini-erp-cafe/internal/server/orders/usecase"
	userrepo "github.com/avelichko/mini-erp-cafe/internal/server/users/repository"
	"github.com/avelichko/mini-erp-cafe/pkg/deps"
	"github.com/avelichko/mini-erp-cafe/pkg/logger"
	"github.com/avelichko/mini-erp-cafe/pkg/validator"
	"github.com/avelichko/mini-erp-cafe/pkg/wrapper"
)

type Handler struct {
	Logger  *logger.CanonicalLogger
	UseCase *usecase.UseCase
}

func NewHandler(d deps.App, cfg *config.ServerConfig) *Handler {
	repo := repository.NewRepository(d.Database, d.Pub)

	uc := usecase.NewUseCase(usecase.UseCase{
		Repo:          repo,
		MenuRepo:      menurepo.NewRepository(d.Database),
		UserRepo:      userrepo.NewRepository(d.Database),
		EventsChannel: cfg.OrderEventsChannel,
		Logger:        d.Logger,
	})

	h := &Handler{
		Logger:  d.Logger,
		UseCase: uc,
	}

	// /orders/summary must be registered before /orders/:id so the
	// literal segment is not captured as an order id
	d.Fiber.Get("/orders/summary", h.summary)
	d.Fiber.Get("/orders", h.listOrders)
	d.Fiber.Get("/orders/:id", h.getOrder)

	// Order mutations require staff credentials, deletion is admin only
	d.Fiber.Post("/orders", d.Middleware.BasicAuthStaff(), h.createOrder)
	d.Fiber.Patch("/orders/:id", d.Middleware.BasicAuthStaff(), h.updateOrder)
	d.Fiber.Delete("/orders/:id", d.Middleware.BasicAuthAdmin(), h.deleteOrder)

	return h
}

// listOrders godoc
// @Summary      List orders
// @Description  List orders newest first, with optional status and date range filters and pagination
// @Tags         orders
// @Produce      json
// @Param        status query string false "Filter by status" Enums(open, in_progress, done, cancelled)
// @Param        date_from query string false "Start of creation date range (RFC 3339)"
// @Param        date_to query string false "End of creation date range (RFC 3339)"
// @Param        limit query int false "Maximum number of orders to return"
// @Param        offset query int false "Pagination offset"
// @Success      200 {object} dto.ListOrdersResponse "List of orders"
// @Failure      400 {object} wrapper.JSONResult "Invalid filter value"
// @Failure      500 {object} wrapper.JSONResult "Internal server error"
// @Router       /orders [get]
func (h *Handler) listOrders(c *fiber.Ctx) error {
	logger.AddToContext(c.UserContext(), logger.String(logger.FieldOperation, "list_orders"))

	var f repository.ListFilter

	if s := c.Query("status"); s != "" {
		status := models.OrderStatus(s)
		if !status.IsValid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid status filter"})
		}
		f.Status = &status
	}

	var err error
	if f.DateFrom, err = parseTimeQuery(c, "date_from"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date_from"})
	}
	if f.DateTo, err = parseTimeQuery(c, "date_to"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date_to"})
	}

	f.Limit = c.QueryInt("limit", 0)
	f.Offset = c.QueryInt("offset", 0)

	res := h.UseCase.ListOrders(c.UserContext(), f)
	return wrapper.Send(c, res)
}

// getOrder godoc
// @Summary      Get order
// @Description  Get one order with its positions and menu item names
// @Tags         orders
// @Produce      json
// @Param        id path int true "Order ID"
// @Success      200 {object} dto.OrderResponse "Order detail"
// @Failure      404 {object} wrapper.JSONResult "Order not found"
// @Failure      500 {object} wrapper.JSONResult "Internal server error"
// @Router       /orders/{id} [get]
func (h *Handler) getOrder(c *fiber.Ctx) error {
	logger.AddToContext(c.UserContext(), logger.String(logger.FieldOperation, "get_order"))

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid order id"})
	}

	res := h.UseCase.GetOrder(c.UserContext(), id)
	return wrapper.Send(c, res)
}

// createOrder godoc
// @Summary      Create order
// @Description  Open a new order for a user. Item prices are snapshotted from the current menu.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateOrderRequest true "Order details"
// @Success      201 {object} dto.OrderResponse "Created order"
// @Failure      400 {object} wrapper.JSONResult "Invalid request body, unknown user or unavailable menu item"
// @Failure      500 {object} wrapper.JSONResult "Internal server error"
// @Router       /orders [post]
// @Security     BasicAuth
func (h *Handler) createOrder(c *fiber.Ctx) error {
	logger.AddToContext(c.UserContext(), logger.String(logger.FieldOperation, "create_order"))

	req := new(dto.CreateOrderRequest)
	if err := c.BodyParser(req); err != nil {
		logger.AddToContext(c.UserContext(), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.ValidateStruct(req); err != nil {
		logger.AddToContext(c.UserContext(), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	res := h.UseCase.CreateOrder(c.UserContext(), req)
	return wrapper.Send(c, res)
}

// updateOrder godoc
// @Summary      Update order
// @Description  Partially update an order; status is the only mutable field. Moving to done or cancelled closes the order.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id path int true "Order ID"
// @Param        request body dto.UpdateOrderRequest true "Fields to update"
// @Success      200 {object} dto.OrderResponse "Updated order"
// @Failure      400 {object} wrapper.JSONResult "Invalid request body or status"
// @Failure      404 {object} wrapper.JSONResult "Order not found"
// @Failure      500 {object} wrapper.JSONResult "Internal server error"
// @Router       /orders/{id} [patch]
// @Security     BasicAuth
func (h *Handler) updateOrder(c *fiber.Ctx) error {
	logger.AddToContext(c.UserContext(), logger.String(logger.FieldOperation, "update_order"))

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid order id"})
	}

	req := new(dto.UpdateOrderRequest)
	if err := c.BodyParser(req); err != nil {
		logger.AddToContext(c.UserContext(), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.ValidateStruct(req); err != nil {
		logger.AddToContext(c.UserContext(), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	res := h.UseCase.UpdateOrder(c.UserContext(), id, req)
	return wrapper.Send(c, res)
}

// deleteOrder godoc
// @Summary      Delete order
// @Description  Delete an order and its positions (admin only)
// @Tags         orders
// @Produce      json
// @Param        id path int true "Order ID"
// @Success      204 "Order deleted"
// @Failure      404 {object} wrapper.JSONResult "Order not found"
// @Failure      500 {object} wrapper.JSONResult "Internal server error"
// @Router       /orders/{id} [delete]
// @Security     BasicAuth
func (h *Handler) deleteOrder(c *fiber.Ctx) error {
	logger.AddToContext(c.UserContext(), logger.String(logger.FieldOperation, "delete_order"))

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid order id"})
	}

	res := h.UseCase.DeleteOrder(c.UserContext(), id)
	return wrapper.Send(c, res)
}

// summary godoc
// @Summary      Order summary
// @Description  Aggregate order statistics: order count, total revenue, average check. Optional grouping by status, user or day.
// @Tags         orders
// @Produce      json
// @Param        status query string false "Filter by status" Enums(open, in_progress, done, cancelled)
// @Param        user_id query int false "Filter by user"
// @Param        date_from query string false "Start of creation date range (RFC 3339)"
// @Param        date_to query string false "End of creation date range (RFC 3339)"
// @Param        group_by query string false "Group results" Enums(status, user_id, day)
// @Success      200 {object} dto.SummaryResponse "Summary statistics"
// @Failure      400 {object} wrapper.JSONResult "Invalid filter value"
// @Failure      500 {object} wrapper.JSONResult "Internal server error"
// @Router       /orders/summary [get]
func (h *Handler) summary(c *fiber.Ctx) error {
	logger.AddToContext(c.UserContext(), logger.String(logger.FieldOperation, "orders_summary"))

	var f repository.SummaryFilter

	if s := c.Query("status"); s != "" {
		status := models.OrderStatus(s)
		if !status.IsValid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid status filter"})
		}
		f.Status = &status
	}

	if v := c.Query("user_id"); v != "" {
		userID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid user_id"})
		}
		f.UserID = &userID
	}

	var err error
	if f.DateFrom, err = parseTimeQuery(c, "date_from"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date_from"})
	}
	if f.DateTo, err = parseTimeQuery(c, "date_to"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date_to"})
	}

	if g := c.Query("group_by"); g != "" {
		if g != "status" && g != "user_id" && g != "day" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid group_by"})
		}
		f.GroupBy = g
	}

	res := h.UseCase.Summary(c.UserContext(), f)
	return wrapper.Send(c, res)
}

// parseTimeQuery reads an optional RFC 3339 timestamp query parameter.
func parseTimeQuery(c *fiber.Ctx, name string) (*time.Time, error) {
	v := c.Query(name)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
