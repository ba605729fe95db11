package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/avelichko/mini-erp-cafe/internal/config"
	"github.com/avelichko/mini-erp-cafe/internal/server/menu/dto"
	"github.com/avelichko/mini-erp-cafe/internal/server/menu/repository"
	"github.com/avelichko/mini-erp-cafe/internal/server/menu/usecase"
	"github.com/avelichko/mini-erp-cafe/pkg/deps"
	"github.com/avelichko/mini-erp-cafe/pkg/logger"
	"github.com/avelichko/mini-erp-cafe/pkg/poll"
	"github.com/avelichko/mini-erp-cafe/pkg/validator"
	"github.com/avelichko/mini-erp-cafe/pkg/wrapper"
)

type Handler struct {
	Logger  *logger.CanonicalLogger
	UseCase *usecase.UseCase
}

func NewHandler(d deps.App, cfg *config.ServerConfig) *Handler {
	repo := repository.NewRepository(d.Database)

	uc := usecase.NewUseCase(usecase.UseCase{
		Repo:     repo,
		Cache:    d.Cache,
		CacheTTL: cfg.MenuCacheTTL,
		Logger:   d.Logger,
	})

	h := &Handler{
		Logger:  d.Logger,
		UseCase: uc,
	}

	d.Fiber.Get("/menu", h.listMenu)

	// Menu management is admin only
	d.Fiber.Post("/menu", d.Middleware.BasicAuthAdmin(), h.createMenuItem)
	d.Fiber.Patch("/menu/:id", d.Middleware.BasicAuthAdmin(), h.updateMenuItem)

	// Keep the cached menu warm between mutations
	if d.Cache != nil && d.Poller != nil {
		d.Poller.RegisterJob("menu_cache_refresh", uc.RefreshCache, poll.JobConfig{
			IntervalSeconds: int(cfg.MenuRefreshInterval.Seconds()),
		})
	}

	return h
}

// listMenu godoc
// @Summary      List menu items
// @Description  List menu items, optionally filtered to available ones. Served from the Redis cache when configured.
// @Tags         menu
// @Produce      json
// @Param        available query bool false "Only available items"
// @Success      200 {object} dto.ListMenuResponse "Menu items"
// @Failure      500 {object} wrapper.JSONResult "Internal server error"
// @Router       /menu [get]
func (h *Handler) listMenu(c *fiber.Ctx) error {
	logger.AddToContext(c.UserContext(), logger.String(logger.FieldOperation, "list_menu"))

	onlyAvailable := c.QueryBool("available", false)

	res := h.UseCase.ListMenu(c.UserContext(), onlyAvailable)
	return wrapper.Send(c, res)
}

// createMenuItem godoc
// @Summary      Create menu item
// @Description  Add a new item to the menu (admin only)
// @Tags         menu
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateMenuItemRequest true "Menu item details"
// @Success      201 {object} dto.MenuItemResponse "Created menu item"
// @Failure      400 {object} wrapper.JSONResult "Invalid request body or validation error"
// @Failure      500 {object} wrapper.JSONResult "Internal server error"
// @Router       /menu [post]
// @Security     BasicAuth
func (h *Handler) createMenuItem(c *fiber.Ctx) error {
	logger.AddToContext(c.UserContext(), logger.String(logger.FieldOperation, "create_menu_item"))

	req := new(dto.CreateMenuItemRequest)
	if err := c.BodyParser(req); err != nil {
		logger.AddToContext(c.UserContext(), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.ValidateStruct(req); err != nil {
		logger.AddToContext(c.UserContext(), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	res := h.UseCase.CreateMenuItem(c.UserContext(), req)
	return wrapper.Send(c, res)
}

// updateMenuItem godoc
// @Summary      Update menu item
// @Description  Partially update a menu item: name, category, price, availability (admin only). Price changes never rewrite past orders.
// @Tags         menu
// @Accept       json
// @Produce      json
// @Param        id path int true "Menu item ID"
// @Param        request body dto.UpdateMenuItemRequest true "Fields to update"
// @Success      200 {object} dto.MenuItemResponse "Updated menu item"
// @Failure      400 {object} wrapper.JSONResult "Invalid request body or validation error"
// @Failure      404 {object} wrapper.JSONResult "Menu item not found"
// @Failure      500 {object} wrapper.JSONResult "Internal server error"
// @Router       /menu/{id} [patch]
// @Security     BasicAuth
func (h *Handler) updateMenuItem(c *fiber.Ctx) error {
	logger.AddToContext(c.UserContext(), logger.String(logger.FieldOperation, "update_menu_item"))

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid menu item id"})
	}

	req := new(dto.UpdateMenuItemRequest)
	if err := c.BodyParser(req); err != nil {
		logger.AddToContext(c.UserContext(), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.ValidateStruct(req); err != nil {
		logger.AddToContext(c.UserContext(), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	res := h.UseCase.UpdateMenuItem(c.UserContext(), id, req)
	return wrapper.Send(c, res)
}
