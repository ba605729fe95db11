package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/avelichko/mini-erp-cafe/internal/server/users/dto"
	"github.com/avelichko/mini-erp-cafe/internal/server/users/repository"
	"github.com/avelichko/mini-erp-cafe/internal/server/users/usecase"
	"github.com/avelichko/mini-erp-cafe/pkg/deps"
	"github.com/avelichko/mini-erp-cafe/pkg/logger"
	"github.com/avelichko/mini-erp-cafe/pkg/validator"
	"github.com/avelichko/mini-erp-cafe/pkg/wrapper"
)

type Handler struct {
	Logger  *logger.CanonicalLogger
	UseCase *usecase.UseCase
}

func NewHandler(d deps.App) *Handler {
	repo := repository.NewRepository(d.Database)

	uc := usecase.NewUseCase(usecase.UseCase{
		Repo:   repo,
		Logger: d.Logger,
	})

	h := &Handler{
		Logger:  d.Logger,
		UseCase: uc,
	}

	d.Fiber.Get("/users", h.listUsers)
	d.Fiber.Post("/users", d.Middleware.BasicAuthAdmin(), h.createUser)

	return h
}

// listUsers godoc
// @Summary      List users
// @Description  List all registered users ordered by id
// @Tags         users
// @Produce      json
// @Success      200 {object} dto.ListUsersResponse "List of users"
// @Failure      500 {object} wrapper.JSONResult "Internal server error"
// @Router       /users [get]
func (h *Handler) listUsers(c *fiber.Ctx) error {
	logger.AddToContext(c.UserContext(), logger.String(logger.FieldOperation, "list_users"))

	res := h.UseCase.ListUsers(c.UserContext())
	return wrapper.Send(c, res)
}

// createUser godoc
// @Summary      Create user
// @Description  Register a new user account (admin only)
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateUserRequest true "User details"
// @Success      201 {object} dto.UserResponse "Created user"
// @Failure      400 {object} wrapper.JSONResult "Invalid request body or validation error"
// @Failure      409 {object} wrapper.JSONResult "Username already taken"
// @Failure      500 {object} wrapper.JSONResult "Internal server error"
// @Router       /users [post]
// @Security     BasicAuth
func (h *Handler) createUser(c *fiber.Ctx) error {
	logger.AddToContext(c.UserContext(), logger.String(logger.FieldOperation, "create_user"))

	req := new(dto.CreateUserRequest)
	if err := c.BodyParser(req); err != nil {
		logger.AddToContext(c.UserContext(), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.ValidateStruct(req); err != nil {
		logger.AddToContext(c.UserContext(), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	res := h.UseCase.CreateUser(c.UserContext(), req)
	return wrapper.Send(c, res)
}
