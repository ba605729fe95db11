package usecase

import (
	"context"
	"errors"
	"net/http"

	"github.com/avelichko/mini-erp-cafe/internal/models"
	"github.com/avelichko/mini-erp-cafe/internal/server/users/dto"
	"github.com/avelichko/mini-erp-cafe/internal/server/users/repository"
	"github.com/avelichko/mini-erp-cafe/pkg/logger"
	"github.com/avelichko/mini-erp-cafe/pkg/wrapper"
)

type UseCase struct {
	Repo   repository.Repository
	Logger *logger.CanonicalLogger
}

type UseCaseInterface interface {
	ListUsers(ctx context.Context) wrapper.JSONResult
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) wrapper.JSONResult
}

func NewUseCase(uc UseCase) *UseCase {
	return &uc
}

func (uc *UseCase) ListUsers(ctx context.Context) wrapper.JSONResult {
	users, err := uc.Repo.List(ctx)
	if err != nil {
		uc.Logger.WithError(err).Error("failed to list users")
		return wrapper.ResponseFailed(http.StatusInternalServerError, "failed to list users", nil)
	}

	resp := dto.ListUsersResponse{
		Users: make([]dto.UserResponse, len(users)),
		Total: len(users),
	}
	for i, u := range users {
		resp.Users[i] = toUserResponse(&u)
	}

	return wrapper.ResponseSuccess(http.StatusOK, resp)
}

func (uc *UseCase) CreateUser(ctx context.Context, req *dto.CreateUserRequest) wrapper.JSONResult {
	user := &models.User{Username: req.Username}

	if err := uc.Repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return wrapper.ResponseFailed(http.StatusConflict, "username already taken", nil)
		}
		uc.Logger.WithError(err).Error("failed to create user")
		return wrapper.ResponseFailed(http.StatusInternalServerError, "failed to create user", nil)
	}

	logger.AddToContext(ctx, logger.Int64(logger.FieldUserID, user.ID))

	return wrapper.ResponseSuccess(http.StatusCreated, toUserResponse(user))
}

func toUserResponse(u *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}
