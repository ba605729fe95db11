package middleware

import (
	"net/http"
	"strings"

	authentication "github.com/avelichko/mini-erp-cafe/pkg/auth"
	"github.com/gofiber/fiber/v2"
)

type IAuthMiddleware interface {
	// Basic Auth for staff-level operations
	BasicAuthStaff() fiber.Handler

	// Basic Auth for admin-level operations
	BasicAuthAdmin() fiber.Handler
}

type AuthMiddleware struct {
	Basic authentication.IBasicAuthService
}

type AuthConfig func(*AuthOpts)

type AuthOpts struct {
	*authentication.BasicAuthConfig
}

func SetBasicAuth(basicAuthConfig *authentication.BasicAuthConfig) AuthConfig {
	return func(o *AuthOpts) {
		o.BasicAuthConfig = basicAuthConfig
	}
}

func NewAuthMiddleware(opts ...AuthConfig) *AuthMiddleware {
	var o AuthOpts
	for _, opt := range opts {
		opt(&o)
	}

	basicAuth := authentication.NewBasicAuthService(o.BasicAuthConfig)

	return &AuthMiddleware{
		Basic: basicAuth,
	}
}

func (a *AuthMiddleware) BasicAuthStaff() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		auth := ctx.Get(fiber.HeaderAuthorization)
		if !strings.Contains(auth, "Basic") {
			return responseUnauthorized(ctx, "Basic", "Invalid auth")
		}

		username, password := a.Basic.DecodeFromHeader(auth)
		if !a.Basic.ValidateStaff(username, password) {
			return responseUnauthorized(ctx, "Basic", "Invalid auth")
		}
		return ctx.Next()
	}
}

func (a *AuthMiddleware) BasicAuthAdmin() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		auth := ctx.Get(fiber.HeaderAuthorization)
		if !strings.Contains(auth, "Basic") {
			return responseUnauthorized(ctx, "Basic", "Invalid auth")
		}

		username, password := a.Basic.DecodeFromHeader(auth)
		if !a.Basic.ValidateAdmin(username, password) {
			return responseUnauthorized(ctx, "Basic", "Invalid auth")
		}
		return ctx.Next()
	}
}

func responseUnauthorized(ctx *fiber.Ctx, scheme, message string) error {
	ctx.Set(fiber.HeaderWWWAuthenticate, scheme+` realm="Restricted"`)
	return ctx.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": message})
}
