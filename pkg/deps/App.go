package deps

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/avelichko/mini-erp-cafe/pkg/cache"
	"github.com/avelichko/mini-erp-cafe/pkg/logger"
	"github.com/avelichko/mini-erp-cafe/pkg/middleware"
	"github.com/avelichko/mini-erp-cafe/pkg/poll"
	"github.com/avelichko/mini-erp-cafe/pkg/pubsub"
)

type App struct {
	Fiber      *fiber.App
	Logger     *logger.CanonicalLogger
	Database   *gorm.DB
	Middleware *middleware.AuthMiddleware
	Cache      cache.Cache
	Poller     poll.Poller
	Pub        pubsub.Publisher
}
