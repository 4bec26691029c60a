package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"go.uber.org/zap"

	"cosmo_stats_backend/internals/configs"
	"cosmo_stats_backend/internals/middlewares/logger"
)

// SetupMiddlewares mounts the request logger outermost so recovered panics
// still get their log line and request id.
func SetupMiddlewares(app *fiber.App, cfg configs.Config, log *zap.Logger) {
	app.Use(logger.LoggerMiddleware(log, cfg.RequestTimeout))
	app.Use(RecoveryMiddleware(log))
	app.Use(CorsMiddleware(cfg.CorsOrigins))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
}
