package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"go.uber.org/zap"

	"github.com/z-anah/nomor-surat/internals/configs"
	"github.com/z-anah/nomor-surat/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global, urutan penting:
// recover paling luar, request id sebelum access log.
func SetupMiddlewares(app *fiber.App, cfg configs.AppConfig, log *zap.Logger) {
	app.Use(RecoveryMiddleware(log))
	app.Use(logger.RequestID())
	app.Use(logger.LoggerMiddleware(log.Named("http")))
	app.Use(CorsMiddleware(cfg.CorsAllowOrigins))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(logger.Timeout(cfg.RequestTimeout))
}
