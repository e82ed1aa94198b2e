package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/z-anah/nomor-surat/internals/configs"
	"github.com/z-anah/nomor-surat/internals/constants"
	"github.com/z-anah/nomor-surat/internals/helpers/supabase"
	"github.com/z-anah/nomor-surat/internals/middlewares"
	authMiddleware "github.com/z-anah/nomor-surat/internals/middlewares/auth"
	routeDetails "github.com/z-anah/nomor-surat/internals/route/details"
)

type Deps struct {
	DB     *gorm.DB
	Auth   *supabase.Client
	Config *configs.Config
	Log    *zap.Logger
}

// SetupRoutes memasang base routes dan semua /api.
func SetupRoutes(app *fiber.App, d Deps) {
	startTime := time.Now()
	BaseRoutes(app, d.DB, d.Config.App.Env, startTime)

	guards := []fiber.Handler{middlewares.GlobalRateLimiter()}
	if secret := d.Config.Supabase.JWTSecret; secret != "" {
		d.Log.Info("🔐 Supabase JWT required on /api")
		guards = append(guards,
			authMiddleware.SupabaseJWT(secret, d.Log.Named("auth")),
			authMiddleware.OnlyRoles("", constants.APIRoles...),
		)
	}
	api := app.Group("/api", guards...)

	d.Log.Info("Mounting master routes...")
	routeDetails.MasterRoutes(api, d.DB)

	d.Log.Info("Mounting user routes...")
	routeDetails.UserRoutes(api, d.DB, d.Auth, d.Config.App.SiteURL, d.Log)

	d.Log.Info("Mounting letter routes...")
	routeDetails.LetterRoutes(api, d.DB, d.Auth, d.Log)
}
