package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/z-anah/nomor-surat/internals/features/users/user_profiles/controller"
	"github.com/z-anah/nomor-surat/internals/features/users/user_profiles/repository"
	"github.com/z-anah/nomor-surat/internals/features/users/user_profiles/service"
	statusRepo "github.com/z-anah/nomor-surat/internals/features/users/user_statuses/repository"
	typeRepo "github.com/z-anah/nomor-surat/internals/features/users/user_types/repository"
)

func UserProfileRoutes(api fiber.Router, db *gorm.DB, auth service.Inviter, siteURL string, log *zap.Logger) {
	profiles := repository.NewUserProfileRepository(db)
	svc := &service.UserProfileService{
		Profiles:     profiles,
		UserTypes:    typeRepo.NewUserTypeRepository(db),
		UserStatuses: statusRepo.NewUserStatusRepository(db),
		Auth:         auth,
		SiteURL:      siteURL,
		Log:          log.Named("user_profiles"),
	}
	ctrl := controller.NewUserProfileController(profiles, svc)

	g := api.Group("/user-profiles")
	g.Get("/", ctrl.GetAllUserProfiles)
	g.Post("/", ctrl.CreateUserProfile)
	g.Post("/invite", ctrl.InviteUser) // ✉️ undang via Supabase Auth
	g.Get("/:id", ctrl.GetUserProfile)
	g.Patch("/:id", ctrl.UpdateUserProfile)
}
