package details

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	profileRoute "github.com/z-anah/nomor-surat/internals/features/users/user_profiles/route"
	profileService "github.com/z-anah/nomor-surat/internals/features/users/user_profiles/service"
	statusRoute "github.com/z-anah/nomor-surat/internals/features/users/user_statuses/route"
	typeRoute "github.com/z-anah/nomor-surat/internals/features/users/user_types/route"
)

func UserRoutes(api fiber.Router, db *gorm.DB, auth profileService.Inviter, siteURL string, log *zap.Logger) {
	statusRoute.UserStatusRoutes(api, db)
	typeRoute.UserTypeRoutes(api, db)
	profileRoute.UserProfileRoutes(api, db, auth, siteURL, log)
}
