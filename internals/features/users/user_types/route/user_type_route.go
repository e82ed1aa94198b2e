package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/z-anah/nomor-surat/internals/features/users/user_types/controller"
	"github.com/z-anah/nomor-surat/internals/features/users/user_types/repository"
)

func UserTypeRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserTypeController(repository.NewUserTypeRepository(db))
	api.Get("/user-types", ctrl.GetAllUserTypes)
}
