package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/z-anah/nomor-surat/internals/features/users/user_statuses/controller"
	"github.com/z-anah/nomor-surat/internals/features/users/user_statuses/repository"
)

func UserStatusRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserStatusController(repository.NewUserStatusRepository(db))

	api.Get("/user-statuses", ctrl.GetAllUserStatuses)
	// create tersedia di bentuk tunggal dan jamak
	api.Post("/user-status", ctrl.CreateUserStatus)
	api.Post("/user-statuses", ctrl.CreateUserStatus)
}
