package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/z-anah/nomor-surat/internals/features/master/sk_types/controller"
	"github.com/z-anah/nomor-surat/internals/features/master/sk_types/repository"
)

func SkTypeRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSkTypeController(repository.NewSkTypeRepository(db))

	g := api.Group("/sk-types")
	g.Get("/", ctrl.GetAllSkTypes)
	g.Post("/", ctrl.CreateSkType)
}
