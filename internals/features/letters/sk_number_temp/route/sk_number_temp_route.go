package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/z-anah/nomor-surat/internals/features/letters/sk_number_temp/controller"
	"github.com/z-anah/nomor-surat/internals/features/letters/sk_number_temp/repository"
)

func SkNumberTempRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSkNumberTempController(repository.NewSkNumberTempRepository(db))
	api.Get("/sk-number-temp", ctrl.GetSkNumberTemps)
}
