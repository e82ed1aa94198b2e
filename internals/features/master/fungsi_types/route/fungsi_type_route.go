package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/z-anah/nomor-surat/internals/features/master/fungsi_types/controller"
	"github.com/z-anah/nomor-surat/internals/features/master/fungsi_types/repository"
)

func FungsiTypeRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewFungsiTypeController(repository.NewFungsiTypeRepository(db))

	g := api.Group("/fungsi-types")
	g.Get("/", ctrl.GetAllFungsiTypes)      // 📄 semua fungsi
	g.Post("/", ctrl.CreateFungsiType)      // ➕ tambah fungsi
	g.Delete("/:id", ctrl.DeleteFungsiType) // ❌ hapus fungsi
}
