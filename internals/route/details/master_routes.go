package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	fungsiRoute "github.com/z-anah/nomor-surat/internals/features/master/fungsi_types/route"
	skRoute "github.com/z-anah/nomor-surat/internals/features/master/sk_types/route"
)

// MasterRoutes: data referensi (fungsi, jenis SK).
func MasterRoutes(api fiber.Router, db *gorm.DB) {
	fungsiRoute.FungsiTypeRoutes(api, db)
	skRoute.SkTypeRoutes(api, db)
}
