package details

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	nomorSuratRoute "github.com/z-anah/nomor-surat/internals/features/letters/nomor_surat/route"
	nomorSuratService "github.com/z-anah/nomor-surat/internals/features/letters/nomor_surat/service"
	tempRoute "github.com/z-anah/nomor-surat/internals/features/letters/sk_number_temp/route"
	"github.com/z-anah/nomor-surat/internals/middlewares"
)

func LetterRoutes(api fiber.Router, db *gorm.DB, auth nomorSuratService.PasswordVerifier, log *zap.Logger) {
	tempRoute.SkNumberTempRoutes(api, db)
	nomorSuratRoute.NomorSuratRoutes(api, db, auth, log, middlewares.IssueRateLimiter())
}
