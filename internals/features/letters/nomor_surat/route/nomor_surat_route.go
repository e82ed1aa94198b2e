package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/z-anah/nomor-surat/internals/features/letters/nomor_surat/controller"
	"github.com/z-anah/nomor-surat/internals/features/letters/nomor_surat/repository"
	"github.com/z-anah/nomor-surat/internals/features/letters/nomor_surat/service"
	tempRepo "github.com/z-anah/nomor-surat/internals/features/letters/sk_number_temp/repository"
	fungsiRepo "github.com/z-anah/nomor-surat/internals/features/master/fungsi_types/repository"
	skRepo "github.com/z-anah/nomor-surat/internals/features/master/sk_types/repository"
)

// NomorSuratRoutes: issueGuard dipasang khusus di /ns-request (mis. rate limiter).
func NomorSuratRoutes(api fiber.Router, db *gorm.DB, auth service.PasswordVerifier, log *zap.Logger, issueGuard ...fiber.Handler) {
	letters := repository.NewNomorSuratRepository(db)
	issuer := &service.IssueService{
		Auth:        auth,
		Counter:     tempRepo.NewSkNumberTempRepository(db),
		FungsiTypes: fungsiRepo.NewFungsiTypeRepository(db),
		SkTypes:     skRepo.NewSkTypeRepository(db),
		Letters:     letters,
		Log:         log.Named("nomor_surat"),
	}
	ctrl := controller.NewNomorSuratController(letters, issuer)

	api.Get("/nomor-surat", ctrl.GetAllNomorSurat)
	api.Post("/nomor-surat/:id/file-url", ctrl.SetFileURL)

	handlers := append(append([]fiber.Handler{}, issueGuard...), ctrl.RequestNomorSurat)
	api.Post("/ns-request", handlers...)
}
