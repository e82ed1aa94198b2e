package controller

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/z-anah/nomor-surat/internals/features/letters/nomor_surat/dto"
	helper "github.com/z-anah/nomor-surat/internals/helpers"
)

type LetterStore interface {
	List(ctx context.Context) ([]dto.NomorSuratResponse, error)
	SetFile(ctx context.Context, id int64, file string) error
}

type Issuer interface {
	Issue(ctx context.Context, req dto.IssueNomorSuratRequest) (*dto.IssueNomorSuratResponse, error)
}

type NomorSuratController struct {
	Letters LetterStore
	Issuer  Issuer
}

func NewNomorSuratController(letters LetterStore, issuer Issuer) *NomorSuratController {
	return &NomorSuratController{Letters: letters, Issuer: issuer}
}

// GET /api/nomor-surat
func (ctrl *NomorSuratController) GetAllNomorSurat(c *fiber.Ctx) error {
	rows, err := ctrl.Letters.List(c.UserContext())
	if err != nil {
		return helper.FromError(err)
	}
	return c.JSON(rows)
}

// POST /api/nomor-surat/:id/file-url
func (ctrl *NomorSuratController) SetFileURL(c *fiber.Ctx) error {
	id, err := helper.ParamInt64(c, "id")
	if err != nil {
		return err
	}

	var body dto.SetFileRequest
	if err := helper.BindAndValidate(c, &body); err != nil {
		return err
	}

	if err := ctrl.Letters.SetFile(c.UserContext(), id, body.File); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Nomor surat not found")
		}
		return helper.FromError(err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// POST /api/ns-request
func (ctrl *NomorSuratController) RequestNomorSurat(c *fiber.Ctx) error {
	var body dto.IssueNomorSuratRequest
	if err := helper.BindAndValidate(c, &body); err != nil {
		return err
	}

	res, err := ctrl.Issuer.Issue(c.UserContext(), body)
	if err != nil {
		return err
	}
	return c.JSON(res)
}
