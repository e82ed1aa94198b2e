package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/z-anah/nomor-surat/internals/features/letters/sk_number_temp/dto"
	helper "github.com/z-anah/nomor-surat/internals/helpers"
)

type SkNumberTempLister interface {
	List(ctx context.Context, skTypeID *int64) ([]dto.SkNumberTempResponse, error)
}

type SkNumberTempController struct {
	Repo SkNumberTempLister
}

func NewSkNumberTempController(repo SkNumberTempLister) *SkNumberTempController {
	return &SkNumberTempController{Repo: repo}
}

// GET /api/sk-number-temp?sk_type_id=
func (ctrl *SkNumberTempController) GetSkNumberTemps(c *fiber.Ctx) error {
	skTypeID, err := helper.QueryInt64(c, "sk_type_id")
	if err != nil {
		return err
	}

	rows, err := ctrl.Repo.List(c.UserContext(), skTypeID)
	if err != nil {
		return helper.FromError(err)
	}
	return c.JSON(rows)
}
