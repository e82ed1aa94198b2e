package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/z-anah/nomor-surat/internals/features/master/sk_types/dto"
	"github.com/z-anah/nomor-surat/internals/features/master/sk_types/model"
	helper "github.com/z-anah/nomor-surat/internals/helpers"
)

type SkTypeStore interface {
	List(ctx context.Context) ([]model.SkTypeModel, error)
	Create(ctx context.Context, m *model.SkTypeModel) error
}

type SkTypeController struct {
	Store SkTypeStore
}

func NewSkTypeController(store SkTypeStore) *SkTypeController {
	return &SkTypeController{Store: store}
}

func (ctrl *SkTypeController) GetAllSkTypes(c *fiber.Ctx) error {
	rows, err := ctrl.Store.List(c.UserContext())
	if err != nil {
		return helper.FromError(err)
	}
	return c.JSON(rows)
}

func (ctrl *SkTypeController) CreateSkType(c *fiber.Ctx) error {
	var body dto.CreateSkTypeRequest
	if err := helper.BindAndValidate(c, &body); err != nil {
		return err
	}

	row := body.ToModel()
	if err := ctrl.Store.Create(c.UserContext(), &row); err != nil {
		return helper.FromError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(row)
}
