package controller

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/z-anah/nomor-surat/internals/features/master/fungsi_types/dto"
	"github.com/z-anah/nomor-surat/internals/features/master/fungsi_types/model"
	helper "github.com/z-anah/nomor-surat/internals/helpers"
)

type FungsiTypeStore interface {
	List(ctx context.Context) ([]model.FungsiTypeModel, error)
	Create(ctx context.Context, m *model.FungsiTypeModel) error
	Delete(ctx context.Context, id int64) error
}

type FungsiTypeController struct {
	Store FungsiTypeStore
}

func NewFungsiTypeController(store FungsiTypeStore) *FungsiTypeController {
	return &FungsiTypeController{Store: store}
}

// GET /api/fungsi-types
func (ctrl *FungsiTypeController) GetAllFungsiTypes(c *fiber.Ctx) error {
	rows, err := ctrl.Store.List(c.UserContext())
	if err != nil {
		return helper.FromError(err)
	}
	return c.JSON(rows)
}

// POST /api/fungsi-types
func (ctrl *FungsiTypeController) CreateFungsiType(c *fiber.Ctx) error {
	var body dto.CreateFungsiTypeRequest
	if err := helper.BindAndValidate(c, &body); err != nil {
		return err
	}

	row := body.ToModel()
	if err := ctrl.Store.Create(c.UserContext(), &row); err != nil {
		return helper.FromError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(row)
}

// DELETE /api/fungsi-types/:id
func (ctrl *FungsiTypeController) DeleteFungsiType(c *fiber.Ctx) error {
	id, err := helper.ParamInt64(c, "id")
	if err != nil {
		return err
	}

	if err := ctrl.Store.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Fungsi type not found")
		}
		return helper.FromError(err)
	}
	return c.JSON(fiber.Map{"success": true})
}
