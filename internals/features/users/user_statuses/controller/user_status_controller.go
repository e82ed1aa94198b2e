package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/z-anah/nomor-surat/internals/features/users/user_statuses/dto"
	"github.com/z-anah/nomor-surat/internals/features/users/user_statuses/model"
	helper "github.com/z-anah/nomor-surat/internals/helpers"
)

type UserStatusStore interface {
	List(ctx context.Context) ([]model.UserStatusModel, error)
	Create(ctx context.Context, m *model.UserStatusModel) error
}

type UserStatusController struct {
	Store UserStatusStore
}

func NewUserStatusController(store UserStatusStore) *UserStatusController {
	return &UserStatusController{Store: store}
}

func (ctrl *UserStatusController) GetAllUserStatuses(c *fiber.Ctx) error {
	rows, err := ctrl.Store.List(c.UserContext())
	if err != nil {
		return helper.FromError(err)
	}
	return c.JSON(rows)
}

func (ctrl *UserStatusController) CreateUserStatus(c *fiber.Ctx) error {
	var body dto.CreateUserStatusRequest
	if err := helper.BindAndValidate(c, &body); err != nil {
		return err
	}

	row := model.UserStatusModel{Name: body.Name}
	if err := ctrl.Store.Create(c.UserContext(), &row); err != nil {
		return helper.FromError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(row)
}
