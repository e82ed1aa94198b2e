package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/z-anah/nomor-surat/internals/features/users/user_types/repository"
	helper "github.com/z-anah/nomor-surat/internals/helpers"
)

type UserTypeController struct {
	Repo *repository.UserTypeRepository
}

func NewUserTypeController(repo *repository.UserTypeRepository) *UserTypeController {
	return &UserTypeController{Repo: repo}
}

// GET /api/user-types
func (ctrl *UserTypeController) GetAllUserTypes(c *fiber.Ctx) error {
	rows, err := ctrl.Repo.List(c.UserContext())
	if err != nil {
		return helper.FromError(err)
	}
	return c.JSON(rows)
}
