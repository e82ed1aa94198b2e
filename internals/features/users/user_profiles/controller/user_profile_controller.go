package controller

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/z-anah/nomor-surat/internals/features/users/user_profiles/dto"
	"github.com/z-anah/nomor-surat/internals/features/users/user_profiles/model"
	helper "github.com/z-anah/nomor-surat/internals/helpers"
)

type ProfileReader interface {
	List(ctx context.Context) ([]dto.UserProfileResponse, error)
	FindByID(ctx context.Context, id string) (*dto.UserProfileResponse, error)
}

type ProfileService interface {
	Create(ctx context.Context, req dto.CreateUserProfileRequest) (*model.UserProfileModel, error)
	Update(ctx context.Context, id string, req dto.UpdateUserProfileRequest) (*model.UserProfileModel, error)
	Invite(ctx context.Context, req dto.InviteUserRequest) (*dto.InviteUserResponse, error)
}

type UserProfileController struct {
	Reader  ProfileReader
	Service ProfileService
}

func NewUserProfileController(reader ProfileReader, svc ProfileService) *UserProfileController {
	return &UserProfileController{Reader: reader, Service: svc}
}

func profileID(c *fiber.Ctx) (string, error) {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return "", fiber.NewError(fiber.StatusBadRequest, "id is required")
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "id must be a valid UUID")
	}
	return id, nil
}

// GET /api/user-profiles
func (ctrl *UserProfileController) GetAllUserProfiles(c *fiber.Ctx) error {
	rows, err := ctrl.Reader.List(c.UserContext())
	if err != nil {
		return helper.FromError(err)
	}
	return c.JSON(rows)
}

// GET /api/user-profiles/:id
func (ctrl *UserProfileController) GetUserProfile(c *fiber.Ctx) error {
	id, err := profileID(c)
	if err != nil {
		return err
	}

	row, err := ctrl.Reader.FindByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User profile not found")
		}
		return helper.FromError(err)
	}
	return c.JSON(row)
}

// POST /api/user-profiles
func (ctrl *UserProfileController) CreateUserProfile(c *fiber.Ctx) error {
	var body dto.CreateUserProfileRequest
	if err := helper.BindAndValidate(c, &body); err != nil {
		return err
	}

	row, err := ctrl.Service.Create(c.UserContext(), body)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(row)
}

// PATCH /api/user-profiles/:id
func (ctrl *UserProfileController) UpdateUserProfile(c *fiber.Ctx) error {
	id, err := profileID(c)
	if err != nil {
		return err
	}

	var body dto.UpdateUserProfileRequest
	if err := helper.ParseBody(c, &body); err != nil {
		return err
	}
	nulls, err := helper.NullKeys(c)
	if err != nil {
		return err
	}
	body.MarkNulls(nulls)

	row, err := ctrl.Service.Update(c.UserContext(), id, body)
	if err != nil {
		return err
	}
	return c.JSON(row)
}

// POST /api/user-profiles/invite
func (ctrl *UserProfileController) InviteUser(c *fiber.Ctx) error {
	var body dto.InviteUserRequest
	if err := helper.BindAndValidate(c, &body); err != nil {
		return err
	}

	res, err := ctrl.Service.Invite(c.UserContext(), body)
	if err != nil {
		return err
	}
	return c.JSON(res)
}
