package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/z-anah/nomor-surat/internals/features/users/user_profiles/dto"
	"github.com/z-anah/nomor-surat/internals/features/users/user_profiles/model"
	helper "github.com/z-anah/nomor-surat/internals/helpers"
	"github.com/z-anah/nomor-surat/internals/helpers/supabase"
)

type ProfileStore interface {
	Create(ctx context.Context, m *model.UserProfileModel) error
	Update(ctx context.Context, id string, updates map[string]interface{}) (*model.UserProfileModel, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}

// NameResolver: nama → id, (nil, nil) kalau tidak ada.
type NameResolver interface {
	FindIDByName(ctx context.Context, name string) (*int64, error)
}

type Inviter interface {
	InviteUserByEmail(ctx context.Context, email string, data datatypes.JSONMap, redirectTo string) (*supabase.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

type UserProfileService struct {
	Profiles     ProfileStore
	UserTypes    NameResolver
	UserStatuses NameResolver
	Auth         Inviter
	SiteURL      string
	Log          *zap.Logger
}

func (s *UserProfileService) log() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}

func (s *UserProfileService) Create(ctx context.Context, req dto.CreateUserProfileRequest) (*model.UserProfileModel, error) {
	row := req.ToModel()
	if err := s.Profiles.Create(ctx, &row); err != nil {
		return nil, helper.FromError(err)
	}
	return &row, nil
}

// Update menerapkan hanya field yang dikirim.
func (s *UserProfileService) Update(ctx context.Context, id string, req dto.UpdateUserProfileRequest) (*model.UserProfileModel, error) {
	updates := map[string]interface{}{}
	if req.FullName != nil {
		updates["full_name"] = strings.TrimSpace(*req.FullName)
	}
	if req.Username != nil {
		updates["username"] = strings.TrimSpace(*req.Username)
	}
	if req.UserTypeID != nil {
		updates["user_type_id"] = *req.UserTypeID
	} else if req.ClearUserType {
		updates["user_type_id"] = nil
	}
	if req.UserStatusID != nil {
		updates["user_status_id"] = *req.UserStatusID
	} else if req.ClearUserStatus {
		updates["user_status_id"] = nil
	}

	if name := trimmed(req.UserTypeName); name != "" {
		typeID, err := s.resolve(ctx, s.UserTypes, "user_type_name", name)
		if err != nil {
			return nil, err
		}
		updates["user_type_id"] = typeID
	}
	if name := trimmed(req.UserStatusName); name != "" {
		statusID, err := s.resolve(ctx, s.UserStatuses, "user_status_name", name)
		if err != nil {
			return nil, err
		}
		updates["user_status_id"] = statusID
	}

	if len(updates) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "No fields to update")
	}

	row, err := s.Profiles.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User profile not found")
		}
		return nil, helper.FromError(err)
	}
	return row, nil
}

func (s *UserProfileService) resolve(ctx context.Context, r NameResolver, field, name string) (int64, error) {
	id, err := r.FindIDByName(ctx, name)
	if err != nil {
		return 0, helper.FromError(err)
	}
	if id == nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%s %q not found", field, name))
	}
	return *id, nil
}

// Invite: cek username → undang lewat Supabase Auth → simpan profil.
// Kalau profil gagal disimpan, user auth dihapus lagi.
func (s *UserProfileService) Invite(ctx context.Context, req dto.InviteUserRequest) (*dto.InviteUserResponse, error) {
	log := s.log().With(zap.String("username", req.Username))

	taken, err := s.Profiles.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, helper.FromError(err)
	}
	if taken {
		return nil, fiber.NewError(fiber.StatusConflict, "Username already exists")
	}

	meta := datatypes.JSONMap{
		"full_name": req.FullName,
		"username":  req.Username,
	}
	if req.UserTypeID != nil {
		meta["user_type_id"] = *req.UserTypeID
	}
	if req.UserStatusID != nil {
		meta["user_status_id"] = *req.UserStatusID
	}

	user, err := s.Auth.InviteUserByEmail(ctx, req.Email, meta, s.SiteURL+"/auth/callback")
	if err != nil {
		return nil, helper.FromError(err)
	}

	profile := model.UserProfileModel{
		ID:           user.ID,
		FullName:     req.FullName,
		Username:     req.Username,
		Email:        &req.Email,
		UserTypeID:   req.UserTypeID,
		UserStatusID: req.UserStatusID,
	}
	if err := s.Profiles.Create(ctx, &profile); err != nil {
		// rollback pakai context baru: ctx request bisa jadi sudah habis
		if delErr := s.Auth.DeleteUser(context.WithoutCancel(ctx), user.ID); delErr != nil {
			log.Error("rollback invited auth user failed", zap.String("auth_user_id", user.ID), zap.Error(delErr))
		} else {
			log.Warn("invited auth user removed after profile insert failed", zap.String("auth_user_id", user.ID))
		}
		return nil, helper.FromError(err)
	}

	log.Info("user invited", zap.String("auth_user_id", user.ID))
	return &dto.InviteUserResponse{Success: true, User: profile}, nil
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
