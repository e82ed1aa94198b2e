package dto

import (
	"strings"
	"time"

	"github.com/z-anah/nomor-surat/internals/features/users/user_profiles/model"
)

// UserProfileResponse: profil + nama tipe dan status (LEFT JOIN, bisa null).
type UserProfileResponse struct {
	ID             string    `gorm:"column:id" json:"id"`
	FullName       string    `gorm:"column:full_name" json:"full_name"`
	Username       string    `gorm:"column:username" json:"username"`
	Email          *string   `gorm:"column:email" json:"email"`
	UserTypeID     *int64    `gorm:"column:user_type_id" json:"user_type_id"`
	UserStatusID   *int64    `gorm:"column:user_status_id" json:"user_status_id"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
	UserTypeName   *string   `gorm:"column:user_type_name" json:"user_type_name"`
	UserStatusName *string   `gorm:"column:user_status_name" json:"user_status_name"`
}

type CreateUserProfileRequest struct {
	ID           string `json:"id" validate:"required,uuid"`
	FullName     string `json:"full_name" validate:"required"`
	Username     string  `json:"username" validate:"required"`
	Email        *string `json:"email" validate:"omitempty,email"`
	UserTypeID   *int64  `json:"user_type_id"`
	UserStatusID *int64  `json:"user_status_id"`
}

func (r *CreateUserProfileRequest) Normalize() {
	r.ID = strings.TrimSpace(r.ID)
	r.FullName = strings.TrimSpace(r.FullName)
	r.Username = strings.TrimSpace(r.Username)
	if r.Email != nil {
		e := strings.ToLower(strings.TrimSpace(*r.Email))
		if e == "" {
			r.Email = nil
		} else {
			r.Email = &e
		}
	}
}

func (r CreateUserProfileRequest) ToModel() model.UserProfileModel {
	return model.UserProfileModel{
		ID:           r.ID,
		FullName:     r.FullName,
		Username:     r.Username,
		Email:        r.Email,
		UserTypeID:   r.UserTypeID,
		UserStatusID: r.UserStatusID,
	}
}

// UpdateUserProfileRequest: field nil = tidak diubah.
// Nama tipe/status, kalau ada, menang atas id-nya.
// user_type_id / user_status_id yang dikirim null mengosongkan kolomnya.
type UpdateUserProfileRequest struct {
	FullName       *string `json:"full_name"`
	Username       *string `json:"username"`
	UserTypeID     *int64  `json:"user_type_id"`
	UserStatusID   *int64  `json:"user_status_id"`
	UserTypeName   *string `json:"user_type_name"`
	UserStatusName *string `json:"user_status_name"`

	ClearUserType   bool `json:"-"`
	ClearUserStatus bool `json:"-"`
}

// MarkNulls mengisi flag Clear* dari key yang dikirim eksplisit null.
func (r *UpdateUserProfileRequest) MarkNulls(nulls map[string]bool) {
	r.ClearUserType = nulls["user_type_id"]
	r.ClearUserStatus = nulls["user_status_id"]
}

type InviteUserRequest struct {
	Email        string `json:"email" validate:"required,email"`
	FullName     string `json:"full_name" validate:"required"`
	Username     string `json:"username" validate:"required"`
	UserTypeID   *int64 `json:"user_type_id"`
	UserStatusID *int64 `json:"user_status_id"`
}

func (r *InviteUserRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.FullName = strings.TrimSpace(r.FullName)
	r.Username = strings.TrimSpace(r.Username)
}

type InviteUserResponse struct {
	Success bool                   `json:"success"`
	User    model.UserProfileModel `json:"user"`
}
