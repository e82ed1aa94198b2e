package dto

import (
	"strings"
	"time"

	"github.com/z-anah/nomor-surat/internals/features/letters/nomor_surat/model"
	tempDto "github.com/z-anah/nomor-surat/internals/features/letters/sk_number_temp/dto"
)

// NomorSuratResponse: baris list dengan nama fungsi, jenis SK, dan pembuat.
type NomorSuratResponse struct {
	ID                  int64     `gorm:"column:id" json:"id"`
	UserID              string    `gorm:"column:user_id" json:"user_id"`
	Title               string    `gorm:"column:title" json:"title"`
	File                *string   `gorm:"column:file" json:"file"`
	GeneratedNomorSurat string    `gorm:"column:generated_nomor_surat" json:"generated_nomor_surat"`
	FungsiTypeID        int64     `gorm:"column:fungsi_type_id" json:"fungsi_type_id"`
	SkTypeID            int64     `gorm:"column:sk_type_id" json:"sk_type_id"`
	CreatedAt           time.Time `gorm:"column:created_at" json:"created_at"`
	FungsiName          *string   `gorm:"column:fungsi_name" json:"fungsi_name"`
	SkTypeName          *string   `gorm:"column:sk_type_name" json:"sk_type_name"`
	UserName            *string   `gorm:"column:user_name" json:"user_name"`
}

// IssueNomorSuratRequest = body POST /api/ns-request.
// Password hanya dipakai untuk verifikasi ulang, tidak disimpan.
type IssueNomorSuratRequest struct {
	UserID       string `json:"user_id" validate:"required"`
	Email        string `json:"email" validate:"required"`
	Password     string `json:"password" validate:"required"`
	FungsiTypeID int64  `json:"fungsi_type_id" validate:"required"`
	SkTypeID     int64  `json:"sk_type_id" validate:"required"`
	Month        int    `json:"month" validate:"required,month"`
	Title        string `json:"title" validate:"required"`
}

func (r *IssueNomorSuratRequest) Normalize() {
	r.UserID = strings.TrimSpace(r.UserID)
	r.Email = strings.TrimSpace(r.Email)
	r.Title = strings.TrimSpace(r.Title)
}

type IssueNomorSuratResponse struct {
	NomorSurat   model.NomorSuratModel         `json:"nomor_surat"`
	SkNumberTemp *tempDto.SkNumberTempResponse `json:"sk_number_temp"`
}

type SetFileRequest struct {
	File string `json:"file" validate:"required"`
}

func (r *SetFileRequest) Normalize() {
	r.File = strings.TrimSpace(r.File)
}
