package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/z-anah/nomor-surat/internals/features/letters/nomor_surat/dto"
	"github.com/z-anah/nomor-surat/internals/features/letters/nomor_surat/model"
	tempDto "github.com/z-anah/nomor-surat/internals/features/letters/sk_number_temp/dto"
	fungsiModel "github.com/z-anah/nomor-surat/internals/features/master/fungsi_types/model"
	skModel "github.com/z-anah/nomor-surat/internals/features/master/sk_types/model"
	helper "github.com/z-anah/nomor-surat/internals/helpers"
	"github.com/z-anah/nomor-surat/internals/helpers/dbtime"
	"github.com/z-anah/nomor-surat/internals/helpers/supabase"
)

const msgInvalidPassword = "Invalid password. Please try again."

type PasswordVerifier interface {
	VerifyPassword(ctx context.Context, email, password string) error
}

type Counter interface {
	Increment(ctx context.Context, skTypeID int64) (int64, error)
	FindBySkTypeID(ctx context.Context, skTypeID int64) (*tempDto.SkNumberTempResponse, error)
}

type FungsiTypeFinder interface {
	FindByID(ctx context.Context, id int64) (*fungsiModel.FungsiTypeModel, error)
}

type SkTypeFinder interface {
	FindByID(ctx context.Context, id int64) (*skModel.SkTypeModel, error)
}

type LetterCreator interface {
	Create(ctx context.Context, m *model.NomorSuratModel) error
}

// IssueService menerbitkan nomor surat baru. Urutan langkah penting:
// password diverifikasi sebelum counter disentuh.
type IssueService struct {
	Auth        PasswordVerifier
	Counter     Counter
	FungsiTypes FungsiTypeFinder
	SkTypes     SkTypeFinder
	Letters     LetterCreator
	Log         *zap.Logger

	// Now dipakai untuk tahun di nomor surat. Default dbtime.Now.
	Now func() time.Time
}

func (s *IssueService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return dbtime.Now()
}

func (s *IssueService) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}

func (s *IssueService) Issue(ctx context.Context, req dto.IssueNomorSuratRequest) (*dto.IssueNomorSuratResponse, error) {
	log := s.logger().With(zap.String("user_id", req.UserID), zap.Int64("sk_type_id", req.SkTypeID))

	// bulan dicek lagi di sini supaya service aman dipanggil tanpa controller
	if _, err := ToRoman(req.Month); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, ErrMonthOutOfRange.Error())
	}

	if err := s.Auth.VerifyPassword(ctx, req.Email, req.Password); err != nil {
		if errors.Is(err, supabase.ErrInvalidCredentials) {
			log.Info("password re-check failed")
			return nil, fiber.NewError(fiber.StatusUnauthorized, msgInvalidPassword)
		}
		return nil, helper.FromError(err)
	}

	number, err := s.Counter.Increment(ctx, req.SkTypeID)
	if err != nil {
		return nil, helper.FromError(err)
	}

	fungsi, err := s.FungsiTypes.FindByID(ctx, req.FungsiTypeID)
	if err != nil {
		return nil, lookupError("fungsi type", req.FungsiTypeID, err)
	}
	skType, err := s.SkTypes.FindByID(ctx, req.SkTypeID)
	if err != nil {
		return nil, lookupError("sk type", req.SkTypeID, err)
	}

	generated, err := FormatNomorSurat(number, fungsi.FungsiCode, skType.Name, req.Month, s.now().Year())
	if err != nil {
		return nil, helper.FromError(err)
	}

	letter := model.NomorSuratModel{
		UserID:              req.UserID,
		Title:               req.Title,
		GeneratedNomorSurat: generated,
		FungsiTypeID:        req.FungsiTypeID,
		SkTypeID:            req.SkTypeID,
	}
	if err := s.Letters.Create(ctx, &letter); err != nil {
		// counter sudah naik dan tidak dikembalikan, nomor ini hilang
		log.Error("letter insert failed after counter increment",
			zap.Int64("number", number), zap.String("nomor_surat", generated), zap.Error(err))
		return nil, helper.FromError(err)
	}

	temp, err := s.Counter.FindBySkTypeID(ctx, req.SkTypeID)
	if err != nil {
		return nil, helper.FromError(err)
	}

	log.Info("nomor surat issued", zap.Int64("id", letter.ID), zap.String("nomor_surat", generated))
	return &dto.IssueNomorSuratResponse{NomorSurat: letter, SkNumberTemp: temp}, nil
}

func lookupError(what string, id int64, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("%s %d not found", what, id))
	}
	return helper.FromError(err)
}
