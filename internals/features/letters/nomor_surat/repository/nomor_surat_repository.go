package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/z-anah/nomor-surat/internals/features/letters/nomor_surat/dto"
	"github.com/z-anah/nomor-surat/internals/features/letters/nomor_surat/model"
)

type NomorSuratRepository struct {
	db *gorm.DB
}

func NewNomorSuratRepository(db *gorm.DB) *NomorSuratRepository {
	return &NomorSuratRepository{db: db}
}

// List: terbaru dulu, dengan nama-nama relasi di-flatten.
func (r *NomorSuratRepository) List(ctx context.Context) ([]dto.NomorSuratResponse, error) {
	rows := make([]dto.NomorSuratResponse, 0)
	err := r.db.WithContext(ctx).
		Table("ns_nomor_surat AS ns").
		Select(`ns.id, ns.user_id, ns.title, ns.file, ns.generated_nomor_surat,
			ns.fungsi_type_id, ns.sk_type_id, ns.created_at,
			ft.fungsi_name, st.name AS sk_type_name, up.full_name AS user_name`).
		Joins("LEFT JOIN ns_fungsi_type ft ON ft.id = ns.fungsi_type_id").
		Joins("LEFT JOIN ns_sk_type st ON st.id = ns.sk_type_id").
		Joins("LEFT JOIN ns_user_profile up ON up.id = ns.user_id").
		Order("ns.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Create mengisi ID dan created_at dari RETURNING.
func (r *NomorSuratRepository) Create(ctx context.Context, m *model.NomorSuratModel) error {
	return r.db.WithContext(ctx).Clauses(clause.Returning{}).Create(m).Error
}

// SetFile hanya menyentuh kolom file.
func (r *NomorSuratRepository) SetFile(ctx context.Context, id int64, file string) error {
	res := r.db.WithContext(ctx).
		Model(&model.NomorSuratModel{}).
		Where("id = ?", id).
		Update("file", file)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
