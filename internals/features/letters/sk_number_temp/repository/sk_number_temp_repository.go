package repository

import (
	"context"
	"database/sql"
	"fmt"

	"gorm.io/gorm"

	"github.com/z-anah/nomor-surat/internals/features/letters/sk_number_temp/dto"
)

type SkNumberTempRepository struct {
	db *gorm.DB
}

func NewSkNumberTempRepository(db *gorm.DB) *SkNumberTempRepository {
	return &SkNumberTempRepository{db: db}
}

func (r *SkNumberTempRepository) base(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("ns_sk_number_temp AS t").
		Select("t.id, t.sk_type_id, t.last_number, t.year, st.name AS sk_type_name").
		Joins("LEFT JOIN ns_sk_type st ON st.id = t.sk_type_id")
}

// List semua counter, opsional difilter satu sk_type_id.
func (r *SkNumberTempRepository) List(ctx context.Context, skTypeID *int64) ([]dto.SkNumberTempResponse, error) {
	q := r.base(ctx)
	if skTypeID != nil {
		q = q.Where("t.sk_type_id = ?", *skTypeID)
	}

	rows := make([]dto.SkNumberTempResponse, 0)
	if err := q.Order("t.id ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *SkNumberTempRepository) FindBySkTypeID(ctx context.Context, skTypeID int64) (*dto.SkNumberTempResponse, error) {
	var row dto.SkNumberTempResponse
	res := r.base(ctx).Where("t.sk_type_id = ?", skTypeID).Limit(1).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

// Increment menaikkan counter secara atomik di server dan mengembalikan nomor baru.
// Jangan diganti read-then-write di aplikasi.
func (r *SkNumberTempRepository) Increment(ctx context.Context, skTypeID int64) (int64, error) {
	var next sql.NullInt64
	err := r.db.WithContext(ctx).
		Raw("SELECT increment_ns_sk_number(p_sk_type_id => ?)", skTypeID).
		Scan(&next).Error
	if err != nil {
		return 0, err
	}
	if !next.Valid {
		return 0, fmt.Errorf("increment_ns_sk_number returned no value for sk_type_id %d", skTypeID)
	}
	return next.Int64, nil
}
