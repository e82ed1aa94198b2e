package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/z-anah/nomor-surat/internals/features/master/sk_types/model"
)

type SkTypeRepository struct {
	db *gorm.DB
}

func NewSkTypeRepository(db *gorm.DB) *SkTypeRepository {
	return &SkTypeRepository{db: db}
}

func (r *SkTypeRepository) List(ctx context.Context) ([]model.SkTypeModel, error) {
	rows := make([]model.SkTypeModel, 0)
	err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *SkTypeRepository) FindByID(ctx context.Context, id int64) (*model.SkTypeModel, error) {
	var m model.SkTypeModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *SkTypeRepository) Create(ctx context.Context, m *model.SkTypeModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}
