package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/z-anah/nomor-surat/internals/features/master/fungsi_types/model"
)

type FungsiTypeRepository struct {
	db *gorm.DB
}

func NewFungsiTypeRepository(db *gorm.DB) *FungsiTypeRepository {
	return &FungsiTypeRepository{db: db}
}

func (r *FungsiTypeRepository) List(ctx context.Context) ([]model.FungsiTypeModel, error) {
	rows := make([]model.FungsiTypeModel, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *FungsiTypeRepository) FindByID(ctx context.Context, id int64) (*model.FungsiTypeModel, error) {
	var m model.FungsiTypeModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *FungsiTypeRepository) Create(ctx context.Context, m *model.FungsiTypeModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// Delete → gorm.ErrRecordNotFound kalau id tidak ada.
func (r *FungsiTypeRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.FungsiTypeModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
