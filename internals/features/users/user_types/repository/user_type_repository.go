package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/z-anah/nomor-surat/internals/features/users/user_types/model"
)

type UserTypeRepository struct {
	db *gorm.DB
}

func NewUserTypeRepository(db *gorm.DB) *UserTypeRepository {
	return &UserTypeRepository{db: db}
}

func (r *UserTypeRepository) List(ctx context.Context) ([]model.UserTypeModel, error) {
	rows := make([]model.UserTypeModel, 0)
	err := r.db.WithContext(ctx).Select("id", "name").Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *UserTypeRepository) FindIDByName(ctx context.Context, name string) (*int64, error) {
	var m model.UserTypeModel
	err := r.db.WithContext(ctx).Select("id").Where("name = ?", name).Take(&m).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, nil
	case err != nil:
		return nil, err
	}
	return &m.ID, nil
}
