package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/z-anah/nomor-surat/internals/features/users/user_statuses/model"
)

type UserStatusRepository struct {
	db *gorm.DB
}

func NewUserStatusRepository(db *gorm.DB) *UserStatusRepository {
	return &UserStatusRepository{db: db}
}

// List hanya id + name, urut nama.
func (r *UserStatusRepository) List(ctx context.Context) ([]model.UserStatusModel, error) {
	rows := make([]model.UserStatusModel, 0)
	err := r.db.WithContext(ctx).
		Select("id", "name").
		Order("name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *UserStatusRepository) Create(ctx context.Context, m *model.UserStatusModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// FindIDByName → (nil, nil) kalau nama tidak ada.
func (r *UserStatusRepository) FindIDByName(ctx context.Context, name string) (*int64, error) {
	var m model.UserStatusModel
	err := r.db.WithContext(ctx).Select("id").Where("name = ?", name).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m.ID, nil
}
