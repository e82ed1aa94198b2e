package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/z-anah/nomor-surat/internals/features/users/user_profiles/dto"
	"github.com/z-anah/nomor-surat/internals/features/users/user_profiles/model"
)

type UserProfileRepository struct {
	db *gorm.DB
}

func NewUserProfileRepository(db *gorm.DB) *UserProfileRepository {
	return &UserProfileRepository{db: db}
}

func (r *UserProfileRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("ns_user_profile AS up").
		Select(`up.id, up.full_name, up.username, up.email, up.user_type_id, up.user_status_id, up.created_at,
			ut.name AS user_type_name, us.name AS user_status_name`).
		Joins("LEFT JOIN ns_user_type ut ON ut.id = up.user_type_id").
		Joins("LEFT JOIN ns_user_status us ON us.id = up.user_status_id")
}

func (r *UserProfileRepository) List(ctx context.Context) ([]dto.UserProfileResponse, error) {
	rows := make([]dto.UserProfileResponse, 0)
	if err := r.joined(ctx).Order("up.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *UserProfileRepository) FindByID(ctx context.Context, id string) (*dto.UserProfileResponse, error) {
	var row dto.UserProfileResponse
	res := r.joined(ctx).Where("up.id = ?", id).Limit(1).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

// Create mengembalikan baris lengkap (created_at dari database).
func (r *UserProfileRepository) Create(ctx context.Context, m *model.UserProfileModel) error {
	return r.db.WithContext(ctx).Clauses(clause.Returning{}).Create(m).Error
}

// Update hanya kolom yang ada di updates. Baris tidak ada → gorm.ErrRecordNotFound.
func (r *UserProfileRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*model.UserProfileModel, error) {
	var m model.UserProfileModel
	res := r.db.WithContext(ctx).
		Model(&m).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &m, nil
}

func (r *UserProfileRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.UserProfileModel{}).
		Where("username = ?", username).
		Count(&n).Error
	return n > 0, err
}
