package model

import "time"

// UserProfileModel: profil aplikasi, id = id user di Supabase Auth.
type UserProfileModel struct {
	ID           string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	FullName     string    `gorm:"column:full_name;type:text;not null" json:"full_name"`
	Username     string    `gorm:"column:username;type:text;not null;uniqueIndex" json:"username"`
	Email        *string   `gorm:"column:email;type:text" json:"email"`
	UserTypeID   *int64    `gorm:"column:user_type_id" json:"user_type_id"`
	UserStatusID *int64    `gorm:"column:user_status_id" json:"user_status_id"`
	CreatedAt    time.Time `gorm:"column:created_at;default:now();autoCreateTime:false" json:"created_at"`
}

func (UserProfileModel) TableName() string {
	return "ns_user_profile"
}
