package model

// UserTypeModel: peran user (admin, staf, ...). Dipakai lewat nama di PATCH profil.
type UserTypeModel struct {
	ID   int64  `gorm:"column:id;primaryKey" json:"id"`
	Name string `gorm:"column:name;type:text;not null" json:"name"`
}

func (UserTypeModel) TableName() string {
	return "ns_user_type"
}
