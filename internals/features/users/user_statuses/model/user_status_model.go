package model

type UserStatusModel struct {
	ID   int64  `gorm:"column:id;primaryKey" json:"id"`
	Name string `gorm:"column:name;type:text;not null" json:"name"`
}

func (UserStatusModel) TableName() string {
	return "ns_user_status"
}
