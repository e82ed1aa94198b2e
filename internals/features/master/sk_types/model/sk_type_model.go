package model

// SkTypeModel = jenis SK. Setiap jenis punya counter sendiri di ns_sk_number_temp.
type SkTypeModel struct {
	ID   int64  `gorm:"column:id;primaryKey" json:"id"`
	Name string `gorm:"column:name;type:text;not null" json:"name"`
}

func (SkTypeModel) TableName() string {
	return "ns_sk_type"
}
