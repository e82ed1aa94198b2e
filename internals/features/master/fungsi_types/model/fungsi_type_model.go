package model

// FungsiTypeModel = unit/fungsi organisasi, kodenya masuk ke nomor surat.
type FungsiTypeModel struct {
	ID         int64  `gorm:"column:id;primaryKey" json:"id"`
	FungsiName string `gorm:"column:fungsi_name;type:text;not null" json:"fungsi_name"`
	FungsiCode string `gorm:"column:fungsi_code;type:text;not null" json:"fungsi_code"`
}

func (FungsiTypeModel) TableName() string {
	return "ns_fungsi_type"
}
