package model

// SkNumberTempModel: counter terakhir per jenis SK. Hanya diubah oleh
// fungsi increment_ns_sk_number di database.
type SkNumberTempModel struct {
	ID         int64 `gorm:"column:id;primaryKey" json:"id"`
	SkTypeID   int64 `gorm:"column:sk_type_id;not null;uniqueIndex" json:"sk_type_id"`
	LastNumber int64 `gorm:"column:last_number;not null;default:0" json:"last_number"`
	Year       *int  `gorm:"column:year" json:"year"`
}

func (SkNumberTempModel) TableName() string {
	return "ns_sk_number_temp"
}
