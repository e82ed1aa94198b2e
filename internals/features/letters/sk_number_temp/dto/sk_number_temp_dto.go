package dto

// SkNumberTempResponse = baris counter + nama jenis SK (flattened).
type SkNumberTempResponse struct {
	ID         int64   `gorm:"column:id" json:"id"`
	SkTypeID   int64   `gorm:"column:sk_type_id" json:"sk_type_id"`
	LastNumber int64   `gorm:"column:last_number" json:"last_number"`
	Year       *int    `gorm:"column:year" json:"year"`
	SkTypeName *string `gorm:"column:sk_type_name" json:"sk_type_name"`
}
