package model

import "time"

// NomorSuratModel: satu surat yang sudah diberi nomor. GeneratedNomorSurat
// tidak pernah diubah setelah insert.
type NomorSuratModel struct {
	ID                  int64     `gorm:"column:id;primaryKey" json:"id"`
	UserID              string    `gorm:"column:user_id;type:uuid;not null" json:"user_id"`
	Title               string    `gorm:"column:title;type:text;not null" json:"title"`
	File                *string   `gorm:"column:file;type:text" json:"file"`
	GeneratedNomorSurat string    `gorm:"column:generated_nomor_surat;type:text;not null" json:"generated_nomor_surat"`
	FungsiTypeID        int64     `gorm:"column:fungsi_type_id;not null" json:"fungsi_type_id"`
	SkTypeID            int64     `gorm:"column:sk_type_id;not null" json:"sk_type_id"`
	CreatedAt           time.Time `gorm:"column:created_at;default:now();autoCreateTime:false" json:"created_at"`
}

func (NomorSuratModel) TableName() string {
	return "ns_nomor_surat"
}
