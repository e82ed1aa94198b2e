package seeds

import (
	"context"
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
	"gorm.io/gorm"

	fungsiModel "github.com/z-anah/nomor-surat/internals/features/master/fungsi_types/model"
	skModel "github.com/z-anah/nomor-surat/internals/features/master/sk_types/model"
	statusModel "github.com/z-anah/nomor-surat/internals/features/users/user_statuses/model"
	typeModel "github.com/z-anah/nomor-surat/internals/features/users/user_types/model"
)

// ReferenceData = isi file JSON seed (lihat data/reference.example.json).
type ReferenceData struct {
	FungsiTypes  []FungsiTypeSeed `json:"fungsi_types"`
	SkTypes      []string         `json:"sk_types"`
	UserTypes    []string         `json:"user_types"`
	UserStatuses []string         `json:"user_statuses"`
}

type FungsiTypeSeed struct {
	FungsiName string `json:"fungsi_name"`
	FungsiCode string `json:"fungsi_code"`
}

func LoadReferenceData(filePath string) (*ReferenceData, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("baca file seed: %w", err)
	}
	var data ReferenceData
	if err := sonic.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode file seed %s: %w", filePath, err)
	}
	return &data, nil
}

// RunAllSeeds mengisi tabel referensi. Baris yang sudah ada (by key) dilewati,
// jadi aman dijalankan berulang.
func RunAllSeeds(ctx context.Context, db *gorm.DB, data *ReferenceData, log *zap.Logger) error {
	fungsi := make([]fungsiModel.FungsiTypeModel, 0, len(data.FungsiTypes))
	for _, f := range data.FungsiTypes {
		fungsi = append(fungsi, fungsiModel.FungsiTypeModel{FungsiName: f.FungsiName, FungsiCode: f.FungsiCode})
	}
	n, err := seedMissing(ctx, db, "fungsi_code", fungsi, func(m fungsiModel.FungsiTypeModel) string { return m.FungsiCode })
	if err != nil {
		return fmt.Errorf("seed ns_fungsi_type: %w", err)
	}
	log.Info("🌱 seeded", zap.String("table", "ns_fungsi_type"), zap.Int("inserted", n))

	skTypes := make([]skModel.SkTypeModel, 0, len(data.SkTypes))
	for _, name := range data.SkTypes {
		skTypes = append(skTypes, skModel.SkTypeModel{Name: name})
	}
	if n, err = seedMissing(ctx, db, "name", skTypes, func(m skModel.SkTypeModel) string { return m.Name }); err != nil {
		return fmt.Errorf("seed ns_sk_type: %w", err)
	}
	log.Info("🌱 seeded", zap.String("table", "ns_sk_type"), zap.Int("inserted", n))

	userTypes := make([]typeModel.UserTypeModel, 0, len(data.UserTypes))
	for _, name := range data.UserTypes {
		userTypes = append(userTypes, typeModel.UserTypeModel{Name: name})
	}
	if n, err = seedMissing(ctx, db, "name", userTypes, func(m typeModel.UserTypeModel) string { return m.Name }); err != nil {
		return fmt.Errorf("seed ns_user_type: %w", err)
	}
	log.Info("🌱 seeded", zap.String("table", "ns_user_type"), zap.Int("inserted", n))

	statuses := make([]statusModel.UserStatusModel, 0, len(data.UserStatuses))
	for _, name := range data.UserStatuses {
		statuses = append(statuses, statusModel.UserStatusModel{Name: name})
	}
	if n, err = seedMissing(ctx, db, "name", statuses, func(m statusModel.UserStatusModel) string { return m.Name }); err != nil {
		return fmt.Errorf("seed ns_user_status: %w", err)
	}
	log.Info("🌱 seeded", zap.String("table", "ns_user_status"), zap.Int("inserted", n))

	return nil
}

// seedMissing: ambil key yang sudah ada, insert sisanya.
func seedMissing[T any](ctx context.Context, db *gorm.DB, column string, rows []T, keyOf func(T) string) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	var zero T
	var existing []string
	if err := db.WithContext(ctx).Model(&zero).Pluck(column, &existing).Error; err != nil {
		return 0, err
	}
	seen := make(map[string]bool, len(existing))
	for _, k := range existing {
		seen[k] = true
	}

	missing := make([]T, 0, len(rows))
	for _, r := range rows {
		k := keyOf(r)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		missing = append(missing, r)
	}
	if len(missing) == 0 {
		return 0, nil
	}

	if err := db.WithContext(ctx).CreateInBatches(&missing, 100).Error; err != nil {
		return 0, err
	}
	return len(missing), nil
}
