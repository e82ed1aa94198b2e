package database

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/z-anah/nomor-surat/internals/configs"
)

// ConnectDB membuka koneksi ke Postgres Supabase.
// PreferSimpleProtocol wajib kalau lewat PgBouncer (transaction pooling).
func ConnectDB(cfg configs.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	log.Info("🔌 Koneksi ke PostgreSQL (Supabase)...", zap.String("host", cfg.Host), zap.String("db", cfg.Name))

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:      configs.NewGormLogger(log),
		PrepareStmt: false,
	})
	if err != nil {
		return nil, fmt.Errorf("gagal konek DB: %w", err)
	}

	log.Info("✅ DB connected.")
	return db, nil
}

func TunePool(db *gorm.DB, cfg configs.DatabaseConfig) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("pool tune: %w", err)
	}
	// ⚖️ Sesuaikan dengan limit Supabase/PgBouncer
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
	return nil
}

// WarmUpQueries mengisi pool di background supaya request pertama tidak lambat.
func WarmUpQueries(db *gorm.DB, log *zap.Logger) {
	go func() {
		time.Sleep(500 * time.Millisecond)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := Ping(ctx, db); err != nil {
			log.Warn("warm-up ping gagal", zap.Error(err))
		}
	}()
}

func Ping(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database belum diinisialisasi")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
