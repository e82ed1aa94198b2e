package configs

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Supabase SupabaseConfig
	Log      LogConfig
}

type AppConfig struct {
	Env              string
	Port             string
	Timezone         string
	SiteURL          string
	CorsAllowOrigins string
	RequestTimeout   time.Duration
}

type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	StatementTimeoutMS int
	MaxOpenConns       int
	MaxIdleConns       int
}

// SupabaseConfig: URL project + service role key. JWTSecret opsional,
// kalau diisi semua /api wajib bawa bearer token Supabase.
type SupabaseConfig struct {
	URL       string
	Key       string
	JWTSecret string
	Timeout   time.Duration
}

type LogConfig struct {
	Level  string
	Format string
	Output string
}

// =======================
// ENV LOADER
// =======================

// LoadEnv memuat .env kalau ada. Di Railway / container ENV sudah dari sistem.
// Return true kalau file .env benar-benar terbaca.
func LoadEnv() bool {
	if os.Getenv("RAILWAY_ENVIRONMENT") != "" {
		return false
	}
	return godotenv.Load() == nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", "development")
	v.SetDefault("port", "3000")
	v.SetDefault("app_timezone", "Asia/Jakarta")
	v.SetDefault("site_url", "http://localhost:3000/nomor-surat")
	v.SetDefault("cors_allow_origins", "*")
	v.SetDefault("request_timeout", "5s")

	v.SetDefault("db_port", "5432")
	v.SetDefault("db_sslmode", "require")
	v.SetDefault("db_statement_timeout_ms", 3000)
	v.SetDefault("db_max_open_conns", 20)
	v.SetDefault("db_max_idle_conns", 10)

	v.SetDefault("supabase_timeout", "10s")

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("log_output", "stdout")
}

// Load membaca konfigurasi dari ENV (setelah LoadEnv) dengan default yang aman.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Env:              v.GetString("app_env"),
			Port:             v.GetString("port"),
			Timezone:         v.GetString("app_timezone"),
			SiteURL:          strings.TrimRight(v.GetString("site_url"), "/"),
			CorsAllowOrigins: v.GetString("cors_allow_origins"),
			RequestTimeout:   v.GetDuration("request_timeout"),
		},
		Database: DatabaseConfig{
			Host:               v.GetString("db_host"),
			Port:               v.GetString("db_port"),
			User:               v.GetString("db_user"),
			Password:           v.GetString("db_password"),
			Name:               v.GetString("db_name"),
			SSLMode:            v.GetString("db_sslmode"),
			StatementTimeoutMS: v.GetInt("db_statement_timeout_ms"),
			MaxOpenConns:       v.GetInt("db_max_open_conns"),
			MaxIdleConns:       v.GetInt("db_max_idle_conns"),
		},
		Supabase: SupabaseConfig{
			URL:       strings.TrimRight(v.GetString("supabase_url"), "/"),
			Key:       v.GetString("supabase_key"),
			JWTSecret: v.GetString("supabase_jwt_secret"),
			Timeout:   v.GetDuration("supabase_timeout"),
		},
		Log: LogConfig{
			Level:  v.GetString("log_level"),
			Format: v.GetString("log_format"),
			Output: v.GetString("log_output"),
		},
	}

	if cfg.App.RequestTimeout <= 0 {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT value %q", v.GetString("request_timeout"))
	}
	if cfg.Supabase.Timeout <= 0 {
		return nil, fmt.Errorf("invalid SUPABASE_TIMEOUT value %q", v.GetString("supabase_timeout"))
	}

	return cfg, nil
}

// Validate mengumpulkan semua ENV wajib yang kosong sekaligus.
func (c *Config) Validate() error {
	required := map[string]string{
		"DB_HOST":      c.Database.Host,
		"DB_USER":      c.Database.User,
		"DB_PASSWORD":  c.Database.Password,
		"DB_NAME":      c.Database.Name,
		"SUPABASE_URL": c.Supabase.URL,
		"SUPABASE_KEY": c.Supabase.Key,
	}
	order := []string{"DB_HOST", "DB_USER", "DB_PASSWORD", "DB_NAME", "SUPABASE_URL", "SUPABASE_KEY"}

	var missing []string
	for _, key := range order {
		if strings.TrimSpace(required[key]) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if _, err := url.ParseRequestURI(c.Supabase.URL); err != nil {
		return fmt.Errorf("invalid SUPABASE_URL %q: %w", c.Supabase.URL, err)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// DSN lengkap + statement_timeout, cocok untuk PgBouncer Supabase.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s@%s:%s/%s?sslmode=%s&application_name=nomor_surat&options=-c%%20statement_timeout%%3D%d",
		url.UserPassword(d.User, d.Password).String(),
		d.Host,
		d.Port,
		d.Name,
		d.SSLMode,
		d.StatementTimeoutMS,
	)
}
