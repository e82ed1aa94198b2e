package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/z-anah/nomor-surat/internals/configs"
	database "github.com/z-anah/nomor-surat/internals/databases"
	"github.com/z-anah/nomor-surat/internals/helpers/dbtime"
	"github.com/z-anah/nomor-surat/internals/helpers/supabase"
	"github.com/z-anah/nomor-surat/internals/middlewares"
	routes "github.com/z-anah/nomor-surat/internals/route"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Jalankan HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	envLoaded := configs.LoadEnv()

	cfg, err := configs.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := configs.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	if envLoaded {
		log.Info("📄 .env loaded")
	}

	dbtime.SetLocation(dbtime.LoadLocation(cfg.App.Timezone))

	// 🔌 DB connect + pool + warm-up
	db, err := database.ConnectDB(cfg.Database, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warn("close db", zap.Error(err))
		}
	}()
	if err := database.TunePool(db, cfg.Database); err != nil {
		return err
	}
	database.WarmUpQueries(db, log)

	auth := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.Key, cfg.Supabase.Timeout)

	app := routes.NewApp(log)
	middlewares.SetupMiddlewares(app, cfg.App, log)
	routes.SetupRoutes(app, routes.Deps{DB: db, Auth: auth, Config: cfg, Log: log})

	errCh := make(chan error, 1)
	go func() {
		log.Info("✅ Listening", zap.String("port", cfg.App.Port), zap.String("env", cfg.App.Env))
		errCh <- app.Listen("0.0.0.0:" + cfg.App.Port)
	}()

	// graceful shutdown
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return app.ShutdownWithContext(shutdownCtx)
}
