package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/z-anah/nomor-surat/internals/configs"
	database "github.com/z-anah/nomor-surat/internals/databases"
	"github.com/z-anah/nomor-surat/internals/seeds"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Isi tabel referensi (fungsi, jenis SK, tipe & status user) dari file JSON",
	RunE: func(cmd *cobra.Command, _ []string) error {
		configs.LoadEnv()
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

		data, err := seeds.LoadReferenceData(seedFile)
		if err != nil {
			return err
		}

		db, err := database.ConnectDB(cfg.Database, log)
		if err != nil {
			return err
		}
		defer func() {
			if err := database.Close(db); err != nil {
				log.Warn("close db", zap.Error(err))
			}
		}()

		return seeds.RunAllSeeds(cmd.Context(), db, data, log)
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "internals/seeds/data/reference.example.json", "file JSON data referensi")
}
