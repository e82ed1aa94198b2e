package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/z-anah/nomor-surat/internals/features/letters/nomor_surat/service"
	"github.com/z-anah/nomor-surat/internals/helpers/dbtime"
)

var previewOpts struct {
	number int64
	fungsi string
	skType string
	month  int
	year   int
}

// previewCmd mencetak format nomor surat tanpa menyentuh database.
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Tampilkan contoh nomor surat dari flag",
	Example: `  nomor-surat preview --number 42 --fungsi ABC --sk-type SK --month 3 --year 2024
  42/ABC/SK/III/2024`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		year := previewOpts.year
		if year == 0 {
			year = dbtime.Now().Year()
		}
		out, err := service.FormatNomorSurat(previewOpts.number, previewOpts.fungsi, previewOpts.skType, previewOpts.month, year)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
		return err
	},
}

func init() {
	f := previewCmd.Flags()
	f.Int64Var(&previewOpts.number, "number", 1, "nomor urut")
	f.StringVar(&previewOpts.fungsi, "fungsi", "", "kode fungsi (fungsi_code)")
	f.StringVar(&previewOpts.skType, "sk-type", "", "nama jenis SK")
	f.IntVar(&previewOpts.month, "month", 0, "bulan 1-12")
	f.IntVar(&previewOpts.year, "year", 0, "tahun (default: tahun berjalan)")
	_ = previewCmd.MarkFlagRequired("fungsi")
	_ = previewCmd.MarkFlagRequired("sk-type")
	_ = previewCmd.MarkFlagRequired("month")
}
