package commands

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "nomor-surat",
	Short:         "Nomor surat API: penomoran surat resmi per jenis SK",
	SilenceUsage:  true,
	SilenceErrors: true,
	// tanpa subcommand = serve
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd, previewCmd, seedCmd)
}

// Execute dipanggil dari main.
func Execute() error {
	return rootCmd.Execute()
}
