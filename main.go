package main

import (
	"fmt"
	"os"

	"github.com/z-anah/nomor-surat/internals/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
