package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestPreview(t *testing.T) {
	out, err := runCLI(t, "preview", "--number", "42", "--fungsi", "ABC", "--sk-type", "SK", "--month", "3", "--year", "2024")
	require.NoError(t, err)
	assert.Equal(t, "42/ABC/SK/III/2024\n", out)
}

func TestPreviewRejectsMonth(t *testing.T) {
	_, err := runCLI(t, "preview", "--fungsi", "ABC", "--sk-type", "SK", "--month", "13", "--year", "2024")
	assert.ErrorContains(t, err, "month must be between 1 and 12")
}
