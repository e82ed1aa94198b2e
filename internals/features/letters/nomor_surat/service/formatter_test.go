package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToRoman(t *testing.T) {
	want := []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X", "XI", "XII"}
	for i, w := range want {
		got, err := ToRoman(i + 1)
		require.NoError(t, err)
		assert.Equal(t, w, got, "month %d", i+1)
	}
}

func TestToRomanRejectsOutOfRange(t *testing.T) {
	for _, m := range []int{0, 13, -1} {
		_, err := ToRoman(m)
		assert.True(t, errors.Is(err, ErrMonthOutOfRange), "month %d", m)
	}
}

func TestFormatNomorSurat(t *testing.T) {
	got, err := FormatNomorSurat(42, "ABC", "SK", 3, 2024)
	require.NoError(t, err)
	assert.Equal(t, "42/ABC/SK/III/2024", got)

	got, err = FormatNomorSurat(1, "KEU", "SE", 12, 2025)
	require.NoError(t, err)
	assert.Equal(t, "1/KEU/SE/XII/2025", got)

	_, err = FormatNomorSurat(1, "KEU", "SE", 13, 2025)
	assert.ErrorIs(t, err, ErrMonthOutOfRange)
}
