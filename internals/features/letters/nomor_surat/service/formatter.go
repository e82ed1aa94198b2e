package service

import (
	"errors"
	"fmt"
	"strings"
)

var ErrMonthOutOfRange = errors.New("month must be between 1 and 12")

var romanNumerals = []struct {
	value   int
	numeral string
}{
	{10, "X"},
	{9, "IX"},
	{5, "V"},
	{4, "IV"},
	{1, "I"},
}

// ToRoman mengubah bulan 1..12 ke angka romawi (greedy subtraction).
func ToRoman(n int) (string, error) {
	if n < 1 || n > 12 {
		return "", fmt.Errorf("%w: got %d", ErrMonthOutOfRange, n)
	}

	var b strings.Builder
	for _, r := range romanNumerals {
		for n >= r.value {
			b.WriteString(r.numeral)
			n -= r.value
		}
	}
	return b.String(), nil
}

// FormatNomorSurat → "{number}/{fungsi_code}/{sk_type_name}/{bulan romawi}/{year}".
func FormatNomorSurat(number int64, fungsiCode, skTypeName string, month, year int) (string, error) {
	roman, err := ToRoman(month)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d/%s/%s/%s/%d", number, fungsiCode, skTypeName, roman, year), nil
}
