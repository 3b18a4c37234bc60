package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"millions", 1234567.891, "$ 1.234.567,89"},
		{"round thousands", 250000, "$ 250.000,00"},
		{"negative", -25000, "-$ 25.000,00"},
		{"small", 12.5, "$ 12,50"},
		{"negative rounding to zero", -0.001, "$ 0,00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(tt.amount))
		})
	}
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "45,7%", FormatPercentage(45.67))
	assert.Equal(t, "3,5%", FormatPercentage(3.5))
	assert.Equal(t, "-10,0%", FormatPercentage(-10))
}

func TestFormatCurrencyIsStable(t *testing.T) {
	for _, v := range []float64{0, 99.99, 15000.5, 1234567.891, -98765.43, 68000000} {
		s := FormatCurrency(v)
		parsed, err := ParseCurrency(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, FormatCurrency(parsed))
	}
}

func TestParseCurrency(t *testing.T) {
	v, err := ParseCurrency("1500,5")
	require.NoError(t, err)
	assert.InDelta(t, 1500.5, v, 1e-9)

	_, err = ParseCurrency("$ ")
	assert.ErrorIs(t, err, ErrInvalidCurrency)

	_, err = ParseCurrency("abc")
	assert.ErrorIs(t, err, ErrInvalidCurrency)
}

func TestParseCurrency_Grouping(t *testing.T) {
	cases := map[string]float64{
		"1.500":        1500,
		"1.500.000,50": 1500000.5,
		"$ 12.345,67":  12345.67,
		"-$ 25.000,00": -25000,
		"999":          999,
		"1234567":      1234567,
		"0,5":          0.5,
		"$ 1 500,25":   1500.25,
	}
	for in, want := range cases {
		v, err := ParseCurrency(in)
		require.NoError(t, err, in)
		assert.InDelta(t, want, v, 1e-9, in)
	}
}

func TestParseCurrency_Rejects(t *testing.T) {
	for _, in := range []string{
		"NaN", "nan", "Inf", "+Inf", "-Inf", "Infinity",
		"1500.50", // punto decimal
		"1.5",
		"1.5000",
		"1234.567",
		".500",
		"1.500,",
		"1,5,0",
		"1e9",
		"0x10",
		"+100",
	} {
		_, err := ParseCurrency(in)
		assert.ErrorIs(t, err, ErrInvalidCurrency, in)
	}
}
