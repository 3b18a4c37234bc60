package finance

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencySymbol is the prefix of formatted peso amounts.
const CurrencySymbol = "$"

var (
	locale  = language.MustParse("es-AR")
	printer = message.NewPrinter(locale)
)

var ErrInvalidCurrency = errors.New("importe inválido")

// FormatCurrency renders amount as Argentine pesos with two decimals and
// es-AR grouping, e.g. "$ 1.234.567,89". Display only.
func FormatCurrency(amount float64) string {
	cents := math.Round(amount * 100)
	sign := ""
	if cents < 0 {
		sign = "-"
	}
	return sign + CurrencySymbol + " " + printer.Sprint(number.Decimal(math.Abs(cents)/100, number.Scale(2)))
}

// FormatPercentage renders value with one decimal and a trailing "%".
func FormatPercentage(value float64) string {
	tenths := math.Round(value * 10)
	sign := ""
	if tenths < 0 {
		sign = "-"
	}
	return sign + printer.Sprint(number.Decimal(math.Abs(tenths)/10, number.Scale(1))) + "%"
}

// ParseCurrency reads back an amount produced by FormatCurrency. Plain
// numbers with a decimal comma ("1500,5") are accepted too. Dots are
// thousands separators only: every dot group after the first must have
// exactly three digits, so "1500.50" and "1.5" are rejected.
func ParseCurrency(s string) (float64, error) {
	s = strings.TrimSpace(s)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimSpace(strings.TrimPrefix(s, CurrencySymbol))
	s = strings.ReplaceAll(s, " ", "")

	intPart, frac, hasFrac := strings.Cut(s, ",")
	if !validGrouping(intPart) || (hasFrac && !digitsOnly(frac)) {
		return 0, ErrInvalidCurrency
	}

	plain := strings.ReplaceAll(intPart, ".", "")
	if hasFrac {
		plain += "." + frac
	}
	v, err := strconv.ParseFloat(plain, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, ErrInvalidCurrency
	}
	if neg {
		v = -v
	}
	return v, nil
}

func validGrouping(s string) bool {
	groups := strings.Split(s, ".")
	if len(groups) == 1 {
		return digitsOnly(s)
	}
	if !digitsOnly(groups[0]) || len(groups[0]) > 3 {
		return false
	}
	for _, g := range groups[1:] {
		if len(g) != 3 || !digitsOnly(g) {
			return false
		}
	}
	return true
}

func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
