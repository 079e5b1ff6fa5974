package utils

import (
	"strconv"
	"strings"
)

// Locale controls how report numbers are rendered. Formatting always goes
// through it; values are never fixed up by string substitution afterwards.
type Locale struct {
	Decimal  string
	Thousand string
	Symbol   string
}

var (
	LocaleBR = Locale{Decimal: ",", Thousand: ".", Symbol: "R$"}
	LocaleUS = Locale{Decimal: ".", Thousand: ",", Symbol: "$"}
)

// LocaleFor maps a configured locale name to its separators. pt-BR is the
// default, matching the app's audience.
func LocaleFor(name string) Locale {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "en-us", "en":
		return LocaleUS
	default:
		return LocaleBR
	}
}

// FormatNumber renders v with the given precision, thousand grouping and the
// locale's separators.
func FormatNumber(v float64, decimals int, loc Locale) string {
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	var out strings.Builder
	if neg {
		out.WriteByte('-')
	}
	for i, c := range intPart {
		if i != 0 && (len(intPart)-i)%3 == 0 {
			out.WriteString(loc.Thousand)
		}
		out.WriteRune(c)
	}
	if fracPart != "" {
		out.WriteString(loc.Decimal)
		out.WriteString(fracPart)
	}
	return out.String()
}

// FormatMoney keeps the uniform 2-decimal policy for monetary columns.
func FormatMoney(v float64, loc Locale) string {
	return FormatNumber(v, 2, loc)
}

// FormatQty keeps the uniform 1-decimal policy for hours and distance.
func FormatQty(v float64, loc Locale) string {
	return FormatNumber(v, 1, loc)
}

// FormatCurrency prefixes the locale symbol, for summary lines.
func FormatCurrency(v float64, loc Locale) string {
	return loc.Symbol + " " + FormatMoney(v, loc)
}
