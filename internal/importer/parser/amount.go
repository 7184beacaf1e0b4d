package parser

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// currencySymbols maps the symbols seen in GL exports to their
// currency units.
var currencySymbols = map[rune]currency.Unit{
	'$': currency.USD,
	'£': currency.GBP,
	'€': currency.EUR,
}

// ParseAmount parses a raw amount field into a decimal.
//
// Accepted forms are "$1,234.56", "(1,234.56)" (parenthesized
// accounting negative), a leading "-", and the currency symbols $, £
// and €. Grouping commas are stripped. Empty or unparseable input
// returns zero; callers treat a zero amount as "no transaction" and
// skip the row.
func ParseAmount(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	var b strings.Builder
	for _, r := range s {
		if _, ok := currencySymbols[r]; ok || r == ',' || r == ' ' {
			continue
		}
		b.WriteRune(r)
	}
	s = b.String()

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}

	if negative {
		return amount.Neg()
	}

	return amount
}

// DetectCurrency returns the ISO 4217 code for the first currency
// symbol found in a raw amount field, or the empty string when the
// field carries no symbol.
func DetectCurrency(raw string) string {
	for _, r := range raw {
		if unit, ok := currencySymbols[r]; ok {
			return unit.String()
		}
	}

	return ""
}
