// Package money normalizes user-entered rial amounts.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount accepts amounts the way the price widgets display them:
//
//   - "36,500,000"
//   - "۳۶٬۵۰۰٬۰۰۰" (Persian digits with Persian thousands separator)
//   - "36500000 ریال"
//
// Thousands separators (Latin and Persian) are stripped, Persian digit glyphs
// are converted to ASCII, every remaining non-digit is discarded and the rest
// parses as a base-10 number. Empty or digit-free input yields zero.
func ParseAmount(s string) decimal.Decimal {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "٬", "")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= '۰' && r <= '۹': // U+06F0..U+06F9, Extended Arabic-Indic
			b.WriteByte(byte('0' + r - '۰'))
		}
	}
	clean := b.String()
	if clean == "" {
		return decimal.Zero
	}

	val, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero
	}
	return val
}
