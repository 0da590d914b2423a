// Package money formats rupee amounts for display in share texts, audit
// details and exported documents.
package money

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("en-IN"))

// Format renders an amount with Indian digit grouping, e.g. 154000 ->
// "1,54,000". Fractions are shown only when present, rounded to two places.
// The digits come from the decimal itself, not a float64 round trip, so
// amounts beyond float precision still render exactly.
func Format(d decimal.Decimal) string {
	d = d.Round(2)
	neg := d.IsNegative()
	if neg {
		d = d.Neg()
	}
	whole, frac, _ := strings.Cut(d.String(), ".")
	out := whole
	if n, err := strconv.ParseInt(whole, 10, 64); err == nil {
		out = printer.Sprintf("%v", number.Decimal(n))
	}
	if frac = strings.TrimRight(frac, "0"); frac != "" {
		out += "." + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}

// Rupees prefixes the formatted amount with the rupee sign for plain-text
// surfaces (audit trail, WhatsApp share messages).
func Rupees(d decimal.Decimal) string {
	return "₹" + Format(d)
}

// PlainRupees uses the ASCII "Rs." prefix for surfaces restricted to
// cp1252 fonts (the PDF and XLSX renderers).
func PlainRupees(d decimal.Decimal) string {
	return "Rs. " + Format(d)
}
