// Package format turns amounts stored in cents into display values.
package format

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Currency formats cents as US dollars, e.g. 150000 -> "$1,500.00".
func Currency(cents int64) string {
	d := decimal.New(cents, -2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	return sign + "$" + printer.Sprintf("%.2f", d.InexactFloat64())
}

// CurrencyPtr formats a nullable aggregate; nil is treated as zero.
func CurrencyPtr(cents *int64) string {
	if cents == nil {
		return Currency(0)
	}
	return Currency(*cents)
}

// Dollars converts cents to a dollar value for edit forms, e.g. 150000 -> 1500.
func Dollars(cents int64) float64 {
	return decimal.New(cents, -2).InexactFloat64()
}
