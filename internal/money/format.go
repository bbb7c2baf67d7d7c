// Package money formats whole-unit prices for display. State always keeps raw integers.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const CurrencySuffix = "₽"

var printer = message.NewPrinter(language.Russian)

// Format renders amount with Russian digit grouping and the ruble sign, e.g. "12\u00a0990 ₽".
func Format(amount int64) string {
	return printer.Sprintf("%d %s", amount, CurrencySuffix)
}
