package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatNaira renders an amount with thousands separators, e.g. ₦12,500 or ₦99.50
func FormatNaira(amount float64) string {
	if amount == float64(int64(amount)) {
		return printer.Sprintf("₦%d", int64(amount))
	}
	return printer.Sprintf("₦%.2f", amount)
}
