package lixi

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.Vietnamese)

// FormatMoney renders an amount of đồng with Vietnamese digit grouping, e.g. "100.000đ".
func FormatMoney(amount int) string {
	return moneyPrinter.Sprintf("%dđ", amount)
}
