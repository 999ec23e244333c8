package pkg

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	Hundred = decimal.NewFromInt(100)

	printer = message.NewPrinter(language.English)
)

// FormatMoney renders an amount with thousands separators, dropping the
// fraction for whole amounts: "TZS 50,000", "TZS 583.33".
func FormatMoney(currency string, amount decimal.Decimal) string {
	rounded := amount.Round(2)
	if rounded.Equal(rounded.Truncate(0)) {
		return printer.Sprintf("%s %d", currency, rounded.IntPart())
	}
	f, _ := rounded.Float64()
	return printer.Sprintf("%s %.2f", currency, f)
}

func ClampZero(amount decimal.Decimal) decimal.Decimal {
	if amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}
