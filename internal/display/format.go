package display

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"wallet/internal/models"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders amount with the currency symbol and en-US digit
// grouping, e.g. "-$1,234.50". Codes that are not upper-case ISO 4217 codes
// are rendered as USD.
func FormatCurrency(amount decimal.Decimal, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil || len(code) != 3 || code != strings.ToUpper(code) {
		unit = currency.USD
	}

	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	return sign + printer.Sprint(currency.Symbol(unit)) + printer.Sprintf("%.2f", rounded.Abs().InexactFloat64())
}

var dateLayouts = []string{
	models.TimestampLayout,
	time.RFC3339Nano,
	models.DateLayout,
}

// FormatDate renders an ISO date or timestamp as dd/mm/yyyy in UTC. Input
// that does not parse is returned unchanged.
func FormatDate(s string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Format("02/01/2006")
		}
	}
	return s
}
