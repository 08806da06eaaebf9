package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// French digit grouping, same rendering the storefront gets from
// Intl.NumberFormat('fr-FR'): groups of three separated by a
// non-breaking space.
var pricePrinter = message.NewPrinter(language.French)

// FormatPrice renders an amount in whole RWF for display, e.g.
// 12500 → "12 500 RWF". Used for unit prices, line totals and the
// grand total alike so the grouping never diverges.
func FormatPrice(amount int64) string {
	return pricePrinter.Sprintf("%d", amount) + " RWF"
}
