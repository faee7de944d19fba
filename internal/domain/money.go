package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ExtraUnitPrice is the fixed surcharge per selected extra, shared by all
// items regardless of type.
var ExtraUnitPrice = decimal.RequireFromString("1.00")

// FormatEUR renders an amount with exactly two fraction digits and a comma
// decimal separator ("8,90"). The cart display and the outgoing order
// message both go through this function.
func FormatEUR(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", ",", 1)
}
