package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
	"github.com/zeylcoffee/qrmenu/app/models"
)

var (
	wholeTL = accounting.Accounting{Symbol: "TL", Precision: 0, Thousand: ".", Format: "%v %s"}
	exactTL = accounting.Accounting{Symbol: "TL", Precision: 2, Thousand: ".", Decimal: ",", Format: "%v %s"}
)

// TL renders a decimal amount as Turkish lira, dropping the fraction for
// whole amounts ("120 TL", "96,50 TL").
func TL(d decimal.Decimal) string {
	if d.IsInteger() {
		return wholeTL.FormatMoneyDecimal(d)
	}
	return exactTL.FormatMoneyDecimal(d)
}

// PriceTL renders a nullable price. Null prices show as a dash, the menu's
// "price on request" marker.
func PriceTL(p models.Price) string {
	if !p.Valid {
		return "-"
	}
	return TL(p.Decimal)
}

// Discount builds the campaign display string from an old/new price pair.
// It is nil unless both sides are present.
func Discount(oldPrice, newPrice models.Price) *string {
	if !oldPrice.Valid || !newPrice.Valid {
		return nil
	}
	s := TL(oldPrice.Decimal) + " -> " + TL(newPrice.Decimal)
	return &s
}
