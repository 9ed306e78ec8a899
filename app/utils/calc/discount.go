package calc

import "github.com/shopspring/decimal"

// DiscountPercent derives the displayed discount from the original and the
// current price: round((original-price)/original*100). Zero when the original
// price is absent, non-positive, or not above the current price.
func DiscountPercent(price decimal.Decimal, originalPrice *decimal.Decimal) int {
	if originalPrice == nil || originalPrice.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	if originalPrice.LessThanOrEqual(price) {
		return 0
	}

	percent := originalPrice.Sub(price).
		Div(*originalPrice).
		Mul(decimal.NewFromInt(100)).
		Round(0)

	return int(percent.IntPart())
}
