package calc

import "github.com/shopspring/decimal"

var (
	// Flat shipping below the free-shipping threshold.
	flatShippingCost      = decimal.NewFromInt(10)
	freeShippingThreshold = decimal.NewFromInt(500)

	taxPercent = decimal.NewFromInt(8)
)

func GetTaxPercent() decimal.Decimal {
	return taxPercent
}

func CalculateTax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(taxPercent).Div(decimal.NewFromInt(100)).Round(2)
}

func CalculateShipping(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThanOrEqual(freeShippingThreshold) {
		return decimal.Zero
	}
	return flatShippingCost
}

// CalculateGrandTotal keeps the order invariant:
// total = subtotal + shipping + tax - discount.
func CalculateGrandTotal(subtotal, shippingCost, tax, discount decimal.Decimal) decimal.Decimal {
	return subtotal.Add(shippingCost).Add(tax).Sub(discount).Round(2)
}
