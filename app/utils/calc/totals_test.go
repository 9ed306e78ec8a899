package calc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateTax(t *testing.T) {
	assert.True(t, dec("8.00").Equal(CalculateTax(dec("100"))))
	assert.True(t, dec("0.80").Equal(CalculateTax(dec("10"))))
	assert.True(t, dec("1.60").Equal(CalculateTax(dec("19.99"))))
}

func TestCalculateShipping(t *testing.T) {
	assert.True(t, dec("10").Equal(CalculateShipping(dec("100"))))
	assert.True(t, dec("10").Equal(CalculateShipping(dec("499.99"))))
	assert.True(t, decimal.Zero.Equal(CalculateShipping(dec("500"))))
	assert.True(t, decimal.Zero.Equal(CalculateShipping(dec("1200"))))
}

func TestCalculateGrandTotal(t *testing.T) {
	subtotal := dec("100")
	shipping := CalculateShipping(subtotal)
	tax := CalculateTax(subtotal)
	discount := dec("5")

	total := CalculateGrandTotal(subtotal, shipping, tax, discount)
	assert.True(t, subtotal.Add(shipping).Add(tax).Sub(discount).Equal(total))
	assert.True(t, dec("113.00").Equal(total))
}
