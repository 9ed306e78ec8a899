package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var usd = accounting.Accounting{Symbol: "$", Precision: 2}

// USD renders a money value the way product cards display it, e.g. "$1,299.00".
func USD(amount decimal.Decimal) string {
	return usd.FormatMoney(amount)
}
