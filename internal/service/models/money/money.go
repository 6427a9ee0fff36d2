package money

import "github.com/shopspring/decimal"

// Round2 rounds an amount to two decimal places, half away from zero.
// Every total that leaves the service goes through this.
func Round2(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}
