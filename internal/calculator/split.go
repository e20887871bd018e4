package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PerHead computes one household member's share of an expense split evenly
// among the roommates plus the primary user.
// Based on the rule: per_head = amount / (roommate_count + 1)
//
// The result is not rounded; callers round once after accumulating it into a
// balance.
func PerHead(amount decimal.Decimal, roommateCount int) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount must be greater than zero")
	}
	if roommateCount < 0 {
		return decimal.Zero, fmt.Errorf("roommate count cannot be negative")
	}
	return amount.Div(decimal.NewFromInt(int64(roommateCount) + 1)), nil
}

// RoundWhole rounds to the nearest whole currency unit, halves away from
// zero. Balances are never negative, so this is round-half-up.
func RoundWhole(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

// AddShare returns balance + perHead rounded to a whole unit.
func AddShare(balance, perHead decimal.Decimal) decimal.Decimal {
	return RoundWhole(balance.Add(perHead))
}
