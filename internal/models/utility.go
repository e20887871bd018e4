package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DueSettled is the Due label of a utility whose share has been paid.
const DueSettled = "Settled"

// Utility is a recurring household bill.
type Utility struct {
	ID    string `json:"id"`
	Title string `json:"title"`

	// Icon and Color are presentation hints.
	Icon  string `json:"icon"`
	Color string `json:"color"`

	// Due is a display status such as "Due in 2 days" or "Settled".
	Due string `json:"due"`

	// Cost is the total bill.
	Cost decimal.Decimal `json:"cost"`

	// Mine is the primary user's outstanding share, between 0 and Cost.
	Mine decimal.Decimal `json:"mine"`

	// IsShared reports whether the bill is split across the household.
	IsShared bool `json:"isShared"`
}

// Validate checks the utility invariants.
func (u Utility) Validate() error {
	if strings.TrimSpace(u.ID) == "" {
		return invalid("id", "must not be empty")
	}
	if u.Cost.IsNegative() {
		return invalid("cost", "must not be negative")
	}
	if u.Mine.IsNegative() {
		return invalid("mine", "must not be negative")
	}
	if u.Mine.GreaterThan(u.Cost) {
		return invalid("mine", "must not exceed cost")
	}
	return nil
}
