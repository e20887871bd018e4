package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Category classifies an Expense. The set is closed.
type Category string

const (
	CategoryFood      Category = "Food"
	CategoryUtility   Category = "Utility"
	CategoryTravel    Category = "Travel"
	CategoryWiFi      Category = "WiFi"
	CategoryGroceries Category = "Groceries"
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{CategoryFood, CategoryUtility, CategoryTravel, CategoryWiFi, CategoryGroceries}
}

// ParseCategory matches s case-insensitively against the known categories.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// DefaultExpenseDate is the display label given to newly recorded expenses.
const DefaultExpenseDate = "Just now"

// Expense is an amount spent on behalf of the household.
// Expenses are immutable once recorded.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string `json:"id"`

	// Title is free text. Defaults to the category name when blank.
	Title string `json:"title"`

	// Amount is the total paid. Always positive.
	Amount decimal.Decimal `json:"amount"`

	// Date is a display label such as "Yesterday", not a timestamp.
	Date string `json:"date"`

	Category Category `json:"category"`

	// PayerID is the Roommate who paid, or empty when the primary user paid.
	PayerID string `json:"payerId,omitempty"`
}

// PaidByPrimaryUser reports whether the primary user covered the expense.
func (e Expense) PaidByPrimaryUser() bool {
	return e.PayerID == ""
}

// Validate checks the expense invariants.
func (e Expense) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return invalid("id", "must not be empty")
	}
	if !e.Amount.IsPositive() {
		return invalid("amount", "must be greater than zero")
	}
	if !e.Category.Valid() {
		return invalid("category", fmt.Sprintf("unknown value %q", e.Category))
	}
	return nil
}
