package models

import "github.com/shopspring/decimal"

// State is a snapshot of all household collections.
type State struct {
	// Roommates in insertion order.
	Roommates []Roommate `json:"roommates"`

	// Expenses newest first.
	Expenses []Expense `json:"expenses"`

	Utilities []Utility `json:"utilities"`
}

// Clone returns a deep copy of s. Model values hold no references, so
// copying the slices is enough.
func (s State) Clone() State {
	return State{
		Roommates: append([]Roommate(nil), s.Roommates...),
		Expenses:  append([]Expense(nil), s.Expenses...),
		Utilities: append([]Utility(nil), s.Utilities...),
	}
}

// Seed returns the initial household used when nothing has been stored yet.
func Seed() State {
	return State{
		Roommates: SeedRoommates(),
		Expenses:  SeedExpenses(),
		Utilities: SeedUtilities(),
	}
}

// SeedRoommates returns a fresh copy of the seed roommates.
func SeedRoommates() []Roommate {
	return []Roommate{
		{
			ID:      "1",
			Name:    "Ananya Singh",
			Avatar:  "https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=crop&q=80&w=400&h=400",
			Balance: decimal.NewFromInt(450),
			Status:  StatusFriendlyNudge,
		},
		{
			ID:      "2",
			Name:    "Priya Sharma",
			Avatar:  "https://images.unsplash.com/photo-1534528741775-53994a69daeb?auto=format&fit=crop&q=80&w=400&h=400",
			Balance: decimal.NewFromInt(120),
			Status:  StatusPay,
		},
		{
			ID:      "3",
			Name:    "Meera Iyer",
			Avatar:  "https://images.unsplash.com/photo-1517841905240-472988babdf9?auto=format&fit=crop&q=80&w=400&h=400",
			Balance: decimal.Zero,
			Status:  StatusSynced,
		},
	}
}

// SeedExpenses returns a fresh copy of the seed expenses, newest first.
func SeedExpenses() []Expense {
	return []Expense{
		{ID: "1", Title: "Late Night Biryani", Amount: decimal.NewFromInt(850), Date: "Today • 11:30 PM", Category: CategoryFood},
		{ID: "2", Title: "Groceries (Dmart)", Amount: decimal.NewFromInt(2450), Date: "Yesterday", Category: CategoryGroceries, PayerID: "2"},
		{ID: "3", Title: "Starbucks Coffee", Amount: decimal.NewFromInt(450), Date: "2 days ago", Category: CategoryFood},
	}
}

// SeedUtilities returns a fresh copy of the seed utilities.
func SeedUtilities() []Utility {
	return []Utility{
		{ID: "1", Title: "ACT WiFi Fiber", Icon: "wifi", Due: "Due in 2 days", Cost: decimal.NewFromInt(1199), Mine: decimal.NewFromInt(300), Color: "bg-primary", IsShared: true},
		{ID: "2", Title: "Daily Milk Supply", Icon: "water_drop", Due: "Daily", Cost: decimal.NewFromInt(1200), Mine: decimal.NewFromInt(300), Color: "bg-blue-400", IsShared: true},
		{ID: "3", Title: "Electricity Bill", Icon: "electric_bolt", Due: "Monthly", Cost: decimal.NewFromInt(4500), Mine: decimal.NewFromInt(1125), Color: "bg-amber-400", IsShared: true},
	}
}
