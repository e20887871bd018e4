package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/roomease/internal/models"
)

// Summary bundles the read-side aggregates shown on the home and report
// views. It is computed from scratch on every call and never cached.
type Summary struct {
	TotalSpent      decimal.Decimal                     `json:"totalSpent"`
	UserOwes        decimal.Decimal                     `json:"userOwes"`
	UserIsOwed      decimal.Decimal                     `json:"userIsOwed"`
	NetBalance      decimal.Decimal                     `json:"netBalance"` // Positive = primary user is owed
	CategoryTotals  map[models.Category]decimal.Decimal `json:"categoryTotals"`
	TotalUtilityDue decimal.Decimal                     `json:"totalUtilityDue"`
	LatestExpense   *models.Expense                     `json:"latestExpense,omitempty"`
}

// Summarize computes every aggregate over the given snapshot.
// It only reads its arguments.
func Summarize(state models.State) Summary {
	owes := UserOwes(state.Roommates)
	owed := UserIsOwed(state.Roommates)
	return Summary{
		TotalSpent:      TotalSpent(state.Expenses),
		UserOwes:        owes,
		UserIsOwed:      owed,
		NetBalance:      owed.Sub(owes),
		CategoryTotals:  CategoryTotals(state.Expenses),
		TotalUtilityDue: TotalUtilityDue(state.Utilities),
		LatestExpense:   LatestExpense(state.Expenses),
	}
}

// TotalSpent sums every expense amount.
func TotalSpent(expenses []models.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// UserOwes sums the balances of roommates the primary user has to pay.
func UserOwes(roommates []models.Roommate) decimal.Decimal {
	return sumBalances(roommates, models.StatusPay)
}

// UserIsOwed sums the balances of roommates who owe the primary user.
func UserIsOwed(roommates []models.Roommate) decimal.Decimal {
	return sumBalances(roommates, models.StatusFriendlyNudge)
}

// NetBalance is UserIsOwed - UserOwes.
func NetBalance(roommates []models.Roommate) decimal.Decimal {
	return UserIsOwed(roommates).Sub(UserOwes(roommates))
}

func sumBalances(roommates []models.Roommate, status models.Status) decimal.Decimal {
	total := decimal.Zero
	for _, r := range roommates {
		if r.Status == status {
			total = total.Add(r.Balance)
		}
	}
	return total
}

// CategoryTotals maps each category with at least one expense to the sum of
// its amounts.
func CategoryTotals(expenses []models.Expense) map[models.Category]decimal.Decimal {
	totals := make(map[models.Category]decimal.Decimal)
	for _, e := range expenses {
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}
	return totals
}

// TotalUtilityDue sums the primary user's share across all utilities.
func TotalUtilityDue(utilities []models.Utility) decimal.Decimal {
	total := decimal.Zero
	for _, u := range utilities {
		total = total.Add(u.Mine)
	}
	return total
}

// LatestExpense returns the newest expense, or nil when there are none.
func LatestExpense(expenses []models.Expense) *models.Expense {
	if len(expenses) == 0 {
		return nil
	}
	latest := expenses[0]
	return &latest
}
