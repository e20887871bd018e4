package calculator

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/roomease/internal/models"
)

func TestSummarizeSeed(t *testing.T) {
	seed := models.Seed()
	s := Summarize(seed)

	checks := []struct {
		name string
		got  decimal.Decimal
		want string
	}{
		{"total spent", s.TotalSpent, "3750"},
		{"user owes", s.UserOwes, "120"},
		{"user is owed", s.UserIsOwed, "450"},
		{"net balance", s.NetBalance, "330"},
		{"utility due", s.TotalUtilityDue, "1725"},
		{"food total", s.CategoryTotals[models.CategoryFood], "1300"},
		{"groceries total", s.CategoryTotals[models.CategoryGroceries], "2450"},
	}
	for _, c := range checks {
		if c.got.String() != c.want {
			t.Errorf("%s = %s, want %s", c.name, c.got, c.want)
		}
	}

	if _, ok := s.CategoryTotals[models.CategoryTravel]; ok {
		t.Error("categories without expenses must not appear in CategoryTotals")
	}
	if len(s.CategoryTotals) != 2 {
		t.Errorf("CategoryTotals has %d keys, want 2", len(s.CategoryTotals))
	}

	if s.LatestExpense == nil || s.LatestExpense.ID != seed.Expenses[0].ID {
		t.Errorf("LatestExpense = %+v, want first expense", s.LatestExpense)
	}
}

func TestSummarizeIsDeterministic(t *testing.T) {
	state := models.Seed()
	before := state.Clone()

	first := Summarize(state)
	second := Summarize(state)

	if !first.TotalSpent.Equal(second.TotalSpent) || !first.NetBalance.Equal(second.NetBalance) {
		t.Errorf("repeated Summarize differs: %+v vs %+v", first, second)
	}
	for cat, amount := range first.CategoryTotals {
		if !second.CategoryTotals[cat].Equal(amount) {
			t.Errorf("category %s: %s vs %s", cat, amount, second.CategoryTotals[cat])
		}
	}

	for i := range before.Roommates {
		if !before.Roommates[i].Balance.Equal(state.Roommates[i].Balance) || before.Roommates[i].Status != state.Roommates[i].Status {
			t.Errorf("Summarize mutated roommate %s", state.Roommates[i].ID)
		}
	}
	if len(before.Expenses) != len(state.Expenses) {
		t.Error("Summarize mutated expenses")
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(models.State{})
	if !s.TotalSpent.IsZero() || !s.NetBalance.IsZero() || !s.TotalUtilityDue.IsZero() {
		t.Errorf("expected zero aggregates, got %+v", s)
	}
	if s.LatestExpense != nil {
		t.Error("expected no latest expense")
	}
	if len(s.CategoryTotals) != 0 {
		t.Error("expected no category totals")
	}
}

func TestNetBalanceNegative(t *testing.T) {
	roommates := []models.Roommate{
		{ID: "a", Name: "A", Balance: decimal.NewFromInt(500), Status: models.StatusPay},
		{ID: "b", Name: "B", Balance: decimal.NewFromInt(200), Status: models.StatusFriendlyNudge},
		{ID: "c", Name: "C", Balance: decimal.Zero, Status: models.StatusSynced},
	}
	if got := NetBalance(roommates); got.String() != "-300" {
		t.Errorf("NetBalance = %s, want -300", got)
	}
}
