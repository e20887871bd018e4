package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoommateValidate(t *testing.T) {
	tests := []struct {
		name      string
		roommate  Roommate
		wantField string
	}{
		{
			name:     "synced with zero balance",
			roommate: Roommate{ID: "r1", Name: "Meera", Balance: decimal.Zero, Status: StatusSynced},
		},
		{
			name:     "pay with positive balance",
			roommate: Roommate{ID: "r1", Name: "Priya", Balance: decimal.NewFromInt(120), Status: StatusPay},
		},
		{
			name:      "empty name",
			roommate:  Roommate{ID: "r1", Name: "  ", Status: StatusSynced},
			wantField: "name",
		},
		{
			name:      "negative balance",
			roommate:  Roommate{ID: "r1", Name: "Priya", Balance: decimal.NewFromInt(-5), Status: StatusPay},
			wantField: "balance",
		},
		{
			name:      "fractional balance",
			roommate:  Roommate{ID: "r1", Name: "Priya", Balance: decimal.RequireFromString("10.5"), Status: StatusPay},
			wantField: "balance",
		},
		{
			name:      "synced with balance",
			roommate:  Roommate{ID: "r1", Name: "Meera", Balance: decimal.NewFromInt(10), Status: StatusSynced},
			wantField: "status",
		},
		{
			name:      "nudge with zero balance",
			roommate:  Roommate{ID: "r1", Name: "Ananya", Balance: decimal.Zero, Status: StatusFriendlyNudge},
			wantField: "status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.roommate.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestExpenseValidate(t *testing.T) {
	ok := Expense{ID: "e1", Amount: decimal.NewFromInt(100), Category: CategoryFood}
	assert.NoError(t, ok.Validate())

	zero := ok
	zero.Amount = decimal.Zero
	assert.Error(t, zero.Validate())

	unknown := ok
	unknown.Category = "Rent"
	assert.Error(t, unknown.Validate())
}

func TestUtilityValidate(t *testing.T) {
	u := Utility{ID: "u1", Cost: decimal.NewFromInt(1200), Mine: decimal.NewFromInt(300)}
	assert.NoError(t, u.Validate())

	u.Mine = decimal.NewFromInt(1300)
	assert.Error(t, u.Validate())

	u.Mine = decimal.NewFromInt(-1)
	assert.Error(t, u.Validate())
}

func TestStatusJSON(t *testing.T) {
	data, err := json.Marshal(Roommate{ID: "1", Name: "A", Balance: decimal.NewFromInt(5), Status: StatusFriendlyNudge})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"status":"Friendly Nudge"`)

	var r Roommate
	err = json.Unmarshal([]byte(`{"id":"1","name":"A","balance":5,"status":"Owes"}`), &r)
	assert.Error(t, err, "unknown status text must not decode")
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("wifi")
	require.NoError(t, err)
	assert.Equal(t, CategoryWiFi, c)

	_, err = ParseCategory("Rent")
	assert.Error(t, err)
}

func TestSeedIsValidAndFresh(t *testing.T) {
	seed := Seed()
	require.Len(t, seed.Roommates, 3)
	require.Len(t, seed.Expenses, 3)
	require.Len(t, seed.Utilities, 3)

	for _, r := range seed.Roommates {
		assert.NoError(t, r.Validate(), r.Name)
	}
	for _, e := range seed.Expenses {
		assert.NoError(t, e.Validate(), e.Title)
	}
	for _, u := range seed.Utilities {
		assert.NoError(t, u.Validate(), u.Title)
	}

	seed.Roommates[0].Name = "changed"
	assert.Equal(t, "Ananya Singh", Seed().Roommates[0].Name)
}
