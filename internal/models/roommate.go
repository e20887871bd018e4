package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Status is the settlement state of a Roommate relative to the primary user.
type Status int

const (
	// StatusSynced means nothing is owed in either direction. Balance is zero.
	StatusSynced Status = iota

	// StatusPay means the primary user owes the roommate Balance.
	StatusPay

	// StatusFriendlyNudge means the roommate owes the primary user Balance.
	StatusFriendlyNudge
)

// ParseStatus maps the persisted text form back to a Status.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "Synced":
		return StatusSynced, nil
	case "Pay":
		return StatusPay, nil
	case "Friendly Nudge", "FriendlyNudge":
		return StatusFriendlyNudge, nil
	}
	return 0, fmt.Errorf("unknown roommate status %q", s)
}

func (s Status) String() string {
	switch s {
	case StatusSynced:
		return "Synced"
	case StatusPay:
		return "Pay"
	case StatusFriendlyNudge:
		return "Friendly Nudge"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Valid reports whether s is one of the declared statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusSynced, StatusPay, StatusFriendlyNudge:
		return true
	}
	return false
}

func (s Status) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("unknown roommate status %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Roommate is a household member other than the primary user.
type Roommate struct {
	// ID is the unique identifier for the roommate (UUID format for invited
	// roommates; seed data uses short stable IDs).
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Avatar is an opaque image reference. Not behaviorally significant.
	Avatar string `json:"avatar"`

	// Balance is the outstanding amount in whole rupees. Never negative.
	// Who owes whom is given by Status.
	Balance decimal.Decimal `json:"balance"`

	// Status is Synced exactly when Balance is zero.
	Status Status `json:"status"`
}

// Validate checks the roommate invariants.
func (r Roommate) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return invalid("id", "must not be empty")
	}
	if strings.TrimSpace(r.Name) == "" {
		return invalid("name", "must not be empty")
	}
	if r.Balance.IsNegative() {
		return invalid("balance", "must not be negative")
	}
	if !r.Balance.Equal(r.Balance.Round(0)) {
		return invalid("balance", "must be a whole amount")
	}
	switch r.Status {
	case StatusSynced:
		if !r.Balance.IsZero() {
			return invalid("status", "Synced requires a zero balance")
		}
	case StatusPay, StatusFriendlyNudge:
		if r.Balance.IsZero() {
			return invalid("status", fmt.Sprintf("%s requires a positive balance", r.Status))
		}
	default:
		return invalid("status", fmt.Sprintf("unknown value %d", int(r.Status)))
	}
	return nil
}
