package household

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/roomease/internal/calculator"
	"github.com/mmynk/roomease/internal/models"
	"github.com/mmynk/roomease/internal/notify"
)

const avatarURL = "https://api.dicebear.com/7.x/lorelei/svg?flip=true&seed="

// NewExpense is the input for AddExpense.
type NewExpense struct {
	Title    string
	Amount   decimal.Decimal
	Category models.Category

	// PayerID is a roommate ID, or empty when the primary user paid.
	PayerID string

	// Date is an optional display label; models.DefaultExpenseDate otherwise.
	Date string
}

// ExpenseReceipt describes the effect of AddExpense.
type ExpenseReceipt struct {
	Expense models.Expense

	// Payer is the paying roommate after the split, nil when the primary
	// user paid.
	Payer *models.Roommate
}

// AddExpense records a new expense at the front of the expense list and
// applies the split.
//
// Algorithm:
//   - primary user paid: no roommate balance changes
//   - roommate paid: per_head = amount / (roommates + 1);
//     payer.balance = round(payer.balance + per_head); payer.status = Pay
func (h *Household) AddExpense(ctx context.Context, in NewExpense) (ExpenseReceipt, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	expense := models.Expense{
		ID:       h.newID(),
		Title:    strings.TrimSpace(in.Title),
		Amount:   in.Amount,
		Date:     strings.TrimSpace(in.Date),
		Category: in.Category,
		PayerID:  in.PayerID,
	}
	if expense.Title == "" {
		expense.Title = string(expense.Category)
	}
	if expense.Date == "" {
		expense.Date = models.DefaultExpenseDate
	}
	if err := expense.Validate(); err != nil {
		return ExpenseReceipt{}, err
	}

	receipt := ExpenseReceipt{Expense: expense}
	payerIdx := -1
	var payer models.Roommate
	if !expense.PaidByPrimaryUser() {
		i, err := h.indexLocked(expense.PayerID)
		if err != nil {
			return ExpenseReceipt{}, err
		}
		perHead, err := calculator.PerHead(expense.Amount, len(h.roommates))
		if err != nil {
			return ExpenseReceipt{}, err
		}
		payer = h.roommates[i]
		balance := calculator.AddShare(payer.Balance, perHead)
		// A share that rounds away to nothing leaves the roommate as is.
		if balance.IsPositive() {
			payer.Balance = balance
			payer.Status = models.StatusPay
			payerIdx = i
		}
		receipt.Payer = &payer
	}

	h.expenses = append([]models.Expense{expense}, h.expenses...)
	h.expensesChangedLocked(ctx)
	if payerIdx >= 0 {
		h.roommates[payerIdx] = payer
		h.roommatesChangedLocked(ctx)
	}

	slog.InfoContext(ctx, "Expense recorded",
		"expense_id", expense.ID,
		"amount", expense.Amount.String(),
		"category", expense.Category,
		"payer_id", expense.PayerID,
	)
	return receipt, nil
}

// AddRoommate invites a roommate with a zero balance and appends them.
func (h *Household) AddRoommate(ctx context.Context, name string) (models.Roommate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Roommate{}, &models.ValidationError{Field: "name", Reason: "must not be empty"}
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	roommate := models.Roommate{
		ID:      h.newID(),
		Name:    name,
		Avatar:  avatarURL + url.QueryEscape(name),
		Balance: decimal.Zero,
		Status:  models.StatusSynced,
	}
	h.roommates = append(h.roommates, roommate)
	h.roommatesChangedLocked(ctx)

	slog.InfoContext(ctx, "Roommate added", "roommate_id", roommate.ID, "name", roommate.Name)
	return roommate, nil
}

// UpdateRoommateStatus sets a roommate's status and, when balance is non-nil,
// their balance rounded to a whole unit. The result must satisfy the
// roommate invariants; otherwise nothing changes.
func (h *Household) UpdateRoommateStatus(ctx context.Context, id string, status models.Status, balance *decimal.Decimal) (models.Roommate, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	i, err := h.indexLocked(id)
	if err != nil {
		return models.Roommate{}, err
	}

	updated := h.roommates[i]
	updated.Status = status
	if balance != nil {
		updated.Balance = calculator.RoundWhole(*balance)
	}
	if err := updated.Validate(); err != nil {
		return models.Roommate{}, err
	}

	h.roommates[i] = updated
	h.roommatesChangedLocked(ctx)

	slog.InfoContext(ctx, "Roommate status updated",
		"roommate_id", id,
		"status", updated.Status,
		"balance", updated.Balance.String(),
	)
	return updated, nil
}

// Settle records that the primary user paid off what they owe a roommate.
// The roommate must be in status Pay; they end Synced with a zero balance.
// It returns the updated roommate and the amount that was settled.
func (h *Household) Settle(ctx context.Context, id string) (models.Roommate, decimal.Decimal, error) {
	h.mu.Lock()
	i, err := h.indexLocked(id)
	if err != nil {
		h.mu.Unlock()
		return models.Roommate{}, decimal.Zero, err
	}

	roommate := h.roommates[i]
	switch roommate.Status {
	case models.StatusPay:
	case models.StatusSynced, models.StatusFriendlyNudge:
		h.mu.Unlock()
		return models.Roommate{}, decimal.Zero, fmt.Errorf("%w: %s is %s", ErrNotPayable, roommate.Name, roommate.Status)
	default:
		h.mu.Unlock()
		return models.Roommate{}, decimal.Zero, fmt.Errorf("%w: %s has unknown status %d", ErrNotPayable, roommate.Name, int(roommate.Status))
	}

	settled := roommate.Balance
	roommate.Balance = decimal.Zero
	roommate.Status = models.StatusSynced
	h.roommates[i] = roommate
	h.roommatesChangedLocked(ctx)
	h.mu.Unlock()

	slog.InfoContext(ctx, "Roommate settled", "roommate_id", id, "amount", settled.String())
	h.notifier.Notify(ctx, h.notification(notify.KindSettled, id,
		fmt.Sprintf("Settled with %s!", roommate.Name),
		fmt.Sprintf("You paid %s ₹%s.", roommate.Name, settled.StringFixed(0)),
	))
	return roommate, settled, nil
}

// Nudge sends a reminder to a roommate who owes the primary user. It never
// changes household state.
func (h *Household) Nudge(ctx context.Context, id string) (notify.Notification, error) {
	h.mu.Lock()
	i, err := h.indexLocked(id)
	if err != nil {
		h.mu.Unlock()
		return notify.Notification{}, err
	}
	roommate := h.roommates[i]
	h.mu.Unlock()

	switch roommate.Status {
	case models.StatusFriendlyNudge:
	case models.StatusSynced, models.StatusPay:
		return notify.Notification{}, fmt.Errorf("%w: %s is %s", ErrNotNudgeable, roommate.Name, roommate.Status)
	default:
		return notify.Notification{}, fmt.Errorf("%w: %s has unknown status %d", ErrNotNudgeable, roommate.Name, int(roommate.Status))
	}

	n := h.notification(notify.KindNudge, id,
		fmt.Sprintf("Nudge sent to %s!", roommate.Name),
		fmt.Sprintf("%s owes you ₹%s.", roommate.Name, roommate.Balance.StringFixed(0)),
	)
	h.notifier.Notify(ctx, n)
	return n, nil
}
