package household

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/mmynk/roomease/internal/models"
	"github.com/mmynk/roomease/internal/notify"
)

// SettleUtilities marks every utility Settled with nothing left to pay.
// Cost and presentation fields are kept. Calling it again changes nothing
// but still rewrites the stored collection.
func (h *Household) SettleUtilities(ctx context.Context) []models.Utility {
	h.mu.Lock()
	defer h.mu.Unlock()

	paid := decimal.Zero
	for i := range h.utilities {
		paid = paid.Add(h.utilities[i].Mine)
		h.utilities[i].Due = models.DueSettled
		h.utilities[i].Mine = decimal.Zero
	}
	h.utilitiesChangedLocked(ctx)

	slog.InfoContext(ctx, "Utilities settled", "count", len(h.utilities), "amount", paid.String())
	return append([]models.Utility(nil), h.utilities...)
}

// Reminders lists what the primary user still has to pay: one reminder per
// roommate in status Pay and one per utility with an outstanding share.
func (h *Household) Reminders() []notify.Notification {
	state := h.State()

	var out []notify.Notification
	for _, r := range state.Roommates {
		switch r.Status {
		case models.StatusPay:
			out = append(out, h.notification(notify.KindReminder, r.ID,
				"Settlement pending",
				fmt.Sprintf("You owe %s ₹%s.", r.Name, r.Balance.StringFixed(0)),
			))
		case models.StatusSynced, models.StatusFriendlyNudge:
		}
	}
	for _, u := range state.Utilities {
		if u.Mine.IsPositive() {
			out = append(out, h.notification(notify.KindReminder, "",
				fmt.Sprintf("%s due", u.Title),
				fmt.Sprintf("Your share of %s is ₹%s (%s).", u.Title, u.Mine.StringFixed(0), u.Due),
			))
		}
	}
	return out
}
