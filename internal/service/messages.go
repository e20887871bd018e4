package service

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/roomease/internal/calculator"
	"github.com/mmynk/roomease/internal/models"
	"github.com/mmynk/roomease/internal/notify"
)

type ListRoommatesRequest struct{}

type ListRoommatesResponse struct {
	Roommates []models.Roommate `json:"roommates"`
}

type ListExpensesRequest struct{}

type ListExpensesResponse struct {
	Expenses []models.Expense `json:"expenses"`
}

type ListUtilitiesRequest struct{}

type ListUtilitiesResponse struct {
	Utilities []models.Utility `json:"utilities"`
}

type AddExpenseRequest struct {
	Title    string          `json:"title"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	// PayerID is empty when the primary user paid.
	PayerID string `json:"payerId,omitempty"`
	Date    string `json:"date,omitempty"`
}

type AddExpenseResponse struct {
	Expense models.Expense `json:"expense"`
	// Payer is the paying roommate after the split.
	Payer *models.Roommate `json:"payer,omitempty"`
}

type AddRoommateRequest struct {
	Name string `json:"name"`
}

type AddRoommateResponse struct {
	Roommate models.Roommate `json:"roommate"`
}

type UpdateRoommateStatusRequest struct {
	ID     string        `json:"id"`
	Status models.Status `json:"status"`
	// Balance is optional; the current balance is kept when omitted.
	Balance *decimal.Decimal `json:"balance,omitempty"`
}

type UpdateRoommateStatusResponse struct {
	Roommate models.Roommate `json:"roommate"`
}

type SettleRoommateRequest struct {
	ID string `json:"id"`
}

type SettleRoommateResponse struct {
	Roommate models.Roommate `json:"roommate"`
	Paid     decimal.Decimal `json:"paid"`
}

type NudgeRoommateRequest struct {
	ID string `json:"id"`
}

type NudgeRoommateResponse struct {
	Notification notify.Notification `json:"notification"`
}

type SettleUtilitiesRequest struct{}

type SettleUtilitiesResponse struct {
	Utilities []models.Utility `json:"utilities"`
}

type GetSummaryRequest struct{}

type GetSummaryResponse struct {
	Summary calculator.Summary `json:"summary"`
}

type ListNotificationsRequest struct{}

type ListNotificationsResponse struct {
	Notifications []notify.Notification `json:"notifications"`
}

type AskAssistantRequest struct {
	Message string `json:"message"`
}

type AskAssistantResponse struct {
	Reply string `json:"reply"`
}
