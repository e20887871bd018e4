package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/roomease/internal/assistant"
	"github.com/mmynk/roomease/internal/household"
	"github.com/mmynk/roomease/internal/models"
	"github.com/mmynk/roomease/internal/notify"
)

// HouseholdService implements the Connect HouseholdService on top of a
// Household.
type HouseholdService struct {
	household *household.Household
	feed      *notify.Feed
	assistant *assistant.Assistant
}

// NewHouseholdService creates a HouseholdService. feed may be nil, in which
// case ListNotifications always returns an empty list.
func NewHouseholdService(h *household.Household, feed *notify.Feed, asst *assistant.Assistant) *HouseholdService {
	if asst == nil {
		asst = assistant.New()
	}
	return &HouseholdService{household: h, feed: feed, assistant: asst}
}

// toConnectError maps domain errors onto Connect codes.
func toConnectError(err error) error {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr), errors.Is(err, assistant.ErrEmptyMessage):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, household.ErrRoommateNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, household.ErrNotPayable), errors.Is(err, household.ErrNotNudgeable):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// ListRoommates returns roommates in invite order.
func (s *HouseholdService) ListRoommates(ctx context.Context, req *connect.Request[ListRoommatesRequest]) (*connect.Response[ListRoommatesResponse], error) {
	return connect.NewResponse(&ListRoommatesResponse{Roommates: s.household.Roommates()}), nil
}

// ListExpenses returns expenses newest first.
func (s *HouseholdService) ListExpenses(ctx context.Context, req *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error) {
	return connect.NewResponse(&ListExpensesResponse{Expenses: s.household.Expenses()}), nil
}

func (s *HouseholdService) ListUtilities(ctx context.Context, req *connect.Request[ListUtilitiesRequest]) (*connect.Response[ListUtilitiesResponse], error) {
	return connect.NewResponse(&ListUtilitiesResponse{Utilities: s.household.Utilities()}), nil
}

// AddExpense records an expense and applies the split to the payer.
func (s *HouseholdService) AddExpense(ctx context.Context, req *connect.Request[AddExpenseRequest]) (*connect.Response[AddExpenseResponse], error) {
	category, err := models.ParseCategory(req.Msg.Category)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	receipt, err := s.household.AddExpense(ctx, household.NewExpense{
		Title:    req.Msg.Title,
		Amount:   req.Msg.Amount,
		Category: category,
		PayerID:  req.Msg.PayerID,
		Date:     req.Msg.Date,
	})
	if err != nil {
		slog.Warn("AddExpense rejected", "payer_id", req.Msg.PayerID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&AddExpenseResponse{
		Expense: receipt.Expense,
		Payer:   receipt.Payer,
	}), nil
}

// AddRoommate invites a roommate with a zero balance.
func (s *HouseholdService) AddRoommate(ctx context.Context, req *connect.Request[AddRoommateRequest]) (*connect.Response[AddRoommateResponse], error) {
	r, err := s.household.AddRoommate(ctx, req.Msg.Name)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&AddRoommateResponse{Roommate: r}), nil
}

func (s *HouseholdService) UpdateRoommateStatus(ctx context.Context, req *connect.Request[UpdateRoommateStatusRequest]) (*connect.Response[UpdateRoommateStatusResponse], error) {
	r, err := s.household.UpdateRoommateStatus(ctx, req.Msg.ID, req.Msg.Status, req.Msg.Balance)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&UpdateRoommateStatusResponse{Roommate: r}), nil
}

// SettleRoommate records that the primary user paid a roommate in full.
func (s *HouseholdService) SettleRoommate(ctx context.Context, req *connect.Request[SettleRoommateRequest]) (*connect.Response[SettleRoommateResponse], error) {
	r, paid, err := s.household.Settle(ctx, req.Msg.ID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&SettleRoommateResponse{Roommate: r, Paid: paid}), nil
}

// NudgeRoommate reminds a roommate who owes the primary user. No state
// changes.
func (s *HouseholdService) NudgeRoommate(ctx context.Context, req *connect.Request[NudgeRoommateRequest]) (*connect.Response[NudgeRoommateResponse], error) {
	n, err := s.household.Nudge(ctx, req.Msg.ID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&NudgeRoommateResponse{Notification: n}), nil
}

func (s *HouseholdService) SettleUtilities(ctx context.Context, req *connect.Request[SettleUtilitiesRequest]) (*connect.Response[SettleUtilitiesResponse], error) {
	return connect.NewResponse(&SettleUtilitiesResponse{Utilities: s.household.SettleUtilities(ctx)}), nil
}

// GetSummary returns the dashboard aggregates.
func (s *HouseholdService) GetSummary(ctx context.Context, req *connect.Request[GetSummaryRequest]) (*connect.Response[GetSummaryResponse], error) {
	return connect.NewResponse(&GetSummaryResponse{Summary: s.household.Summary()}), nil
}

// ListNotifications returns recent notifications, newest first.
func (s *HouseholdService) ListNotifications(ctx context.Context, req *connect.Request[ListNotificationsRequest]) (*connect.Response[ListNotificationsResponse], error) {
	notifications := []notify.Notification{}
	if s.feed != nil {
		notifications = s.feed.List()
	}
	return connect.NewResponse(&ListNotificationsResponse{Notifications: notifications}), nil
}

// AskAssistant returns a canned reply after the assistant's typing delay.
func (s *HouseholdService) AskAssistant(ctx context.Context, req *connect.Request[AskAssistantRequest]) (*connect.Response[AskAssistantResponse], error) {
	reply, err := s.assistant.Ask(ctx, req.Msg.Message)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&AskAssistantResponse{Reply: reply}), nil
}
