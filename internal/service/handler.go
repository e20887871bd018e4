package service

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// HouseholdServiceName is the fully-qualified name of the HouseholdService.
const HouseholdServiceName = "roomease.v1.HouseholdService"

// Procedure paths served by NewHouseholdServiceHandler.
const (
	ListRoommatesProcedure        = "/" + HouseholdServiceName + "/ListRoommates"
	ListExpensesProcedure         = "/" + HouseholdServiceName + "/ListExpenses"
	ListUtilitiesProcedure        = "/" + HouseholdServiceName + "/ListUtilities"
	AddExpenseProcedure           = "/" + HouseholdServiceName + "/AddExpense"
	AddRoommateProcedure          = "/" + HouseholdServiceName + "/AddRoommate"
	UpdateRoommateStatusProcedure = "/" + HouseholdServiceName + "/UpdateRoommateStatus"
	SettleRoommateProcedure       = "/" + HouseholdServiceName + "/SettleRoommate"
	NudgeRoommateProcedure        = "/" + HouseholdServiceName + "/NudgeRoommate"
	SettleUtilitiesProcedure      = "/" + HouseholdServiceName + "/SettleUtilities"
	GetSummaryProcedure           = "/" + HouseholdServiceName + "/GetSummary"
	ListNotificationsProcedure    = "/" + HouseholdServiceName + "/ListNotifications"
	AskAssistantProcedure         = "/" + HouseholdServiceName + "/AskAssistant"
)

// NewHouseholdServiceHandler builds an HTTP handler for every procedure. It
// returns the path to mount the handler on.
func NewHouseholdServiceHandler(svc *HouseholdService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(ListRoommatesProcedure, connect.NewUnaryHandler(ListRoommatesProcedure, svc.ListRoommates, opts...))
	mux.Handle(ListExpensesProcedure, connect.NewUnaryHandler(ListExpensesProcedure, svc.ListExpenses, opts...))
	mux.Handle(ListUtilitiesProcedure, connect.NewUnaryHandler(ListUtilitiesProcedure, svc.ListUtilities, opts...))
	mux.Handle(AddExpenseProcedure, connect.NewUnaryHandler(AddExpenseProcedure, svc.AddExpense, opts...))
	mux.Handle(AddRoommateProcedure, connect.NewUnaryHandler(AddRoommateProcedure, svc.AddRoommate, opts...))
	mux.Handle(UpdateRoommateStatusProcedure, connect.NewUnaryHandler(UpdateRoommateStatusProcedure, svc.UpdateRoommateStatus, opts...))
	mux.Handle(SettleRoommateProcedure, connect.NewUnaryHandler(SettleRoommateProcedure, svc.SettleRoommate, opts...))
	mux.Handle(NudgeRoommateProcedure, connect.NewUnaryHandler(NudgeRoommateProcedure, svc.NudgeRoommate, opts...))
	mux.Handle(SettleUtilitiesProcedure, connect.NewUnaryHandler(SettleUtilitiesProcedure, svc.SettleUtilities, opts...))
	mux.Handle(GetSummaryProcedure, connect.NewUnaryHandler(GetSummaryProcedure, svc.GetSummary, opts...))
	mux.Handle(ListNotificationsProcedure, connect.NewUnaryHandler(ListNotificationsProcedure, svc.ListNotifications, opts...))
	mux.Handle(AskAssistantProcedure, connect.NewUnaryHandler(AskAssistantProcedure, svc.AskAssistant, opts...))

	return "/" + HouseholdServiceName + "/", mux
}

// HouseholdServiceClient calls a HouseholdService over Connect.
type HouseholdServiceClient struct {
	listRoommates        *connect.Client[ListRoommatesRequest, ListRoommatesResponse]
	listExpenses         *connect.Client[ListExpensesRequest, ListExpensesResponse]
	listUtilities        *connect.Client[ListUtilitiesRequest, ListUtilitiesResponse]
	addExpense           *connect.Client[AddExpenseRequest, AddExpenseResponse]
	addRoommate          *connect.Client[AddRoommateRequest, AddRoommateResponse]
	updateRoommateStatus *connect.Client[UpdateRoommateStatusRequest, UpdateRoommateStatusResponse]
	settleRoommate       *connect.Client[SettleRoommateRequest, SettleRoommateResponse]
	nudgeRoommate        *connect.Client[NudgeRoommateRequest, NudgeRoommateResponse]
	settleUtilities      *connect.Client[SettleUtilitiesRequest, SettleUtilitiesResponse]
	getSummary           *connect.Client[GetSummaryRequest, GetSummaryResponse]
	listNotifications    *connect.Client[ListNotificationsRequest, ListNotificationsResponse]
	askAssistant         *connect.Client[AskAssistantRequest, AskAssistantResponse]
}

// NewHouseholdServiceClient creates a client for the service at baseURL,
// for example http://127.0.0.1:8080.
func NewHouseholdServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *HouseholdServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(jsonCodec{})}, opts...)
	return &HouseholdServiceClient{
		listRoommates:        connect.NewClient[ListRoommatesRequest, ListRoommatesResponse](httpClient, baseURL+ListRoommatesProcedure, opts...),
		listExpenses:         connect.NewClient[ListExpensesRequest, ListExpensesResponse](httpClient, baseURL+ListExpensesProcedure, opts...),
		listUtilities:        connect.NewClient[ListUtilitiesRequest, ListUtilitiesResponse](httpClient, baseURL+ListUtilitiesProcedure, opts...),
		addExpense:           connect.NewClient[AddExpenseRequest, AddExpenseResponse](httpClient, baseURL+AddExpenseProcedure, opts...),
		addRoommate:          connect.NewClient[AddRoommateRequest, AddRoommateResponse](httpClient, baseURL+AddRoommateProcedure, opts...),
		updateRoommateStatus: connect.NewClient[UpdateRoommateStatusRequest, UpdateRoommateStatusResponse](httpClient, baseURL+UpdateRoommateStatusProcedure, opts...),
		settleRoommate:       connect.NewClient[SettleRoommateRequest, SettleRoommateResponse](httpClient, baseURL+SettleRoommateProcedure, opts...),
		nudgeRoommate:        connect.NewClient[NudgeRoommateRequest, NudgeRoommateResponse](httpClient, baseURL+NudgeRoommateProcedure, opts...),
		settleUtilities:      connect.NewClient[SettleUtilitiesRequest, SettleUtilitiesResponse](httpClient, baseURL+SettleUtilitiesProcedure, opts...),
		getSummary:           connect.NewClient[GetSummaryRequest, GetSummaryResponse](httpClient, baseURL+GetSummaryProcedure, opts...),
		listNotifications:    connect.NewClient[ListNotificationsRequest, ListNotificationsResponse](httpClient, baseURL+ListNotificationsProcedure, opts...),
		askAssistant:         connect.NewClient[AskAssistantRequest, AskAssistantResponse](httpClient, baseURL+AskAssistantProcedure, opts...),
	}
}

func (c *HouseholdServiceClient) ListRoommates(ctx context.Context, req *connect.Request[ListRoommatesRequest]) (*connect.Response[ListRoommatesResponse], error) {
	return c.listRoommates.CallUnary(ctx, req)
}

func (c *HouseholdServiceClient) ListExpenses(ctx context.Context, req *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error) {
	return c.listExpenses.CallUnary(ctx, req)
}

func (c *HouseholdServiceClient) ListUtilities(ctx context.Context, req *connect.Request[ListUtilitiesRequest]) (*connect.Response[ListUtilitiesResponse], error) {
	return c.listUtilities.CallUnary(ctx, req)
}

func (c *HouseholdServiceClient) AddExpense(ctx context.Context, req *connect.Request[AddExpenseRequest]) (*connect.Response[AddExpenseResponse], error) {
	return c.addExpense.CallUnary(ctx, req)
}

func (c *HouseholdServiceClient) AddRoommate(ctx context.Context, req *connect.Request[AddRoommateRequest]) (*connect.Response[AddRoommateResponse], error) {
	return c.addRoommate.CallUnary(ctx, req)
}

func (c *HouseholdServiceClient) UpdateRoommateStatus(ctx context.Context, req *connect.Request[UpdateRoommateStatusRequest]) (*connect.Response[UpdateRoommateStatusResponse], error) {
	return c.updateRoommateStatus.CallUnary(ctx, req)
}

func (c *HouseholdServiceClient) SettleRoommate(ctx context.Context, req *connect.Request[SettleRoommateRequest]) (*connect.Response[SettleRoommateResponse], error) {
	return c.settleRoommate.CallUnary(ctx, req)
}

func (c *HouseholdServiceClient) NudgeRoommate(ctx context.Context, req *connect.Request[NudgeRoommateRequest]) (*connect.Response[NudgeRoommateResponse], error) {
	return c.nudgeRoommate.CallUnary(ctx, req)
}

func (c *HouseholdServiceClient) SettleUtilities(ctx context.Context, req *connect.Request[SettleUtilitiesRequest]) (*connect.Response[SettleUtilitiesResponse], error) {
	return c.settleUtilities.CallUnary(ctx, req)
}

func (c *HouseholdServiceClient) GetSummary(ctx context.Context, req *connect.Request[GetSummaryRequest]) (*connect.Response[GetSummaryResponse], error) {
	return c.getSummary.CallUnary(ctx, req)
}

func (c *HouseholdServiceClient) ListNotifications(ctx context.Context, req *connect.Request[ListNotificationsRequest]) (*connect.Response[ListNotificationsResponse], error) {
	return c.listNotifications.CallUnary(ctx, req)
}

func (c *HouseholdServiceClient) AskAssistant(ctx context.Context, req *connect.Request[AskAssistantRequest]) (*connect.Response[AskAssistantResponse], error) {
	return c.askAssistant.CallUnary(ctx, req)
}
