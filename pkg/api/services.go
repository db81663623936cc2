package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// PathPrefix is shared by every procedure path.
const PathPrefix = "/splitz.v1."

const (
	GroupServiceName      = "splitz.v1.GroupService"
	ExpenseServiceName    = "splitz.v1.ExpenseService"
	SettlementServiceName = "splitz.v1.SettlementService"
	BalanceServiceName    = "splitz.v1.BalanceService"
)

// Procedure paths, in the form /package.Service/Method.
const (
	GroupServiceCreateGroupProcedure             = "/splitz.v1.GroupService/CreateGroup"
	GroupServiceGetGroupProcedure                = "/splitz.v1.GroupService/GetGroup"
	GroupServiceListGroupsProcedure              = "/splitz.v1.GroupService/ListGroups"
	GroupServiceUpdateGroupProcedure             = "/splitz.v1.GroupService/UpdateGroup"
	GroupServiceDeleteGroupProcedure             = "/splitz.v1.GroupService/DeleteGroup"
	GroupServiceAddMemberProcedure               = "/splitz.v1.GroupService/AddMember"
	GroupServiceRemoveMemberProcedure            = "/splitz.v1.GroupService/RemoveMember"
	ExpenseServiceCreateExpenseProcedure         = "/splitz.v1.ExpenseService/CreateExpense"
	ExpenseServiceGetExpenseProcedure            = "/splitz.v1.ExpenseService/GetExpense"
	ExpenseServiceListExpensesProcedure          = "/splitz.v1.ExpenseService/ListExpenses"
	ExpenseServiceUpdateExpenseProcedure         = "/splitz.v1.ExpenseService/UpdateExpense"
	ExpenseServiceDeleteExpenseProcedure         = "/splitz.v1.ExpenseService/DeleteExpense"
	ExpenseServiceListCategoriesProcedure        = "/splitz.v1.ExpenseService/ListCategories"
	SettlementServiceCreateSettlementProcedure   = "/splitz.v1.SettlementService/CreateSettlement"
	SettlementServiceMarkSettlementPaidProcedure = "/splitz.v1.SettlementService/MarkSettlementPaid"
	SettlementServiceConfirmSettlementProcedure  = "/splitz.v1.SettlementService/ConfirmSettlement"
	SettlementServiceGetSettlementProcedure      = "/splitz.v1.SettlementService/GetSettlement"
	SettlementServiceListSettlementsProcedure    = "/splitz.v1.SettlementService/ListSettlements"
	BalanceServiceGetGroupBalancesProcedure      = "/splitz.v1.BalanceService/GetGroupBalances"
	BalanceServiceGetUserBalancesProcedure       = "/splitz.v1.BalanceService/GetUserBalances"
	BalanceServicePreviewSplitsProcedure         = "/splitz.v1.BalanceService/PreviewSplits"
)

// GroupServiceHandler is the server side of GroupServiceName.
type GroupServiceHandler interface {
	CreateGroup(context.Context, *connect.Request[CreateGroupRequest]) (*connect.Response[CreateGroupResponse], error)
	GetGroup(context.Context, *connect.Request[GetGroupRequest]) (*connect.Response[GetGroupResponse], error)
	ListGroups(context.Context, *connect.Request[ListGroupsRequest]) (*connect.Response[ListGroupsResponse], error)
	UpdateGroup(context.Context, *connect.Request[UpdateGroupRequest]) (*connect.Response[UpdateGroupResponse], error)
	DeleteGroup(context.Context, *connect.Request[DeleteGroupRequest]) (*connect.Response[DeleteGroupResponse], error)
	AddMember(context.Context, *connect.Request[AddMemberRequest]) (*connect.Response[AddMemberResponse], error)
	RemoveMember(context.Context, *connect.Request[RemoveMemberRequest]) (*connect.Response[RemoveMemberResponse], error)
}

// NewGroupServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewGroupServiceHandler(svc GroupServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	createGroupHandler := connect.NewUnaryHandler(GroupServiceCreateGroupProcedure, svc.CreateGroup, opts...)
	getGroupHandler := connect.NewUnaryHandler(GroupServiceGetGroupProcedure, svc.GetGroup, opts...)
	listGroupsHandler := connect.NewUnaryHandler(GroupServiceListGroupsProcedure, svc.ListGroups, opts...)
	updateGroupHandler := connect.NewUnaryHandler(GroupServiceUpdateGroupProcedure, svc.UpdateGroup, opts...)
	deleteGroupHandler := connect.NewUnaryHandler(GroupServiceDeleteGroupProcedure, svc.DeleteGroup, opts...)
	addMemberHandler := connect.NewUnaryHandler(GroupServiceAddMemberProcedure, svc.AddMember, opts...)
	removeMemberHandler := connect.NewUnaryHandler(GroupServiceRemoveMemberProcedure, svc.RemoveMember, opts...)
	return "/" + GroupServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case GroupServiceCreateGroupProcedure:
			createGroupHandler.ServeHTTP(w, r)
		case GroupServiceGetGroupProcedure:
			getGroupHandler.ServeHTTP(w, r)
		case GroupServiceListGroupsProcedure:
			listGroupsHandler.ServeHTTP(w, r)
		case GroupServiceUpdateGroupProcedure:
			updateGroupHandler.ServeHTTP(w, r)
		case GroupServiceDeleteGroupProcedure:
			deleteGroupHandler.ServeHTTP(w, r)
		case GroupServiceAddMemberProcedure:
			addMemberHandler.ServeHTTP(w, r)
		case GroupServiceRemoveMemberProcedure:
			removeMemberHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// GroupServiceClient is a client for GroupService, which manages groups and their membership.
type GroupServiceClient struct {
	createGroup  *connect.Client[CreateGroupRequest, CreateGroupResponse]
	getGroup     *connect.Client[GetGroupRequest, GetGroupResponse]
	listGroups   *connect.Client[ListGroupsRequest, ListGroupsResponse]
	updateGroup  *connect.Client[UpdateGroupRequest, UpdateGroupResponse]
	deleteGroup  *connect.Client[DeleteGroupRequest, DeleteGroupResponse]
	addMember    *connect.Client[AddMemberRequest, AddMemberResponse]
	removeMember *connect.Client[RemoveMemberRequest, RemoveMemberResponse]
}

// NewGroupServiceClient talks to a GroupService at baseURL, e.g. http://localhost:8080.
func NewGroupServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *GroupServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &GroupServiceClient{
		createGroup:  connect.NewClient[CreateGroupRequest, CreateGroupResponse](httpClient, baseURL+GroupServiceCreateGroupProcedure, opts...),
		getGroup:     connect.NewClient[GetGroupRequest, GetGroupResponse](httpClient, baseURL+GroupServiceGetGroupProcedure, opts...),
		listGroups:   connect.NewClient[ListGroupsRequest, ListGroupsResponse](httpClient, baseURL+GroupServiceListGroupsProcedure, opts...),
		updateGroup:  connect.NewClient[UpdateGroupRequest, UpdateGroupResponse](httpClient, baseURL+GroupServiceUpdateGroupProcedure, opts...),
		deleteGroup:  connect.NewClient[DeleteGroupRequest, DeleteGroupResponse](httpClient, baseURL+GroupServiceDeleteGroupProcedure, opts...),
		addMember:    connect.NewClient[AddMemberRequest, AddMemberResponse](httpClient, baseURL+GroupServiceAddMemberProcedure, opts...),
		removeMember: connect.NewClient[RemoveMemberRequest, RemoveMemberResponse](httpClient, baseURL+GroupServiceRemoveMemberProcedure, opts...),
	}
}

func (c *GroupServiceClient) CreateGroup(ctx context.Context, req *connect.Request[CreateGroupRequest]) (*connect.Response[CreateGroupResponse], error) {
	return c.createGroup.CallUnary(ctx, req)
}

func (c *GroupServiceClient) GetGroup(ctx context.Context, req *connect.Request[GetGroupRequest]) (*connect.Response[GetGroupResponse], error) {
	return c.getGroup.CallUnary(ctx, req)
}

func (c *GroupServiceClient) ListGroups(ctx context.Context, req *connect.Request[ListGroupsRequest]) (*connect.Response[ListGroupsResponse], error) {
	return c.listGroups.CallUnary(ctx, req)
}

func (c *GroupServiceClient) UpdateGroup(ctx context.Context, req *connect.Request[UpdateGroupRequest]) (*connect.Response[UpdateGroupResponse], error) {
	return c.updateGroup.CallUnary(ctx, req)
}

func (c *GroupServiceClient) DeleteGroup(ctx context.Context, req *connect.Request[DeleteGroupRequest]) (*connect.Response[DeleteGroupResponse], error) {
	return c.deleteGroup.CallUnary(ctx, req)
}

func (c *GroupServiceClient) AddMember(ctx context.Context, req *connect.Request[AddMemberRequest]) (*connect.Response[AddMemberResponse], error) {
	return c.addMember.CallUnary(ctx, req)
}

func (c *GroupServiceClient) RemoveMember(ctx context.Context, req *connect.Request[RemoveMemberRequest]) (*connect.Response[RemoveMemberResponse], error) {
	return c.removeMember.CallUnary(ctx, req)
}

// ExpenseServiceHandler is the server side of ExpenseServiceName.
type ExpenseServiceHandler interface {
	CreateExpense(context.Context, *connect.Request[CreateExpenseRequest]) (*connect.Response[CreateExpenseResponse], error)
	GetExpense(context.Context, *connect.Request[GetExpenseRequest]) (*connect.Response[GetExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error)
	UpdateExpense(context.Context, *connect.Request[UpdateExpenseRequest]) (*connect.Response[UpdateExpenseResponse], error)
	DeleteExpense(context.Context, *connect.Request[DeleteExpenseRequest]) (*connect.Response[DeleteExpenseResponse], error)
	ListCategories(context.Context, *connect.Request[ListCategoriesRequest]) (*connect.Response[ListCategoriesResponse], error)
}

// NewExpenseServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewExpenseServiceHandler(svc ExpenseServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	createExpenseHandler := connect.NewUnaryHandler(ExpenseServiceCreateExpenseProcedure, svc.CreateExpense, opts...)
	getExpenseHandler := connect.NewUnaryHandler(ExpenseServiceGetExpenseProcedure, svc.GetExpense, opts...)
	listExpensesHandler := connect.NewUnaryHandler(ExpenseServiceListExpensesProcedure, svc.ListExpenses, opts...)
	updateExpenseHandler := connect.NewUnaryHandler(ExpenseServiceUpdateExpenseProcedure, svc.UpdateExpense, opts...)
	deleteExpenseHandler := connect.NewUnaryHandler(ExpenseServiceDeleteExpenseProcedure, svc.DeleteExpense, opts...)
	listCategoriesHandler := connect.NewUnaryHandler(ExpenseServiceListCategoriesProcedure, svc.ListCategories, opts...)
	return "/" + ExpenseServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ExpenseServiceCreateExpenseProcedure:
			createExpenseHandler.ServeHTTP(w, r)
		case ExpenseServiceGetExpenseProcedure:
			getExpenseHandler.ServeHTTP(w, r)
		case ExpenseServiceListExpensesProcedure:
			listExpensesHandler.ServeHTTP(w, r)
		case ExpenseServiceUpdateExpenseProcedure:
			updateExpenseHandler.ServeHTTP(w, r)
		case ExpenseServiceDeleteExpenseProcedure:
			deleteExpenseHandler.ServeHTTP(w, r)
		case ExpenseServiceListCategoriesProcedure:
			listCategoriesHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// ExpenseServiceClient is a client for ExpenseService, which records shared
// expenses and their splits.
type ExpenseServiceClient struct {
	createExpense  *connect.Client[CreateExpenseRequest, CreateExpenseResponse]
	getExpense     *connect.Client[GetExpenseRequest, GetExpenseResponse]
	listExpenses   *connect.Client[ListExpensesRequest, ListExpensesResponse]
	updateExpense  *connect.Client[UpdateExpenseRequest, UpdateExpenseResponse]
	deleteExpense  *connect.Client[DeleteExpenseRequest, DeleteExpenseResponse]
	listCategories *connect.Client[ListCategoriesRequest, ListCategoriesResponse]
}

// NewExpenseServiceClient talks to an ExpenseService at baseURL, e.g. http://localhost:8080.
func NewExpenseServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *ExpenseServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &ExpenseServiceClient{
		createExpense:  connect.NewClient[CreateExpenseRequest, CreateExpenseResponse](httpClient, baseURL+ExpenseServiceCreateExpenseProcedure, opts...),
		getExpense:     connect.NewClient[GetExpenseRequest, GetExpenseResponse](httpClient, baseURL+ExpenseServiceGetExpenseProcedure, opts...),
		listExpenses:   connect.NewClient[ListExpensesRequest, ListExpensesResponse](httpClient, baseURL+ExpenseServiceListExpensesProcedure, opts...),
		updateExpense:  connect.NewClient[UpdateExpenseRequest, UpdateExpenseResponse](httpClient, baseURL+ExpenseServiceUpdateExpenseProcedure, opts...),
		deleteExpense:  connect.NewClient[DeleteExpenseRequest, DeleteExpenseResponse](httpClient, baseURL+ExpenseServiceDeleteExpenseProcedure, opts...),
		listCategories: connect.NewClient[ListCategoriesRequest, ListCategoriesResponse](httpClient, baseURL+ExpenseServiceListCategoriesProcedure, opts...),
	}
}

func (c *ExpenseServiceClient) CreateExpense(ctx context.Context, req *connect.Request[CreateExpenseRequest]) (*connect.Response[CreateExpenseResponse], error) {
	return c.createExpense.CallUnary(ctx, req)
}

func (c *ExpenseServiceClient) GetExpense(ctx context.Context, req *connect.Request[GetExpenseRequest]) (*connect.Response[GetExpenseResponse], error) {
	return c.getExpense.CallUnary(ctx, req)
}

func (c *ExpenseServiceClient) ListExpenses(ctx context.Context, req *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error) {
	return c.listExpenses.CallUnary(ctx, req)
}

func (c *ExpenseServiceClient) UpdateExpense(ctx context.Context, req *connect.Request[UpdateExpenseRequest]) (*connect.Response[UpdateExpenseResponse], error) {
	return c.updateExpense.CallUnary(ctx, req)
}

func (c *ExpenseServiceClient) DeleteExpense(ctx context.Context, req *connect.Request[DeleteExpenseRequest]) (*connect.Response[DeleteExpenseResponse], error) {
	return c.deleteExpense.CallUnary(ctx, req)
}

func (c *ExpenseServiceClient) ListCategories(ctx context.Context, req *connect.Request[ListCategoriesRequest]) (*connect.Response[ListCategoriesResponse], error) {
	return c.listCategories.CallUnary(ctx, req)
}

// SettlementServiceHandler is the server side of SettlementServiceName.
type SettlementServiceHandler interface {
	CreateSettlement(context.Context, *connect.Request[CreateSettlementRequest]) (*connect.Response[CreateSettlementResponse], error)
	MarkSettlementPaid(context.Context, *connect.Request[MarkSettlementPaidRequest]) (*connect.Response[MarkSettlementPaidResponse], error)
	ConfirmSettlement(context.Context, *connect.Request[ConfirmSettlementRequest]) (*connect.Response[ConfirmSettlementResponse], error)
	GetSettlement(context.Context, *connect.Request[GetSettlementRequest]) (*connect.Response[GetSettlementResponse], error)
	ListSettlements(context.Context, *connect.Request[ListSettlementsRequest]) (*connect.Response[ListSettlementsResponse], error)
}

// NewSettlementServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewSettlementServiceHandler(svc SettlementServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	createSettlementHandler := connect.NewUnaryHandler(SettlementServiceCreateSettlementProcedure, svc.CreateSettlement, opts...)
	markSettlementPaidHandler := connect.NewUnaryHandler(SettlementServiceMarkSettlementPaidProcedure, svc.MarkSettlementPaid, opts...)
	confirmSettlementHandler := connect.NewUnaryHandler(SettlementServiceConfirmSettlementProcedure, svc.ConfirmSettlement, opts...)
	getSettlementHandler := connect.NewUnaryHandler(SettlementServiceGetSettlementProcedure, svc.GetSettlement, opts...)
	listSettlementsHandler := connect.NewUnaryHandler(SettlementServiceListSettlementsProcedure, svc.ListSettlements, opts...)
	return "/" + SettlementServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case SettlementServiceCreateSettlementProcedure:
			createSettlementHandler.ServeHTTP(w, r)
		case SettlementServiceMarkSettlementPaidProcedure:
			markSettlementPaidHandler.ServeHTTP(w, r)
		case SettlementServiceConfirmSettlementProcedure:
			confirmSettlementHandler.ServeHTTP(w, r)
		case SettlementServiceGetSettlementProcedure:
			getSettlementHandler.ServeHTTP(w, r)
		case SettlementServiceListSettlementsProcedure:
			listSettlementsHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// SettlementServiceClient is a client for SettlementService, which tracks
// payments between members through PENDING, MARKED_PAID and COMPLETED.
type SettlementServiceClient struct {
	createSettlement   *connect.Client[CreateSettlementRequest, CreateSettlementResponse]
	markSettlementPaid *connect.Client[MarkSettlementPaidRequest, MarkSettlementPaidResponse]
	confirmSettlement  *connect.Client[ConfirmSettlementRequest, ConfirmSettlementResponse]
	getSettlement      *connect.Client[GetSettlementRequest, GetSettlementResponse]
	listSettlements    *connect.Client[ListSettlementsRequest, ListSettlementsResponse]
}

// NewSettlementServiceClient talks to a SettlementService at baseURL, e.g. http://localhost:8080.
func NewSettlementServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *SettlementServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &SettlementServiceClient{
		createSettlement:   connect.NewClient[CreateSettlementRequest, CreateSettlementResponse](httpClient, baseURL+SettlementServiceCreateSettlementProcedure, opts...),
		markSettlementPaid: connect.NewClient[MarkSettlementPaidRequest, MarkSettlementPaidResponse](httpClient, baseURL+SettlementServiceMarkSettlementPaidProcedure, opts...),
		confirmSettlement:  connect.NewClient[ConfirmSettlementRequest, ConfirmSettlementResponse](httpClient, baseURL+SettlementServiceConfirmSettlementProcedure, opts...),
		getSettlement:      connect.NewClient[GetSettlementRequest, GetSettlementResponse](httpClient, baseURL+SettlementServiceGetSettlementProcedure, opts...),
		listSettlements:    connect.NewClient[ListSettlementsRequest, ListSettlementsResponse](httpClient, baseURL+SettlementServiceListSettlementsProcedure, opts...),
	}
}

func (c *SettlementServiceClient) CreateSettlement(ctx context.Context, req *connect.Request[CreateSettlementRequest]) (*connect.Response[CreateSettlementResponse], error) {
	return c.createSettlement.CallUnary(ctx, req)
}

func (c *SettlementServiceClient) MarkSettlementPaid(ctx context.Context, req *connect.Request[MarkSettlementPaidRequest]) (*connect.Response[MarkSettlementPaidResponse], error) {
	return c.markSettlementPaid.CallUnary(ctx, req)
}

func (c *SettlementServiceClient) ConfirmSettlement(ctx context.Context, req *connect.Request[ConfirmSettlementRequest]) (*connect.Response[ConfirmSettlementResponse], error) {
	return c.confirmSettlement.CallUnary(ctx, req)
}

func (c *SettlementServiceClient) GetSettlement(ctx context.Context, req *connect.Request[GetSettlementRequest]) (*connect.Response[GetSettlementResponse], error) {
	return c.getSettlement.CallUnary(ctx, req)
}

func (c *SettlementServiceClient) ListSettlements(ctx context.Context, req *connect.Request[ListSettlementsRequest]) (*connect.Response[ListSettlementsResponse], error) {
	return c.listSettlements.CallUnary(ctx, req)
}

// BalanceServiceHandler is the server side of BalanceServiceName.
type BalanceServiceHandler interface {
	GetGroupBalances(context.Context, *connect.Request[GetGroupBalancesRequest]) (*connect.Response[GetGroupBalancesResponse], error)
	GetUserBalances(context.Context, *connect.Request[GetUserBalancesRequest]) (*connect.Response[GetUserBalancesResponse], error)
	PreviewSplits(context.Context, *connect.Request[PreviewSplitsRequest]) (*connect.Response[PreviewSplitsResponse], error)
}

// NewBalanceServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewBalanceServiceHandler(svc BalanceServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	getGroupBalancesHandler := connect.NewUnaryHandler(BalanceServiceGetGroupBalancesProcedure, svc.GetGroupBalances, opts...)
	getUserBalancesHandler := connect.NewUnaryHandler(BalanceServiceGetUserBalancesProcedure, svc.GetUserBalances, opts...)
	previewSplitsHandler := connect.NewUnaryHandler(BalanceServicePreviewSplitsProcedure, svc.PreviewSplits, opts...)
	return "/" + BalanceServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case BalanceServiceGetGroupBalancesProcedure:
			getGroupBalancesHandler.ServeHTTP(w, r)
		case BalanceServiceGetUserBalancesProcedure:
			getUserBalancesHandler.ServeHTTP(w, r)
		case BalanceServicePreviewSplitsProcedure:
			previewSplitsHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// BalanceServiceClient is a client for BalanceService, which reports derived
// balances. Nothing it returns is stored.
type BalanceServiceClient struct {
	getGroupBalances *connect.Client[GetGroupBalancesRequest, GetGroupBalancesResponse]
	getUserBalances  *connect.Client[GetUserBalancesRequest, GetUserBalancesResponse]
	previewSplits    *connect.Client[PreviewSplitsRequest, PreviewSplitsResponse]
}

// NewBalanceServiceClient talks to a BalanceService at baseURL, e.g. http://localhost:8080.
func NewBalanceServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *BalanceServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &BalanceServiceClient{
		getGroupBalances: connect.NewClient[GetGroupBalancesRequest, GetGroupBalancesResponse](httpClient, baseURL+BalanceServiceGetGroupBalancesProcedure, opts...),
		getUserBalances:  connect.NewClient[GetUserBalancesRequest, GetUserBalancesResponse](httpClient, baseURL+BalanceServiceGetUserBalancesProcedure, opts...),
		previewSplits:    connect.NewClient[PreviewSplitsRequest, PreviewSplitsResponse](httpClient, baseURL+BalanceServicePreviewSplitsProcedure, opts...),
	}
}

func (c *BalanceServiceClient) GetGroupBalances(ctx context.Context, req *connect.Request[GetGroupBalancesRequest]) (*connect.Response[GetGroupBalancesResponse], error) {
	return c.getGroupBalances.CallUnary(ctx, req)
}

func (c *BalanceServiceClient) GetUserBalances(ctx context.Context, req *connect.Request[GetUserBalancesRequest]) (*connect.Response[GetUserBalancesResponse], error) {
	return c.getUserBalances.CallUnary(ctx, req)
}

func (c *BalanceServiceClient) PreviewSplits(ctx context.Context, req *connect.Request[PreviewSplitsRequest]) (*connect.Response[PreviewSplitsResponse], error) {
	return c.previewSplits.CallUnary(ctx, req)
}
