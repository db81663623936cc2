package api

import (
	"context"
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBalances struct {
	lastPreview *PreviewSplitsRequest
}

func (s *stubBalances) GetGroupBalances(_ context.Context, req *connect.Request[GetGroupBalancesRequest]) (*connect.Response[GetGroupBalancesResponse], error) {
	if req.Msg.GroupID != 1 {
		return nil, connect.NewError(connect.CodeNotFound, errors.New("no such group"))
	}
	return connect.NewResponse(&GetGroupBalancesResponse{
		GroupID:         1,
		Balances:        []UserBalance{{UserID: 101, Balance: "20.00"}, {UserID: 102, Balance: "-20.00"}},
		SimplifiedDebts: []Debt{{From: 102, To: 101, Amount: "20.00"}},
	}), nil
}

func (s *stubBalances) GetUserBalances(context.Context, *connect.Request[GetUserBalancesRequest]) (*connect.Response[GetUserBalancesResponse], error) {
	return connect.NewResponse(&GetUserBalancesResponse{TotalBalance: "0.00"}), nil
}

func (s *stubBalances) PreviewSplits(_ context.Context, req *connect.Request[PreviewSplitsRequest]) (*connect.Response[PreviewSplitsResponse], error) {
	s.lastPreview = req.Msg
	return connect.NewResponse(&PreviewSplitsResponse{Shares: []Share{{UserID: 7, Amount: req.Msg.Amount}}}), nil
}

func newStubServer(t *testing.T) (*stubBalances, *httptest.Server) {
	t.Helper()
	stub := &stubBalances{}
	mux := http.NewServeMux()
	mux.Handle(NewBalanceServiceHandler(stub))
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return stub, server
}

func TestBalanceServiceRoundTrip(t *testing.T) {
	stub, server := newStubServer(t)
	client := NewBalanceServiceClient(server.Client(), server.URL+"/")
	ctx := context.Background()

	resp, err := client.GetGroupBalances(ctx, connect.NewRequest(&GetGroupBalancesRequest{GroupID: 1}))
	require.NoError(t, err)
	assert.Equal(t, []Debt{{From: 102, To: 101, Amount: "20.00"}}, resp.Msg.SimplifiedDebts)

	_, err = client.GetGroupBalances(ctx, connect.NewRequest(&GetGroupBalancesRequest{GroupID: 2}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	preview, err := client.PreviewSplits(ctx, connect.NewRequest(&PreviewSplitsRequest{
		Amount:    "9.99",
		SplitType: "EXACT",
		Splits:    []SplitInput{{UserID: 7, Value: "9.99"}},
	}))
	require.NoError(t, err)
	assert.Equal(t, "9.99", preview.Msg.Shares[0].Amount)
	assert.Equal(t, []SplitInput{{UserID: 7, Value: "9.99"}}, stub.lastPreview.Splits)
}

func TestPlainJSONClients(t *testing.T) {
	_, server := newStubServer(t)

	t.Run("connect protocol over json", func(t *testing.T) {
		resp, err := http.Post(server.URL+BalanceServiceGetGroupBalancesProcedure, "application/json",
			strings.NewReader(`{"group_id": 1}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{
			"group_id": 1,
			"balances": [{"user_id": 101, "balance": "20.00"}, {"user_id": 102, "balance": "-20.00"}],
			"simplified_debts": [{"from": 102, "to": 101, "amount": "20.00"}]
		}`, string(body))
	})

	t.Run("empty body is an empty message", func(t *testing.T) {
		resp, err := http.Post(server.URL+BalanceServiceGetUserBalancesProcedure, "application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("unknown procedure", func(t *testing.T) {
		resp, err := http.Post(server.URL+"/"+BalanceServiceName+"/Nope", "application/json", strings.NewReader(`{}`))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestProcedurePaths(t *testing.T) {
	path, _ := NewBalanceServiceHandler(&stubBalances{})
	assert.Equal(t, "/splitz.v1.BalanceService/", path)
	assert.True(t, strings.HasPrefix(ExpenseServiceCreateExpenseProcedure, PathPrefix))
	assert.True(t, strings.HasPrefix(SettlementServiceConfirmSettlementProcedure, PathPrefix))
	assert.True(t, strings.HasPrefix(GroupServiceRemoveMemberProcedure, PathPrefix))
	assert.Equal(t, "/splitz.v1.GroupService/DeleteGroup", GroupServiceDeleteGroupProcedure)
	assert.Equal(t, "/splitz.v1.ExpenseService/ListCategories", ExpenseServiceListCategoriesProcedure)
}

// Exported types in services.go carry doc comments that start with their name.
func TestServiceTypeDocs(t *testing.T) {
	file, err := parser.ParseFile(token.NewFileSet(), "services.go", nil, parser.ParseComments)
	require.NoError(t, err)

	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, s := range gen.Specs {
			name := s.(*ast.TypeSpec).Name.Name
			if !ast.IsExported(name) {
				continue
			}
			require.NotNil(t, gen.Doc, "type %s has no doc comment", name)
			assert.True(t, strings.HasPrefix(gen.Doc.Text(), name+" "), "doc of %s: %q", name, gen.Doc.Text())
		}
	}
}
