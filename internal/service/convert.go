package service

import (
	"github.com/splitz/ledger/internal/calculator"
	"github.com/splitz/ledger/internal/models"
	"github.com/splitz/ledger/pkg/api"
)

func toAPIGroup(group *models.Group, members []*models.GroupMember) api.Group {
	out := api.Group{
		ID:          group.ID,
		Name:        group.Name,
		Description: group.Description,
		CreatedBy:   group.CreatedBy,
		CreatedAt:   group.CreatedAt,
		Members:     make([]api.Member, len(members)),
	}
	for i, m := range members {
		out.Members[i] = api.Member{UserID: m.UserID, Role: string(m.Role), JoinedAt: m.JoinedAt}
	}
	return out
}

func toAPICategory(c *models.Category) api.Category {
	return api.Category{ID: c.ID, Name: c.Name, Icon: c.Icon, Color: c.Color, IsDefault: c.IsDefault}
}

func toAPIExpense(e *models.Expense) api.Expense {
	out := api.Expense{
		ID:          e.ID,
		GroupID:     e.GroupID,
		Description: e.Description,
		Amount:      calculator.FormatMoney(e.Amount),
		Currency:    e.Currency,
		PaidBy:      e.PaidBy,
		CategoryID:  e.CategoryID,
		ExpenseDate: e.ExpenseDate,
		Notes:       e.Notes,
		ReceiptURL:  e.ReceiptURL,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
		Splits:      make([]api.Split, len(e.Splits)),
	}
	for i, s := range e.Splits {
		out.Splits[i] = api.Split{
			UserID:      s.UserID,
			SplitType:   string(s.SplitType),
			ShareAmount: calculator.FormatMoney(s.ShareAmount),
		}
		if s.SplitValue != nil {
			out.Splits[i].SplitValue = calculator.FormatMoney(*s.SplitValue)
		}
	}
	return out
}

func toAPISettlement(s *models.Settlement) api.Settlement {
	return api.Settlement{
		ID:           s.ID,
		GroupID:      s.GroupID,
		PayerID:      s.PayerID,
		PayeeID:      s.PayeeID,
		Amount:       calculator.FormatMoney(s.Amount),
		Status:       string(s.Status),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
		MarkedPaidAt: s.MarkedPaidAt,
		SettledAt:    s.SettledAt,
	}
}

func toAPIGroupBalances(g calculator.GroupBalances) *api.GetGroupBalancesResponse {
	out := &api.GetGroupBalancesResponse{
		GroupID:         g.GroupID,
		Balances:        make([]api.UserBalance, len(g.Balances)),
		SimplifiedDebts: make([]api.Debt, len(g.SimplifiedDebts)),
	}
	for i, b := range g.Balances {
		out.Balances[i] = api.UserBalance{UserID: b.UserID, Balance: calculator.FormatMoney(b.Balance)}
	}
	for i, d := range g.SimplifiedDebts {
		out.SimplifiedDebts[i] = api.Debt{From: d.From, To: d.To, Amount: calculator.FormatMoney(d.Amount)}
	}
	return out
}

func toAPIUserBalances(u *calculator.UserBalances) *api.GetUserBalancesResponse {
	out := &api.GetUserBalancesResponse{
		UserID:       u.UserID,
		TotalBalance: calculator.FormatMoney(u.TotalBalance),
		Groups:       make([]api.GroupBalance, len(u.Groups)),
	}
	for i, g := range u.Groups {
		out.Groups[i] = api.GroupBalance{GroupID: g.GroupID, GroupName: g.GroupName, Balance: calculator.FormatMoney(g.Balance)}
	}
	for _, m := range u.Skipped {
		out.SkippedGroups = append(out.SkippedGroups, m.GroupID)
	}
	return out
}
