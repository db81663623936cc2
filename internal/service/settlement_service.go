package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/splitz/ledger/internal/calculator"
	"github.com/splitz/ledger/internal/events"
	"github.com/splitz/ledger/internal/metrics"
	"github.com/splitz/ledger/internal/models"
	"github.com/splitz/ledger/internal/storage"
	"github.com/splitz/ledger/pkg/api"
)

// SettlementService implements the Connect SettlementService.
//
// A settlement only moves balances once it is COMPLETED: the payer marks it
// paid, then the payee confirms receipt.
type SettlementService struct {
	store  storage.Store
	notify notifier
	now    func() time.Time
}

var _ api.SettlementServiceHandler = (*SettlementService)(nil)

// NewSettlementService creates a new SettlementService. A nil publisher drops events.
func NewSettlementService(store storage.Store, publisher events.Publisher, m *metrics.Metrics) *SettlementService {
	return &SettlementService{store: store, notify: newNotifier(publisher, m), now: time.Now}
}

// CreateSettlement records a PENDING payment from payer to payee.
func (s *SettlementService) CreateSettlement(ctx context.Context, req *connect.Request[api.CreateSettlementRequest]) (*connect.Response[api.CreateSettlementResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "CreateSettlement request received",
		"group_id", req.Msg.GroupID,
		"payee_id", req.Msg.PayeeID,
		"amount", req.Msg.Amount,
	)

	if _, err := requireMember(ctx, s.store, req.Msg.GroupID, userID); err != nil {
		return nil, toConnectError(ctx, "CreateSettlement", err)
	}

	payer := req.Msg.PayerID
	if payer == 0 {
		payer = userID
	}
	amount, err := parseMoney("amount", req.Msg.Amount)
	if err != nil {
		return nil, toConnectError(ctx, "CreateSettlement", err)
	}
	if err := s.validate(ctx, req.Msg.GroupID, payer, req.Msg.PayeeID, amount); err != nil {
		return nil, toConnectError(ctx, "CreateSettlement", err)
	}

	settlement := models.NewSettlement(req.Msg.GroupID, payer, req.Msg.PayeeID, amount)
	if err := s.store.CreateSettlement(ctx, settlement); err != nil {
		return nil, toConnectError(ctx, "CreateSettlement", err)
	}

	slog.InfoContext(ctx, "Settlement created", "settlement_id", settlement.ID, "group_id", settlement.GroupID)
	s.notify.publish(ctx, settlementEvent(events.SettlementCreated, settlement, userID))

	return connect.NewResponse(&api.CreateSettlementResponse{Settlement: toAPISettlement(settlement)}), nil
}

// MarkSettlementPaid moves a PENDING settlement to MARKED_PAID. Only the payer may do this.
func (s *SettlementService) MarkSettlementPaid(ctx context.Context, req *connect.Request[api.MarkSettlementPaidRequest]) (*connect.Response[api.MarkSettlementPaidResponse], error) {
	settlement, err := s.transition(ctx, "MarkSettlementPaid", req.Msg.SettlementID,
		func(st *models.Settlement, userID int64) error {
			if st.PayerID != userID {
				return fmt.Errorf("%w: only the payer can mark settlement %d as paid", ErrPermissionDenied, st.ID)
			}
			return st.MarkPaid(s.now().Unix())
		},
		events.SettlementMarkedPaid,
	)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&api.MarkSettlementPaidResponse{Settlement: toAPISettlement(settlement)}), nil
}

// ConfirmSettlement moves a MARKED_PAID settlement to COMPLETED. Only the payee may do this.
func (s *SettlementService) ConfirmSettlement(ctx context.Context, req *connect.Request[api.ConfirmSettlementRequest]) (*connect.Response[api.ConfirmSettlementResponse], error) {
	settlement, err := s.transition(ctx, "ConfirmSettlement", req.Msg.SettlementID,
		func(st *models.Settlement, userID int64) error {
			if st.PayeeID != userID {
				return fmt.Errorf("%w: only the payee can confirm settlement %d", ErrPermissionDenied, st.ID)
			}
			return st.Confirm(s.now().Unix())
		},
		events.SettlementCompleted,
	)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&api.ConfirmSettlementResponse{Settlement: toAPISettlement(settlement)}), nil
}

// GetSettlement retrieves a settlement. Only group members may read it.
func (s *SettlementService) GetSettlement(ctx context.Context, req *connect.Request[api.GetSettlementRequest]) (*connect.Response[api.GetSettlementResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	settlement, err := s.store.GetSettlement(ctx, req.Msg.SettlementID)
	if err != nil {
		return nil, toConnectError(ctx, "GetSettlement", err)
	}
	if _, err := requireMember(ctx, s.store, settlement.GroupID, userID); err != nil {
		return nil, toConnectError(ctx, "GetSettlement", err)
	}

	return connect.NewResponse(&api.GetSettlementResponse{Settlement: toAPISettlement(settlement)}), nil
}

// ListSettlements lists a group's settlements, newest first.
func (s *SettlementService) ListSettlements(ctx context.Context, req *connect.Request[api.ListSettlementsRequest]) (*connect.Response[api.ListSettlementsResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := requireMember(ctx, s.store, req.Msg.GroupID, userID); err != nil {
		return nil, toConnectError(ctx, "ListSettlements", err)
	}

	settlements, err := s.store.ListSettlementsByGroup(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, toConnectError(ctx, "ListSettlements", err)
	}

	out := make([]api.Settlement, len(settlements))
	for i, st := range settlements {
		out[i] = toAPISettlement(st)
	}
	return connect.NewResponse(&api.ListSettlementsResponse{Settlements: out}), nil
}

// transition loads a settlement, applies a guarded status change and stores it.
func (s *SettlementService) transition(ctx context.Context, op string, settlementID int64, apply func(*models.Settlement, int64) error, eventType events.Type) (*models.Settlement, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, op+" request received", "settlement_id", settlementID)

	settlement, err := s.store.GetSettlement(ctx, settlementID)
	if err != nil {
		return nil, toConnectError(ctx, op, err)
	}
	from := settlement.Status
	if err := apply(settlement, userID); err != nil {
		return nil, toConnectError(ctx, op, err)
	}
	if err := s.store.UpdateSettlementStatus(ctx, settlement, from); err != nil {
		return nil, toConnectError(ctx, op, err)
	}

	slog.InfoContext(ctx, "Settlement status changed",
		"settlement_id", settlement.ID,
		"status", settlement.Status,
	)
	s.notify.publish(ctx, settlementEvent(eventType, settlement, userID))

	return settlement, nil
}

func (s *SettlementService) validate(ctx context.Context, groupID, payerID, payeeID int64, amount decimal.Decimal) error {
	if payeeID <= 0 {
		return validationf("payee_id must be positive")
	}
	if payerID == payeeID {
		return validationf("payer and payee must be different users")
	}
	if !amount.IsPositive() {
		return validationf("amount must be positive, got %s", amount)
	}
	if !amount.Equal(calculator.RoundMoney(amount)) {
		return validationf("amount %s has more than 2 decimal places", amount)
	}

	members, err := memberSet(ctx, s.store, groupID)
	if err != nil {
		return err
	}
	if !members[payerID] {
		return validationf("payer %d is not a member of group %d", payerID, groupID)
	}
	if !members[payeeID] {
		return validationf("payee %d is not a member of group %d", payeeID, groupID)
	}
	return nil
}

func settlementEvent(t events.Type, st *models.Settlement, actorID int64) events.Event {
	return events.New(t, st.GroupID, st.ID, actorID, map[string]string{
		"amount":   calculator.FormatMoney(st.Amount),
		"payer_id": fmt.Sprint(st.PayerID),
		"payee_id": fmt.Sprint(st.PayeeID),
		"status":   string(st.Status),
	})
}
