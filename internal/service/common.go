// Package service implements the ledger's Connect services on top of a
// storage.Store and the pure calculator package.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/splitz/ledger/internal/calculator"
	"github.com/splitz/ledger/internal/events"
	"github.com/splitz/ledger/internal/metrics"
	"github.com/splitz/ledger/internal/middleware"
	"github.com/splitz/ledger/internal/models"
	"github.com/splitz/ledger/internal/storage"
	"github.com/splitz/ledger/pkg/api"
)

// ErrPermissionDenied is returned when the caller may not act on a record.
var ErrPermissionDenied = errors.New("permission denied")

// toConnectError maps domain errors onto Connect codes. Unknown errors are
// logged and reported as Internal without leaking their text.
func toConnectError(ctx context.Context, op string, err error) error {
	var code connect.Code
	switch {
	case errors.Is(err, calculator.ErrValidation):
		code = connect.CodeInvalidArgument
	case errors.Is(err, storage.ErrNotFound):
		code = connect.CodeNotFound
	case errors.Is(err, storage.ErrAlreadyExists):
		code = connect.CodeAlreadyExists
	case errors.Is(err, ErrPermissionDenied):
		code = connect.CodePermissionDenied
	case errors.Is(err, models.ErrInvalidTransition):
		code = connect.CodeFailedPrecondition
	default:
		slog.ErrorContext(ctx, op+" failed", "error", err)
		return connect.NewError(connect.CodeInternal, errors.New("internal error"))
	}
	return connect.NewError(code, err)
}

// callerID returns the authenticated user, or an Unauthenticated error when
// no interceptor put one in the context.
func callerID(ctx context.Context) (int64, error) {
	if id := middleware.GetUserID(ctx); id > 0 {
		return id, nil
	}
	return 0, connect.NewError(connect.CodeUnauthenticated, errors.New("authentication required"))
}

func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", calculator.ErrValidation, fmt.Sprintf(format, args...))
}

// requireMember checks that the group exists and userID belongs to it.
func requireMember(ctx context.Context, store storage.Store, groupID, userID int64) (*models.GroupMember, error) {
	if _, err := store.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}
	member, err := store.GetMember(ctx, groupID, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%w: user %d is not a member of group %d", ErrPermissionDenied, userID, groupID)
	}
	return member, err
}

// requireAdmin checks that userID is an ADMIN of the group.
func requireAdmin(ctx context.Context, store storage.Store, groupID, userID int64) error {
	member, err := requireMember(ctx, store, groupID, userID)
	if err != nil {
		return err
	}
	if member.Role != models.RoleAdmin {
		return fmt.Errorf("%w: only admins of group %d can do this", ErrPermissionDenied, groupID)
	}
	return nil
}

// memberSet returns the ids of a group's current members.
func memberSet(ctx context.Context, store storage.Store, groupID int64) (map[int64]bool, error) {
	members, err := store.ListMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}
	set := make(map[int64]bool, len(members))
	for _, m := range members {
		set[m.UserID] = true
	}
	return set, nil
}

func parseMoney(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, validationf("%s: %q is not a decimal amount", field, s)
	}
	return d, nil
}

// participantsFromAPI turns split inputs into calculator participants. Values
// are parsed only for EXACT splits.
func participantsFromAPI(strategy calculator.SplitStrategy, splits []api.SplitInput) ([]calculator.Participant, error) {
	participants := make([]calculator.Participant, len(splits))
	for i, in := range splits {
		if in.UserID <= 0 {
			return nil, validationf("splits[%d]: user_id must be positive", i)
		}
		participants[i] = calculator.Participant{UserID: in.UserID}
		if strategy != calculator.SplitExact || in.Value == "" {
			continue
		}
		v, err := parseMoney(fmt.Sprintf("splits[%d].value", i), in.Value)
		if err != nil {
			return nil, err
		}
		participants[i].Value = &v
	}
	return participants, nil
}

// notifier publishes events after a write has committed. Failures are logged
// and counted but never returned to the caller.
type notifier struct {
	publisher events.Publisher
	metrics   *metrics.Metrics
}

func newNotifier(publisher events.Publisher, m *metrics.Metrics) notifier {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return notifier{publisher: publisher, metrics: m}
}

func (n notifier) publish(ctx context.Context, e events.Event) {
	err := n.publisher.Publish(context.WithoutCancel(ctx), e)
	n.metrics.ObserveEvent(string(e.Type), err)
	if err != nil {
		slog.WarnContext(ctx, "Failed to publish event",
			"event_id", e.ID,
			"type", e.Type,
			"group_id", e.GroupID,
			"error", err,
		)
	}
}
