// Package events publishes ledger change notifications for downstream consumers
// (notifications, activity feeds). Balances are never carried in events; consumers
// that need them query the balance service.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Type names what happened. It doubles as the AMQP routing key.
type Type string

const (
	GroupUpdated         Type = "group.updated"
	GroupDeleted         Type = "group.deleted"
	ExpenseCreated       Type = "expense.created"
	ExpenseUpdated       Type = "expense.updated"
	ExpenseDeleted       Type = "expense.deleted"
	SettlementCreated    Type = "settlement.created"
	SettlementMarkedPaid Type = "settlement.marked_paid"
	SettlementCompleted  Type = "settlement.completed"
)

// Event is the JSON message body.
type Event struct {
	ID         string    `json:"id"`
	Type       Type      `json:"type"`
	GroupID    int64     `json:"group_id"`
	EntityID   int64     `json:"entity_id"`
	ActorID    int64     `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
	// Payload carries type-specific fields, e.g. amount and status.
	Payload map[string]string `json:"payload,omitempty"`
}

// New stamps an event with a fresh id and the current time.
func New(t Type, groupID, entityID, actorID int64, payload map[string]string) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       t,
		GroupID:    groupID,
		EntityID:   entityID,
		ActorID:    actorID,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

func (e Event) marshal() ([]byte, error) {
	body, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal event %s: %w", e.ID, err)
	}
	return body, nil
}

// Publisher delivers events. Implementations must be safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Nop discards every event. It is used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close() error                         { return nil }

// Recorder keeps published events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
	// Err, when set, is returned by Publish after recording.
	Err error
}

func (r *Recorder) Publish(_ context.Context, e Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return r.Err
}

func (r *Recorder) Close() error { return nil }

// Events returns a copy of everything published so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Types returns the type of each recorded event, in publish order.
func (r *Recorder) Types() []Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]Type, len(r.events))
	for i, e := range r.events {
		types[i] = e.Type
	}
	return types
}
