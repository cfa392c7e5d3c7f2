package notifications

import (
	"context"

	"github.com/hasinarv/cashpoint_backend/internal/core/domain"
)

// Event names carried in webhook payloads.
const (
	EventTransactionRecorded = "transaction.recorded"
	EventSessionStarted      = "session.started"
	EventSessionClosed       = "session.closed"
)

// Event is the payload delivered to subscribers after a state change.
type Event struct {
	Name      string                    `json:"event"`
	SessionID string                    `json:"sessionID"`
	Balances  domain.Balances           `json:"balances"`
	Record    *domain.TransactionRecord `json:"transaction,omitempty"`
}

// Notifier receives events after they are committed. Implementations must
// not block the caller.
type Notifier interface {
	Notify(ctx context.Context, event Event)
	Close()
}

// NopNotifier discards all events. Used when no webhook URL is configured.
type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, Event) {}
func (NopNotifier) Close()                        {}
