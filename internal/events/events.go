// Package events publishes ledger activity to outside consumers.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Event describes one committed transaction log entry.
type Event struct {
	ID            uuid.UUID  `json:"id"`
	Type          string     `json:"type"`
	UserID        uuid.UUID  `json:"userId"`
	Amount        int64      `json:"amount"`
	BankAccountID *uuid.UUID `json:"bankAccountId"`
	ItemID        *uuid.UUID `json:"itemId"`
	Description   string     `json:"description"`
	Summary       string     `json:"summary"`
	Date          time.Time  `json:"date"`
}

// Publisher delivers events. Publish is called after the ledger change has
// been committed, so failing to publish never undoes it.
type Publisher interface {
	Publish(ctx context.Context, events ...Event) error
}

// Log writes events to a zerolog logger.
type Log struct {
	Logger zerolog.Logger
}

func (l Log) Publish(_ context.Context, events ...Event) error {
	for _, e := range events {
		l.Logger.Info().
			Str("event", e.Type).
			Str("id", e.ID.String()).
			Str("user", e.UserID.String()).
			Int64("amount", e.Amount).
			Msg(e.Summary)
	}

	return nil
}

// Multi publishes to all publishers and returns the first error.
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, events ...Event) error {
	var first error
	for _, p := range m {
		if err := p.Publish(ctx, events...); err != nil && first == nil {
			first = err
		}
	}

	return first
}
