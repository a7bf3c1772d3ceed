// Package ledger moves money between the wallet, bank accounts and goals.
//
// Every operation that changes more than one row runs under the user's lock
// and inside one storage transaction. Each balance change is logged to the
// transaction log in the same storage transaction. Events for the logged
// transactions are published after the commit.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/wishpay/backend/internal/events"
	"github.com/wishpay/backend/internal/lock"
	"github.com/wishpay/backend/internal/models"
	"gorm.io/gorm"
)

type Engine struct {
	db        *gorm.DB
	locker    lock.Locker
	publisher events.Publisher
	formatter events.Formatter
	now       func() time.Time
}

type Option func(*Engine)

func WithLocker(l lock.Locker) Option {
	return func(e *Engine) { e.locker = l }
}

func WithPublisher(p events.Publisher) Option {
	return func(e *Engine) { e.publisher = p }
}

func WithFormatter(f events.Formatter) Option {
	return func(e *Engine) { e.formatter = f }
}

// WithClock replaces the time source used for transaction dates.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New returns an Engine working on db. By default, it locks in-process,
// logs events and formats amounts in USD.
func New(db *gorm.DB, opts ...Option) *Engine {
	formatter, _ := events.NewFormatter("USD", "en")

	e := &Engine{
		db:        db,
		locker:    lock.NewLocal(),
		publisher: events.Log{Logger: log.Logger},
		formatter: formatter,
		now:       func() time.Time { return time.Now().UTC() },
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// journal collects the transactions logged during one operation. All of
// them share the operation's date.
type journal struct {
	userID  uuid.UUID
	date    time.Time
	entries []models.Transaction
}

func (j *journal) append(tx *gorm.DB, t models.Transaction) (models.Transaction, error) {
	t.UserID = j.userID
	t.Date = j.date

	err := tx.Create(&t).Error
	if err != nil {
		return models.Transaction{}, err
	}

	j.entries = append(j.entries, t)
	return t, nil
}

// execute runs fn in one storage transaction while holding the user's lock.
func (e *Engine) execute(ctx context.Context, operation string, userID uuid.UUID, fn func(tx *gorm.DB, j *journal) error) error {
	start := time.Now()

	unlock, err := e.locker.Lock(ctx, userID.String())
	if err != nil {
		log.Error().Err(err).Str("operation", operation).Str("user", userID.String()).Msg("acquiring user lock failed")
		err = fmt.Errorf("%w: %w", models.ErrGeneral, err)
		observe(operation, err, time.Since(start))
		return err
	}
	defer unlock()

	j := &journal{userID: userID, date: e.now()}
	err = e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(tx, j)
	})
	err = models.GeneralError(err)
	observe(operation, err, time.Since(start))
	if err != nil {
		return err
	}

	e.publish(context.WithoutCancel(ctx), j.entries)
	return nil
}

func (e *Engine) publish(ctx context.Context, entries []models.Transaction) {
	if len(entries) == 0 {
		return
	}

	evts := make([]events.Event, 0, len(entries))
	for _, t := range entries {
		movedAmount.WithLabelValues(string(t.Type)).Add(float64(t.Amount))

		ev := events.Event{
			ID:            t.ID,
			Type:          "transaction." + string(t.Type),
			UserID:        t.UserID,
			Amount:        t.Amount,
			BankAccountID: t.BankAccountID,
			ItemID:        t.ItemID,
			Description:   t.Description,
			Date:          t.Date,
		}
		ev.Summary = e.formatter.Summary(ev)
		evts = append(evts, ev)
	}

	err := e.publisher.Publish(ctx, evts...)
	if err != nil {
		log.Warn().Err(err).Int("events", len(evts)).Msg("publishing ledger events failed")
	}
}

// holder is a container with the values needed to move money.
type holder struct {
	container models.Container
	name      string
	balance   int64
}

func (e *Engine) holder(tx *gorm.DB, userID uuid.UUID, c models.Container) (holder, error) {
	if c.IsWallet() {
		var user models.User
		err := tx.First(&user, "id = ?", userID).Error
		if err != nil {
			return holder{}, err
		}
		return holder{container: c, name: models.WalletName, balance: user.Balance}, nil
	}

	var account models.BankAccount
	err := tx.First(&account, "id = ? AND user_id = ?", *c.BankAccountID, userID).Error
	if err != nil {
		return holder{}, err
	}

	return holder{container: c, name: account.Name, balance: account.Balance}, nil
}

// adjust changes the balance of h by delta. The update is conditional, a
// balance never drops below zero.
func (e *Engine) adjust(tx *gorm.DB, userID uuid.UUID, h holder, delta int64) (int64, error) {
	if delta > 0 && h.balance > math.MaxInt64-delta {
		return 0, fmt.Errorf("%w: %s can not hold more than %d", ErrInvalidAmount, h.name, int64(math.MaxInt64))
	}

	if h.balance+delta < 0 {
		return 0, insufficient(h, -delta)
	}

	var q *gorm.DB
	if h.container.IsWallet() {
		q = tx.Model(&models.User{}).Where("id = ?", userID)
	} else {
		q = tx.Model(&models.BankAccount{}).Where("id = ? AND user_id = ?", *h.container.BankAccountID, userID)
	}

	result := q.Where("balance + ? >= 0", delta).UpdateColumns(map[string]interface{}{
		"balance":    gorm.Expr("balance + ?", delta),
		"updated_at": e.now(),
	})

	if errors.Is(result.Error, models.ErrBalanceNegative) {
		return 0, insufficient(h, -delta)
	}

	if result.Error != nil {
		return 0, result.Error
	}

	if result.RowsAffected == 0 {
		return 0, insufficient(h, -delta)
	}

	return h.balance + delta, nil
}

func insufficient(h holder, amount int64) error {
	return fmt.Errorf("%w: %s holds %d, but %d are needed", ErrInsufficientFunds, h.name, h.balance, amount)
}

func positive(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: the amount must be larger than zero", ErrInvalidAmount)
	}
	return nil
}
