package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wishpay/backend/internal/models"
	"gorm.io/gorm"
)

// Allocate moves money from a container to a goal. Without a source, the
// goal's funding source is used.
//
// The source must hold the requested amount. The amount moved is capped at
// what the goal still needs, the logged transaction holds the moved amount.
func (e *Engine) Allocate(ctx context.Context, userID, goalID uuid.UUID, amount int64, source *models.Container) (goal models.Item, transaction models.Transaction, err error) {
	if err := positive(amount); err != nil {
		return models.Item{}, models.Transaction{}, err
	}

	err = e.execute(ctx, "allocate", userID, func(tx *gorm.DB, j *journal) error {
		goal, err = e.findActiveGoal(tx, userID, goalID)
		if err != nil {
			return err
		}

		from := goal.Source()
		if source != nil {
			from = *source
		}

		h, err := e.holder(tx, userID, from)
		if err != nil {
			return err
		}

		if h.balance < amount {
			return insufficient(h, amount)
		}

		moved := min(amount, goal.Remaining())
		if moved <= 0 {
			return fmt.Errorf("%w: %s is fully funded already", ErrInvalidAmount, goal.Name)
		}

		_, err = e.adjust(tx, userID, h, -moved)
		if err != nil {
			return err
		}

		goal.Saved += moved
		err = tx.Model(&goal).UpdateColumns(map[string]interface{}{
			"saved":      goal.Saved,
			"updated_at": j.date,
		}).Error
		if err != nil {
			return err
		}

		transaction, err = j.append(tx, allocation(goal, from, moved))
		return err
	})

	return goal, transaction, err
}

// Deallocate returns money from a goal to its funding source.
func (e *Engine) Deallocate(ctx context.Context, userID, goalID uuid.UUID, amount int64) (goal models.Item, transaction models.Transaction, err error) {
	if err := positive(amount); err != nil {
		return models.Item{}, models.Transaction{}, err
	}

	err = e.execute(ctx, "deallocate", userID, func(tx *gorm.DB, j *journal) error {
		goal, err = e.findActiveGoal(tx, userID, goalID)
		if err != nil {
			return err
		}

		if amount > goal.Saved {
			return fmt.Errorf("%w: only %d are saved for %s", ErrInvalidAmount, goal.Saved, goal.Name)
		}

		h, err := e.holder(tx, userID, goal.Source())
		if err != nil {
			return err
		}

		_, err = e.adjust(tx, userID, h, amount)
		if err != nil {
			return err
		}

		goal.Saved -= amount
		err = tx.Model(&goal).UpdateColumns(map[string]interface{}{
			"saved":      goal.Saved,
			"updated_at": j.date,
		}).Error
		if err != nil {
			return err
		}

		transaction, err = j.append(tx, reversal(goal, amount))
		return err
	})

	return goal, transaction, err
}

// Transfer moves money between two containers of the user. It logs two
// transfer transactions with the same date, one for each side.
func (e *Engine) Transfer(ctx context.Context, userID uuid.UUID, source, destination models.Container, amount int64) (debit, credit models.Transaction, err error) {
	if source.Equal(destination) {
		return models.Transaction{}, models.Transaction{}, ErrSameAccount
	}

	if err := positive(amount); err != nil {
		return models.Transaction{}, models.Transaction{}, err
	}

	err = e.execute(ctx, "transfer", userID, func(tx *gorm.DB, j *journal) error {
		from, err := e.holder(tx, userID, source)
		if err != nil {
			return err
		}

		to, err := e.holder(tx, userID, destination)
		if errors.Is(err, models.ErrResourceNotFound) {
			return fmt.Errorf("%w: %w", ErrDestinationNotFound, err)
		} else if err != nil {
			return err
		}

		if from.balance < amount {
			return insufficient(from, amount)
		}

		_, err = e.adjust(tx, userID, from, -amount)
		if err != nil {
			return err
		}

		_, err = e.adjust(tx, userID, to, amount)
		if err != nil {
			return err
		}

		debit, err = j.append(tx, models.Transaction{
			Amount:        amount,
			Type:          models.TransactionTypeTransfer,
			Description:   fmt.Sprintf("Transferred to %s", to.name),
			BankAccountID: source.BankAccountID,
		})
		if err != nil {
			return err
		}

		credit, err = j.append(tx, models.Transaction{
			Amount:        amount,
			Type:          models.TransactionTypeTransfer,
			Description:   fmt.Sprintf("Transferred from %s", from.name),
			BankAccountID: destination.BankAccountID,
		})
		return err
	})

	return debit, credit, err
}
