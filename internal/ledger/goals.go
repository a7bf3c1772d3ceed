package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wishpay/backend/internal/models"
	"gorm.io/gorm"
)

type GoalInput struct {
	Name     string
	Price    int64
	Saved    int64
	Type     models.ItemType
	Priority models.Priority
	Source   models.Container
}

// GoalUpdate holds the attributes to change. Nil fields are left alone.
type GoalUpdate struct {
	Name     *string
	Price    *int64
	Saved    *int64
	Type     *models.ItemType
	Priority *models.Priority
	Source   *models.Container
}

func (e *Engine) findGoal(tx *gorm.DB, userID, id uuid.UUID) (models.Item, error) {
	var goal models.Item
	err := tx.First(&goal, "id = ? AND user_id = ?", id, userID).Error
	return goal, err
}

func (e *Engine) findActiveGoal(tx *gorm.DB, userID, id uuid.UUID) (models.Item, error) {
	goal, err := e.findGoal(tx, userID, id)
	if err != nil {
		return models.Item{}, err
	}

	if goal.Archived {
		return models.Item{}, ErrGoalArchived
	}

	return goal, nil
}

// CreateGoal creates a goal. An initial saved amount is taken from the
// funding source and logged as an allocation.
func (e *Engine) CreateGoal(ctx context.Context, userID uuid.UUID, in GoalInput) (goal models.Item, err error) {
	if in.Price <= 0 {
		return models.Item{}, fmt.Errorf("%w: the price must be larger than zero", ErrInvalidAmount)
	}

	if in.Saved < 0 || in.Saved > in.Price {
		return models.Item{}, fmt.Errorf("%w: the saved amount must be between zero and the price", ErrInvalidAmount)
	}

	err = e.execute(ctx, "create_goal", userID, func(tx *gorm.DB, j *journal) error {
		source, err := e.holder(tx, userID, in.Source)
		if err != nil {
			return err
		}

		if source.balance < in.Saved {
			return insufficient(source, in.Saved)
		}

		goal = models.Item{
			UserID:        userID,
			Name:          in.Name,
			Price:         in.Price,
			Saved:         in.Saved,
			Type:          in.Type,
			Priority:      in.Priority,
			BankAccountID: in.Source.BankAccountID,
			DateAdded:     j.date,
		}

		err = tx.Create(&goal).Error
		if err != nil {
			return err
		}

		if in.Saved == 0 {
			return nil
		}

		_, err = e.adjust(tx, userID, source, -in.Saved)
		if err != nil {
			return err
		}

		_, err = j.append(tx, allocation(goal, in.Source, in.Saved))
		return err
	})

	return goal, err
}

// UpdateGoal changes a goal. A new saved amount is allocated from or
// returned to the (new) funding source.
func (e *Engine) UpdateGoal(ctx context.Context, userID, id uuid.UUID, in GoalUpdate) (goal models.Item, err error) {
	err = e.execute(ctx, "update_goal", userID, func(tx *gorm.DB, j *journal) error {
		goal, err = e.findActiveGoal(tx, userID, id)
		if err != nil {
			return err
		}

		if in.Name != nil {
			goal.Name = *in.Name
		}

		if in.Type != nil {
			goal.Type = *in.Type
		}

		if in.Priority != nil {
			goal.Priority = *in.Priority
		}

		if in.Source != nil {
			_, err := e.holder(tx, userID, *in.Source)
			if err != nil {
				return err
			}
			goal.BankAccountID = in.Source.BankAccountID
		}

		price := goal.Price
		if in.Price != nil {
			price = *in.Price
		}

		if price <= 0 {
			return fmt.Errorf("%w: the price must be larger than zero", ErrInvalidAmount)
		}

		saved := goal.Saved
		if in.Saved != nil {
			saved = *in.Saved
		}

		if saved < 0 || saved > price {
			return fmt.Errorf("%w: the saved amount must be between zero and the price", ErrInvalidAmount)
		}

		if delta := saved - goal.Saved; delta != 0 {
			source, err := e.holder(tx, userID, goal.Source())
			if err != nil {
				return err
			}

			_, err = e.adjust(tx, userID, source, -delta)
			if err != nil {
				return err
			}

			if delta > 0 {
				_, err = j.append(tx, allocation(goal, goal.Source(), delta))
			} else {
				_, err = j.append(tx, reversal(goal, -delta))
			}

			if err != nil {
				return err
			}
		}

		goal.Price = price
		goal.Saved = saved

		return tx.Save(&goal).Error
	})

	return goal, err
}

// DeleteGoal abandons an active goal. The saved amount is returned to the
// funding source before the goal is deleted.
func (e *Engine) DeleteGoal(ctx context.Context, userID, id uuid.UUID) error {
	return e.execute(ctx, "delete_goal", userID, func(tx *gorm.DB, j *journal) error {
		goal, err := e.findActiveGoal(tx, userID, id)
		if err != nil {
			return err
		}

		if goal.Saved > 0 {
			source, err := e.holder(tx, userID, goal.Source())
			if err != nil {
				return err
			}

			_, err = e.adjust(tx, userID, source, goal.Saved)
			if err != nil {
				return err
			}

			_, err = j.append(tx, reversal(goal, goal.Saved))
			if err != nil {
				return err
			}
		}

		return tx.Delete(&goal).Error
	})
}

// ArchiveGoal marks a fully funded goal as bought. There is no way back.
func (e *Engine) ArchiveGoal(ctx context.Context, userID, id uuid.UUID) (goal models.Item, err error) {
	err = e.execute(ctx, "archive_goal", userID, func(tx *gorm.DB, j *journal) error {
		goal, err = e.findActiveGoal(tx, userID, id)
		if err != nil {
			return err
		}

		if goal.Saved < goal.Price {
			return fmt.Errorf("%w: %d of %d saved", ErrGoalNotFunded, goal.Saved, goal.Price)
		}

		date := j.date
		goal.Archived = true
		goal.DateArchived = &date

		return tx.Select("Archived", "DateArchived").Updates(&goal).Error
	})

	return goal, err
}

// Goal returns one goal of the user.
func (e *Engine) Goal(ctx context.Context, userID, id uuid.UUID) (models.Item, error) {
	return e.findGoal(e.db.WithContext(ctx), userID, id)
}

// ListGoals returns the active goals, newest first, or the archived goals,
// most recently archived first.
func (e *Engine) ListGoals(ctx context.Context, userID uuid.UUID, archived bool) ([]models.Item, error) {
	order := "date_added DESC, created_at DESC"
	if archived {
		order = "date_archived DESC, created_at DESC"
	}

	var goals []models.Item
	err := e.db.WithContext(ctx).
		Where("user_id = ? AND archived = ?", userID, archived).
		Order(order).
		Find(&goals).Error

	return goals, err
}

// UnfundedHighPriorityNeeds returns the active high priority needs that are
// not fully funded yet.
func (e *Engine) UnfundedHighPriorityNeeds(ctx context.Context, userID uuid.UUID) ([]models.Item, error) {
	var goals []models.Item
	err := e.db.WithContext(ctx).
		Where("user_id = ? AND archived = ? AND type = ? AND priority = ? AND saved < price", userID, false, models.ItemTypeNeed, models.PriorityHigh).
		Order("date_added ASC").
		Find(&goals).Error

	return goals, err
}

// AllocationWarnings returns the active goal and, if it is a want, the
// unfunded high priority needs an allocation to it would pass over. Nothing
// is moved.
func (e *Engine) AllocationWarnings(ctx context.Context, userID, id uuid.UUID) (models.Item, []models.Item, error) {
	goal, err := e.findActiveGoal(e.db.WithContext(ctx), userID, id)
	if err != nil {
		return models.Item{}, nil, err
	}

	if goal.Type != models.ItemTypeWant {
		return goal, nil, nil
	}

	needs, err := e.UnfundedHighPriorityNeeds(ctx, userID)
	if err != nil {
		return models.Item{}, nil, err
	}

	return goal, needs, nil
}

func allocation(goal models.Item, source models.Container, amount int64) models.Transaction {
	return models.Transaction{
		Amount:        amount,
		Type:          models.TransactionTypeAllocation,
		Description:   fmt.Sprintf("Saved for %s", goal.Name),
		BankAccountID: source.BankAccountID,
		ItemID:        &goal.ID,
	}
}

func reversal(goal models.Item, amount int64) models.Transaction {
	return models.Transaction{
		Amount:        amount,
		Type:          models.TransactionTypeReversal,
		Description:   fmt.Sprintf("Returned from %s", goal.Name),
		BankAccountID: goal.BankAccountID,
		ItemID:        &goal.ID,
	}
}
