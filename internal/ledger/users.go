package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wishpay/backend/internal/models"
	"gorm.io/gorm"
)

type UserUpdate struct {
	Name         *string
	WalletHidden *bool
}

// User returns the user with the given ID.
func (e *Engine) User(ctx context.Context, id uuid.UUID) (models.User, error) {
	var user models.User
	err := e.db.WithContext(ctx).First(&user, "id = ?", id).Error
	return user, err
}

// UpdateUser changes the profile and wallet settings of a user.
func (e *Engine) UpdateUser(ctx context.Context, id uuid.UUID, in UserUpdate) (user models.User, err error) {
	err = e.execute(ctx, "update_user", id, func(tx *gorm.DB, _ *journal) error {
		err := tx.First(&user, "id = ?", id).Error
		if err != nil {
			return err
		}

		if in.Name != nil {
			user.Name = *in.Name
		}

		if in.WalletHidden != nil {
			user.WalletHidden = *in.WalletHidden
		}

		return tx.Select("Name", "WalletHidden").Updates(&user).Error
	})

	return user, err
}

// DeleteUser permanently deletes a user with everything they own.
func (e *Engine) DeleteUser(ctx context.Context, id uuid.UUID) error {
	unlock, err := e.locker.Lock(ctx, id.String())
	if err != nil {
		return fmt.Errorf("%w: %w", models.ErrGeneral, err)
	}
	defer unlock()

	// Use a transaction so that we can roll back if errors happen
	tx := e.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return models.GeneralError(tx.Error)
	}

	err = tx.First(&models.User{}, "id = ?", id).Error
	if err != nil {
		tx.Rollback()
		return err
	}

	for _, model := range models.UserResources() {
		err := tx.Unscoped().Where("user_id = ?", id).Delete(model).Error
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	err = tx.Unscoped().Delete(&models.User{}, "id = ?", id).Error
	if err != nil {
		tx.Rollback()
		return err
	}

	return models.GeneralError(tx.Commit().Error)
}
