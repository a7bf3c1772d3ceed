package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wishpay/backend/internal/models"
	"gorm.io/gorm"
)

// Balance returns the balance of a container owned by the user.
func (e *Engine) Balance(ctx context.Context, userID uuid.UUID, c models.Container) (int64, error) {
	h, err := e.holder(e.db.WithContext(ctx), userID, c)
	if err != nil {
		return 0, err
	}

	return h.balance, nil
}

// AdjustBalance changes the balance of a container by delta without logging
// a transaction.
func (e *Engine) AdjustBalance(ctx context.Context, userID uuid.UUID, c models.Container, delta int64) (balance int64, err error) {
	err = e.execute(ctx, "adjust", userID, func(tx *gorm.DB, _ *journal) error {
		h, err := e.holder(tx, userID, c)
		if err != nil {
			return err
		}

		balance, err = e.adjust(tx, userID, h, delta)
		return err
	})

	return balance, err
}

// CashIn adds money from outside WishPay to a container.
func (e *Engine) CashIn(ctx context.Context, userID uuid.UUID, c models.Container, amount int64) (balance int64, transaction models.Transaction, err error) {
	if err := positive(amount); err != nil {
		return 0, models.Transaction{}, err
	}

	err = e.execute(ctx, "cash_in", userID, func(tx *gorm.DB, j *journal) error {
		h, err := e.holder(tx, userID, c)
		if err != nil {
			return err
		}

		balance, err = e.adjust(tx, userID, h, amount)
		if err != nil {
			return err
		}

		transaction, err = j.append(tx, models.Transaction{
			Amount:        amount,
			Type:          models.TransactionTypeDeposit,
			Description:   fmt.Sprintf("Cashed in to %s", h.name),
			BankAccountID: c.BankAccountID,
		})
		return err
	})

	return balance, transaction, err
}

// CashOut removes money from a container.
func (e *Engine) CashOut(ctx context.Context, userID uuid.UUID, c models.Container, amount int64) (balance int64, transaction models.Transaction, err error) {
	if err := positive(amount); err != nil {
		return 0, models.Transaction{}, err
	}

	err = e.execute(ctx, "cash_out", userID, func(tx *gorm.DB, j *journal) error {
		h, err := e.holder(tx, userID, c)
		if err != nil {
			return err
		}

		balance, err = e.adjust(tx, userID, h, -amount)
		if err != nil {
			return err
		}

		transaction, err = j.append(tx, models.Transaction{
			Amount:        amount,
			Type:          models.TransactionTypeWithdrawal,
			Description:   fmt.Sprintf("Cashed out from %s", h.name),
			BankAccountID: c.BankAccountID,
		})
		return err
	})

	return balance, transaction, err
}

type BankAccountInput struct {
	Name    string
	Color   models.Color
	Balance int64
}

// CreateBankAccount creates a bank account. A positive initial balance is
// logged as a deposit.
func (e *Engine) CreateBankAccount(ctx context.Context, userID uuid.UUID, in BankAccountInput) (account models.BankAccount, err error) {
	if in.Balance < 0 {
		return models.BankAccount{}, fmt.Errorf("%w: the initial balance must not be negative", ErrInvalidAmount)
	}

	err = e.execute(ctx, "create_bank_account", userID, func(tx *gorm.DB, j *journal) error {
		account = models.BankAccount{
			UserID:  userID,
			Name:    in.Name,
			Color:   in.Color,
			Balance: in.Balance,
		}

		err := tx.Create(&account).Error
		if err != nil {
			return err
		}

		if in.Balance == 0 {
			return nil
		}

		_, err = j.append(tx, models.Transaction{
			Amount:        in.Balance,
			Type:          models.TransactionTypeDeposit,
			Description:   fmt.Sprintf("Opening balance of %s", account.Name),
			BankAccountID: &account.ID,
		})
		return err
	})

	return account, err
}

type BankAccountUpdate struct {
	Name  *string
	Color *models.Color
}

// UpdateBankAccount changes the decorative attributes of a bank account.
func (e *Engine) UpdateBankAccount(ctx context.Context, userID, id uuid.UUID, in BankAccountUpdate) (account models.BankAccount, err error) {
	err = e.execute(ctx, "update_bank_account", userID, func(tx *gorm.DB, _ *journal) error {
		err := tx.First(&account, "id = ? AND user_id = ?", id, userID).Error
		if err != nil {
			return err
		}

		if in.Name != nil {
			account.Name = *in.Name
		}

		if in.Color != nil {
			account.Color = *in.Color
		}

		return tx.Select("Name", "Color").Updates(&account).Error
	})

	return account, err
}

// DeleteBankAccount deletes a bank account. Active goals funded by it are
// funded by the wallet afterwards. A remaining balance is logged as a
// withdrawal.
func (e *Engine) DeleteBankAccount(ctx context.Context, userID, id uuid.UUID) error {
	return e.execute(ctx, "delete_bank_account", userID, func(tx *gorm.DB, j *journal) error {
		var account models.BankAccount
		err := tx.First(&account, "id = ? AND user_id = ?", id, userID).Error
		if err != nil {
			return err
		}

		if account.Balance > 0 {
			h := holder{container: account.Container(), name: account.Name, balance: account.Balance}
			_, err = e.adjust(tx, userID, h, -account.Balance)
			if err != nil {
				return err
			}

			_, err = j.append(tx, models.Transaction{
				Amount:        account.Balance,
				Type:          models.TransactionTypeWithdrawal,
				Description:   fmt.Sprintf("Closed bank account %s", account.Name),
				BankAccountID: &account.ID,
			})
			if err != nil {
				return err
			}
		}

		err = tx.Model(&models.Item{}).
			Where("user_id = ? AND bank_account_id = ? AND archived = ?", userID, id, false).
			UpdateColumn("bank_account_id", nil).Error
		if err != nil {
			return err
		}

		return tx.Delete(&account).Error
	})
}

// BankAccount returns one bank account of the user.
func (e *Engine) BankAccount(ctx context.Context, userID, id uuid.UUID) (models.BankAccount, error) {
	var account models.BankAccount
	err := e.db.WithContext(ctx).First(&account, "id = ? AND user_id = ?", id, userID).Error
	return account, err
}

// ListBankAccounts returns all bank accounts of the user ordered by name.
func (e *Engine) ListBankAccounts(ctx context.Context, userID uuid.UUID) ([]models.BankAccount, error) {
	var accounts []models.BankAccount
	err := e.db.WithContext(ctx).Where("user_id = ?", userID).Order("name ASC").Find(&accounts).Error
	return accounts, err
}
