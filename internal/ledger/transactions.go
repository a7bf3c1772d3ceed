package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/wishpay/backend/internal/models"
)

// TransactionFilter narrows down the transaction log. Zero values match
// everything, a Limit of zero or less returns all matching transactions.
type TransactionFilter struct {
	Type      models.TransactionType
	Container *models.Container
	ItemID    *uuid.UUID
	Offset    int
	Limit     int
}

// Transactions returns the matching transactions of the user, newest first,
// and the number of all matching transactions.
func (e *Engine) Transactions(ctx context.Context, userID uuid.UUID, filter TransactionFilter) ([]models.Transaction, int64, error) {
	q := e.db.WithContext(ctx).Model(&models.Transaction{}).Where("user_id = ?", userID)

	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}

	if filter.Container != nil {
		if filter.Container.IsWallet() {
			q = q.Where("bank_account_id IS NULL")
		} else {
			q = q.Where("bank_account_id = ?", *filter.Container.BankAccountID)
		}
	}

	if filter.ItemID != nil {
		q = q.Where("item_id = ?", *filter.ItemID)
	}

	var count int64
	err := q.Count(&count).Error
	if err != nil {
		return nil, 0, err
	}

	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var transactions []models.Transaction
	err = q.Order("date DESC, created_at DESC").Find(&transactions).Error
	if err != nil {
		return nil, 0, err
	}

	return transactions, count, nil
}

// Transaction returns one transaction of the user.
func (e *Engine) Transaction(ctx context.Context, userID, id uuid.UUID) (models.Transaction, error) {
	var transaction models.Transaction
	err := e.db.WithContext(ctx).First(&transaction, "id = ? AND user_id = ?", id, userID).Error
	return transaction, err
}
