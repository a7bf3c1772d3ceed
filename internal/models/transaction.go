package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
	TransactionTypeAllocation TransactionType = "allocation"
	TransactionTypeReversal   TransactionType = "reversal"
	TransactionTypeTransfer   TransactionType = "transfer"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeDeposit, TransactionTypeWithdrawal, TransactionTypeAllocation, TransactionTypeReversal, TransactionTypeTransfer:
		return true
	}
	return false
}

// Transaction is one entry in the append-only transaction log.
type Transaction struct {
	DefaultModel
	User          User            `json:"-"`
	UserID        uuid.UUID       `json:"-" gorm:"type:char(36);index;not null"`
	Amount        int64           `json:"amount" gorm:"not null;check:transaction_amount_positive,amount > 0" example:"2500"`
	Type          TransactionType `json:"type" gorm:"not null;index" example:"allocation"`
	Description   string          `json:"description" example:"Saved for New TV"`
	BankAccount   *BankAccount    `json:"-"`
	BankAccountID *uuid.UUID      `json:"bankAccountId" gorm:"type:char(36);index"`
	Item          *Item           `json:"-"`
	ItemID        *uuid.UUID      `json:"itemId" gorm:"type:char(36);index"`
	Date          time.Time       `json:"date" gorm:"index"`
}

func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)

	if !t.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	if t.Amount <= 0 {
		return ErrTransactionAmountNotPositive
	}

	if t.Date.IsZero() {
		t.Date = time.Now().UTC()
	}

	return nil
}

func (t *Transaction) AfterFind(tx *gorm.DB) error {
	err := t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return nil
}

// Container returns the balance holder the transaction touched.
func (t Transaction) Container() Container {
	return ContainerFor(t.BankAccountID)
}
