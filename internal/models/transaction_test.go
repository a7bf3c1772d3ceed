package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wishpay/backend/internal/models"
)

func (suite *TestSuiteStandard) TestTransactionBeforeSave() {
	tests := []struct {
		name        string
		transaction models.Transaction
		err         error
	}{
		{"Valid", models.Transaction{Type: models.TransactionTypeDeposit, Amount: 1}, nil},
		{"Invalid type", models.Transaction{Type: "gift", Amount: 1}, models.ErrTransactionTypeInvalid},
		{"Zero amount", models.Transaction{Type: models.TransactionTypeTransfer}, models.ErrTransactionAmountNotPositive},
		{"Negative amount", models.Transaction{Type: models.TransactionTypeReversal, Amount: -3}, models.ErrTransactionAmountNotPositive},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := tt.transaction.BeforeSave(nil)
			assert.Equal(t, tt.err, err)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionCreate() {
	user := suite.createTestUser(models.User{})
	account := suite.createTestBankAccount(models.BankAccount{UserID: user.ID})

	transaction := models.Transaction{
		UserID:        user.ID,
		Amount:        250,
		Type:          models.TransactionTypeDeposit,
		Description:   "  Cashed in  ",
		BankAccountID: &account.ID,
	}
	suite.Require().Nil(models.DB.Create(&transaction).Error)

	var loaded models.Transaction
	suite.Require().Nil(models.DB.First(&loaded, "id = ?", transaction.ID).Error)
	suite.Assert().Equal("Cashed in", loaded.Description)
	suite.Assert().False(loaded.Date.IsZero())
	suite.Assert().True(loaded.Container().Equal(account.Container()))
}

func (suite *TestSuiteStandard) TestTransactionAmountCheckConstraint() {
	user := suite.createTestUser(models.User{})
	transaction := models.Transaction{UserID: user.ID, Amount: 5, Type: models.TransactionTypeWithdrawal}
	suite.Require().Nil(models.DB.Create(&transaction).Error)

	err := models.DB.Model(&models.Transaction{}).Where("id = ?", transaction.ID).UpdateColumn("amount", 0).Error
	suite.Assert().ErrorIs(err, models.ErrTransactionAmountNotPositive)
}
