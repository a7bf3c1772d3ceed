package v1_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	v1 "github.com/wishpay/backend/internal/controllers/v1"
	"github.com/wishpay/backend/internal/httputil"
	"github.com/wishpay/backend/internal/ledger"
	"github.com/wishpay/backend/internal/models"
	"github.com/wishpay/backend/test"
)

func (suite *TestSuiteStandard) TestBankAccountsCreate() {
	s := test.Register(suite.T())

	account := createTestBankAccount(suite.T(), s, v1.BankAccountCreate{
		Name:    " Emergency fund ",
		Color:   models.ColorGreen,
		Balance: 50000,
	})

	suite.Assert().Equal("Emergency fund", account.Data.Name)
	suite.Assert().Equal(models.ColorGreen, account.Data.Color)
	suite.Assert().Equal(int64(50000), account.Data.Balance)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/bank-accounts/%s", account.Data.ID), account.Data.Links.Self)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/transactions?container=%s", account.Data.ID), account.Data.Links.Transactions)

	// The opening balance is logged
	transactions := getTransactions(suite.T(), s, fmt.Sprintf("?container=%s", account.Data.ID))
	suite.Require().Len(transactions.Data, 1)
	suite.Assert().Equal(models.TransactionTypeDeposit, transactions.Data[0].Type)
	suite.Assert().Equal(int64(50000), transactions.Data[0].Amount)
	suite.Assert().Equal("Opening balance of Emergency fund", transactions.Data[0].Description)

	// Without balance, nothing is logged and the color defaults to gray
	empty := createTestBankAccount(suite.T(), s, v1.BankAccountCreate{})
	suite.Assert().Equal(models.ColorGray, empty.Data.Color)
	suite.Assert().Len(getTransactions(suite.T(), s, fmt.Sprintf("?container=%s", empty.Data.ID)).Data, 0)
}

func (suite *TestSuiteStandard) TestBankAccountsCreateFails() {
	s := test.Register(suite.T())

	tests := []struct {
		name   string
		body   any
		status int
		err    string
	}{
		{"Empty body", "", http.StatusBadRequest, httputil.ErrRequestBodyEmpty.Error()},
		{"No name", v1.BankAccountCreate{Balance: 100}, http.StatusBadRequest, "Name is required"},
		{"Name too long", v1.BankAccountCreate{Name: strings.Repeat("a", 256)}, http.StatusBadRequest, "Name cannot be longer than 255"},
		{"Invalid color", v1.BankAccountCreate{Name: "Savings", Color: "turquoise"}, http.StatusBadRequest, models.ErrBankAccountColorInvalid.Error()},
		{"Negative balance", v1.BankAccountCreate{Name: "Savings", Balance: -1}, http.StatusBadRequest, ledger.ErrInvalidAmount.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/bank-accounts", tt.body, s.Headers)
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Contains(t, test.DecodeError(t, &r), tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestBankAccountsList() {
	s := test.Register(suite.T())
	other := test.Register(suite.T())

	createTestBankAccount(suite.T(), s, v1.BankAccountCreate{Name: "Savings"})
	createTestBankAccount(suite.T(), s, v1.BankAccountCreate{Name: "Checking"})
	createTestBankAccount(suite.T(), other, v1.BankAccountCreate{Name: "Not yours"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/bank-accounts", "", s.Headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var accounts v1.BankAccountListResponse
	test.DecodeResponse(suite.T(), &r, &accounts)

	suite.Require().Len(accounts.Data, 2)
	suite.Assert().Equal("Checking", accounts.Data[0].Name)
	suite.Assert().Equal("Savings", accounts.Data[1].Name)
}

func (suite *TestSuiteStandard) TestBankAccountsGetSingle() {
	s := test.Register(suite.T())
	other := test.Register(suite.T())

	account := createTestBankAccount(suite.T(), s, v1.BankAccountCreate{})

	tests := []struct {
		name    string
		id      string
		session test.Session
		status  int
	}{
		{"Own account", account.Data.ID.String(), s, http.StatusOK},
		{"Account of another user", account.Data.ID.String(), other, http.StatusNotFound},
		{"Unknown ID", uuid.New().String(), s, http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", s, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/bank-accounts/%s", tt.id), "", tt.session.Headers)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNotFound {
				assert.Equal(t, "there is no bank account matching your query", test.DecodeError(t, &r))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestBankAccountsUpdate() {
	s := test.Register(suite.T())
	account := createTestBankAccount(suite.T(), s, v1.BankAccountCreate{Name: "Savings", Balance: 2500})

	path := fmt.Sprintf("http://example.com/v1/bank-accounts/%s", account.Data.ID)

	r := test.Request(suite.T(), http.MethodPatch, path, `{ "name": "Rainy day", "color": "blue" }`, s.Headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.BankAccountResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal("Rainy day", updated.Data.Name)
	suite.Assert().Equal(models.ColorBlue, updated.Data.Color)

	// The balance cannot be changed by an update
	r = test.Request(suite.T(), http.MethodPatch, path, `{ "balance": 1000000 }`, s.Headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Equal(int64(2500), getBankAccount(suite.T(), s, account.Data.ID).Balance)

	tests := []struct {
		name   string
		path   string
		body   any
		status int
	}{
		{"Invalid color", path, `{ "color": "turquoise" }`, http.StatusBadRequest},
		{"Empty body", path, "", http.StatusBadRequest},
		{"Null name", path, `{ "name": null }`, http.StatusBadRequest},
		{"Unknown ID", fmt.Sprintf("http://example.com/v1/bank-accounts/%s", uuid.New()), `{ "name": "Nope" }`, http.StatusNotFound},
		{"Not a valid UUID", "http://example.com/v1/bank-accounts/NotParseableAsUUID", `{ "name": "Nope" }`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, tt.path, tt.body, s.Headers)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestBankAccountsCash() {
	s := test.Register(suite.T())
	account := createTestBankAccount(suite.T(), s, v1.BankAccountCreate{Name: "Checking"})

	cash := cashIn(suite.T(), s, account.Data.Container(), 4000)
	suite.Assert().Equal(int64(4000), cash.Data.Balance)
	suite.Assert().Equal("Cashed in to Checking", cash.Data.Transaction.Description)
	suite.Assert().Equal(account.Data.ID, *cash.Data.Transaction.BankAccountID)

	r := test.Request(suite.T(), http.MethodPost, account.Data.Links.CashOut, v1.CashEditable{Amount: 1500}, s.Headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
	test.DecodeResponse(suite.T(), &r, &cash)
	suite.Assert().Equal(int64(2500), cash.Data.Balance)

	// The wallet is not touched
	suite.Assert().Equal(int64(0), getWallet(suite.T(), s).Balance)

	tests := []struct {
		name   string
		path   string
		amount int64
		status int
	}{
		{"More than the balance", account.Data.Links.CashOut, 2501, http.StatusUnprocessableEntity},
		{"Zero", account.Data.Links.CashIn, 0, http.StatusBadRequest},
		{"Unknown account", fmt.Sprintf("http://example.com/v1/bank-accounts/%s/cash-in", uuid.New()), 100, http.StatusNotFound},
		{"Not a valid UUID", "http://example.com/v1/bank-accounts/NotParseableAsUUID/cash-out", 100, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, tt.path, v1.CashEditable{Amount: tt.amount}, s.Headers)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestBankAccountsDelete() {
	s := test.Register(suite.T())
	account := createTestBankAccount(suite.T(), s, v1.BankAccountCreate{Name: "Old bank", Balance: 10000})
	source := account.Data.Container()

	goal := createTestGoal(suite.T(), s, v1.GoalCreate{Saved: 3000, SourceID: &source})
	suite.Assert().Equal(source, goal.Data.Source)

	r := test.Request(suite.T(), http.MethodDelete, account.Data.Links.Self, "", s.Headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, account.Data.Links.Self, "", s.Headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// The goal keeps its savings and is funded from the wallet now
	updated := getGoal(suite.T(), s, goal.Data.ID)
	suite.Assert().True(updated.Source.IsWallet())
	suite.Assert().Equal(int64(3000), updated.Saved)

	// The remaining balance is logged as withdrawal
	withdrawals := getTransactions(suite.T(), s, "?type=withdrawal")
	suite.Require().Len(withdrawals.Data, 1)
	suite.Assert().Equal(int64(7000), withdrawals.Data[0].Amount)
	suite.Assert().Equal("Closed bank account Old bank", withdrawals.Data[0].Description)

	r = test.Request(suite.T(), http.MethodDelete, account.Data.Links.Self, "", s.Headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/bank-accounts/NotParseableAsUUID", "", s.Headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBankAccountsDBClosed() {
	s := test.Register(suite.T())
	suite.CloseDB()

	createTestBankAccount(suite.T(), s, v1.BankAccountCreate{}, http.StatusInternalServerError)
}
