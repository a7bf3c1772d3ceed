package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	v1 "github.com/wishpay/backend/internal/controllers/v1"
	"github.com/wishpay/backend/internal/httputil"
	"github.com/wishpay/backend/internal/ledger"
	"github.com/wishpay/backend/internal/models"
	"github.com/wishpay/backend/test"
)

func (suite *TestSuiteStandard) TestGoalsCreate() {
	s := test.Register(suite.T())
	cashIn(suite.T(), s, models.Wallet(), 5000)

	goal := createTestGoal(suite.T(), s, v1.GoalCreate{
		Name:     "New TV",
		Price:    3000,
		Saved:    1000,
		Type:     models.ItemTypeNeed,
		Priority: models.PriorityHigh,
	})

	suite.Assert().Equal("New TV", goal.Data.Name)
	suite.Assert().Equal(int64(1000), goal.Data.Saved)
	suite.Assert().Equal(int64(2000), goal.Data.Remaining)
	suite.Assert().True(decimal.NewFromFloat(33.33).Equal(goal.Data.Progress), "progress is %s", goal.Data.Progress)
	suite.Assert().Equal(models.ItemStateActive, goal.Data.State)
	suite.Assert().Equal(models.PriorityHigh, goal.Data.Priority)
	suite.Assert().True(goal.Data.Source.IsWallet())
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/goals/%s/allocate", goal.Data.ID), goal.Data.Links.Allocate)

	// The initial saved amount is taken from the wallet
	suite.Assert().Equal(int64(4000), getWallet(suite.T(), s).Balance)

	allocations := getTransactions(suite.T(), s, fmt.Sprintf("?item=%s", goal.Data.ID))
	suite.Require().Len(allocations.Data, 1)
	suite.Assert().Equal(models.TransactionTypeAllocation, allocations.Data[0].Type)
	suite.Assert().Equal("Saved for New TV", allocations.Data[0].Description)
	suite.Assert().Equal(goal.Data.Links.Self, allocations.Data[0].Links.Goal)
}

func (suite *TestSuiteStandard) TestGoalsCreatePriority() {
	s := test.Register(suite.T())

	tests := []struct {
		name     string
		goalType models.ItemType
		priority models.Priority
		expected models.Priority
	}{
		{"Need without priority", models.ItemTypeNeed, "", models.PriorityMedium},
		{"Need with priority", models.ItemTypeNeed, models.PriorityLow, models.PriorityLow},
		{"Want ignores priority", models.ItemTypeWant, models.PriorityHigh, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			goal := createTestGoal(t, s, v1.GoalCreate{Type: tt.goalType, Priority: tt.priority})
			assert.Equal(t, tt.expected, goal.Data.Priority)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsCreateFails() {
	s := test.Register(suite.T())
	cashIn(suite.T(), s, models.Wallet(), 500)

	unknown := models.BankAccountContainer(uuid.New())

	tests := []struct {
		name   string
		body   any
		status int
		err    string
	}{
		{"Empty body", "", http.StatusBadRequest, httputil.ErrRequestBodyEmpty.Error()},
		{"No name", v1.GoalCreate{Price: 100, Type: models.ItemTypeWant}, http.StatusBadRequest, "Name is required"},
		{"Blank name", v1.GoalCreate{Name: "   ", Price: 100, Type: models.ItemTypeWant}, http.StatusBadRequest, models.ErrItemNameEmpty.Error()},
		{"No type", v1.GoalCreate{Name: "Bike", Price: 100}, http.StatusBadRequest, "Type is required"},
		{"Invalid type", v1.GoalCreate{Name: "Bike", Price: 100, Type: "maybe"}, http.StatusBadRequest, models.ErrItemTypeInvalid.Error()},
		{"Invalid priority", v1.GoalCreate{Name: "Bike", Price: 100, Type: models.ItemTypeNeed, Priority: "urgent"}, http.StatusBadRequest, models.ErrItemPriorityInvalid.Error()},
		{"Zero price", v1.GoalCreate{Name: "Bike", Type: models.ItemTypeWant}, http.StatusBadRequest, ledger.ErrInvalidAmount.Error()},
		{"Saved more than price", v1.GoalCreate{Name: "Bike", Price: 100, Saved: 101, Type: models.ItemTypeWant}, http.StatusBadRequest, ledger.ErrInvalidAmount.Error()},
		{"Saved more than the wallet holds", v1.GoalCreate{Name: "Bike", Price: 1000, Saved: 501, Type: models.ItemTypeWant}, http.StatusUnprocessableEntity, ledger.ErrInsufficientFunds.Error()},
		{"Unknown source", v1.GoalCreate{Name: "Bike", Price: 1000, Type: models.ItemTypeWant, SourceID: &unknown}, http.StatusNotFound, "there is no bank account matching your query"},
		{"Invalid source", `{ "name": "Bike", "price": 1000, "type": "want", "sourceId": "pocket" }`, http.StatusBadRequest, httputil.ErrInvalidBody.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/goals", tt.body, s.Headers)
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Contains(t, test.DecodeError(t, &r), tt.err)
		})
	}

	// Nothing was taken from the wallet
	suite.Assert().Equal(int64(500), getWallet(suite.T(), s).Balance)
}

func (suite *TestSuiteStandard) TestGoalsList() {
	s := test.Register(suite.T())
	cashIn(suite.T(), s, models.Wallet(), 1000)

	first := createTestGoal(suite.T(), s, v1.GoalCreate{Name: "First", Price: 1000, Saved: 1000})
	second := createTestGoal(suite.T(), s, v1.GoalCreate{Name: "Second"})
	createTestGoal(suite.T(), test.Register(suite.T()), v1.GoalCreate{Name: "Not yours"})

	r := test.Request(suite.T(), http.MethodPost, first.Data.Links.Archive, "", s.Headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	tests := []struct {
		name  string
		query string
		ids   []uuid.UUID
	}{
		{"Active goals", "", []uuid.UUID{second.Data.ID}},
		{"Active goals explicitly", "?archived=false", []uuid.UUID{second.Data.ID}},
		{"Archived goals", "?archived=true", []uuid.UUID{first.Data.ID}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/goals"+tt.query, "", s.Headers)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var goals v1.GoalListResponse
			test.DecodeResponse(t, &r, &goals)

			ids := make([]uuid.UUID, 0, len(goals.Data))
			for _, goal := range goals.Data {
				ids = append(ids, goal.ID)
			}
			assert.Equal(t, tt.ids, ids)
		})
	}

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/goals?archived=maybe", "", s.Headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal(httputil.ErrInvalidQueryString.Error(), test.DecodeError(suite.T(), &r))
}

func (suite *TestSuiteStandard) TestGoalsListOrder() {
	s := test.Register(suite.T())

	older := createTestGoal(suite.T(), s, v1.GoalCreate{Name: "Older"})
	newer := createTestGoal(suite.T(), s, v1.GoalCreate{Name: "Newer"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/goals", "", s.Headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var goals v1.GoalListResponse
	test.DecodeResponse(suite.T(), &r, &goals)

	suite.Require().Len(goals.Data, 2)
	suite.Assert().Equal(newer.Data.ID, goals.Data[0].ID)
	suite.Assert().Equal(older.Data.ID, goals.Data[1].ID)
}

func (suite *TestSuiteStandard) TestGoalsGetSingle() {
	s := test.Register(suite.T())
	other := test.Register(suite.T())
	goal := createTestGoal(suite.T(), s, v1.GoalCreate{})

	tests := []struct {
		name    string
		id      string
		session test.Session
		status  int
	}{
		{"Own goal", goal.Data.ID.String(), s, http.StatusOK},
		{"Goal of another user", goal.Data.ID.String(), other, http.StatusNotFound},
		{"Unknown ID", uuid.New().String(), s, http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", s, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/goals/%s", tt.id), "", tt.session.Headers)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsUpdate() {
	s := test.Register(suite.T())
	cashIn(suite.T(), s, models.Wallet(), 5000)
	account := createTestBankAccount(suite.T(), s, v1.BankAccountCreate{Balance: 1000})

	goal := createTestGoal(suite.T(), s, v1.GoalCreate{Name: "Bike", Price: 4000})

	// Raising the saved amount allocates from the wallet
	r := test.Request(suite.T(), http.MethodPatch, goal.Data.Links.Self, `{ "name": "Road bike", "saved": 2500 }`, s.Headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal("Road bike", updated.Data.Name)
	suite.Assert().Equal(int64(2500), updated.Data.Saved)
	suite.Assert().Equal(int64(4000), updated.Data.Price)
	suite.Assert().Equal(int64(2500), getWallet(suite.T(), s).Balance)

	// Lowering it returns the difference
	r = test.Request(suite.T(), http.MethodPatch, goal.Data.Links.Self, `{ "saved": 500 }`, s.Headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Equal(int64(4500), getWallet(suite.T(), s).Balance)

	reversals := getTransactions(suite.T(), s, "?type=reversal")
	suite.Require().Len(reversals.Data, 1)
	suite.Assert().Equal(int64(2000), reversals.Data[0].Amount)

	// A new funding source is used for later changes
	r = test.Request(suite.T(), http.MethodPatch, goal.Data.Links.Self, v1.GoalEditable{SourceID: containerPtr(account.Data.Container())}, s.Headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal(account.Data.ID, *updated.Data.Source.BankAccountID)

	tests := []struct {
		name   string
		path   string
		body   any
		status int
		err    string
	}{
		{"Price below saved", goal.Data.Links.Self, `{ "price": 400 }`, http.StatusBadRequest, ledger.ErrInvalidAmount.Error()},
		{"Negative saved", goal.Data.Links.Self, `{ "saved": -1 }`, http.StatusBadRequest, ledger.ErrInvalidAmount.Error()},
		{"Saved more than the source holds", goal.Data.Links.Self, `{ "saved": 1501 }`, http.StatusUnprocessableEntity, ledger.ErrInsufficientFunds.Error()},
		{"Invalid type", goal.Data.Links.Self, `{ "type": "maybe" }`, http.StatusBadRequest, models.ErrItemTypeInvalid.Error()},
		{"Unknown source", goal.Data.Links.Self, fmt.Sprintf(`{ "sourceId": "%s" }`, uuid.New()), http.StatusNotFound, "there is no bank account matching your query"},
		{"Empty body", goal.Data.Links.Self, "", http.StatusBadRequest, httputil.ErrRequestBodyEmpty.Error()},
		{"Null price", goal.Data.Links.Self, `{ "price": null }`, http.StatusBadRequest, "Price must not be null"},
		{"Unknown goal", fmt.Sprintf("http://example.com/v1/goals/%s", uuid.New()), `{ "name": "Nope" }`, http.StatusNotFound, "there is no item matching your query"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, tt.path, tt.body, s.Headers)
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Contains(t, test.DecodeError(t, &r), tt.err)
		})
	}

	suite.Assert().Equal(int64(500), getGoal(suite.T(), s, goal.Data.ID).Saved)
}

func (suite *TestSuiteStandard) TestGoalsDelete() {
	s := test.Register(suite.T())
	cashIn(suite.T(), s, models.Wallet(), 2000)

	goal := createTestGoal(suite.T(), s, v1.GoalCreate{Price: 5000, Saved: 1500})
	suite.Assert().Equal(int64(500), getWallet(suite.T(), s).Balance)

	r := test.Request(suite.T(), http.MethodDelete, goal.Data.Links.Self, "", s.Headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// The savings are returned
	suite.Assert().Equal(int64(2000), getWallet(suite.T(), s).Balance)

	r = test.Request(suite.T(), http.MethodGet, goal.Data.Links.Self, "", s.Headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, goal.Data.Links.Self, "", s.Headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/goals/NotParseableAsUUID", "", s.Headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGoalsAllocate() {
	s := test.Register(suite.T())
	cashIn(suite.T(), s, models.Wallet(), 5000)
	account := createTestBankAccount(suite.T(), s, v1.BankAccountCreate{Name: "Savings", Balance: 800})

	goal := createTestGoal(suite.T(), s, v1.GoalCreate{Name: "Camera", Price: 3000})

	r := test.Request(suite.T(), http.MethodPost, goal.Data.Links.Allocate, v1.AllocateEditable{Amount: 1000}, s.Headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var allocation v1.AllocationResponse
	test.DecodeResponse(suite.T(), &r, &allocation)
	suite.Assert().Equal(int64(1000), allocation.Data.Goal.Saved)
	suite.Assert().Equal(int64(1000), allocation.Data.Transaction.Amount)
	suite.Assert().Equal(models.TransactionTypeAllocation, allocation.Data.Transaction.Type)
	suite.Assert().Equal(goal.Data.ID, *allocation.Data.Transaction.ItemID)
	suite.Assert().Empty(allocation.Warnings)

	// Allocating from another container
	r = test.Request(suite.T(), http.MethodPost, goal.Data.Links.Allocate, v1.AllocateEditable{Amount: 500, SourceID: containerPtr(account.Data.Container())}, s.Headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
	test.DecodeResponse(suite.T(), &r, &allocation)
	suite.Assert().Equal(int64(1500), allocation.Data.Goal.Saved)
	suite.Assert().Equal(account.Data.ID, *allocation.Data.Transaction.BankAccountID)
	suite.Assert().Equal(int64(300), getBankAccount(suite.T(), s, account.Data.ID).Balance)

	// The amount is capped at what the goal still needs
	r = test.Request(suite.T(), http.MethodPost, goal.Data.Links.Allocate, v1.AllocateEditable{Amount: 2500}, s.Headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
	test.DecodeResponse(suite.T(), &r, &allocation)
	suite.Assert().Equal(int64(3000), allocation.Data.Goal.Saved)
	suite.Assert().Equal(int64(1500), allocation.Data.Transaction.Amount)
	suite.Assert().Equal(models.ItemStateFundable, allocation.Data.Goal.State)
	suite.Assert().True(decimal.NewFromInt(100).Equal(allocation.Data.Goal.Progress))
	suite.Assert().Equal(int64(2500), getWallet(suite.T(), s).Balance)
}

func (suite *TestSuiteStandard) TestGoalsAllocateFails() {
	s := test.Register(suite.T())
	cashIn(suite.T(), s, models.Wallet(), 1000)

	goal := createTestGoal(suite.T(), s, v1.GoalCreate{Price: 5000})
	funded := createTestGoal(suite.T(), s, v1.GoalCreate{Price: 100, Saved: 100})
	unknown := models.BankAccountContainer(uuid.New())

	tests := []struct {
		name   string
		path   string
		body   any
		status int
		err    string
	}{
		{"More than the wallet holds", goal.Data.Links.Allocate, v1.AllocateEditable{Amount: 901}, http.StatusUnprocessableEntity, ledger.ErrInsufficientFunds.Error()},
		{"Zero", goal.Data.Links.Allocate, v1.AllocateEditable{}, http.StatusBadRequest, ledger.ErrInvalidAmount.Error()},
		{"Fully funded", funded.Data.Links.Allocate, v1.AllocateEditable{Amount: 10}, http.StatusBadRequest, "is fully funded already"},
		{"Unknown source", goal.Data.Links.Allocate, v1.AllocateEditable{Amount: 10, SourceID: &unknown}, http.StatusNotFound, "there is no bank account matching your query"},
		{"Unknown goal", fmt.Sprintf("http://example.com/v1/goals/%s/allocate", uuid.New()), v1.AllocateEditable{Amount: 10}, http.StatusNotFound, "there is no item matching your query"},
		{"Not a valid UUID", "http://example.com/v1/goals/NotParseableAsUUID/allocate", v1.AllocateEditable{Amount: 10}, http.StatusBadRequest, httputil.ErrInvalidUUID.Error()},
		{"Empty body", goal.Data.Links.Allocate, "", http.StatusBadRequest, httputil.ErrRequestBodyEmpty.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, tt.path, tt.body, s.Headers)
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Contains(t, test.DecodeError(t, &r), tt.err)
		})
	}

	suite.Assert().Equal(int64(900), getWallet(suite.T(), s).Balance)
	suite.Assert().Equal(int64(0), getGoal(suite.T(), s, goal.Data.ID).Saved)
}

func (suite *TestSuiteStandard) TestGoalsAllocateWarnings() {
	s := test.Register(suite.T())
	cashIn(suite.T(), s, models.Wallet(), 10000)

	need := createTestGoal(suite.T(), s, v1.GoalCreate{Name: "Car repair", Type: models.ItemTypeNeed, Priority: models.PriorityHigh, Price: 2000})
	createTestGoal(suite.T(), s, v1.GoalCreate{Name: "Dentist", Type: models.ItemTypeNeed, Priority: models.PriorityLow})
	want := createTestGoal(suite.T(), s, v1.GoalCreate{Name: "Concert tickets", Type: models.ItemTypeWant})

	// The warnings can be checked before any money moves
	r := test.Request(suite.T(), http.MethodGet, want.Data.Links.Allocate, "", s.Headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var check v1.AllocationCheckResponse
	test.DecodeResponse(suite.T(), &r, &check)
	suite.Assert().Equal([]string{"Car repair is a high priority need and not fully funded yet"}, check.Warnings)
	suite.Assert().Equal(want.Data.ID, check.Data.ID)
	suite.Assert().Equal(int64(10000), getWallet(suite.T(), s).Balance)
	suite.Assert().Empty(getTransactions(suite.T(), s, "?type=allocation").Data)

	r = test.Request(suite.T(), http.MethodGet, need.Data.Links.Allocate, "", s.Headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	check = v1.AllocationCheckResponse{}
	test.DecodeResponse(suite.T(), &r, &check)
	suite.Assert().Empty(check.Warnings)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/goals/%s/allocate", uuid.New()), "", s.Headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodPost, want.Data.Links.Allocate, v1.AllocateEditable{Amount: 100}, s.Headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var allocation v1.AllocationResponse
	test.DecodeResponse(suite.T(), &r, &allocation)
	suite.Assert().Equal([]string{"Car repair is a high priority need and not fully funded yet"}, allocation.Warnings)

	// Allocating to needs never warns
	r = test.Request(suite.T(), http.MethodPost, need.Data.Links.Allocate, v1.AllocateEditable{Amount: 2000}, s.Headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
	test.DecodeResponse(suite.T(), &r, &allocation)
	suite.Assert().Empty(allocation.Warnings)

	// Once the need is funded, there is nothing to warn about
	allocation = v1.AllocationResponse{}
	r = test.Request(suite.T(), http.MethodPost, want.Data.Links.Allocate, v1.AllocateEditable{Amount: 100}, s.Headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
	test.DecodeResponse(suite.T(), &r, &allocation)
	suite.Assert().Empty(allocation.Warnings)
}

func (suite *TestSuiteStandard) TestGoalsDeallocate() {
	s := test.Register(suite.T())
	account := createTestBankAccount(suite.T(), s, v1.BankAccountCreate{Balance: 3000})

	goal := createTestGoal(suite.T(), s, v1.GoalCreate{Name: "Sofa", Price: 5000, Saved: 2000, SourceID: containerPtr(account.Data.Container())})

	r := test.Request(suite.T(), http.MethodPost, goal.Data.Links.Deallocate, v1.DeallocateEditable{Amount: 1500}, s.Headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var allocation v1.AllocationResponse
	test.DecodeResponse(suite.T(), &r, &allocation)
	suite.Assert().Equal(int64(500), allocation.Data.Goal.Saved)
	suite.Assert().Equal(models.TransactionTypeReversal, allocation.Data.Transaction.Type)
	suite.Assert().Equal("Returned from Sofa", allocation.Data.Transaction.Description)

	// The money goes back to the funding source
	suite.Assert().Equal(int64(2500), getBankAccount(suite.T(), s, account.Data.ID).Balance)

	tests := []struct {
		name   string
		amount int64
		status int
	}{
		{"More than saved", 501, http.StatusBadRequest},
		{"Zero", 0, http.StatusBadRequest},
		{"Negative", -10, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, goal.Data.Links.Deallocate, v1.DeallocateEditable{Amount: tt.amount}, s.Headers)
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Contains(t, test.DecodeError(t, &r), ledger.ErrInvalidAmount.Error())
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsArchive() {
	s := test.Register(suite.T())
	cashIn(suite.T(), s, models.Wallet(), 1000)

	goal := createTestGoal(suite.T(), s, v1.GoalCreate{Price: 1000, Saved: 400})

	r := test.Request(suite.T(), http.MethodPost, goal.Data.Links.Archive, "", s.Headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Contains(test.DecodeError(suite.T(), &r), ledger.ErrGoalNotFunded.Error())

	r = test.Request(suite.T(), http.MethodPost, goal.Data.Links.Allocate, v1.AllocateEditable{Amount: 600}, s.Headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = test.Request(suite.T(), http.MethodPost, goal.Data.Links.Archive, "", s.Headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var archived v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &archived)
	suite.Assert().True(archived.Data.Archived)
	suite.Assert().NotNil(archived.Data.DateArchived)
	suite.Assert().Equal(models.ItemStateArchived, archived.Data.State)

	// Archived goals are frozen
	tests := []struct {
		name   string
		method string
		path   string
		body   any
	}{
		{"Archive again", http.MethodPost, goal.Data.Links.Archive, ""},
		{"Update", http.MethodPatch, goal.Data.Links.Self, `{ "name": "Changed" }`},
		{"Delete", http.MethodDelete, goal.Data.Links.Self, ""},
		{"Allocate", http.MethodPost, goal.Data.Links.Allocate, v1.AllocateEditable{Amount: 1}},
		{"Deallocate", http.MethodPost, goal.Data.Links.Deallocate, v1.DeallocateEditable{Amount: 1}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, tt.path, tt.body, s.Headers)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Equal(t, ledger.ErrGoalArchived.Error(), test.DecodeError(t, &r))
		})
	}

	// The money stays spent
	suite.Assert().Equal(int64(0), getWallet(suite.T(), s).Balance)
	suite.Assert().Equal(int64(1000), getGoal(suite.T(), s, goal.Data.ID).Saved)
}

func (suite *TestSuiteStandard) TestGoalsDBClosed() {
	s := test.Register(suite.T())
	suite.CloseDB()

	createTestGoal(suite.T(), s, v1.GoalCreate{}, http.StatusInternalServerError)
}
