package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/wishpay/backend/internal/ledger"
	"github.com/wishpay/backend/internal/models"
)

type GoalCreate struct {
	Name     string            `json:"name" binding:"required,max=255" example:"New TV"`                    // Name of the goal
	Price    int64             `json:"price" example:"49999"`                                              // Price in minor units
	Saved    int64             `json:"saved" example:"0" default:"0"`                                      // Amount to take from the funding source right away
	Type     models.ItemType   `json:"type" binding:"required" example:"need"`                             // "need" or "want"
	Priority models.Priority   `json:"priority" example:"high"`                                            // Priority of a need, ignored for wants
	SourceID *models.Container `json:"sourceId" example:"wallet" swaggertype:"string" default:"wallet"` // "wallet" or the ID of a bank account
}

func (editable GoalCreate) input() ledger.GoalInput {
	source := models.Wallet()
	if editable.SourceID != nil {
		source = *editable.SourceID
	}

	return ledger.GoalInput{
		Name:     editable.Name,
		Price:    editable.Price,
		Saved:    editable.Saved,
		Type:     editable.Type,
		Priority: editable.Priority,
		Source:   source,
	}
}

type GoalEditable struct {
	Name     *string           `json:"name,omitempty" binding:"omitempty,max=255" example:"New TV"` // Name of the goal
	Price    *int64            `json:"price,omitempty" example:"49999"`                             // Price in minor units
	Saved    *int64            `json:"saved,omitempty" example:"12000"`                             // Saved amount. Changes are moved from or to the funding source
	Type     *models.ItemType  `json:"type,omitempty" example:"need"`                               // "need" or "want"
	Priority *models.Priority  `json:"priority,omitempty" example:"high"`                           // Priority of a need
	SourceID *models.Container `json:"sourceId,omitempty" example:"wallet" swaggertype:"string"`    // "wallet" or the ID of a bank account
}

func (editable GoalEditable) update() ledger.GoalUpdate {
	return ledger.GoalUpdate{
		Name:     editable.Name,
		Price:    editable.Price,
		Saved:    editable.Saved,
		Type:     editable.Type,
		Priority: editable.Priority,
		Source:   editable.SourceID,
	}
}

type GoalLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`                     // The goal itself
	Allocate     string `json:"allocate" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c/allocate"`     // Allocate endpoint
	Deallocate   string `json:"deallocate" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c/deallocate"` // Deallocate endpoint
	Archive      string `json:"archive" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c/archive"`       // Archive endpoint
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?item=438cc6c0-9baf-49fd-a75a-d76bd5cab19c"` // Transactions of this goal
}

type Goal struct {
	models.Item
	Source    models.Container `json:"source" example:"wallet" swaggertype:"string"` // The container the goal is funded from
	Remaining int64            `json:"remaining" example:"37999"`                    // Amount still needed
	Progress  decimal.Decimal  `json:"progress" example:"24"`                        // Saved percentage of the price
	State     models.ItemState `json:"state" example:"active"`                       // "active", "fundable" or "archived"
	Links     GoalLinks        `json:"links"`
}

// newGoal returns the API v1 representation of the goal
func newGoal(c *gin.Context, model models.Item) Goal {
	url := c.GetString(string(models.DBContextURL))

	return Goal{
		Item:      model,
		Source:    model.Source(),
		Remaining: model.Remaining(),
		Progress:  progress(model),
		State:     model.State(),
		Links: GoalLinks{
			Self:         fmt.Sprintf("%s/v1/goals/%s", url, model.ID),
			Allocate:     fmt.Sprintf("%s/v1/goals/%s/allocate", url, model.ID),
			Deallocate:   fmt.Sprintf("%s/v1/goals/%s/deallocate", url, model.ID),
			Archive:      fmt.Sprintf("%s/v1/goals/%s/archive", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?item=%s", url, model.ID),
		},
	}
}

// progress is the saved percentage, rounded to two decimal places
func progress(model models.Item) decimal.Decimal {
	if model.Price <= 0 {
		return decimal.Zero
	}

	return decimal.NewFromInt(model.Saved).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(model.Price)).
		Round(2)
}

type GoalListResponse struct {
	Data  []Goal  `json:"data"`                                                          // List of goals
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type GoalResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Goal   `json:"data"`                                                          // The goal
}

type GoalQueryFilter struct {
	Archived bool `form:"archived"` // List archived goals instead of active ones
}

type AllocateEditable struct {
	Amount   int64             `json:"amount" example:"2500"`                       // Amount in minor units
	SourceID *models.Container `json:"sourceId" example:"wallet" swaggertype:"string"` // Container to take the money from. Defaults to the funding source of the goal
}

type DeallocateEditable struct {
	Amount int64 `json:"amount" example:"2500"` // Amount in minor units
}

type Allocation struct {
	Goal        Goal               `json:"goal"`        // The goal after the operation
	Transaction models.Transaction `json:"transaction"` // The logged transaction
}

type AllocationCheckResponse struct {
	Error    *string  `json:"error" example:"the goal is archived and cannot be changed"`                                           // The error, if any occurred
	Warnings []string `json:"warnings" example:"Car repair is a high priority need and not fully funded yet"` // Warnings an allocation would produce
	Data     *Goal    `json:"data"`                                                                          // The goal
}

func priorityWarnings(needs []models.Item) []string {
	var warnings []string
	for _, need := range needs {
		warnings = append(warnings, fmt.Sprintf("%s is a high priority need and not fully funded yet", need.Name))
	}
	return warnings
}

type AllocationResponse struct {
	Error    *string     `json:"error" example:"insufficient funds: WishPay Wallet holds 1000, but 2500 are needed"` // The error, if any occurred
	Warnings []string    `json:"warnings" example:"Car repair is a high priority need and not fully funded yet"`      // Non-blocking hints
	Data     *Allocation `json:"data"`                                                                              // The result
}
