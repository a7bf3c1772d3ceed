package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ItemType string

const (
	ItemTypeNeed ItemType = "need"
	ItemTypeWant ItemType = "want"
)

func (t ItemType) Valid() bool {
	return t == ItemTypeNeed || t == ItemTypeWant
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

type ItemState string

const (
	ItemStateActive   ItemState = "active"
	ItemStateFundable ItemState = "fundable"
	ItemStateArchived ItemState = "archived"
)

// Item is a savings goal.
//
// Saved money is held by the item itself. It is taken from and returned to
// the funding source, which is the bank account referenced by
// BankAccountID or the wallet when no bank account is set.
type Item struct {
	DefaultModel
	User          User         `json:"-"`
	UserID        uuid.UUID    `json:"-" gorm:"type:char(36);index;not null"`
	Name          string       `json:"name" example:"New TV"`
	Price         int64        `json:"price" gorm:"not null;check:item_price_positive,price > 0" example:"49999"`
	Saved         int64        `json:"saved" gorm:"not null;default:0;check:item_saved_within_price,saved >= 0 AND saved <= price" example:"12000"`
	Type          ItemType     `json:"type" gorm:"not null" example:"want"`
	Priority      Priority     `json:"priority" example:"high"`
	BankAccount   *BankAccount `json:"-"`
	BankAccountID *uuid.UUID   `json:"bankAccountId" gorm:"type:char(36);index"`
	DateAdded     time.Time    `json:"dateAdded"`
	Archived      bool         `json:"archived" gorm:"not null;default:false"`
	DateArchived  *time.Time   `json:"dateArchived"`
}

func (i *Item) BeforeSave(_ *gorm.DB) error {
	i.Name = strings.TrimSpace(i.Name)
	if i.Name == "" {
		return ErrItemNameEmpty
	}

	if !i.Type.Valid() {
		return ErrItemTypeInvalid
	}

	// Priorities only order needs
	if i.Type == ItemTypeWant {
		i.Priority = ""
	} else if i.Priority == "" {
		i.Priority = PriorityMedium
	}

	if i.Type == ItemTypeNeed && !i.Priority.Valid() {
		return ErrItemPriorityInvalid
	}

	if i.Price <= 0 {
		return ErrItemPriceNotPositive
	}

	if i.Saved < 0 || i.Saved > i.Price {
		return ErrItemSavedOutOfRange
	}

	if i.DateAdded.IsZero() {
		i.DateAdded = time.Now().UTC()
	}

	return nil
}

func (i *Item) AfterFind(tx *gorm.DB) error {
	err := i.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	i.DateAdded = i.DateAdded.In(time.UTC)
	if i.DateArchived != nil {
		t := i.DateArchived.In(time.UTC)
		i.DateArchived = &t
	}

	return nil
}

// Source returns the container the item is funded from.
func (i Item) Source() Container {
	return ContainerFor(i.BankAccountID)
}

// Remaining is the amount still needed to fully fund the item.
func (i Item) Remaining() int64 {
	return i.Price - i.Saved
}

// State reports where the item is in its lifecycle.
func (i Item) State() ItemState {
	switch {
	case i.Archived:
		return ItemStateArchived
	case i.Saved >= i.Price:
		return ItemStateFundable
	default:
		return ItemStateActive
	}
}
