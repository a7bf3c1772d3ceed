package models

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type Color string

const (
	ColorRed    Color = "red"
	ColorOrange Color = "orange"
	ColorYellow Color = "yellow"
	ColorGreen  Color = "green"
	ColorBlue   Color = "blue"
	ColorPurple Color = "purple"
	ColorPink   Color = "pink"
	ColorGray   Color = "gray"
)

var colors = []Color{ColorRed, ColorOrange, ColorYellow, ColorGreen, ColorBlue, ColorPurple, ColorPink, ColorGray}

// Valid reports if the color is one of the supported colors.
func (c Color) Valid() bool {
	return slices.Contains(colors, c)
}

// BankAccount is a user-defined balance holder.
type BankAccount struct {
	DefaultModel
	User    User      `json:"-"`
	UserID  uuid.UUID `json:"-" gorm:"type:char(36);index;not null"`
	Name    string    `json:"name" example:"Emergency fund"`
	Color   Color     `json:"color" gorm:"not null;default:gray" example:"green"`
	Balance int64     `json:"balance" gorm:"not null;default:0;check:bank_account_balance_not_negative,balance >= 0" example:"50000"`
}

func (b *BankAccount) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)

	if b.Color == "" {
		b.Color = ColorGray
	}

	if !b.Color.Valid() {
		return ErrBankAccountColorInvalid
	}

	if b.Balance < 0 {
		return ErrBalanceNegative
	}

	return nil
}

// Container returns the balance holder for the bank account.
func (b BankAccount) Container() Container {
	return BankAccountContainer(b.ID)
}
