package models

import (
	"strings"

	"gorm.io/gorm"
)

// User owns one wallet, any number of bank accounts and goals.
//
// The wallet balance is stored on the user.
type User struct {
	DefaultModel
	Name         string `json:"name" example:"Jane Doe"`
	Email        string `json:"email" gorm:"uniqueIndex;not null" example:"jane@example.com"`
	PasswordHash string `json:"-"`
	Balance      int64  `json:"balance" gorm:"not null;default:0;check:user_balance_not_negative,balance >= 0" example:"12000"`
	WalletHidden bool   `json:"walletHidden" gorm:"not null;default:false" example:"false"`
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))

	if u.Email == "" {
		return ErrUserEmailEmpty
	}

	if u.Balance < 0 {
		return ErrBalanceNegative
	}

	return nil
}

// HasPassword reports if the user can log in with a password. Users linked
// to an identity provider have none.
func (u User) HasPassword() bool {
	return u.PasswordHash != ""
}
