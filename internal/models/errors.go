package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrUserEmailNotUnique = errors.New("the email address is already in use")
	ErrUserEmailEmpty     = errors.New("the email address must not be empty")

	ErrBankAccountColorInvalid = errors.New("the color must be one of red, orange, yellow, green, blue, purple, pink or gray")
	ErrBalanceNegative         = errors.New("balances must not be negative")

	ErrItemNameEmpty        = errors.New("the name must not be empty")
	ErrItemPriceNotPositive = errors.New("the price must be larger than zero")
	ErrItemSavedOutOfRange  = errors.New("the saved amount must be between zero and the price")
	ErrItemTypeInvalid      = errors.New("the type must be \"need\" or \"want\"")
	ErrItemPriorityInvalid  = errors.New("the priority must be \"high\", \"medium\" or \"low\"")

	ErrTransactionAmountNotPositive = errors.New("transaction amounts must be larger than zero")
	ErrTransactionTypeInvalid       = errors.New("the transaction type is invalid")

	ErrContainerInvalid = errors.New("a balance holder must be \"wallet\" or the ID of a bank account")
)
