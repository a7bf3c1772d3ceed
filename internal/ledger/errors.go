package ledger

import (
	"errors"
)

var (
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrSameAccount         = errors.New("source and destination must be different")
	ErrDestinationNotFound = errors.New("the destination does not exist")

	ErrGoalArchived  = errors.New("the goal is archived and cannot be changed")
	ErrGoalNotFunded = errors.New("only fully funded goals can be archived")
)
