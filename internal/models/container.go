package models

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// WalletName is the display name of the wallet in transaction descriptions.
const WalletName = "WishPay Wallet"

const walletKey = "wallet"

// Container identifies a balance holder. The zero value is the wallet,
// any other value is the bank account with the given ID.
type Container struct {
	BankAccountID *uuid.UUID
}

func Wallet() Container {
	return Container{}
}

func BankAccountContainer(id uuid.UUID) Container {
	return Container{BankAccountID: &id}
}

// ContainerFor returns the container identified by a nullable bank account reference.
func ContainerFor(bankAccountID *uuid.UUID) Container {
	if bankAccountID == nil {
		return Wallet()
	}
	return BankAccountContainer(*bankAccountID)
}

// ParseContainer parses "wallet" or a bank account UUID.
func ParseContainer(s string) (Container, error) {
	if s == walletKey {
		return Wallet(), nil
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return Container{}, fmt.Errorf("%w: %s", ErrContainerInvalid, s)
	}

	return BankAccountContainer(id), nil
}

func (c Container) IsWallet() bool {
	return c.BankAccountID == nil
}

func (c Container) Equal(o Container) bool {
	if c.IsWallet() || o.IsWallet() {
		return c.IsWallet() == o.IsWallet()
	}
	return *c.BankAccountID == *o.BankAccountID
}

func (c Container) String() string {
	if c.IsWallet() {
		return walletKey
	}
	return c.BankAccountID.String()
}

func (c Container) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Container) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrContainerInvalid, string(data))
	}

	parsed, err := ParseContainer(s)
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}

// UnmarshalParam parses query parameters. An empty parameter is not a
// valid container.
func (c *Container) UnmarshalParam(p string) error {
	parsed, err := ParseContainer(p)
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}
