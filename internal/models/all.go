package models

// UserResources lists the resources owned by a user in the order they need
// to be deleted in to satisfy the foreign key constraints.
func UserResources() []interface{} {
	return []interface{}{&Transaction{}, &Item{}, &BankAccount{}}
}
