// Package uuid wraps google/uuid so that IDs can be bound from URI paths
// and query strings.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

func New() UUID {
	return UUID{google_uuid.New()}
}

// UnmarshalParam parses p with google/uuid. An empty parameter results in
// the Nil UUID.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, e := google_uuid.Parse(p)
	if e != nil {
		return e
	}

	*u = UUID{parsed}
	return nil
}

// Ptr returns a pointer to the wrapped UUID, nil for the Nil UUID.
func (u UUID) Ptr() *google_uuid.UUID {
	if u == Nil {
		return nil
	}

	id := u.UUID
	return &id
}
