package kernel

import (
	"fmt"

	"warehouse/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned by Validate for the zero UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is the identity of warehouse entities. It wraps github.com/google/uuid
// and is immutable; compare with IsEqual.
//
// The zero value stands for "identity not yet assigned":
//
//	p, _ := product.NewProduct("Laptop", 10, price)
//	p.ID().IsZero() // true until the repository stores it
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random (version 4) identifier.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses the canonical, braced, urn and hyphen-less forms.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("UUID", fmt.Errorf("invalid UUID format: %w", err))
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes restores an identifier persisted as 16 raw bytes.
// The all-zero value is rejected because it never identifies a stored entity.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("UUID", fmt.Errorf("invalid UUID format: %w", err))
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// UUIDFromGoogle wraps an already parsed uuid.UUID, e.g. one bound from an HTTP path.
func UUIDFromGoogle(id uuid.UUID) (UUID, error) {
	newID := UUID{id: id}
	if err := newID.Validate(); err != nil {
		return UUID{}, err
	}
	return newID, nil
}

func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying uuid.UUID for adapters (DTOs, HTTP payloads).
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// IsZero reports whether no identity has been assigned yet.
func (u UUID) IsZero() bool {
	return u.id == uuid.Nil
}

// Validate fails for the zero UUID.
func (u UUID) Validate() error {
	if u.IsZero() {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
