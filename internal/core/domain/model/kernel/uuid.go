package kernel

import (
	"orderflow/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates a zero-value UUID that was never produced by NewUUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID")

// UUID is an immutable value object wrapping github.com/google/uuid.
// Orders are keyed by OrderID; UUIDs identify the state-changed notifications
// the workflow publishes, so consumers can de-duplicate redeliveries.
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random (version 4) UUID.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

func (u UUID) String() string {
	return u.id.String()
}

// Validate returns ErrUUIDIsNotConstructed for the zero value.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
