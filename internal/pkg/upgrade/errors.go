package upgrade

import (
	"errors"
	"fmt"

	"github.com/MarcSteiner/BaseForge/app/models"
)

// ErrCapacityExceeded is returned when every builder slot is occupied.
var ErrCapacityExceeded = errors.New("all builders are busy")

// NotFoundError reports a missing referenced entity (catalog entry, account,
// tier structure). Client-visible, never retried by the engine.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// InsufficientResourcesError reports that the account's balance in the
// required resource is below the final cost.
type InsufficientResourcesError struct {
	Resource models.ResourceKind
}

func (e *InsufficientResourcesError) Error() string {
	return fmt.Sprintf("not enough %s", e.Resource)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
