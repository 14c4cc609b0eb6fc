package repo

import (
	"errors"
	"fmt"
)

// ErrProductNotFound is returned when a product is not found in the catalog.
// Not-found is an expected outcome; callers branch on it explicitly.
var ErrProductNotFound = errors.New("product not found")

// ValidationError reports a rejected field on product creation.
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
