package statsapi

import (
	"fmt"

	crerr "github.com/cockroachdb/errors"
)

// ErrNotFound is returned when the API has no record for the requested id.
var ErrNotFound = crerr.New("statistics record not found")

// StatusError is a non-OK, non-404 answer from the statistics API.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("received non-OK HTTP status: %d", e.StatusCode)
}
