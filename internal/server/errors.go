package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrInvalidAdminKey indicates a failed admin key exchange
type ErrInvalidAdminKey struct{}

func (e *ErrInvalidAdminKey) Error() string {
	return "invalid admin key"
}

// ErrRoleKitNotFound indicates the requested role kit does not exist
type ErrRoleKitNotFound struct {
	KitID uuid.UUID
}

func (e *ErrRoleKitNotFound) Error() string {
	return fmt.Sprintf("role kit not found: %s", e.KitID)
}

// ErrJobTargetNotFound indicates the requested job target does not exist
type ErrJobTargetNotFound struct {
	JobID uuid.UUID
}

func (e *ErrJobTargetNotFound) Error() string {
	return fmt.Sprintf("job target not found: %s", e.JobID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrInvalidAdminKey:
		return http.StatusUnauthorized
	case *ErrRoleKitNotFound, *ErrJobTargetNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
