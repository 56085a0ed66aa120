package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotLoggedIn    = http.StatusUnauthorized
	ErrStatusNoPermission   = http.StatusForbidden
	ErrStatusUnauthorized   = http.StatusUnauthorized
	ErrStatusNotFound       = http.StatusNotFound
)

var (
	ErrInternalServer     = errors.New("Internal server error")
	ErrClient             = errors.New("Bad request")
	ErrNotLoggedIn        = errors.New("Login required")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrEmailAlreadyInUse  = errors.New("Email already in use")
	ErrUnauthorized       = errors.New("Forbidden access")
	ErrNotFound           = errors.New("Resource not found")
	ErrValidation         = errors.New("Validation failed")

	// ErrParse marks corrupted persisted JSON. It is recovered at the
	// repository layer (treat the collection as empty) and never reaches
	// API clients.
	ErrParse = errors.New("Corrupted stored record")
)

var errorMap = map[error]int{
	ErrInternalServer:     ErrStatusInternalServer,
	ErrClient:             ErrStatusClient,
	ErrNotLoggedIn:        ErrStatusNotLoggedIn,
	ErrInvalidCredentials: ErrStatusUnauthorized,
	ErrEmailAlreadyInUse:  ErrStatusClient,
	ErrUnauthorized:       ErrStatusNoPermission,
	ErrNotFound:           ErrStatusNotFound,
	ErrValidation:         ErrStatusClient,
}

func GetErrorStatusCode(err error) int {
	for target, code := range errorMap {
		if errors.Is(err, target) {
			return code
		}
	}
	return ErrStatusInternalServer
}
