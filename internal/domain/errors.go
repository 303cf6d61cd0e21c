package domain

import "fmt"

// NotFoundError represents a missing resource.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is enables errors.Is matching on NotFoundError.
func (e NotFoundError) Is(target error) bool {
	_, ok := target.(NotFoundError)
	if ok {
		return true
	}
	_, ok = target.(*NotFoundError)
	return ok
}

// ErrNotFound is the sentinel error for missing resources.
var ErrNotFound = NotFoundError{}

// ErrInvalidCredential is returned when a login attempt fails. Deliberately
// identical for unknown users and wrong passwords.
var ErrInvalidCredential = fmt.Errorf("invalid username or password")

// ErrSessionExpired is returned when an admin session token is unknown or
// has timed out.
var ErrSessionExpired = fmt.Errorf("session expired")
