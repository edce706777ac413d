package service

import "errors"

// Service-level sentinels translated to HTTP statuses by the handlers.
var (
	// ErrForbidden indicates the actor lacks permission for the operation.
	ErrForbidden = errors.New("insufficient permissions")
	// ErrLocked indicates a write against a locked discussion.
	ErrLocked = errors.New("discussion is locked")
	// ErrAlreadyRegistered indicates a duplicate event registration.
	ErrAlreadyRegistered = errors.New("already registered for event")
	// ErrCredentials indicates a failed username/password check.
	ErrCredentials = errors.New("invalid credentials")
	// ErrDuplicateUser indicates the username or email is already taken.
	ErrDuplicateUser = errors.New("username or email already in use")
)

// Actor identifies the authenticated caller for policy checks.
type Actor struct {
	ID      int
	IsAdmin bool
}

// CanModify reports whether the actor may mutate a resource owned by ownerID.
// Admins may mutate anything; everyone else only their own resources.
func (a Actor) CanModify(ownerID int) bool {
	return a.IsAdmin || a.ID == ownerID
}

func requireOwnerOrAdmin(ownerID int, actor Actor) error {
	if !actor.CanModify(ownerID) {
		return ErrForbidden
	}
	return nil
}

func requireAdmin(actor Actor) error {
	if !actor.IsAdmin {
		return ErrForbidden
	}
	return nil
}
