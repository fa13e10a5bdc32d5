package sentinel

import "errors"

// Sentinel errors shared by repositories and services. Repositories return
// these (optionally wrapped) so callers can branch with errors.Is instead of
// matching message strings.
//
// - ErrNotFound: referenced user/request/notification does not exist
// - ErrConflict: uniqueness violation (e.g. duplicate email)
// - ErrInvalidInput: malformed or missing input reaching the registry layer
// - ErrInvalidState: entity in wrong state for the operation (e.g. a status
//   transition out of a terminal state)
// - ErrUnavailable: transient infrastructure failure (e.g. snapshot write)
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidState = errors.New("invalid state")
	ErrUnavailable  = errors.New("unavailable")
)
