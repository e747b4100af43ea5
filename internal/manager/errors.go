package manager

// sessionNotFoundError is returned when polling an identifier that was never
// issued or whose session has been reaped. The two cases are deliberately
// indistinguishable.
type sessionNotFoundError struct{ id string }

func (e sessionNotFoundError) Error() string { return "generation session not found: " + e.id }

// ErrSessionNotFound constructs a sessionNotFoundError.
func ErrSessionNotFound(id string) error { return sessionNotFoundError{id: id} }

// IsSessionNotFound reports whether err indicates an unknown session id (404).
func IsSessionNotFound(err error) bool {
	_, ok := err.(sessionNotFoundError)
	return ok
}

// engineUnavailableError signals a missing engine runtime (e.g., llama.cpp
// not compiled in) so the HTTP layer can return 503 instead of 500.
type engineUnavailableError struct{ msg string }

func (e engineUnavailableError) Error() string { return e.msg }

// ErrEngineUnavailable constructs an engineUnavailableError.
func ErrEngineUnavailable(msg string) error { return engineUnavailableError{msg: msg} }

// IsEngineUnavailable reports whether err indicates a missing/failed runtime dependency.
func IsEngineUnavailable(err error) bool {
	_, ok := err.(engineUnavailableError)
	return ok
}
