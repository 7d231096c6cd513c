package services

import "errors"

// Dispatcher errors.
var (
	// ErrUnknownRole indicates a role tag outside controller/model/view.
	ErrUnknownRole = errors.New("frock: unknown class role")

	// ErrDuplicateClass indicates a class name was registered twice.
	ErrDuplicateClass = errors.New("frock: class already registered")

	// ErrInvalidClass indicates an empty name, a nil factory, or a factory returning nil.
	ErrInvalidClass = errors.New("frock: invalid class")

	// ErrJournalDisabled is returned by journal reads when no database is configured.
	ErrJournalDisabled = errors.New("dispatch journal disabled")

	// ErrInvalidCredentials is returned by operator login for any mismatch.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ClassNotFoundError is returned when a derived class name has no registered factory.
type ClassNotFoundError struct {
	ClassName string
}

func (e *ClassNotFoundError) Error() string {
	return "Class not found: " + e.ClassName
}

// IsClassNotFound checks for a (possibly wrapped) ClassNotFoundError.
func IsClassNotFound(err error) bool {
	var cnf *ClassNotFoundError
	return errors.As(err, &cnf)
}
