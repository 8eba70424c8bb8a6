package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/wellday/internal/logger"
)

var (
	// ErrInvalidInput marks a value outside its documented range or enumeration.
	ErrInvalidInput = stderrors.New("invalid input")
	// ErrPersistence marks a log file or database that could not be read or written.
	ErrPersistence = stderrors.New("persistence failure")
)

// kindError ties a detailed error to one of the kinds above.
type kindError struct {
	kind error
	msg  string
	err  error
}

func (e *kindError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.kind, e.msg, e.err)
	}
	return fmt.Sprintf("%s: %s", e.kind, e.msg)
}

func (e *kindError) Is(target error) bool {
	return target == e.kind
}

func (e *kindError) Unwrap() error {
	return e.err
}

// InvalidInput returns an error of kind ErrInvalidInput.
func InvalidInput(format string, args ...interface{}) error {
	return &kindError{kind: ErrInvalidInput, msg: fmt.Sprintf(format, args...)}
}

// Persistence wraps err as an ErrPersistence failure of the named operation.
// It returns nil when err is nil.
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	return &kindError{kind: ErrPersistence, msg: op, err: err}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// IsInvalidInput reports whether err is of kind ErrInvalidInput.
func IsInvalidInput(err error) bool {
	return stderrors.Is(err, ErrInvalidInput)
}

// IsPersistence reports whether err is of kind ErrPersistence.
func IsPersistence(err error) bool {
	return stderrors.Is(err, ErrPersistence)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
