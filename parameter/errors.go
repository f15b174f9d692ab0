package parameter

import (
	"fmt"
	"strings"

	"github.com/djdv/go-consoleargs/internal/generic"
)

type (
	// DuplicateAliasError is returned when a name
	// is registered with a parameter more than once.
	DuplicateAliasError struct {
		// Name is the primary name of the parameter.
		Name string
		// Alias is the name that was already registered.
		Alias   string
		message string
	}

	// MissingRequiredError is returned when a required
	// parameter is not present within the arguments.
	MissingRequiredError struct {
		// Name is the primary name of the parameter.
		Name    string
		message string
	}

	// UnrecognizedError is returned when arguments
	// remain after every parameter has claimed its own.
	UnrecognizedError struct {
		Tokens []string
	}
)

const (
	// ErrUsage is wrapped by every error that is caused by
	// the arguments or the parameter's configuration.
	// E.g. arguments that are missing or not recognized,
	// names registered more than once, etc.
	ErrUsage = generic.ConstError("parameter used incorrectly")
	// ErrUnrecognized is wrapped by [UnrecognizedError].
	ErrUnrecognized = generic.ConstError("unrecognized arguments")
)

func (e *DuplicateAliasError) Error() string {
	if e.message != "" {
		return e.message
	}
	return fmt.Sprintf("parameter \"%s\" already has a name \"%s\"",
		e.Name, e.Alias,
	)
}

func (*DuplicateAliasError) Unwrap() error { return ErrUsage }

func (e *MissingRequiredError) Error() string {
	if e.message != "" {
		return e.message
	}
	return fmt.Sprintf("required parameter \"%s\" was not provided", e.Name)
}

func (*MissingRequiredError) Unwrap() error { return ErrUsage }

func (e *UnrecognizedError) Error() string {
	return ErrUnrecognized.Error() + ": " + strings.Join(e.Tokens, " ")
}

func (*UnrecognizedError) Unwrap() []error {
	return []error{ErrUsage, ErrUnrecognized}
}
