package optargs

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNoOptions is returned by Parse when the registry holds no option specs
// at all, which can only happen once the built-in help switch has been
// removed or suppressed.
var ErrNoOptions = errors.New("no options declared")

// ErrMissingRequired is returned by Parse when one or more required options
// resolved no value. It deliberately does not say which.
var ErrMissingRequired = errors.New("not all required arguments were provided")

// MissingValueError is returned by Parse when a value-consuming option's
// flag appeared with no value token after it.
type MissingValueError struct {
	Option string
}

func (e MissingValueError) Error() string {
	return fmt.Sprintf("option %q requires a value that was not provided", e.Option)
}

// UnknownOptionError is returned by Remove for names never declared.
type UnknownOptionError struct {
	Name string
}

func (e UnknownOptionError) Error() string {
	return fmt.Sprintf("no such option %q", e.Name)
}
