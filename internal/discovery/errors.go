package discovery

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument indicates a precondition violation detected before any resolution
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrConfiguration indicates the name based path was chosen without any names
	ErrConfiguration = errors.New("no arguments were supplied to the launcher")
)

// NameResolutionError reports a name that is neither a type, a member, nor a namespace
type NameResolutionError struct {
	Name string
}

func (e *NameResolutionError) Error() string {
	return fmt.Sprintf("'%s' specifies neither a type, a member, nor a namespace", e.Name)
}
