// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// Error families. Every error below matches exactly one of these with
// errors.Is so callers can branch on direction without inspecting kinds.
var (
	// ErrDecode marks failures converting a response value into a record.
	ErrDecode = errors.New("crossref: decode failed")

	// ErrRoute marks failures compiling a query into a route.
	ErrRoute = errors.New("crossref: route compilation failed")
)

// MissingFieldError reports a required key that is absent from a JSON object.
// Name is the dotted path of the key relative to the decoded record
// (e.g. "author[2].sequence").
type MissingFieldError struct {
	Name string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q", e.Name)
}

// Is reports whether target is the decode family.
func (e *MissingFieldError) Is(target error) bool { return target == ErrDecode }

// InvalidTypeError reports a key that is present but holds the wrong JSON type.
type InvalidTypeError struct {
	Name string
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("invalid type for field %q", e.Name)
}

// Is reports whether target is the decode family.
func (e *InvalidTypeError) Is(target error) bool { return target == ErrDecode }

// InvalidMessageTypeError reports a top-level value that is not an object
// where one was required.
type InvalidMessageTypeError struct {
	Description string
}

func (e *InvalidMessageTypeError) Error() string {
	return fmt.Sprintf("invalid message type: %s", e.Description)
}

// Is reports whether target is the decode family.
func (e *InvalidMessageTypeError) Is(target error) bool { return target == ErrDecode }

// InvalidResultControlError reports a pagination parameter string that could
// not be parsed back into a typed control value.
type InvalidResultControlError struct {
	Description string
}

func (e *InvalidResultControlError) Error() string {
	return fmt.Sprintf("invalid result control: %s", e.Description)
}

// Is reports whether target is the route family.
func (e *InvalidResultControlError) Is(target error) bool { return target == ErrRoute }

// ConfigError reports a violated compile-time invariant of a query. It is
// raised before any request is issued.
type ConfigError struct {
	Description string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid query configuration: %s", e.Description)
}

// Is reports whether target is the route family.
func (e *ConfigError) Is(target error) bool { return target == ErrRoute }

// WithFieldPrefix qualifies the field name carried by a MissingFieldError or
// InvalidTypeError with prefix. Other errors are returned unchanged.
func WithFieldPrefix(err error, prefix string) error {
	join := func(name string) string {
		if name == "" {
			return prefix
		}
		if name[0] == '[' {
			return prefix + name
		}
		return prefix + "." + name
	}
	var missing *MissingFieldError
	if errors.As(err, &missing) {
		return &MissingFieldError{Name: join(missing.Name)}
	}
	var invalid *InvalidTypeError
	if errors.As(err, &invalid) {
		return &InvalidTypeError{Name: join(invalid.Name)}
	}
	return err
}
