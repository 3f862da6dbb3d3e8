// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hijri

import (
	"errors"
	"fmt"
)

var (
	// ErrConstruction is returned when a Date or Range cannot be created
	// from the supplied components.
	ErrConstruction = errors.New("invalid hijri date")

	// ErrParse is returned when no parsing strategy accepts an input.
	ErrParse = errors.New("unable to parse hijri date")

	// ErrInvalidOperation is returned by Range operations whose result
	// would not be a valid range.
	ErrInvalidOperation = errors.New("invalid range operation")
)

// ParseError records a failed parse. Err contains the reasons that each
// candidate interpretation of Input was rejected.
type ParseError struct {
	Input   string
	Pattern string
	Err     error
}

func (e *ParseError) Error() string {
	if len(e.Pattern) > 0 {
		return fmt.Sprintf("%v: %q (pattern %q): %v", ErrParse, e.Input, e.Pattern, e.Err)
	}
	return fmt.Sprintf("%v: %q: %v", ErrParse, e.Input, e.Err)
}

// Unwrap returns ErrParse and the underlying causes.
func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// DecodeError is returned by Decode and the encoding.TextUnmarshaler
// and yaml.Unmarshaler implementations.
type DecodeError struct {
	Input string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode hijri date %q: %v", e.Input, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func constructionError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConstruction, fmt.Sprintf(format, args...))
}
