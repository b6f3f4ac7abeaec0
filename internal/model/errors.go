// Copyright (c) 2026 Keymaster Team
// Addressbook - personal contact manager
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches every *ValidationError via errors.Is.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound matches every *NotFoundError via errors.Is.
	ErrNotFound = errors.New("not found")
)

// ValidationError reports a value that does not have the required shape.
type ValidationError struct {
	Value  string
	Format string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("phone number '%s' is not valid: %s", e.Value, e.Format)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NotFoundError reports a phone number that is not stored on a record.
type NotFoundError struct {
	Value string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("phone number '%s' not found", e.Value)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
