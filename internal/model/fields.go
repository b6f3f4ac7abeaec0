// Copyright (c) 2026 Keymaster Team
// Addressbook - personal contact manager
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import (
	"cmp"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/toeirei/addressbook/internal/logging"
)

const (
	// PhoneFormat describes the only accepted phone number shape.
	PhoneFormat = "please specify a 9-digit string"
	// BirthdayFormat is the layout accepted for birthdays.
	BirthdayFormat = "YYYY-MM-DD"

	phoneRule = "number,len=9"
)

var validate = validator.New()

// Name is the display name of a contact. It carries no constraint.
type Name struct {
	value string
}

func NewName(s string) Name { return Name{value: s} }

func (n Name) String() string { return n.value }

func (n Name) Compare(o Name) int { return cmp.Compare(n.value, o.value) }

// Phone is a phone number of exactly nine decimal digits.
type Phone struct {
	value string
}

// IsPhoneValid reports whether s consists of exactly nine ASCII digits.
func IsPhoneValid(s string) bool {
	return validate.Var(s, phoneRule) == nil
}

// NewPhone validates s and wraps it. Values are stored as given; separators
// are not stripped.
func NewPhone(s string) (Phone, error) {
	if !IsPhoneValid(s) {
		return Phone{}, &ValidationError{Value: s, Format: PhoneFormat}
	}
	return Phone{value: s}, nil
}

func (p Phone) String() string { return p.value }

func (p Phone) Compare(o Phone) int { return cmp.Compare(p.value, o.value) }

// Birthday is an optional calendar date. The zero value is an absent birthday.
type Birthday struct {
	date time.Time
	set  bool
}

// NewBirthday parses s as YYYY-MM-DD. An empty string clears the birthday.
// A malformed value is not an error: it is reported to the log and the
// birthday is left absent.
func NewBirthday(s string) Birthday {
	if s == "" {
		return Birthday{}
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		logging.Warnf("Date of birth '%s' is not valid", s)
		logging.Warnf("Supported date format: %s", BirthdayFormat)
		return Birthday{}
	}
	return Birthday{date: t, set: true}
}

// BirthdayFromTime keeps only the calendar date of t.
func BirthdayFromTime(t time.Time) Birthday {
	y, m, d := t.Date()
	return Birthday{date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), set: true}
}

// Time returns the birthday and whether one is set.
func (b Birthday) Time() (time.Time, bool) { return b.date, b.set }

func (b Birthday) IsZero() bool { return !b.set }

// String renders the date as YYYY-MM-DD, or "None" when absent.
func (b Birthday) String() string {
	if !b.set {
		return "None"
	}
	return b.date.Format(time.DateOnly)
}

func (b Birthday) Compare(o Birthday) int {
	switch {
	case b.set != o.set:
		if b.set {
			return 1
		}
		return -1
	default:
		return b.date.Compare(o.date)
	}
}
