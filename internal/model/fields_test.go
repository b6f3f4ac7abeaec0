// Copyright (c) 2026 Keymaster Team
// Addressbook - personal contact manager
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/toeirei/addressbook/internal/logging"
)

// captureLog swaps the package logger for a buffer-backed one for the
// duration of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := logging.L
	logging.L = clog.New(&buf)
	logging.L.SetLevel(clog.DebugLevel)
	t.Cleanup(func() { logging.L = prev })
	return &buf
}

func TestNewPhone_Valid(t *testing.T) {
	for _, s := range []string{"123123123", "000000000", "999999999"} {
		p, err := NewPhone(s)
		if err != nil {
			t.Fatalf("NewPhone(%q) unexpected error: %v", s, err)
		}
		if p.String() != s {
			t.Fatalf("NewPhone(%q).String() = %q", s, p.String())
		}
	}
}

func TestNewPhone_Invalid(t *testing.T) {
	for _, s := range []string{
		"",
		"12312312",    // too short
		"1231231234",  // too long
		"ddfdfa",      // letters
		"123-123-12",  // separators are not stripped
		"-12345678",   // sign
		"1234.5678",   // decimal point
		"12345678 ",   // trailing space
		"١٢٣٤٥٦٧٨٩", // non-ASCII digits
	} {
		_, err := NewPhone(s)
		if err == nil {
			t.Fatalf("NewPhone(%q) expected validation error", s)
		}
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("NewPhone(%q) error type %T, want *ValidationError", s, err)
		}
		if ve.Value != s || ve.Format != PhoneFormat {
			t.Fatalf("unexpected error fields: %+v", ve)
		}
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected errors.Is(err, ErrValidation) for %q", s)
		}
		if IsPhoneValid(s) {
			t.Fatalf("IsPhoneValid(%q) = true", s)
		}
	}
}

func TestPhoneCompare(t *testing.T) {
	a, _ := NewPhone("111111111")
	b, _ := NewPhone("222222222")
	if a.Compare(b) >= 0 || b.Compare(a) <= 0 || a.Compare(a) != 0 {
		t.Fatalf("unexpected ordering between %s and %s", a, b)
	}
	if NewName("Balin").Compare(NewName("Bilbo")) >= 0 {
		t.Fatalf("expected Balin < Bilbo")
	}
}

func TestNewBirthday_Valid(t *testing.T) {
	buf := captureLog(t)
	for _, s := range []string{"1988-12-01", "2000-02-29", "1432-04-12"} {
		b := NewBirthday(s)
		if b.IsZero() {
			t.Fatalf("NewBirthday(%q) is absent", s)
		}
		if b.String() != s {
			t.Fatalf("NewBirthday(%q).String() = %q", s, b.String())
		}
	}
	if buf.Len() != 0 {
		t.Fatalf("valid birthdays should not log, got: %s", buf.String())
	}
}

func TestNewBirthday_InvalidDegradesToNone(t *testing.T) {
	buf := captureLog(t)
	for _, s := range []string{"hhhdj-3--43-", "2001-02-29", "1988/12/01", "1988-13-01"} {
		b := NewBirthday(s)
		if !b.IsZero() {
			t.Fatalf("NewBirthday(%q) should be absent", s)
		}
		if b.String() != "None" {
			t.Fatalf("NewBirthday(%q).String() = %q, want None", s, b.String())
		}
	}
	out := buf.String()
	if !strings.Contains(out, "Date of birth 'hhhdj-3--43-' is not valid") {
		t.Fatalf("missing invalid value notice; got: %s", out)
	}
	if !strings.Contains(out, "Supported date format: YYYY-MM-DD") {
		t.Fatalf("missing format hint; got: %s", out)
	}
}

func TestNewBirthday_EmptyClears(t *testing.T) {
	buf := captureLog(t)
	if b := NewBirthday(""); !b.IsZero() || b.String() != "None" {
		t.Fatalf("empty birthday should be absent, got %v", b)
	}
	if buf.Len() != 0 {
		t.Fatalf("empty birthday should not log, got: %s", buf.String())
	}
}

func TestBirthdayFromTime_DropsClock(t *testing.T) {
	loc := time.FixedZone("X", 5*3600)
	b := BirthdayFromTime(time.Date(1990, 5, 17, 23, 30, 0, 0, loc))
	if b.String() != "1990-05-17" {
		t.Fatalf("unexpected birthday: %s", b)
	}
	if b.Compare(NewBirthday("1990-05-17")) != 0 {
		t.Fatalf("expected equal birthdays")
	}
	if (Birthday{}).Compare(b) >= 0 {
		t.Fatalf("absent birthday should sort first")
	}
}
