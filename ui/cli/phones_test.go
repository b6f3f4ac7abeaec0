// Copyright (c) 2026 Keymaster Team
// Addressbook - personal contact manager
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	clog "github.com/charmbracelet/log"
	"github.com/toeirei/addressbook/internal/logging"
	"github.com/toeirei/addressbook/internal/model"
)

func TestPhoneCommands(t *testing.T) {
	testEnv(t)
	mustExecute(t, "add", "Bilbo", "123456789")

	out := mustExecute(t, "phone", "add", "Bilbo", "999999999", "111111111")
	if !strings.Contains(out, "Phones of Bilbo: 111111111, 123456789, 999999999") {
		t.Fatalf("unexpected phone add output:\n%s", out)
	}

	out = mustExecute(t, "phone", "change", "Bilbo", "999999999", "222222222")
	if !strings.Contains(out, "Phones of Bilbo: 111111111, 123456789, 222222222") {
		t.Fatalf("unexpected phone change output:\n%s", out)
	}

	out = mustExecute(t, "phone", "remove", "Bilbo", "123456789", "222222222")
	if !strings.Contains(out, "Phones of Bilbo: 111111111") {
		t.Fatalf("unexpected phone remove output:\n%s", out)
	}
}

func TestPhoneCommands_Errors(t *testing.T) {
	testEnv(t)
	mustExecute(t, "add", "Bilbo", "123456789")

	if _, err := executeCommand(t, "phone", "remove", "Bilbo", "555555555"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := executeCommand(t, "phone", "change", "Bilbo", "123456789", "12"); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := executeCommand(t, "phone", "add", "Gandalf", "123456789"); err == nil || !strings.Contains(err.Error(), "contact not found") {
		t.Fatalf("expected contact not found, got %v", err)
	}

	// Failed edits leave the stored contact unchanged.
	out := mustExecute(t, "show", "Bilbo")
	if !strings.Contains(out, "phones: ['123456789']") {
		t.Fatalf("contact changed after failed edits:\n%s", out)
	}
}

func TestPhoneCopy(t *testing.T) {
	testEnv(t)
	var copied string
	clipboardWrite = func(s string) error {
		copied = s
		return nil
	}

	mustExecute(t, "add", "Bilbo", "987654321", "123456789")
	out := mustExecute(t, "phone", "copy", "Bilbo")
	if copied != "123456789" || !strings.Contains(out, "Copied 123456789") {
		t.Fatalf("expected first phone copied, got %q; output:\n%s", copied, out)
	}

	mustExecute(t, "add", "Frodo")
	if _, err := executeCommand(t, "phone", "copy", "Frodo"); err == nil || !strings.Contains(err.Error(), "has no phone numbers") {
		t.Fatalf("expected no phones error, got %v", err)
	}
}

func TestBirthdayCommands(t *testing.T) {
	testEnv(t)
	mustExecute(t, "add", "Bilbo")

	out := mustExecute(t, "birthday", "set", "Bilbo", "1990-09-22")
	if !strings.Contains(out, "Birthday of Bilbo: 1990-09-22") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	out = mustExecute(t, "birthday", "clear", "Bilbo")
	if !strings.Contains(out, "Birthday of Bilbo: None") {
		t.Fatalf("unexpected output:\n%s", out)
	}

	var logBuf bytes.Buffer
	logging.L = clog.New(&logBuf)
	out = mustExecute(t, "birthday", "set", "Bilbo", "22.09.1990")
	if !strings.Contains(out, "Birthday of Bilbo: None") {
		t.Fatalf("invalid date should leave no birthday:\n%s", out)
	}
	if !strings.Contains(logBuf.String(), "Date of birth '22.09.1990' is not valid") {
		t.Fatalf("expected warning, got %q", logBuf.String())
	}
}
