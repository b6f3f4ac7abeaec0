// Copyright (c) 2026 Keymaster Team
// Addressbook - personal contact manager
// This source code is licensed under the MIT license found in the LICENSE file.

package i18n

import (
	"testing"
)

func TestInitAndAvailableLocales(t *testing.T) {
	Init("en")
	if GetLang() != "en" {
		t.Fatalf("expected lang 'en', got %q", GetLang())
	}

	av := GetAvailableLocales()
	for _, k := range []string{"en", "de"} {
		if _, ok := av[k]; !ok {
			t.Fatalf("expected available locale %q to be present, got %v", k, av)
		}
	}
	if av["de"] != "Deutsch" {
		t.Fatalf("unexpected display name for de: %q", av["de"])
	}
}

func TestT_BasicAndFormatting(t *testing.T) {
	Init("en")
	defer Init("en")

	if got := T("list.empty"); got != "The address book is empty." {
		t.Fatalf("unexpected translation: %q", got)
	}
	if got := T("tui.page", 2, 3); got != "Page 2 of 3" {
		t.Fatalf("unexpected formatted translation: %q", got)
	}

	SetLang("de")
	if GetLang() != "de" {
		t.Fatalf("expected lang 'de', got %q", GetLang())
	}
	if got := T("tui.page", 2, 3); got != "Seite 2 von 3" {
		t.Fatalf("expected German translation, got %q", got)
	}
}

func TestT_UnknownIDAndFallback(t *testing.T) {
	Init("fr")
	defer Init("en")

	if got := T("no.such.message"); got != "no.such.message" {
		t.Fatalf("expected ID fallback, got %q", got)
	}
	if got := T("delete.success", "Bilbo"); got != "Contact Bilbo deleted." {
		t.Fatalf("expected English fallback for unsupported language, got %q", got)
	}
}
