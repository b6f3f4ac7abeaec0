// Copyright (c) 2026 Keymaster Team
// Addressbook - personal contact manager
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"iter"

	tea "github.com/charmbracelet/bubbletea"
)

// Run shows pages in a full-screen pager until the user quits.
func Run(pages iter.Seq[string], total int) error {
	m := New(pages, total)
	defer m.Close()
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
