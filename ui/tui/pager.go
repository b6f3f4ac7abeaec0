// Copyright (c) 2026 Keymaster Team
// Addressbook - personal contact manager
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"iter"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/addressbook/internal/i18n"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Border(lipgloss.NormalBorder(), false).
			BorderBottom(true)
	pageStyle = lipgloss.NewStyle().Padding(1, 1)
)

// Model shows one page at a time. Pages are pulled from the sequence only
// when the user moves past the last page seen; earlier pages are kept so
// moving back does not restart the sequence.
type Model struct {
	next func() (string, bool)
	stop func()

	pages   []string
	current int
	total   int

	width int
	keys  KeyMap
	help  help.Model
}

// New returns a pager over pages. total is the page count shown in the header.
func New(pages iter.Seq[string], total int) *Model {
	next, stop := iter.Pull(pages)
	m := &Model{
		next:  next,
		stop:  stop,
		total: total,
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}
	m.pull()
	return m
}

// pull fetches one more page and reports whether there was one.
func (m *Model) pull() bool {
	if m.next == nil {
		return false
	}
	page, ok := m.next()
	if !ok {
		m.Close()
		return false
	}
	m.pages = append(m.pages, page)
	return true
}

// Close releases the underlying sequence. It is safe to call more than once.
func (m *Model) Close() {
	if m.stop != nil {
		m.stop()
	}
	m.next, m.stop = nil, nil
}

// Page returns the 1-based number of the page on screen.
func (m *Model) Page() int { return m.current + 1 }

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			if m.current+1 < len(m.pages) || m.pull() {
				m.current++
			}
		case key.Matches(msg, m.keys.Prev):
			if m.current > 0 {
				m.current--
			}
		}
	}
	return m, nil
}

func (m *Model) View() string {
	if len(m.pages) == 0 {
		return i18n.T("list.empty") + "\n"
	}
	header := headerStyle.Render(i18n.T("tui.page", m.Page(), m.total))
	if m.width > 0 {
		header = headerStyle.Width(m.width).Render(i18n.T("tui.page", m.Page(), m.total))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		pageStyle.Render(m.pages[m.current]),
		m.help.View(m.keys),
	)
}

// *Model implements tea.Model
var _ tea.Model = (*Model)(nil)
