package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jontraum/ZilGmor/internal/library"
)

func (m *model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.overlay != overlayNone {
		return m.handleOverlayKey(key)
	}
	switch m.screen {
	case screenLibrary:
		return m.handleLibraryKey(key)
	case screenHistory:
		return m.handleHistoryKey(key)
	case screenReading:
		return m.handleReadingKey(key)
	}
	return m, nil
}

func (m *model) handleLibraryKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.libCursor > 0 {
			m.libCursor--
		}
	case "down", "j":
		if m.libCursor < len(m.libraryBooks())-1 {
			m.libCursor++
		}
	case "enter":
		books := m.libraryBooks()
		if m.libCursor >= 0 && m.libCursor < len(books) {
			return m, m.openBook(books[m.libCursor])
		}
	case "h":
		return m, m.openHistory()
	}
	return m, nil
}

func (m *model) handleHistoryKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q":
		return m, tea.Quit
	case "esc", "b":
		m.screen = screenLibrary
	case "up", "k":
		if m.histCursor > 0 {
			m.histCursor--
		}
	case "down", "j":
		if m.histCursor < len(m.history)-1 {
			m.histCursor++
		}
	case "enter":
		if m.histCursor >= 0 && m.histCursor < len(m.history) {
			return m, m.openBook(library.Find(m.history[m.histCursor].BookSlug))
		}
	}
	return m, nil
}

func (m *model) handleReadingKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q":
		return m, tea.Quit
	case "esc", "b":
		m.screen = screenLibrary
		return m, nil
	case "h":
		return m, m.openHistory()
	case "g":
		m.overlay = overlayTOC
		m.tocCursor = 0
		m.jumpInput.SetValue("")
		m.jumpInput.Focus()
		return m, textinput.Blink
	case "v":
		if len(m.englishVersions()) == 0 {
			m.infoMessage = "No alternate translations for this book."
			return m, nil
		}
		m.overlay = overlayTranslations
		m.transCursor = 0
		return m, nil
	case "c":
		if len(m.availableLinks) == 0 {
			m.infoMessage = "No commentaries found yet."
			return m, nil
		}
		m.overlay = overlayCommentaries
		m.commCursor = 0
		return m, nil
	case "tab":
		m.cycleCommentary()
		return m, nil
	case "j", "down":
		m.viewport.LineDown(1)
		return m, m.afterScroll()
	case "k", "up":
		if m.viewport.AtTop() {
			return m, m.loadPrevious()
		}
		m.viewport.LineUp(1)
		return m, m.afterScroll()
	case "d", "pgdown", " ":
		m.viewport.HalfViewDown()
		return m, m.afterScroll()
	case "u", "pgup":
		m.viewport.HalfViewUp()
		return m, m.afterScroll()
	case "enter":
		return m, m.selectTopmost()
	case "J":
		return m, m.selectRelative(1)
	case "K":
		return m, m.selectRelative(-1)
	case "G":
		m.viewport.GotoBottom()
		return m, m.afterScroll()
	}
	return m, nil
}

func (m *model) handleOverlayKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.overlay {
	case overlayTOC:
		return m.handleTOCKey(key)
	case overlayTranslations:
		return m.handleTranslationsKey(key)
	case overlayCommentaries:
		return m.handleCommentariesKey(key)
	}
	return m, nil
}

func (m *model) handleTOCKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.closeTOC()
		return m, nil
	case "up":
		if m.tocCursor > 0 {
			m.tocCursor--
		}
		return m, nil
	case "down":
		if m.tocCursor < len(m.tocNodes())-1 {
			m.tocCursor++
		}
		return m, nil
	case "enter":
		if text := strings.TrimSpace(m.jumpInput.Value()); text != "" {
			return m, m.handleChapterJump(text)
		}
		nodes := m.tocNodes()
		if m.tocCursor >= 0 && m.tocCursor < len(nodes) {
			if loc, ok := locationFromNode(nodes[m.tocCursor]); ok {
				m.overlay = overlayNone
				m.jumpInput.Blur()
				return m, m.jumpTo(loc)
			}
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.jumpInput, cmd = m.jumpInput.Update(key)
	return m, cmd
}

func (m *model) handleTranslationsKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	versions := m.englishVersions()
	switch key.String() {
	case "esc":
		m.overlay = overlayNone
	case "up", "k":
		if m.transCursor > 0 {
			m.transCursor--
		}
	case "down", "j":
		// Option 0 is the default edition, then one row per version.
		if m.transCursor < len(versions) {
			m.transCursor++
		}
	case "enter":
		if m.transCursor == 0 {
			m.translation = ""
		} else if m.transCursor-1 < len(versions) {
			m.translation = versions[m.transCursor-1].VersionTitle
		}
		m.overlay = overlayNone
		if loc := m.currentLocation(); loc != "" {
			return m, m.jumpTo(loc)
		}
	}
	return m, nil
}

func (m *model) handleCommentariesKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc", "c":
		m.overlay = overlayNone
	case "up", "k":
		if m.commCursor > 0 {
			m.commCursor--
		}
	case "down", "j":
		if m.commCursor < len(m.availableLinks)-1 {
			m.commCursor++
		}
	case "enter", " ":
		if m.commCursor >= 0 && m.commCursor < len(m.availableLinks) {
			return m, m.toggleCommentary(m.availableLinks[m.commCursor])
		}
	}
	return m, nil
}
