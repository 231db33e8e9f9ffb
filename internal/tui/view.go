package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jontraum/ZilGmor/internal/htmltext"
)

var (
	titleStyle         = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	hebrewStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("223"))
	englishStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	selectedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("110"))
	cursorStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("190"))
	mutedStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helperStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	tabStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1)
	activeTabStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("81")).Padding(0, 1)
)

func (m *model) View() string {
	if m.overlay != overlayNone {
		return m.viewOverlay()
	}
	switch m.screen {
	case screenLibrary:
		return m.viewLibrary()
	case screenHistory:
		return m.viewHistory()
	case screenReading:
		return m.viewReading()
	}
	return ""
}

func (m *model) viewLibrary() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("ZilGmor"))
	b.WriteString("\n")
	b.WriteString(helperStyle.Render("Learn a little more"))
	b.WriteString("\n\n")
	cursor := 0
	for _, shelf := range m.shelves {
		b.WriteString(sectionHeaderStyle.Render(fmt.Sprintf("%s · %s", shelf.Title, shelf.HeTitle)))
		b.WriteString("\n")
		for _, book := range shelf.Books {
			line := fmt.Sprintf("%s · %s", book.Title.En, book.Title.He)
			if cursor == m.libCursor {
				line = cursorStyle.Render(line)
			}
			b.WriteString("  " + line + "\n")
			cursor++
		}
		b.WriteString("\n")
	}
	return joinNonEmpty([]string{b.String(), m.statusLine(), helperStyle.Render("↑/↓ move · enter open · h history · q quit")})
}

func (m *model) viewHistory() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Recently learned"))
	b.WriteString("\n\n")
	if !m.historyLoaded {
		b.WriteString(fmt.Sprintf("%s Loading history…\n", m.spinner.View()))
	} else if len(m.history) == 0 {
		b.WriteString(helperStyle.Render("Nothing here yet. Open a book and start reading.") + "\n")
	}
	for i, entry := range m.history {
		label := entry.Label.He
		if label == "" {
			label = entry.Label.En
		}
		if label == "" {
			label = entry.BookSlug
		}
		line := fmt.Sprintf("%s  (%s)", label, entry.Location)
		if i == m.histCursor {
			line = cursorStyle.Render(line)
		}
		b.WriteString("  " + line + "\n")
	}
	return joinNonEmpty([]string{b.String(), m.statusLine(), helperStyle.Render("↑/↓ move · enter open · esc library · q quit")})
}

func (m *model) viewReading() string {
	if m.contentDirty {
		m.refreshContent()
	}
	header := m.headerView()
	var body string
	if m.pager.Empty() {
		body = fmt.Sprintf("\n  %s Loading %s…\n", m.spinner.View(), m.book.Title.En)
	} else {
		body = m.viewport.View()
	}
	return joinNonEmpty([]string{
		header,
		body,
		m.linksPane(),
		m.statusLine(),
		helperStyle.Render("j/k scroll · enter/J/K select · g jump · v translation · c commentaries · tab cycle · h history · b library · q quit"),
	})
}

func (m *model) headerView() string {
	title := fmt.Sprintf("%s · %s", m.book.Title.En, m.book.Title.He)
	position := ""
	if m.currentItem != nil {
		position = m.currentItem.Key
	}
	line := titleStyle.Render(title)
	if position != "" {
		line = fmt.Sprintf("%s  %s", line, mutedStyle.Render(position))
	}
	if m.pager.LoadingPrevious() {
		line = fmt.Sprintf("%s  %s %s", line, m.spinner.View(), mutedStyle.Render("loading previous…"))
	}
	rule := mutedStyle.Render(strings.Repeat("─", maxInt(m.layout.viewportWidth, 1)))
	return line + "\n" + rule
}

// linksPane renders the commentary panel for the current item: one tab per
// chosen commentary with its hit count, then the active commentary's text.
func (m *model) linksPane() string {
	if m.currentItem == nil || len(m.selectedCommentaries) == 0 {
		return ""
	}
	var tabs []string
	for _, name := range m.selectedCommentaries {
		label := fmt.Sprintf("%s [%d]", name, len(m.linkMap[name]))
		if name == m.currentCommentary {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	var body string
	if m.linksFor != m.currentItem.Key {
		body = helperStyle.Render("Loading links…")
	} else if links := m.linkMap[m.currentCommentary]; len(links) == 0 {
		body = helperStyle.Render(fmt.Sprintf("No %s here.", m.currentCommentary))
	} else {
		var parts []string
		for _, link := range links {
			text := htmltext.Strip(string(link.He))
			if text == "" {
				text = htmltext.Strip(string(link.Text))
			}
			if text != "" {
				parts = append(parts, text)
			}
		}
		body = wordwrap.String(strings.Join(parts, "\n"), m.layout.viewportWidth)
		body = truncateLines(body, m.layout.linksHeight-1)
	}
	rule := mutedStyle.Render(strings.Repeat("─", maxInt(m.layout.viewportWidth, 1)))
	return joinNonEmpty([]string{rule, strings.Join(tabs, " "), body})
}

func (m *model) viewOverlay() string {
	switch m.overlay {
	case overlayTOC:
		return m.viewTOC()
	case overlayTranslations:
		return m.viewTranslations()
	case overlayCommentaries:
		return m.viewCommentaries()
	}
	return ""
}

func (m *model) viewTOC() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s · contents", m.book.Title.En)))
	b.WriteString("\n\n")
	if m.index != nil && m.index.HasSchemaNav() {
		b.WriteString(fmt.Sprintf("Go to %s (1–%d): %s\n\n", m.index.Schema.SectionNames[0], m.index.MaxChapter(), m.jumpInput.View()))
	} else {
		b.WriteString(fmt.Sprintf("Go to: %s\n\n", m.jumpInput.View()))
	}
	nodes := m.tocNodes()
	if len(nodes) == 0 && m.index == nil {
		b.WriteString(fmt.Sprintf("%s Loading contents…\n", m.spinner.View()))
	}
	for i, node := range nodes {
		line := node.Title
		if node.HeTitle != "" {
			line = fmt.Sprintf("%s · %s", node.Title, node.HeTitle)
		}
		if loc, ok := locationFromNode(node); ok {
			line = fmt.Sprintf("%s  %s", line, mutedStyle.Render(loc))
		}
		if i == m.tocCursor {
			line = cursorStyle.Render(line)
		}
		b.WriteString("  " + line + "\n")
	}
	return joinNonEmpty([]string{b.String(), m.statusLine(), helperStyle.Render("type a number and enter, or ↑/↓ + enter · esc back")})
}

func (m *model) viewTranslations() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Translation"))
	b.WriteString("\n\n")
	options := []string{"Default edition"}
	for _, v := range m.englishVersions() {
		label := v.VersionTitle
		if v.ShortVersionTitle != "" {
			label = v.ShortVersionTitle
		}
		options = append(options, label)
	}
	for i, option := range options {
		line := option
		selected := (i == 0 && m.translation == "") ||
			(i > 0 && m.translation == m.englishVersions()[i-1].VersionTitle)
		if selected {
			line = "✓ " + line
		} else {
			line = "  " + line
		}
		if i == m.transCursor {
			line = cursorStyle.Render(line)
		}
		b.WriteString("  " + line + "\n")
	}
	return joinNonEmpty([]string{b.String(), helperStyle.Render("↑/↓ move · enter choose · esc back")})
}

func (m *model) viewCommentaries() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Commentaries and connections"))
	b.WriteString("\n\n")
	for i, name := range m.availableLinks {
		marker := "  "
		if containsString(m.selectedCommentaries, name) {
			marker = "✓ "
		}
		line := marker + name
		if i == m.commCursor {
			line = cursorStyle.Render(line)
		}
		b.WriteString("  " + line + "\n")
	}
	return joinNonEmpty([]string{b.String(), m.statusLine(), helperStyle.Render("↑/↓ move · enter toggle · esc back")})
}

func (m *model) statusLine() string {
	if m.errorMessage != "" {
		return errorStyle.Render(m.errorMessage)
	}
	if m.infoMessage != "" {
		return helperStyle.Render(m.infoMessage)
	}
	return ""
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, strings.TrimRight(part, "\n"))
	}
	return strings.Join(filtered, "\n")
}

func truncateLines(s string, n int) string {
	if n < 1 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n-1], "\n") + "\n" + mutedStyle.Render("…")
}
