package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/jontraum/ZilGmor/internal/htmltext"
	"github.com/jontraum/ZilGmor/internal/reader"
)

type pageLayout struct {
	width          int
	height         int
	viewportWidth  int
	viewportHeight int
	linksHeight    int
}

// Rows reserved outside the viewport: header line, header rule, status line,
// help line, plus the rule above the commentary pane.
const chromeLines = 5

func computeLayout(width, height int) pageLayout {
	vw := width - viewportHorizontalPadding
	if vw < minViewportWidth {
		vw = minViewportWidth
	}
	links := height / 4
	if links < 4 {
		links = 4
	}
	if links > 10 {
		links = 10
	}
	vh := height - chromeLines - links
	if vh < 5 {
		vh = 5
	}
	return pageLayout{
		width:          width,
		height:         height,
		viewportWidth:  vw,
		viewportHeight: vh,
		linksHeight:    links,
	}
}

func (m *model) currentKey() string {
	if m.currentItem != nil {
		return m.currentItem.Key
	}
	return ""
}

func (m *model) refreshContent() {
	m.contentDirty = false
	content, spans := renderEntries(m.pager.Entries(), m.layout.viewportWidth, m.currentKey())
	m.entrySpans = spans
	m.viewport.SetContent(content)
}

// renderEntries lays the flattened window out as viewport content and
// records which line range each entry landed on. The spans are what scroll
// targeting and the visibility tracker key off, so they must stay in lock
// step with the content string.
func renderEntries(entries []reader.Entry, width int, currentKey string) (string, []lineSpan) {
	if width < 1 {
		width = minViewportWidth
	}
	var b strings.Builder
	spans := make([]lineSpan, 0, len(entries))
	line := 0
	for _, entry := range entries {
		block := renderEntry(entry, width, currentKey)
		blockLines := strings.Count(block, "\n") + 1
		spans = append(spans, lineSpan{start: line, end: line + blockLines})
		b.WriteString(block)
		b.WriteString("\n\n")
		line += blockLines + 1
	}
	return strings.TrimRight(b.String(), "\n"), spans
}

func renderEntry(entry reader.Entry, width int, currentKey string) string {
	if entry.Header {
		text := entry.Title
		if entry.HeTitle != "" && entry.HeTitle != entry.Title {
			text = fmt.Sprintf("%s · %s", entry.Title, entry.HeTitle)
		}
		return sectionHeaderStyle.Render(text)
	}
	verse := entry.Item.ItemNumber + 1
	var parts []string
	if he := htmltext.Strip(entry.Item.TextHE); he != "" {
		parts = append(parts, hebrewStyle.Render(wordwrap.String(fmt.Sprintf("%d  %s", verse, he), width)))
	}
	if en := htmltext.Strip(entry.Item.TextEN); en != "" {
		parts = append(parts, englishStyle.Render(wordwrap.String(en, width)))
	}
	if len(parts) == 0 {
		// A textless verse still occupies a row so item numbering and
		// scroll offsets stay aligned.
		parts = append(parts, mutedStyle.Render(fmt.Sprintf("%d", verse)))
	}
	block := strings.Join(parts, "\n")
	if currentKey != "" && entry.Item.Key == currentKey {
		return selectedStyle.Render(block)
	}
	return block
}
