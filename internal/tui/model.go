package tui

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jontraum/ZilGmor/internal/library"
	"github.com/jontraum/ZilGmor/internal/reader"
	"github.com/jontraum/ZilGmor/internal/sefaria"
	"github.com/jontraum/ZilGmor/internal/settings"
)

// Config wires runtime options into the TUI program.
type Config struct {
	Fetcher TextFetcher
	Store   SettingsStore

	// InitialBook skips the library screen and opens the named book
	// directly, resuming at its saved location.
	InitialBook string
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	jumpInput := textinput.New()
	jumpInput.Placeholder = "chapter or daf, e.g. 12 or 5b"
	jumpInput.CharLimit = 12
	jumpInput.Width = 30

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	layout := computeLayout(80, 24)
	vp := viewport.New(layout.viewportWidth, layout.viewportHeight)
	vp.MouseWheelEnabled = true

	return &model{
		config:            config,
		jobs:              newJobBus(),
		screen:            screenLibrary,
		shelves:           library.FullIndex(),
		jumpInput:         jumpInput,
		spinner:           spin,
		viewport:          vp,
		pager:             reader.NewPager(),
		currentCommentary: defaultCommentary,
		layout:            layout,
		contentDirty:      true,
		infoMessage:       "Pick a book to begin.",
	}
}

type model struct {
	config Config
	jobs   *jobBus

	screen  screen
	overlay overlay
	layout  pageLayout

	jumpInput textinput.Model
	spinner   spinner.Model
	viewport  viewport.Model

	shelves   []library.Shelf
	libCursor int

	history       []settings.BookSettings
	histCursor    int
	historyLoaded bool

	book    library.Book
	loadSeq int64
	pager   *reader.Pager
	index   *sefaria.BookIndex

	currentItem *reader.TextItem

	translation string
	versions    []sefaria.TextVersion

	availableLinks       []string
	selectedCommentaries []string
	currentCommentary    string
	linkMap              map[string][]sefaria.Link
	linksFor             string

	tocCursor   int
	transCursor int
	commCursor  int

	entrySpans    []lineSpan
	contentDirty  bool
	pendingScroll *scrollRequest

	infoMessage  string
	errorMessage string
}

type openBookMsg struct {
	book library.Book
}

type sectionResultMsg struct {
	seq        int64
	kind       loadKind
	book       string
	chapter    string
	firstVerse int
	section    *sefaria.Section
	err        error
}

type linkNamesMsg struct {
	seq   int64
	names []string
	err   error
}

type linksMsg struct {
	seq      int64
	verseKey string
	links    map[string][]sefaria.Link
	err      error
}

type indexMsg struct {
	slug  string
	index *sefaria.BookIndex
	err   error
}

type settingsLoadedMsg struct {
	seq      int64
	slug     string
	settings *settings.BookSettings
	err      error
}

type historyMsg struct {
	entries []settings.BookSettings
	err     error
}

type settingsSavedMsg struct {
	slug     string
	location string
	err      error
}

type scrollAttemptMsg struct{}

func (m *model) Init() tea.Cmd {
	if m.config.InitialBook != "" {
		book := library.Find(m.config.InitialBook)
		return func() tea.Msg {
			return openBookMsg{book: book}
		}
	}
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case jobSignalMsg:
		return m, nil
	case jobResultEnvelope:
		if msg.Payload == nil {
			return m, nil
		}
		return m.Update(msg.Payload)
	case spinner.TickMsg:
		if m.loading() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if m.screen == screenReading && m.overlay == overlayNone {
			before := m.viewport.YOffset
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			if m.viewport.YOffset != before {
				return m, tea.Batch(cmd, m.afterScroll())
			}
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.layout = computeLayout(msg.Width, msg.Height)
		m.viewport.Width = m.layout.viewportWidth
		m.viewport.Height = m.layout.viewportHeight
		m.markContentDirty()
		return m, nil
	case openBookMsg:
		return m, m.openBook(msg.book)
	case sectionResultMsg:
		return m, m.handleSectionResult(msg)
	case linkNamesMsg:
		return m, m.handleLinkNames(msg)
	case linksMsg:
		return m, m.handleLinks(msg)
	case indexMsg:
		return m, m.handleIndex(msg)
	case settingsLoadedMsg:
		return m, m.handleSettingsLoaded(msg)
	case historyMsg:
		return m, m.handleHistory(msg)
	case settingsSavedMsg:
		if msg.err != nil {
			m.errorMessage = fmt.Sprintf("save failed: %v", msg.err)
		}
		return m, nil
	case scrollAttemptMsg:
		return m, m.handleScrollAttempt()
	}
	return m, nil
}

func (m *model) loading() bool {
	if m.screen == screenHistory && !m.historyLoaded {
		return true
	}
	if m.screen != screenReading {
		return false
	}
	return m.pager.Empty() || m.pager.LoadingPrevious()
}

func (m *model) markContentDirty() {
	m.contentDirty = true
}

// openBook resets all per-book state and starts the settings and index
// fetches. Link names from the previous book must not survive the switch or
// its commentary picker would offer links for texts the new book does not
// have.
func (m *model) openBook(book library.Book) tea.Cmd {
	m.screen = screenReading
	m.overlay = overlayNone
	m.book = book
	m.loadSeq++
	seq := m.loadSeq
	m.pager.Clear()
	m.index = nil
	m.currentItem = nil
	m.translation = ""
	m.versions = nil
	m.availableLinks = nil
	m.selectedCommentaries = nil
	m.currentCommentary = defaultCommentary
	m.linkMap = nil
	m.linksFor = ""
	m.tocCursor = 0
	m.entrySpans = nil
	m.pendingScroll = nil
	m.errorMessage = ""
	m.infoMessage = fmt.Sprintf("Opening %s…", book.Title.En)
	m.markContentDirty()
	return tea.Batch(
		m.jobs.Start(jobKindSettings, loadSettingsJob(m.config.Store, seq, book.Slug)),
		m.jobs.Start(jobKindIndex, fetchIndexJob(m.config.Fetcher, book.Slug)),
		m.spinner.Tick,
	)
}

func (m *model) handleSettingsLoaded(msg settingsLoadedMsg) tea.Cmd {
	if msg.seq != m.loadSeq || msg.slug != m.book.Slug {
		return nil
	}
	if msg.err != nil {
		log.Printf("[settings] load %s: %v", msg.slug, msg.err)
	}
	if msg.settings == nil || msg.settings.Location == "" {
		// First visit: nothing to resume, so ask where to start.
		m.overlay = overlayTOC
		m.jumpInput.Focus()
		m.infoMessage = "Choose a starting point."
		return textinput.Blink
	}
	m.selectedCommentaries = msg.settings.Commentaries
	if len(m.selectedCommentaries) > 0 && !containsString(m.selectedCommentaries, m.currentCommentary) {
		m.currentCommentary = m.selectedCommentaries[0]
	}
	m.translation = msg.settings.Translation
	return m.jumpTo(msg.settings.Location)
}

// jumpTo discards the loaded window and fetches the section the location
// names. Bumping loadSeq first makes any in-flight fetch for the old window
// identifiable as stale when its result arrives.
func (m *model) jumpTo(location string) tea.Cmd {
	if strings.TrimSpace(location) == "" {
		log.Printf("[reader] empty jump location for %q", m.book.Slug)
		m.errorMessage = "Nothing to jump to."
		return nil
	}
	m.loadSeq++
	seq := m.loadSeq
	m.pager.Clear()
	m.currentItem = nil
	m.entrySpans = nil
	m.pendingScroll = nil
	m.errorMessage = ""
	m.markContentDirty()
	loc := sefaria.ParseLocation(location)
	return tea.Batch(
		m.jobs.Start(jobKindSection, fetchSectionJob(m.config.Fetcher, seq, loadJump, m.book.Slug, loc.Chapter, m.translation, loc.FirstVerse)),
		m.jobs.Start(jobKindLinkNames, fetchLinkNamesJob(m.config.Fetcher, seq, m.book.Slug, loc.Chapter)),
		m.spinner.Tick,
	)
}

func (m *model) handleSectionResult(msg sectionResultMsg) tea.Cmd {
	if msg.seq != m.loadSeq {
		// A newer jump or book switch superseded this fetch; its window no
		// longer exists, so the payload must not touch the pager.
		log.Printf("[reader] dropping stale section result %s %s", msg.book, msg.chapter)
		return nil
	}
	switch msg.kind {
	case loadJump:
		if msg.err != nil || msg.section == nil {
			m.errorMessage = fmt.Sprintf("Could not load %s %s.", msg.book, msg.chapter)
			return nil
		}
		if m.versions == nil {
			m.versions = msg.section.Versions
		}
		section := reader.BuildListSection(msg.section)
		m.pager.Replace(section)
		m.markContentDirty()
		var cmds []tea.Cmd
		if n := msg.firstVerse; n >= 1 && n <= len(section.Data) {
			if cmd := m.setCurrentItem(section.Data[n-1]); cmd != nil {
				cmds = append(cmds, cmd)
			}
		} else {
			// Out-of-range verse: the section still renders, there is just
			// no current item until the reader scrolls.
			m.currentItem = nil
		}
		target := msg.firstVerse
		if target > len(section.Data) {
			target = len(section.Data)
		}
		if target < 0 {
			target = 0
		}
		cmds = append(cmds, m.scheduleScroll(target))
		return tea.Batch(cmds...)
	case loadAppend:
		if msg.err != nil || msg.section == nil {
			m.pager.AbortAppend()
			if msg.err != nil {
				m.errorMessage = fmt.Sprintf("Could not load %s %s.", msg.book, msg.chapter)
			}
			return nil
		}
		m.pager.CommitAppend(reader.BuildListSection(msg.section))
		m.markContentDirty()
		return nil
	case loadPrepend:
		if msg.err != nil || msg.section == nil {
			m.pager.AbortPrepend()
			if msg.err != nil {
				m.errorMessage = fmt.Sprintf("Could not load %s %s.", msg.book, msg.chapter)
			}
			return nil
		}
		offset := m.pager.CommitPrepend(reader.BuildListSection(msg.section))
		m.markContentDirty()
		if offset >= 0 {
			// Keep the pre-prepend top entry in place: the new section adds
			// one header plus its items above it, and entry offset
			// len(data) is exactly the old top.
			return m.scheduleScroll(offset)
		}
		return nil
	}
	return nil
}

func (m *model) handleLinkNames(msg linkNamesMsg) tea.Cmd {
	if msg.seq != m.loadSeq {
		return nil
	}
	if msg.err != nil {
		log.Printf("[links] names: %v", msg.err)
		return nil
	}
	for _, name := range msg.names {
		if !containsString(m.availableLinks, name) {
			m.availableLinks = append(m.availableLinks, name)
		}
	}
	return nil
}

func (m *model) handleLinks(msg linksMsg) tea.Cmd {
	if msg.seq != m.loadSeq {
		return nil
	}
	if m.currentItem == nil || msg.verseKey != m.currentItem.Key {
		return nil
	}
	if msg.err != nil {
		log.Printf("[links] %s: %v", msg.verseKey, msg.err)
		return nil
	}
	m.linkMap = msg.links
	m.linksFor = msg.verseKey
	return nil
}

// handleIndex keys on the book, not the load sequence: the index was
// requested when the book opened, and a resume jump bumping the sequence in
// the meantime must not discard it.
func (m *model) handleIndex(msg indexMsg) tea.Cmd {
	if msg.slug != m.book.Slug {
		return nil
	}
	if msg.err != nil {
		log.Printf("[index] %s: %v", msg.slug, msg.err)
		return nil
	}
	m.index = msg.index
	return nil
}

func (m *model) handleHistory(msg historyMsg) tea.Cmd {
	m.historyLoaded = true
	if msg.err != nil {
		m.errorMessage = fmt.Sprintf("Could not read history: %v", msg.err)
		return nil
	}
	m.history = msg.entries
	if m.histCursor >= len(m.history) {
		m.histCursor = 0
	}
	return nil
}

// setCurrentItem moves the reading position. Same-key calls are no-ops,
// which is what keeps scrolling from rewriting settings and refetching
// commentary on every line.
func (m *model) setCurrentItem(item reader.TextItem) tea.Cmd {
	if m.currentItem != nil && m.currentItem.Key == item.Key {
		return nil
	}
	m.currentItem = &item
	m.markContentDirty()
	var cmds []tea.Cmd
	if item.Key != "" {
		cmds = append(cmds, m.jobs.Start(jobKindLinks, fetchLinksJob(m.config.Fetcher, m.loadSeq, item.Key)))
	}
	if cmd := m.saveSettings(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *model) saveSettings() tea.Cmd {
	payload, ok := m.settingsPayload()
	if !ok {
		return nil
	}
	return m.jobs.Start(jobKindSave, saveSettingsJob(m.config.Store, payload))
}

// settingsPayload builds the record to persist. Both a book and a current
// item are required; a record missing either would break the resume flow on
// the next open.
func (m *model) settingsPayload() (settings.BookSettings, bool) {
	if m.book.Slug == "" || m.currentItem == nil || m.currentItem.Key == "" {
		return settings.BookSettings{}, false
	}
	return settings.BookSettings{
		BookSlug:     m.book.Slug,
		Location:     sefaria.KeyToLocation(m.currentItem.Key, m.book.Slug),
		Label:        settings.Label{He: m.book.Title.He, En: m.book.Title.En},
		Commentaries: append([]string(nil), m.selectedCommentaries...),
		LastRead:     time.Now(),
		Translation:  m.translation,
	}, true
}

func (m *model) scheduleScroll(entryIndex int) tea.Cmd {
	m.pendingScroll = &scrollRequest{seq: m.loadSeq, entryIndex: entryIndex, attempt: 1}
	return scrollTickCmd(scrollSettleDelay)
}

func (m *model) handleScrollAttempt() tea.Cmd {
	req := m.pendingScroll
	if req == nil {
		return nil
	}
	if req.seq != m.loadSeq {
		m.pendingScroll = nil
		return nil
	}
	if m.contentDirty {
		m.refreshContent()
	}
	if m.scrollToEntry(req.entryIndex) {
		m.pendingScroll = nil
		return nil
	}
	if req.attempt >= maxScrollAttempts {
		log.Printf("[reader] scroll to entry %d gave up after %d attempts", req.entryIndex, req.attempt)
		m.pendingScroll = nil
		return nil
	}
	req.attempt++
	return scrollTickCmd(scrollRetryDelay)
}

func (m *model) scrollToEntry(entryIndex int) bool {
	if entryIndex < 0 || entryIndex >= len(m.entrySpans) {
		return false
	}
	m.viewport.SetYOffset(m.entrySpans[entryIndex].start)
	return true
}

// visibleEntries returns the list entries currently inside the viewport,
// topmost first. An entry only counts once most of it is shown, so a sliver
// of the previous verse at the top edge does not claim the position.
func (m *model) visibleEntries() []reader.Entry {
	if m.contentDirty {
		m.refreshContent()
	}
	entries := m.pager.Entries()
	top := m.viewport.YOffset
	bottom := top + m.viewport.Height
	var visible []reader.Entry
	for i, span := range m.entrySpans {
		if i >= len(entries) {
			break
		}
		if span.end <= top || span.start >= bottom {
			continue
		}
		total := span.end - span.start
		shown := minInt(span.end, bottom) - maxInt(span.start, top)
		if total > 0 && float64(shown) >= visibleThreshold*float64(total) {
			visible = append(visible, entries[i])
		}
	}
	return visible
}

func (m *model) syncCurrentFromViewport() tea.Cmd {
	item, ok := reader.CurrentFromVisible(m.visibleEntries())
	if !ok {
		return nil
	}
	return m.setCurrentItem(item)
}

func (m *model) afterScroll() tea.Cmd {
	var cmds []tea.Cmd
	if cmd := m.syncCurrentFromViewport(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if cmd := m.maybeAppendNext(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *model) maybeAppendNext() tea.Cmd {
	if !m.viewport.AtBottom() {
		return nil
	}
	next, ok := m.pager.BeginAppend()
	if !ok {
		return nil
	}
	book, chapter := sefaria.SplitBookRef(next)
	seq := m.loadSeq
	return tea.Batch(
		m.jobs.Start(jobKindSection, fetchSectionJob(m.config.Fetcher, seq, loadAppend, book, chapter, m.translation, 0)),
		m.jobs.Start(jobKindLinkNames, fetchLinkNamesJob(m.config.Fetcher, seq, book, chapter)),
	)
}

func (m *model) loadPrevious() tea.Cmd {
	prev, ok := m.pager.BeginPrepend()
	if !ok {
		if !m.pager.Empty() && !m.pager.LoadingPrevious() {
			m.infoMessage = "Already at the beginning."
		}
		return nil
	}
	book, chapter := sefaria.SplitBookRef(prev)
	seq := m.loadSeq
	return tea.Batch(
		m.jobs.Start(jobKindSection, fetchSectionJob(m.config.Fetcher, seq, loadPrepend, book, chapter, m.translation, 0)),
		m.jobs.Start(jobKindLinkNames, fetchLinkNamesJob(m.config.Fetcher, seq, book, chapter)),
		m.spinner.Tick,
	)
}

// selectRelative moves the current item by hand, bypassing the viewport
// tracker, and scrolls the selection into view if needed.
func (m *model) selectRelative(delta int) tea.Cmd {
	entries := m.pager.Entries()
	if len(entries) == 0 {
		return nil
	}
	step := 1
	if delta < 0 {
		step = -1
	}
	i := 0
	if m.currentItem != nil {
		if idx := m.pager.EntryIndex(m.currentItem.Key); idx >= 0 {
			i = idx + delta
		}
	}
	for ; i >= 0 && i < len(entries); i += step {
		entry := entries[i]
		if entry.Header || (entry.Item.TextHE == "" && entry.Item.TextEN == "") {
			continue
		}
		cmd := m.setCurrentItem(entry.Item)
		if m.contentDirty {
			m.refreshContent()
		}
		if i < len(m.entrySpans) {
			m.ensureSpanVisible(m.entrySpans[i])
		}
		return cmd
	}
	return nil
}

// selectTopmost makes the topmost rendered text item current, skipping the
// visibility threshold the scroll tracker applies.
func (m *model) selectTopmost() tea.Cmd {
	if m.contentDirty {
		m.refreshContent()
	}
	entries := m.pager.Entries()
	top := m.viewport.YOffset
	bottom := top + m.viewport.Height
	for i, span := range m.entrySpans {
		if i >= len(entries) || span.end <= top {
			continue
		}
		if span.start >= bottom {
			break
		}
		entry := entries[i]
		if entry.Header || (entry.Item.TextHE == "" && entry.Item.TextEN == "") {
			continue
		}
		return m.setCurrentItem(entry.Item)
	}
	return nil
}

func (m *model) ensureSpanVisible(span lineSpan) {
	if span.start < m.viewport.YOffset {
		m.viewport.SetYOffset(span.start)
		return
	}
	if span.end > m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(span.end - m.viewport.Height)
	}
}

func (m *model) openHistory() tea.Cmd {
	m.screen = screenHistory
	m.overlay = overlayNone
	m.historyLoaded = false
	m.errorMessage = ""
	return tea.Batch(
		m.jobs.Start(jobKindHistory, loadHistoryJob(m.config.Store)),
		m.spinner.Tick,
	)
}

func (m *model) libraryBooks() []library.Book {
	var books []library.Book
	for _, shelf := range m.shelves {
		books = append(books, shelf.Books...)
	}
	return books
}

func (m *model) englishVersions() []sefaria.TextVersion {
	var out []sefaria.TextVersion
	for _, v := range m.versions {
		if v.Language == "en" {
			out = append(out, v)
		}
	}
	return out
}

// currentLocation is the spot a re-fetch (e.g. after a translation switch)
// should return to.
func (m *model) currentLocation() string {
	if m.currentItem != nil && m.currentItem.Key != "" {
		return sefaria.KeyToLocation(m.currentItem.Key, m.book.Slug)
	}
	if sections := m.pager.Sections(); len(sections) > 0 {
		_, chapter := sefaria.SplitBookRef(sections[0].Key)
		return chapter
	}
	return ""
}

func (m *model) cycleCommentary() {
	if len(m.selectedCommentaries) == 0 {
		return
	}
	for i, name := range m.selectedCommentaries {
		if name == m.currentCommentary {
			m.currentCommentary = m.selectedCommentaries[(i+1)%len(m.selectedCommentaries)]
			return
		}
	}
	m.currentCommentary = m.selectedCommentaries[0]
}

func (m *model) toggleCommentary(name string) tea.Cmd {
	if i := indexOfString(m.selectedCommentaries, name); i >= 0 {
		m.selectedCommentaries = append(m.selectedCommentaries[:i], m.selectedCommentaries[i+1:]...)
		if m.currentCommentary == name {
			if len(m.selectedCommentaries) > 0 {
				m.currentCommentary = m.selectedCommentaries[0]
			} else {
				m.currentCommentary = defaultCommentary
			}
		}
	} else {
		m.selectedCommentaries = append(m.selectedCommentaries, name)
		m.currentCommentary = name
	}
	return m.saveSettings()
}

// handleChapterJump validates typed chapter input against the book's schema
// before jumping. Daf-addressed books bypass the numeric bound because their
// identifiers ("13a") are not plain numbers.
func (m *model) handleChapterJump(text string) tea.Cmd {
	n, err := strconv.Atoi(text)
	if err != nil {
		if dafRefPattern.FindString(text) == text {
			m.overlay = overlayNone
			m.jumpInput.Blur()
			return m.jumpTo(text)
		}
		m.errorMessage = fmt.Sprintf("%q is not a chapter number.", text)
		return nil
	}
	if n < 1 {
		m.errorMessage = fmt.Sprintf("%q is not a chapter number.", text)
		return nil
	}
	if m.index != nil && m.index.HasSchemaNav() && n > m.index.MaxChapter() {
		m.errorMessage = fmt.Sprintf("Maximum %s number is %d.", m.index.Schema.SectionNames[0], m.index.MaxChapter())
		return nil
	}
	m.overlay = overlayNone
	m.jumpInput.Blur()
	return m.jumpTo(text)
}

func (m *model) closeTOC() {
	m.overlay = overlayNone
	m.jumpInput.Blur()
	if m.pager.Empty() {
		// Nothing loaded means there is nothing to go back to.
		m.screen = screenLibrary
	}
}

// tocNodes flattens the book's alternate structures into one selectable
// list.
func (m *model) tocNodes() []sefaria.AltNode {
	if m.index == nil {
		return nil
	}
	groups := make([]string, 0, len(m.index.Alts))
	for name := range m.index.Alts {
		groups = append(groups, name)
	}
	sort.Strings(groups)
	var nodes []sefaria.AltNode
	for _, name := range groups {
		nodes = append(nodes, m.index.Alts[name].Nodes...)
	}
	return nodes
}

// locationFromNode turns an alternate-structure node into a jump location by
// stripping the book title off its first ref.
func locationFromNode(node sefaria.AltNode) (string, bool) {
	if len(node.Refs) == 0 {
		return "", false
	}
	_, rest := sefaria.SplitBookRef(node.Refs[0])
	loc := dafRefPattern.FindString(rest)
	if loc == "" {
		return "", false
	}
	return loc, true
}

func containsString(list []string, value string) bool {
	return indexOfString(list, value) >= 0
}

func indexOfString(list []string, value string) int {
	for i, v := range list {
		if v == value {
			return i
		}
	}
	return -1
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
