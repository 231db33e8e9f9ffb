package tui

import (
	"testing"

	"github.com/jontraum/ZilGmor/internal/sefaria"
	"github.com/jontraum/ZilGmor/internal/settings"
)

func TestStaleJumpResultIsDropped(t *testing.T) {
	m := newTestModel(t)
	openTestBook(t, m, "Taanit")

	if cmd := m.jumpTo("5a"); cmd == nil {
		t.Fatal("jump should start a fetch")
	}
	staleSeq := m.loadSeq
	if cmd := m.jumpTo("10b"); cmd == nil {
		t.Fatal("second jump should start a fetch")
	}
	if m.loadSeq == staleSeq {
		t.Fatal("each jump must get its own sequence number")
	}

	// The slow first fetch lands after the second jump already cleared the
	// window.
	m.Update(sectionResultMsg{
		seq:        staleSeq,
		kind:       loadJump,
		book:       "Taanit",
		chapter:    "5a",
		firstVerse: 1,
		section:    sectionFixture("Taanit", "5a", 5),
	})
	if !m.pager.Empty() {
		t.Fatal("stale jump result must not populate the window")
	}
	if m.currentItem != nil {
		t.Fatalf("stale jump result set current item %q", m.currentItem.Key)
	}

	m.Update(sectionResultMsg{
		seq:        m.loadSeq,
		kind:       loadJump,
		book:       "Taanit",
		chapter:    "10b",
		firstVerse: 1,
		section:    sectionFixture("Taanit", "10b", 5),
	})
	sections := m.pager.Sections()
	if len(sections) != 1 || sections[0].Key != "Taanit 10b" {
		t.Fatalf("window = %+v, want only Taanit 10b", sections)
	}
	if m.currentItem == nil || m.currentItem.Key != "Taanit 10b:1" {
		t.Fatalf("current item = %+v, want Taanit 10b:1", m.currentItem)
	}
}

func TestStaleAppendResultIsDropped(t *testing.T) {
	m := newTestModel(t)
	openTestBook(t, m, "Taanit")
	m.jumpTo("5a")
	m.Update(sectionResultMsg{
		seq:        m.loadSeq,
		kind:       loadJump,
		book:       "Taanit",
		chapter:    "5a",
		firstVerse: 1,
		section:    sectionFixture("Taanit", "5a", 5),
	})

	next, ok := m.pager.BeginAppend()
	if !ok || next != "Taanit 5a-next" {
		t.Fatalf("BeginAppend = %q, %v", next, ok)
	}
	appendSeq := m.loadSeq

	// A jump supersedes the in-flight append.
	m.jumpTo("10b")
	m.Update(sectionResultMsg{
		seq:     appendSeq,
		kind:    loadAppend,
		book:    "Taanit",
		chapter: "5a-next",
		section: sectionFixture("Taanit", "5a-next", 5),
	})
	if !m.pager.Empty() {
		t.Fatal("stale append result must not be committed into the new window")
	}
}

func TestLinkNamesDoNotLeakAcrossBooks(t *testing.T) {
	m := newTestModel(t)
	openTestBook(t, m, "Taanit")
	staleSeq := m.loadSeq
	m.Update(linkNamesMsg{seq: staleSeq, names: []string{"Rashi", "Tosafot"}})
	if len(m.availableLinks) != 2 {
		t.Fatalf("availableLinks = %v", m.availableLinks)
	}

	openTestBook(t, m, "Berakhot")
	if len(m.availableLinks) != 0 {
		t.Fatalf("book switch kept stale links %v", m.availableLinks)
	}

	// The old book's reply arrives late and must stay dropped.
	m.Update(linkNamesMsg{seq: staleSeq, names: []string{"Rashi"}})
	if len(m.availableLinks) != 0 {
		t.Fatalf("stale link names leaked into the new book: %v", m.availableLinks)
	}

	m.Update(linkNamesMsg{seq: m.loadSeq, names: []string{"Rashba", "Rashi"}})
	m.Update(linkNamesMsg{seq: m.loadSeq, names: []string{"Rashi", "Tosafot"}})
	want := []string{"Rashba", "Rashi", "Tosafot"}
	if len(m.availableLinks) != len(want) {
		t.Fatalf("availableLinks = %v, want %v", m.availableLinks, want)
	}
	for i, name := range want {
		if m.availableLinks[i] != name {
			t.Fatalf("availableLinks = %v, want %v", m.availableLinks, want)
		}
	}
}

func TestOpenBookResumesSavedLocation(t *testing.T) {
	m := newTestModel(t)
	openTestBook(t, m, "Taanit")
	seq := m.loadSeq
	m.Update(settingsLoadedMsg{
		seq:  seq,
		slug: "Taanit",
		settings: &settings.BookSettings{
			BookSlug:     "Taanit",
			Location:     "7b:3",
			Commentaries: []string{"Tosafot"},
			Translation:  "William Davidson Edition - English",
		},
	})
	if m.loadSeq == seq {
		t.Fatal("resume should issue a jump with a fresh sequence")
	}
	if m.translation != "William Davidson Edition - English" {
		t.Fatalf("translation = %q", m.translation)
	}
	if m.currentCommentary != "Tosafot" {
		t.Fatalf("current commentary = %q, want the first saved one", m.currentCommentary)
	}
	if m.overlay != overlayNone {
		t.Fatal("resume should not open the table of contents")
	}
}

func TestOpenBookFirstVisitOpensContents(t *testing.T) {
	m := newTestModel(t)
	openTestBook(t, m, "Taanit")
	m.Update(settingsLoadedMsg{seq: m.loadSeq, slug: "Taanit"})
	if m.overlay != overlayTOC {
		t.Fatalf("overlay = %v, want table of contents on first visit", m.overlay)
	}
	if !m.jumpInput.Focused() {
		t.Fatal("jump input should take focus on first visit")
	}
}

func TestIndexSurvivesResumeJump(t *testing.T) {
	m := newTestModel(t)
	openTestBook(t, m, "Taanit")
	// The resume jump bumps the load sequence while the index fetch, issued
	// at book open, is still in flight. The index belongs to the book and
	// must land anyway.
	m.Update(settingsLoadedMsg{
		seq:      m.loadSeq,
		slug:     "Taanit",
		settings: &settings.BookSettings{BookSlug: "Taanit", Location: "7b"},
	})
	m.Update(indexMsg{slug: "Taanit", index: &sefaria.BookIndex{Title: "Taanit"}})
	if m.index == nil || m.index.Title != "Taanit" {
		t.Fatalf("index = %+v, want the opened book's index", m.index)
	}

	m.Update(indexMsg{slug: "Berakhot", index: &sefaria.BookIndex{Title: "Berakhot"}})
	if m.index.Title != "Taanit" {
		t.Fatal("an index for a different book must be dropped")
	}
}

func TestStaleSettingsResultIsIgnored(t *testing.T) {
	m := newTestModel(t)
	openTestBook(t, m, "Taanit")
	staleSeq := m.loadSeq
	openTestBook(t, m, "Berakhot")
	m.Update(settingsLoadedMsg{
		seq:      staleSeq,
		slug:     "Taanit",
		settings: &settings.BookSettings{BookSlug: "Taanit", Location: "7b"},
	})
	if m.translation != "" || !m.pager.Empty() {
		t.Fatal("settings for the previous book must not drive the new one")
	}
}

func TestJumpToOutOfRangeVerseKeepsSectionWithoutCurrentItem(t *testing.T) {
	m := newTestModel(t)
	openTestBook(t, m, "Taanit")
	m.jumpTo("5a:99")
	m.Update(sectionResultMsg{
		seq:        m.loadSeq,
		kind:       loadJump,
		book:       "Taanit",
		chapter:    "5a",
		firstVerse: 99,
		section:    sectionFixture("Taanit", "5a", 5),
	})
	if m.pager.Empty() {
		t.Fatal("section should render even when the verse is out of range")
	}
	if m.currentItem != nil {
		t.Fatalf("current item = %+v, want none for out-of-range verse", m.currentItem)
	}
	if m.pendingScroll == nil || m.pendingScroll.entryIndex != 5 {
		t.Fatalf("pending scroll = %+v, want clamp to last entry", m.pendingScroll)
	}
}

func TestPrependCommitSchedulesScrollPastNewSection(t *testing.T) {
	m := newTestModel(t)
	openTestBook(t, m, "Taanit")
	m.jumpTo("5b")
	m.Update(sectionResultMsg{
		seq:        m.loadSeq,
		kind:       loadJump,
		book:       "Taanit",
		chapter:    "5b",
		firstVerse: 1,
		section:    sectionFixture("Taanit", "5b", 5),
	})

	if cmd := m.loadPrevious(); cmd == nil {
		t.Fatal("loading the previous section should start a fetch")
	}
	if !m.pager.LoadingPrevious() {
		t.Fatal("prepend flag should be up while the fetch is in flight")
	}

	prep := sectionFixture("Taanit", "5b-prev", 7)
	m.Update(sectionResultMsg{
		seq:     m.loadSeq,
		kind:    loadPrepend,
		book:    "Taanit",
		chapter: "5b-prev",
		section: prep,
	})
	sections := m.pager.Sections()
	if len(sections) != 2 || sections[0].Key != "Taanit 5b-prev" {
		t.Fatalf("window = %+v, want the previous section first", sections)
	}
	if m.pager.LoadingPrevious() {
		t.Fatal("prepend flag should clear on commit")
	}
	if m.pendingScroll == nil || m.pendingScroll.entryIndex != 7 {
		t.Fatalf("pending scroll = %+v, want entry 7 (the old top)", m.pendingScroll)
	}
}

func TestScrollAttemptRetriesOnceThenGivesUp(t *testing.T) {
	m := newTestModel(t)
	if cmd := m.scheduleScroll(42); cmd == nil {
		t.Fatal("scheduling a scroll should return a tick")
	}
	if retry := m.handleScrollAttempt(); retry == nil {
		t.Fatal("first failed attempt should schedule one retry")
	}
	if giveUp := m.handleScrollAttempt(); giveUp != nil {
		t.Fatal("second failed attempt should give up")
	}
	if m.pendingScroll != nil {
		t.Fatal("pending scroll should clear after giving up")
	}
}

func TestSetCurrentItemDebouncesSameKey(t *testing.T) {
	m := newTestModel(t)
	openTestBook(t, m, "Taanit")
	m.Update(sectionResultMsg{
		seq:        m.loadSeq,
		kind:       loadJump,
		book:       "Taanit",
		chapter:    "5a",
		firstVerse: 1,
		section:    sectionFixture("Taanit", "5a", 5),
	})
	if m.currentItem == nil {
		t.Fatal("jump should set a current item")
	}
	if cmd := m.setCurrentItem(*m.currentItem); cmd != nil {
		t.Fatal("re-selecting the same item must not refetch or resave")
	}
	other := m.pager.Sections()[0].Data[2]
	if cmd := m.setCurrentItem(other); cmd == nil {
		t.Fatal("moving to a new item should fetch links and save")
	}
}

func TestChapterJumpValidation(t *testing.T) {
	m := newTestModel(t)
	openTestBook(t, m, "Genesis")
	m.index = &sefaria.BookIndex{
		Title:  "Genesis",
		Schema: sefaria.IndexSchema{SectionNames: []string{"Chapter"}, Lengths: []int{50}},
	}
	m.overlay = overlayTOC

	if cmd := m.handleChapterJump("abc"); cmd != nil {
		t.Fatal("nonsense input must not jump")
	}
	if m.errorMessage == "" || m.overlay != overlayTOC {
		t.Fatal("nonsense input should surface an error and keep the overlay")
	}

	m.errorMessage = ""
	if cmd := m.handleChapterJump("60"); cmd != nil {
		t.Fatal("out-of-range chapter must not jump")
	}
	if m.errorMessage == "" {
		t.Fatal("out-of-range chapter should surface the bound")
	}

	m.errorMessage = ""
	if cmd := m.handleChapterJump("12"); cmd == nil {
		t.Fatal("a valid chapter should jump")
	}
	if m.overlay != overlayNone {
		t.Fatal("a valid jump should close the overlay")
	}
}

func TestChapterJumpAcceptsDafInput(t *testing.T) {
	m := newTestModel(t)
	openTestBook(t, m, "Taanit")
	m.index = &sefaria.BookIndex{
		Title:          "Taanit",
		Schema:         sefaria.IndexSchema{SectionNames: []string{"Daf"}, Lengths: []int{31}},
		ExcludeStructs: []string{"schema"},
	}
	m.overlay = overlayTOC
	if cmd := m.handleChapterJump("13a"); cmd == nil {
		t.Fatal("daf-form input should jump")
	}
	if m.overlay != overlayNone {
		t.Fatal("a daf jump should close the overlay")
	}
}

func TestToggleCommentaryUpdatesSelectionAndCurrent(t *testing.T) {
	m := newTestModel(t)
	openTestBook(t, m, "Taanit")
	m.availableLinks = []string{"Rashi", "Tosafot"}

	m.toggleCommentary("Tosafot")
	if !containsString(m.selectedCommentaries, "Tosafot") || m.currentCommentary != "Tosafot" {
		t.Fatalf("selection = %v, current = %q", m.selectedCommentaries, m.currentCommentary)
	}

	m.toggleCommentary("Tosafot")
	if containsString(m.selectedCommentaries, "Tosafot") {
		t.Fatalf("Tosafot should be deselected, got %v", m.selectedCommentaries)
	}
	if m.currentCommentary != defaultCommentary {
		t.Fatalf("current commentary = %q, want the default", m.currentCommentary)
	}
}

func TestStaleLinksResultIsDropped(t *testing.T) {
	m := newTestModel(t)
	openTestBook(t, m, "Taanit")
	m.Update(sectionResultMsg{
		seq:        m.loadSeq,
		kind:       loadJump,
		book:       "Taanit",
		chapter:    "5a",
		firstVerse: 2,
		section:    sectionFixture("Taanit", "5a", 5),
	})
	// Links fetched for verse 1 arrive after the reader moved to verse 2.
	m.Update(linksMsg{
		seq:      m.loadSeq,
		verseKey: "Taanit 5a:1",
		links:    map[string][]sefaria.Link{"Rashi": {{Ref: "Rashi on Taanit 5a:1"}}},
	})
	if m.linksFor == "Taanit 5a:1" || len(m.linkMap) != 0 {
		t.Fatal("links for a superseded verse must not display")
	}
	m.Update(linksMsg{
		seq:      m.loadSeq,
		verseKey: "Taanit 5a:2",
		links:    map[string][]sefaria.Link{"Rashi": {{Ref: "Rashi on Taanit 5a:2"}}},
	})
	if m.linksFor != "Taanit 5a:2" || len(m.linkMap["Rashi"]) != 1 {
		t.Fatalf("linksFor = %q, linkMap = %v", m.linksFor, m.linkMap)
	}
}
