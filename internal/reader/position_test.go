package reader

import "testing"

func item(key, he string) Entry {
	return Entry{Item: TextItem{Key: key, TextHE: he}}
}

func header(title string) Entry {
	return Entry{Header: true, SectionKey: title, Title: title}
}

func TestCurrentFromVisibleTakesTopmostTextNode(t *testing.T) {
	t.Parallel()

	visible := []Entry{
		item("Rosh Hashanah 13a:3", "ג"),
		item("Rosh Hashanah 13a:4", "ד"),
	}
	got, ok := CurrentFromVisible(visible)
	if !ok || got.Key != "Rosh Hashanah 13a:3" {
		t.Fatalf("CurrentFromVisible = (%+v, %v)", got, ok)
	}
}

func TestCurrentFromVisibleSkipsSectionHeader(t *testing.T) {
	t.Parallel()

	visible := []Entry{
		header("Rosh Hashanah 13b"),
		item("Rosh Hashanah 13b:1", "א"),
	}
	got, ok := CurrentFromVisible(visible)
	if !ok || got.Key != "Rosh Hashanah 13b:1" {
		t.Fatalf("header should be skipped in favor of its neighbor, got (%+v, %v)", got, ok)
	}
}

func TestCurrentFromVisibleHeaderAloneLeavesCurrentUnchanged(t *testing.T) {
	t.Parallel()

	if _, ok := CurrentFromVisible([]Entry{header("Rosh Hashanah 14a")}); ok {
		t.Fatal("a lone header must never become the current item")
	}
}

func TestCurrentFromVisibleEmptyInput(t *testing.T) {
	t.Parallel()

	if _, ok := CurrentFromVisible(nil); ok {
		t.Fatal("no visible entries should report no change")
	}
}

func TestCurrentFromVisibleTextlessPlaceholderDefersToNeighbor(t *testing.T) {
	t.Parallel()

	visible := []Entry{
		{Item: TextItem{Key: "Taanit 2a:1"}}, // no text in either language
		item("Taanit 2a:2", "ב"),
	}
	got, ok := CurrentFromVisible(visible)
	if !ok || got.Key != "Taanit 2a:2" {
		t.Fatalf("textless placeholder should defer to its neighbor, got (%+v, %v)", got, ok)
	}
}

func TestCurrentFromVisibleTwoHeadersLeavesCurrentUnchanged(t *testing.T) {
	t.Parallel()

	visible := []Entry{header("Taanit 2a"), header("Taanit 2b"), item("Taanit 2b:1", "א")}
	if _, ok := CurrentFromVisible(visible); ok {
		t.Fatal("only the first two visible entries are considered")
	}
}

func TestEntriesFlattenWithHeaders(t *testing.T) {
	t.Parallel()

	p := NewPager()
	p.Replace(BuildListSection(sectionFixture("Rosh Hashanah 13a", "ראש השנה י״ג א", "Rosh Hashanah 13b", "", 3)))
	entries := p.Entries()
	if len(entries) != 4 {
		t.Fatalf("expected header plus 3 items, got %d entries", len(entries))
	}
	if !entries[0].Header || entries[0].Title != "Rosh Hashanah 13a" {
		t.Fatalf("first entry should be the section header, got %+v", entries[0])
	}
	// The item at 1-based verse n must sit at entry offset n.
	if entries[2].Item.Key != "Rosh Hashanah 13a:2" {
		t.Fatalf("entry 2 = %q, want verse 2", entries[2].Item.Key)
	}
}

func TestEntryIndexAcrossSections(t *testing.T) {
	t.Parallel()

	p := NewPager()
	p.Replace(BuildListSection(sectionFixture("Rosh Hashanah 13a", "", "Rosh Hashanah 13b", "", 3)))
	if _, ok := p.BeginAppend(); !ok {
		t.Fatal("BeginAppend should succeed")
	}
	p.CommitAppend(BuildListSection(sectionFixture("Rosh Hashanah 13b", "", "", "Rosh Hashanah 13a", 2)))

	if got := p.EntryIndex("Rosh Hashanah 13a:1"); got != 1 {
		t.Fatalf("EntryIndex first item = %d, want 1", got)
	}
	// Second section: 1 header + 3 items + 1 header = offset 5, then item 1.
	if got := p.EntryIndex("Rosh Hashanah 13b:1"); got != 5 {
		t.Fatalf("EntryIndex second section first item = %d, want 5", got)
	}
	if got := p.EntryIndex("Megillah 2a:1"); got != -1 {
		t.Fatalf("EntryIndex of unloaded key = %d, want -1", got)
	}
}
