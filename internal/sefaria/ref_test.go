package sefaria

import "testing"

func TestSplitBookRef(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ref      string
		bookname string
		chapter  string
	}{
		{"single word book", "Berakhot 2a", "Berakhot", "2a"},
		{"two word book", "Rosh Hashanah 13b", "Rosh Hashanah", "13b"},
		{"two word book tanakh", "Bava Kamma 119b", "Bava Kamma", "119b"},
		{"numeric chapter", "Genesis 12", "Genesis", "12"},
		{"no space", "13a", "", "13a"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			bookname, chapter := SplitBookRef(tt.ref)
			if bookname != tt.bookname || chapter != tt.chapter {
				t.Fatalf("SplitBookRef(%q) = (%q, %q), want (%q, %q)",
					tt.ref, bookname, chapter, tt.bookname, tt.chapter)
			}
		})
	}
}

func TestSplitBookRefRoundTrips(t *testing.T) {
	t.Parallel()

	refs := []string{"Berakhot 2a", "Rosh Hashanah 13a", "Moed Katan 29a", "Song of Songs 3"}
	for _, ref := range refs {
		bookname, chapter := SplitBookRef(ref)
		if got := JoinBookRef(bookname, chapter); got != ref {
			t.Fatalf("round trip of %q produced %q", ref, got)
		}
	}
}

func TestParseLocation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		location   string
		chapter    string
		firstVerse int
	}{
		{"chapter only", "13a", "13a", 1},
		{"chapter and verse", "13a:5", "13a", 5},
		{"verse range uses first bound", "13a:5-8", "13a", 5},
		{"non-numeric verse coerced", "13a:abc", "13a", 1},
		{"zero verse coerced", "13a:0", "13a", 1},
		{"negative verse coerced", "13a:-3", "13a", 1},
		{"numeric chapter", "4:2", "4", 2},
		{"empty verse part", "13a:", "13a", 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ParseLocation(tt.location)
			if got.Chapter != tt.chapter || got.FirstVerse != tt.firstVerse {
				t.Fatalf("ParseLocation(%q) = %+v, want {%s %d}",
					tt.location, got, tt.chapter, tt.firstVerse)
			}
		})
	}
}

func TestParseLocationRangeMatchesSingleVerse(t *testing.T) {
	t.Parallel()

	single := ParseLocation("27b:4")
	ranged := ParseLocation("27b:4-9")
	if single.FirstVerse != ranged.FirstVerse {
		t.Fatalf("range start should be authoritative: %d vs %d", single.FirstVerse, ranged.FirstVerse)
	}
}

func TestKeyToLocation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  string
		slug string
		want string
	}{
		{"gemara key", "Rosh Hashanah 13a:5", "Rosh Hashanah", "13a:5"},
		{"tanakh key", "Genesis 12:3", "Genesis", "12:3"},
		{"slug not a prefix", "Berakhot 2a:1", "Shabbat", "Berakhot 2a:1"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := KeyToLocation(tt.key, tt.slug); got != tt.want {
				t.Fatalf("KeyToLocation(%q, %q) = %q, want %q", tt.key, tt.slug, got, tt.want)
			}
		})
	}
}
