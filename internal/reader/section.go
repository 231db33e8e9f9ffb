// Package reader holds the pagination and position-tracking core of the
// reading screen: the ordered window of loaded sections, the transitions
// that grow it at either end, and the rule that decides which item the
// reader is currently looking at. Everything here is pure state; fetching
// and scheduling belong to the callers.
package reader

import (
	"fmt"

	"github.com/jontraum/ZilGmor/internal/sefaria"
)

// TextItem is one displayable unit of text: a verse or line in both
// languages. Items are immutable once built; section loads always produce
// fresh slices.
type TextItem struct {
	TextHE     string
	TextEN     string
	ItemNumber int
	// Key is unique within a book: "<sectionRef>:<1-based index>".
	Key       string
	HebrewRef string
}

// ListSection is one fetched section adapted for the scrollable list. Key is
// the section's full ref, a separate namespace from item keys, and must be
// unique among loaded sections. Next and Prev are raw API refs ("<book>
// <chapter>"); empty means the edge of the book.
type ListSection struct {
	Title   string
	HeTitle string
	Key     string
	Next    string
	Prev    string
	Data    []TextItem
}

// BuildListSection converts a fetched section into list form, pairing the
// Hebrew and English arrays index by index. The API guarantees the arrays
// are parallel; if the English runs short the item simply has no
// translation.
func BuildListSection(section *sefaria.Section) ListSection {
	data := make([]TextItem, len(section.He))
	for i, he := range section.He {
		en := ""
		if i < len(section.Text) {
			en = section.Text[i]
		}
		data[i] = TextItem{
			TextHE:     he,
			TextEN:     en,
			ItemNumber: i,
			Key:        fmt.Sprintf("%s:%d", section.SectionRef, i+1),
			HebrewRef:  fmt.Sprintf("%s:%d", section.HeSectionRef, i+1),
		}
	}
	return ListSection{
		Title:   section.SectionRef,
		HeTitle: section.HeSectionRef,
		Key:     section.SectionRef,
		Next:    section.Next,
		Prev:    section.Prev,
		Data:    data,
	}
}
