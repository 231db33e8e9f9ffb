package sefaria

import (
	"encoding/json"
	"strings"
)

// Section is one fetched chapter or amud of parallel-language text, plus the
// navigation pointers the API hands back for continuous reading.
type Section struct {
	Title        string        `json:"title"`
	HeTitle      string        `json:"heTitle"`
	SectionRef   string        `json:"sectionRef"`
	HeSectionRef string        `json:"heSectionRef"`
	Sections     []FlexString  `json:"sections"`
	He           []string      `json:"he"`
	Text         []string      `json:"text"`
	Next         string        `json:"next"`
	Prev         string        `json:"prev"`
	Versions     []TextVersion `json:"versions"`
}

// TextVersion identifies one published edition of a text, used for
// translation selection.
type TextVersion struct {
	Title             string `json:"title"`
	VersionTitle      string `json:"versionTitle"`
	VersionTitleHe    string `json:"versionTitleInHebrew"`
	ShortVersionTitle string `json:"shortVersionTitle"`
	Language          string `json:"language"`
	IsBaseText        bool   `json:"isBaseText"`
}

// FlexString absorbs API fields that are sometimes numbers and sometimes
// strings. Gemara section identifiers are strings like "13a"; Tanakh chapter
// identifiers come back as bare integers.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// LinkText absorbs the he/text fields of a link record, which are a single
// string for one-verse links and an array of strings for multi-verse links.
// Multi-verse text is joined with single spaces at the boundary so nothing
// downstream has to care about the distinction.
type LinkText string

func (l *LinkText) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = LinkText(s)
		return nil
	}
	var parts []string
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	*l = LinkText(strings.Join(parts, " "))
	return nil
}

// CollectiveTitle names the author of a commentary in both languages.
type CollectiveTitle struct {
	En string `json:"en"`
	He string `json:"he"`
}

// Link is a single commentary or cross-reference entry anchored to a verse.
type Link struct {
	Ref             string          `json:"ref"`
	AnchorRef       string          `json:"anchorRef"`
	Category        string          `json:"category"`
	CollectiveTitle CollectiveTitle `json:"collectiveTitle"`
	He              LinkText        `json:"he"`
	Text            LinkText        `json:"text"`
}

// Label is the grouping heading for a link. Commentaries are grouped by the
// commentator's collective name; everything else falls back to the category.
func (l Link) Label() string {
	if l.Category == "Commentary" {
		return l.CollectiveTitle.En
	}
	return l.Category
}

// BookIndex is the table-of-contents schema for a book.
type BookIndex struct {
	Title          string              `json:"title"`
	HeTitle        string              `json:"heTitle"`
	Schema         IndexSchema         `json:"schema"`
	ExcludeStructs []string            `json:"exclude_structs"`
	Alts           map[string]AltGroup `json:"alts"`
}

// IndexSchema describes how a book is addressed: section names by depth and
// the number of sections at each depth.
type IndexSchema struct {
	SectionNames []string `json:"sectionNames"`
	Lengths      []int    `json:"lengths"`
}

// AltGroup is one alternate structure for a book, like chapters of a
// tractate or parashot of the Torah.
type AltGroup struct {
	Nodes []AltNode `json:"nodes"`
}

// AltNode is one named span in an alternate structure with the refs it
// contains.
type AltNode struct {
	Title   string   `json:"title"`
	HeTitle string   `json:"heTitle"`
	Refs    []string `json:"refs"`
}

// HasSchemaNav reports whether the chapter-number jump affordance applies to
// this book. Some books (notably complex structures) exclude the plain
// schema from navigation.
func (b *BookIndex) HasSchemaNav() bool {
	for _, s := range b.ExcludeStructs {
		if s == "schema" {
			return false
		}
	}
	return len(b.Schema.SectionNames) > 0 && len(b.Schema.Lengths) > 0
}

// MaxChapter is the upper bound for chapter-number jumps. Only meaningful
// for sequentially addressed books; callers should gate on HasSchemaNav.
func (b *BookIndex) MaxChapter() int {
	if len(b.Schema.Lengths) == 0 {
		return 0
	}
	return b.Schema.Lengths[0]
}
