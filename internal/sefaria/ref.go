package sefaria

import (
	"strconv"
	"strings"
)

// Location is a parsed human-facing address within a book: a chapter or amud
// identifier plus the 1-based index of the first verse or line of interest.
type Location struct {
	Chapter    string
	FirstVerse int
}

// SplitBookRef splits an API-style reference like "Rosh Hashanah 13a" into
// the book name and the chapter token. Book titles can contain spaces
// ("Bava Kamma", "Moed Katan"), so only the last space separates the book
// from the chapter. A ref without a space yields an empty book name; callers
// are expected to guard on empty next/prev refs before calling.
func SplitBookRef(ref string) (bookname, chapter string) {
	idx := strings.LastIndex(ref, " ")
	if idx < 0 {
		return "", ref
	}
	return ref[:idx], ref[idx+1:]
}

// JoinBookRef is the inverse of SplitBookRef.
func JoinBookRef(bookname, chapter string) string {
	if bookname == "" {
		return chapter
	}
	return bookname + " " + chapter
}

// ParseLocation parses a location string of the form
// "<chapter>[:<verse>[-<verse>]]", e.g. "13a", "13a:5" or "13a:5-8".
// A missing, non-numeric, or out-of-range verse part is coerced to 1; for a
// range, the first bound is authoritative. ParseLocation never fails.
func ParseLocation(location string) Location {
	chapter, verses, _ := strings.Cut(location, ":")
	first, _, _ := strings.Cut(verses, "-")
	n, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil || n < 1 {
		n = 1
	}
	return Location{Chapter: chapter, FirstVerse: n}
}

// KeyToLocation strips the book-slug prefix from a text item key to obtain a
// location string safe to persist. Item keys are built as
// "<book> <chapter>:<verse>", so this must stay the exact inverse of that
// construction or saved positions drift.
func KeyToLocation(key, bookSlug string) string {
	return strings.TrimPrefix(key, bookSlug+" ")
}
