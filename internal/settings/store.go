// Package settings persists per-book reading state: last location, selected
// commentaries, translation, and when the book was last read. One record per
// book, keyed by the book's API slug.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Label is a book's display title in both languages.
type Label struct {
	He string `json:"he,omitempty"`
	En string `json:"en"`
}

// BookSettings is the in-memory shape of one persisted record. Location is a
// location string without the book-slug prefix, so records stay portable
// when book-title formatting changes. Translation empty means the default
// edition.
type BookSettings struct {
	BookSlug     string
	Location     string
	Label        Label
	Commentaries []string
	LastRead     time.Time
	Translation  string
}

// record is the wire form: commentaries tab-joined, label a JSON blob,
// lastRead epoch milliseconds.
type record struct {
	BookSlug     string          `json:"bookSlug"`
	Location     string          `json:"location"`
	Label        json.RawMessage `json:"label"`
	Commentaries string          `json:"commentaries"`
	LastRead     int64           `json:"lastRead"`
	Translation  *string         `json:"translation"`
}

const commentarySeparator = "\t"

func toRecord(s BookSettings) (record, error) {
	label, err := json.Marshal(s.Label)
	if err != nil {
		return record{}, err
	}
	rec := record{
		BookSlug:     s.BookSlug,
		Location:     s.Location,
		Label:        label,
		Commentaries: strings.Join(s.Commentaries, commentarySeparator),
		LastRead:     s.LastRead.UnixMilli(),
	}
	if s.Translation != "" {
		rec.Translation = &s.Translation
	}
	return rec, nil
}

func fromRecord(rec record) (BookSettings, error) {
	s := BookSettings{
		BookSlug: rec.BookSlug,
		Location: rec.Location,
		LastRead: time.UnixMilli(rec.LastRead),
	}
	if len(rec.Label) > 0 {
		if err := json.Unmarshal(rec.Label, &s.Label); err != nil {
			return BookSettings{}, fmt.Errorf("bad label for %q: %w", rec.BookSlug, err)
		}
	}
	if rec.Commentaries != "" {
		s.Commentaries = strings.Split(rec.Commentaries, commentarySeparator)
	}
	if rec.Translation != nil {
		s.Translation = *rec.Translation
	}
	return s, nil
}

// Store is a file-backed settings store. It is constructed explicitly and
// injected into whatever needs it, so tests can point it at a scratch file.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore returns a store persisting to path. The file is created lazily
// on first save.
func NewStore(path string) *Store {
	return &Store{path: path}
}

func (st *Store) readAll() ([]record, error) {
	data, err := os.ReadFile(st.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("corrupt settings file %s: %w", st.path, err)
	}
	return records, nil
}

func (st *Store) writeAll(records []record) error {
	if err := os.MkdirAll(filepath.Dir(st.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(st.path, data, 0o644)
}

// Load returns the settings for a book, or nil when none are stored.
func (st *Store) Load(bookSlug string) (*BookSettings, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	records, err := st.readAll()
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.BookSlug == bookSlug {
			s, err := fromRecord(rec)
			if err != nil {
				return nil, err
			}
			return &s, nil
		}
	}
	return nil, nil
}

// Save upserts the record for settings.BookSlug: update if a record exists,
// insert otherwise.
func (st *Store) Save(settings BookSettings) error {
	if settings.BookSlug == "" {
		return errors.New("settings: bookSlug is required")
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	records, err := st.readAll()
	if err != nil {
		return err
	}
	rec, err := toRecord(settings)
	if err != nil {
		return err
	}
	updated := false
	for i := range records {
		if records[i].BookSlug == settings.BookSlug {
			records[i] = rec
			updated = true
			break
		}
	}
	if !updated {
		records = append(records, rec)
	}
	return st.writeAll(records)
}

// History returns all stored records ordered by last-read time, most recent
// first.
func (st *Store) History() ([]BookSettings, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	records, err := st.readAll()
	if err != nil {
		return nil, err
	}
	history := make([]BookSettings, 0, len(records))
	for _, rec := range records {
		s, err := fromRecord(rec)
		if err != nil {
			return nil, err
		}
		history = append(history, s)
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].LastRead.After(history[j].LastRead)
	})
	return history, nil
}
