package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jontraum/ZilGmor/internal/sefaria"
	"github.com/jontraum/ZilGmor/internal/settings"
)

func fetchSectionJob(fetcher TextFetcher, seq int64, kind loadKind, book, chapter, translation string, firstVerse int) jobRunner {
	return func(parent context.Context) (tea.Msg, error) {
		ctx, cancel := context.WithTimeout(parent, fetchTimeout)
		defer cancel()
		section, err := fetcher.FetchSection(ctx, book, chapter, translation)
		if err != nil {
			return sectionResultMsg{seq: seq, kind: kind, book: book, chapter: chapter, err: err}, err
		}
		return sectionResultMsg{
			seq:        seq,
			kind:       kind,
			book:       book,
			chapter:    chapter,
			firstVerse: firstVerse,
			section:    section,
		}, nil
	}
}

func fetchLinkNamesJob(fetcher TextFetcher, seq int64, book, chapter string) jobRunner {
	return func(parent context.Context) (tea.Msg, error) {
		ctx, cancel := context.WithTimeout(parent, fetchTimeout)
		defer cancel()
		names, err := fetcher.FetchLinkNames(ctx, book, chapter)
		return linkNamesMsg{seq: seq, names: names, err: err}, err
	}
}

func fetchLinksJob(fetcher TextFetcher, seq int64, verseKey string) jobRunner {
	return func(parent context.Context) (tea.Msg, error) {
		ctx, cancel := context.WithTimeout(parent, fetchTimeout)
		defer cancel()
		links, err := fetcher.FetchLinks(ctx, verseKey)
		return linksMsg{seq: seq, verseKey: verseKey, links: links, err: err}, err
	}
}

func fetchIndexJob(fetcher TextFetcher, slug string) jobRunner {
	return func(parent context.Context) (tea.Msg, error) {
		ctx, cancel := context.WithTimeout(parent, fetchTimeout)
		defer cancel()
		index, err := fetcher.FetchBookIndex(ctx, slug)
		return indexMsg{slug: slug, index: index, err: err}, err
	}
}

func loadSettingsJob(store SettingsStore, seq int64, slug string) jobRunner {
	return func(context.Context) (tea.Msg, error) {
		loaded, err := store.Load(slug)
		return settingsLoadedMsg{seq: seq, slug: slug, settings: loaded, err: err}, err
	}
}

func loadHistoryJob(store SettingsStore) jobRunner {
	return func(context.Context) (tea.Msg, error) {
		entries, err := store.History()
		return historyMsg{entries: entries, err: err}, err
	}
}

func saveSettingsJob(store SettingsStore, payload settings.BookSettings) jobRunner {
	payload.Commentaries = append([]string(nil), payload.Commentaries...)
	return func(context.Context) (tea.Msg, error) {
		if err := store.Save(payload); err != nil {
			return settingsSavedMsg{err: err}, err
		}
		return settingsSavedMsg{slug: payload.BookSlug, location: payload.Location}, nil
	}
}

func scrollTickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return scrollAttemptMsg{}
	})
}

// TextFetcher is the subset of the Sefaria client the TUI depends on.
type TextFetcher interface {
	FetchSection(ctx context.Context, book, chapter, translation string) (*sefaria.Section, error)
	FetchLinkNames(ctx context.Context, book, chapter string) ([]string, error)
	FetchLinks(ctx context.Context, verseKey string) (map[string][]sefaria.Link, error)
	FetchBookIndex(ctx context.Context, slug string) (*sefaria.BookIndex, error)
}

// SettingsStore is the persistence surface the TUI depends on.
type SettingsStore interface {
	Load(bookSlug string) (*settings.BookSettings, error)
	Save(payload settings.BookSettings) error
	History() ([]settings.BookSettings, error)
}
