package reader

// Entry is one row group of the flattened reading list: either a section
// header or a text item. Headers are rendered inline in the scrollable list,
// so they can momentarily be the topmost visible row at a section boundary.
type Entry struct {
	Header     bool
	SectionKey string
	Title      string
	HeTitle    string
	Item       TextItem
}

// Entries flattens the loaded window into list order: each section
// contributes its header row followed by its items. Within a section the
// item at 1-based verse n sits at entry offset n from the section header,
// which is what scroll targeting relies on.
func (p *Pager) Entries() []Entry {
	var entries []Entry
	for _, section := range p.sections {
		entries = append(entries, Entry{
			Header:     true,
			SectionKey: section.Key,
			Title:      section.Title,
			HeTitle:    section.HeTitle,
		})
		for _, item := range section.Data {
			entries = append(entries, Entry{SectionKey: section.Key, Item: item})
		}
	}
	return entries
}

// EntryIndex returns the flattened index of the item with the given key, or
// -1 when it is not loaded.
func (p *Pager) EntryIndex(key string) int {
	idx := 0
	for _, section := range p.sections {
		idx++ // header row
		for _, item := range section.Data {
			if item.Key == key {
				return idx
			}
			idx++
		}
	}
	return -1
}

// CurrentFromVisible derives the current item from the entries visible in
// the viewport, ordered topmost first. The topmost entry wins when it is a
// genuine text node; a section header or textless placeholder at the top
// defers to the next visible entry. A header can never become the current
// item. When neither of the first two entries yields a text item the caller
// keeps its previous current item (ok=false).
func CurrentFromVisible(visible []Entry) (TextItem, bool) {
	for i, entry := range visible {
		if i > 1 {
			break
		}
		if !entry.Header && (entry.Item.TextHE != "" || entry.Item.TextEN != "") {
			return entry.Item, true
		}
	}
	return TextItem{}, false
}
