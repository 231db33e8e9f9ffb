package reader

// Pager owns the ordered window of loaded sections. The window is contiguous
// in source order: appends always follow the last section's Next ref and
// prepends always follow the first section's Prev ref, so no gaps can be
// introduced. All mutation happens through begin/commit/abort transitions;
// a begin reserves the single outstanding fetch slot for that direction and
// a commit is ignored unless its reservation is still open, which keeps
// rapid double-triggering from appending the same section twice.
type Pager struct {
	sections        []ListSection
	pendingAppend   bool
	loadingPrevious bool
}

// NewPager returns an empty pager.
func NewPager() *Pager {
	return &Pager{}
}

// Sections returns the loaded window in order. Callers must not mutate it.
func (p *Pager) Sections() []ListSection {
	return p.sections
}

// Empty reports whether nothing is loaded; the UI shows a loading indicator
// in that state.
func (p *Pager) Empty() bool {
	return len(p.sections) == 0
}

// LoadingPrevious reports whether a prepend fetch is outstanding, for the
// pull-to-refresh affordance.
func (p *Pager) LoadingPrevious() bool {
	return p.loadingPrevious
}

// Clear drops all loaded sections and cancels any open reservations. Used
// when a jump or book switch replaces the window wholesale.
func (p *Pager) Clear() {
	p.sections = nil
	p.pendingAppend = false
	p.loadingPrevious = false
}

// Replace installs a single freshly fetched section as the whole window.
func (p *Pager) Replace(section ListSection) {
	p.sections = []ListSection{section}
	p.pendingAppend = false
	p.loadingPrevious = false
}

// BeginAppend reserves the forward-fetch slot and returns the ref of the
// section to fetch. It returns ok=false with no state change when the
// window is empty, when the last section has no next (end of book), or when
// an append is already outstanding.
func (p *Pager) BeginAppend() (next string, ok bool) {
	if len(p.sections) == 0 || p.pendingAppend {
		return "", false
	}
	next = p.sections[len(p.sections)-1].Next
	if next == "" {
		return "", false
	}
	p.pendingAppend = true
	return next, true
}

// CommitAppend adds the fetched section to the end of the window. It is a
// no-op if no append reservation is open, so a result that arrives after a
// Clear or Replace cannot corrupt the window.
func (p *Pager) CommitAppend(section ListSection) {
	if !p.pendingAppend {
		return
	}
	p.pendingAppend = false
	p.sections = append(p.sections, section)
}

// AbortAppend releases the forward-fetch slot after a failed fetch. The
// window is left unchanged.
func (p *Pager) AbortAppend() {
	p.pendingAppend = false
}

// BeginPrepend reserves the backward-fetch slot and returns the ref of the
// previous section. Returns ok=false when the window is empty, the first
// section has no prev, or a prepend is already outstanding.
func (p *Pager) BeginPrepend() (prev string, ok bool) {
	if len(p.sections) == 0 || p.loadingPrevious {
		return "", false
	}
	prev = p.sections[0].Prev
	if prev == "" {
		return "", false
	}
	p.loadingPrevious = true
	return prev, true
}

// CommitPrepend inserts the fetched section at the front of the window and
// returns the item count of the new section: the scroll offset the list
// view must restore so the reader's viewport content stays where it was.
// No-op (returning -1) if no prepend reservation is open.
func (p *Pager) CommitPrepend(section ListSection) (scrollOffset int) {
	if !p.loadingPrevious {
		return -1
	}
	p.loadingPrevious = false
	p.sections = append([]ListSection{section}, p.sections...)
	return len(section.Data)
}

// AbortPrepend releases the backward-fetch slot after a failed fetch,
// leaving the window unchanged.
func (p *Pager) AbortPrepend() {
	p.loadingPrevious = false
}

// Item looks up a loaded item by key.
func (p *Pager) Item(key string) (TextItem, bool) {
	for _, section := range p.sections {
		for _, item := range section.Data {
			if item.Key == key {
				return item, true
			}
		}
	}
	return TextItem{}, false
}
