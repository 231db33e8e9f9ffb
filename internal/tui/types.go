package tui

import (
	"regexp"
	"time"
)

type screen int

const (
	screenLibrary screen = iota
	screenHistory
	screenReading
)

type overlay int

const (
	overlayNone overlay = iota
	overlayTOC
	overlayTranslations
	overlayCommentaries
)

const (
	minViewportWidth          = 40
	viewportHorizontalPadding = 2

	// An entry counts as visible once at least this fraction of its lines is
	// inside the viewport.
	visibleThreshold = 0.9

	// Delay before the post-jump scroll, so the list has rendered, and the
	// shorter delay before the single retry when the target line is not laid
	// out yet.
	scrollSettleDelay = 300 * time.Millisecond
	scrollRetryDelay  = 100 * time.Millisecond
	maxScrollAttempts = 2

	fetchTimeout = 35 * time.Second

	defaultCommentary = "Rashi"
)

// dafRefPattern pulls the chapter or daf token out of a full reference in an
// alternate-structure node, e.g. "Rosh Hashanah 2a:1-13" yields "2a:1-13".
var dafRefPattern = regexp.MustCompile(`\d+[ab]?(?::[\d-]+)?`)

type loadKind int

const (
	loadJump loadKind = iota
	loadAppend
	loadPrepend
)

// scrollRequest is a deferred scroll-to-entry instruction with its retry
// budget and the load generation it belongs to.
type scrollRequest struct {
	seq        int64
	entryIndex int
	attempt    int
}

// lineSpan is the half-open range of content lines one list entry occupies
// in the rendered viewport.
type lineSpan struct {
	start int
	end   int
}
