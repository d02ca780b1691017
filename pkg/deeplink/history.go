package deeplink

// History is a traversable stack of locations with a cursor, replicating the
// browser history contract the viewer's modal state is synchronized against:
//
//   - Push appends a new entry after the cursor and drops any forward tail.
//     It never replaces the current entry, so back navigation always reaches
//     the state that preceded the push.
//   - Back and Forward move the cursor without mutating entries.
//
// History is not safe for concurrent use; the UI owns it on a single
// event-loop goroutine.
type History struct {
	entries []Location
	cursor  int
}

// NewHistory creates a history whose single entry is the initial location
// (what the viewer was launched with).
func NewHistory(initial Location) *History {
	return &History{entries: []Location{initial}}
}

// Current returns the location at the cursor.
func (h *History) Current() Location {
	return h.entries[h.cursor]
}

// Len returns the number of entries in the stack.
func (h *History) Len() int {
	return len(h.entries)
}

// CanBack reports whether a back navigation is possible.
func (h *History) CanBack() bool {
	return h.cursor > 0
}

// CanForward reports whether a forward navigation is possible.
func (h *History) CanForward() bool {
	return h.cursor < len(h.entries)-1
}

// Push appends loc as a new entry, truncating any forward tail first, and
// moves the cursor to it.
func (h *History) Push(loc Location) {
	h.entries = append(h.entries[:h.cursor+1], loc)
	h.cursor = len(h.entries) - 1
}

// Back moves the cursor one entry back and returns the new current location.
// ok is false (and the cursor unchanged) when already at the oldest entry.
func (h *History) Back() (Location, bool) {
	if !h.CanBack() {
		return h.Current(), false
	}
	h.cursor--
	return h.Current(), true
}

// Forward moves the cursor one entry forward and returns the new current
// location. ok is false when already at the newest entry.
func (h *History) Forward() (Location, bool) {
	if !h.CanForward() {
		return h.Current(), false
	}
	h.cursor++
	return h.Current(), true
}
