// Package history keeps the passwords generated during one session, in the
// order they were generated. Nothing is persisted.
package history

import (
	"sync"
	"time"
)

// Entry is one generated password.
type Entry struct {
	Seq         int
	Password    string
	GeneratedAt time.Time
}

// History is an append-only, ordered list of generated passwords. It is safe
// for concurrent use.
type History struct {
	mu      sync.Mutex
	entries []Entry
	now     func() time.Time
}

// New creates an empty History.
func New() *History {
	return &History{now: time.Now}
}

// Append records a password and returns the stored entry. Entries are never
// deduplicated or evicted.
func (h *History) Append(password string) Entry {
	h.mu.Lock()
	defer h.mu.Unlock()

	e := Entry{
		Seq:         len(h.entries) + 1,
		Password:    password,
		GeneratedAt: h.now().UTC(),
	}
	h.entries = append(h.entries, e)
	return e
}

// Entries returns a copy of all entries, oldest first.
func (h *History) Entries() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of recorded entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}
