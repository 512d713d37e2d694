package singleton

import (
	"fmt"
	"sync"
)

// Journal is a process-wide, append-only log of demo events, the journal
// flavor of the singleton example.
type Journal struct {
	mu      sync.Mutex
	entries []string
}

var (
	journalOnce sync.Once
	journalInst *Journal
)

// SharedJournal returns the process-wide Journal, creating it on first use.
func SharedJournal() *Journal {
	journalOnce.Do(func() {
		journalInst = &Journal{}
	})
	return journalInst
}

// Info appends an info entry.
func (j *Journal) Info(format string, args ...any) {
	j.append("INFO", format, args...)
}

// Error appends an error entry.
func (j *Journal) Error(format string, args ...any) {
	j.append("ERROR", format, args...)
}

// Entries returns a copy of all entries in append order.
func (j *Journal) Entries() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]string, len(j.entries))
	copy(out, j.entries)
	return out
}

// Len returns the number of entries.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.entries)
}

func (j *Journal) append(level, format string, args ...any) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, fmt.Sprintf("[%s] %s", level, fmt.Sprintf(format, args...)))
}
