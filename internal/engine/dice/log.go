package dice

import "sync"

// Log is a session's roll history, newest first. Entries can only be
// added or cleared. A positive max drops the oldest entries past it.
type Log struct {
	mu      sync.RWMutex
	entries []Entry
	max     int
}

// NewLog creates a log. max <= 0 keeps everything.
func NewLog(max int) *Log {
	return &Log{max: max}
}

// Append puts a copy of e at the front of the log. Later changes to e do
// not reach the log.
func (l *Log) Append(e *Entry) {
	if e == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append([]Entry{e.clone()}, l.entries...)
	if l.max > 0 && len(l.entries) > l.max {
		l.entries = l.entries[:l.max]
	}
}

// Entries returns a deep copy of the log, newest first.
func (l *Log) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Entry, len(l.entries))
	for i := range l.entries {
		out[i] = l.entries[i].clone()
	}
	return out
}

// Len is the number of entries held.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Clear empties the log and reports how many entries it dropped.
func (l *Log) Clear() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := len(l.entries)
	l.entries = nil
	return n
}

func (e *Entry) clone() Entry {
	c := *e
	if e.Dice != nil {
		c.Dice = append([]DieResult(nil), e.Dice...)
	}
	return c
}
