package ui

import "time"

// logEntry records one focus change.
type logEntry struct {
	At    time.Time
	From  string
	To    string
	Cause string
}

// eventLog is a fixed-size circular buffer of focus changes, overwriting the
// oldest entry when full.
type eventLog struct {
	buf  []logEntry
	size int
	w    int // write position
	len  int // current fill level
}

func newEventLog(size int) *eventLog {
	return &eventLog{
		buf:  make([]logEntry, size),
		size: size,
	}
}

func (l *eventLog) add(e logEntry) {
	if l.size == 0 {
		return
	}
	l.buf[l.w] = e
	l.w = (l.w + 1) % l.size
	if l.len < l.size {
		l.len++
	}
}

// recent returns up to n most recent entries, oldest first.
func (l *eventLog) recent(n int) []logEntry {
	if n > l.len {
		n = l.len
	}
	if n <= 0 {
		return nil
	}
	out := make([]logEntry, n)
	start := (l.w - n + l.size) % l.size
	for i := range n {
		out[i] = l.buf[(start+i)%l.size]
	}
	return out
}

func (l *eventLog) count() int {
	return l.len
}
