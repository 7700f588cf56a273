// Package potatolog keeps zerolog's JSON output in memory, so it can be shown
// while the terminal is taken over by a window.
package potatolog

import (
	"encoding/json"
	"fmt"
	"sync"
)

// LogEntry is a single log entry.
type LogEntry = map[string]any

// MemoryLogReaderWriter is a simple in-memory log reader and writer.
// It retains at most a fixed number of entries, dropping the oldest.
type MemoryLogReaderWriter struct {
	mtx      sync.Mutex
	log      []LogEntry
	capacity int
}

// NewMemoryLogReaderWriter returns a pointer to a new MemoryLogReaderWriter
// retaining up to capacity entries.
func NewMemoryLogReaderWriter(capacity int) *MemoryLogReaderWriter {
	return &MemoryLogReaderWriter{
		log:      make([]LogEntry, 0, capacity),
		capacity: capacity,
	}
}

// Write appends a log entry to the log.
// p has to be a single JSON object, as zerolog writes them.
func (w *MemoryLogReaderWriter) Write(p []byte) (int, error) {
	entry := LogEntry{}
	err := json.Unmarshal(p, &entry)
	if err != nil {
		return 0, fmt.Errorf("could not unmarshal log entry (err:%s) (input:'%s')", err.Error(), string(p))
	}

	w.mtx.Lock()
	defer w.mtx.Unlock()
	if w.capacity > 0 && len(w.log) >= w.capacity {
		w.log = append(w.log[:0], w.log[len(w.log)-w.capacity+1:]...)
	}
	w.log = append(w.log, entry)
	return len(p), nil
}

// Get returns a copy of the log.
func (w *MemoryLogReaderWriter) Get() []LogEntry {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	return append([]LogEntry(nil), w.log...)
}

// Latest returns up to the n most recent entries, oldest first.
func (w *MemoryLogReaderWriter) Latest(n int) []LogEntry {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	if n > len(w.log) {
		n = len(w.log)
	}
	return append([]LogEntry(nil), w.log[len(w.log)-n:]...)
}

// LogReader allows reading access to a log.
type LogReader interface {
	Get() []LogEntry
	Latest(n int) []LogEntry
}

// Summarize renders an entry as a single line, e.g.
// "warn command failed command=exit 1".
func Summarize(entry LogEntry) string {
	line := fmt.Sprintf("%v %v", entry["level"], entry["message"])
	for _, field := range []string{"combination", "command", "error"} {
		if v, ok := entry[field]; ok {
			line += fmt.Sprintf(" %s=%v", field, v)
		}
	}
	return line
}
