package scripts

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrDuplicateScript is returned when a key is added to a Table twice.
var ErrDuplicateScript = errors.New("duplicate script")

// Entry is one row of a Table.
type Entry struct {
	Key     string
	Command string
}

// Table is an insertion-ordered script table with unique keys. The zero value
// is ready to use.
type Table struct {
	entries []Entry
	index   map[string]int
}

// Add appends key. Adding an existing key fails with ErrDuplicateScript and
// leaves the table unchanged.
func (t *Table) Add(key, command string) error {
	if t.index == nil {
		t.index = make(map[string]int)
	}
	if i, ok := t.index[key]; ok {
		return fmt.Errorf("%w %q (already defined as %q)", ErrDuplicateScript, key, t.entries[i].Command)
	}
	t.index[key] = len(t.entries)
	t.entries = append(t.entries, Entry{Key: key, Command: command})
	return nil
}

// Get returns the command stored under key.
func (t *Table) Get(key string) (string, bool) {
	i, ok := t.index[key]
	if !ok {
		return "", false
	}
	return t.entries[i].Command, true
}

// Has reports whether key is present.
func (t *Table) Has(key string) bool {
	_, ok := t.index[key]
	return ok
}

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.entries) }

// Entries returns a copy of the rows in insertion order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// MarshalJSON encodes the table as a JSON object in insertion order.
func (t *Table) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	str := func(s string) error {
		if err := enc.Encode(s); err != nil {
			return err
		}
		buf.Truncate(buf.Len() - 1) // Encode appends a newline
		return nil
	}

	buf.WriteByte('{')
	for i, e := range t.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := str(e.Key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := str(e.Command); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
