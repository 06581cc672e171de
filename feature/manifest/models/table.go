package models

import (
	"errors"
	"fmt"
	"io"

	"manifest-sync/core/utils"

	"github.com/goccy/go-json"
)

// Table is the raw definition table keyed by string-encoded hash.
// It remembers the key order of the source document; nothing mutates it once
// the fetcher has finished building it.
type Table struct {
	keys    []string
	entries map[string]*ItemDefinition
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{entries: make(map[string]*ItemDefinition)}
}

// DecodeTable streams a JSON object of hash -> definition into a Table,
// preserving the order in which keys appear.
func DecodeTable(r io.Reader) (*Table, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to read table: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("table is not a keyed object (got %v)", tok)
	}

	t := NewTable()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to read table key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected table key %v", tok)
		}

		var def ItemDefinition
		if err := dec.Decode(&def); err != nil {
			return nil, fmt.Errorf("failed to decode definition %s: %w", key, err)
		}
		t.add(key, &def)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("table is not terminated: %w", err)
	}
	if tok, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, fmt.Errorf("trailing data after table: %w", err)
		}
		return nil, fmt.Errorf("trailing data after table: %v", tok)
	}

	return t, nil
}

func (t *Table) add(key string, def *ItemDefinition) {
	if _, exists := t.entries[key]; !exists {
		t.keys = append(t.keys, key)
	}
	t.entries[key] = def
}

// Merge copies entries of other whose keys are not present yet and returns how many were added.
// It is only meant for assembling a table before it is handed to the classifier.
func (t *Table) Merge(other *Table) int {
	if other == nil {
		return 0
	}
	added := 0
	for _, key := range other.keys {
		if _, exists := t.entries[key]; exists {
			continue
		}
		t.add(key, other.entries[key])
		added++
	}
	return added
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.keys)
}

// Get returns the definition stored under key.
func (t *Table) Get(key string) (*ItemDefinition, bool) {
	def, ok := t.entries[key]
	return def, ok
}

// Lookup returns the definition for a numeric hash.
func (t *Table) Lookup(hash uint32) (*ItemDefinition, bool) {
	return t.Get(utils.HashKey(hash))
}

// Each visits entries in source order.
func (t *Table) Each(fn func(key string, def *ItemDefinition)) {
	for _, key := range t.keys {
		fn(key, t.entries[key])
	}
}
