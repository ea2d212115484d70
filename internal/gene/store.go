package gene

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// Store persists normalized gene records as a single JSON document mapping
// uppercased symbols to records. The whole document is loaded eagerly and
// rewritten in full on every mutation. It is not safe for concurrent use.
type Store struct {
	path    string
	entries map[string]json.RawMessage
	now     func() time.Time
}

// NewStore loads the document at path, creating parent directories when they
// do not exist yet. A missing or unreadable document starts the store empty.
func NewStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
		}
	}

	store := &Store{
		path:    path,
		entries: map[string]json.RawMessage{},
		now:     time.Now,
	}
	store.load()
	return store, nil
}

func (s *Store) load() {
	contents, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(contents, &entries); err != nil {
		// corrupted cache, start fresh
		slog.Default().Warn("discarding unreadable gene cache", "path", s.path, "error", err)
		return
	}
	s.entries = entries
}

// Get returns the record stored for symbol, or false when no usable record
// exists. Legacy entries, which stored the raw upstream response under a
// "data" key without a normalized "summary" field, are deleted on encounter
// and reported as absent.
func (s *Store) Get(symbol string) (*Record, bool) {
	key := NormalizeSymbol(symbol)
	raw, ok := s.entries[key]
	if !ok {
		return nil, false
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		s.purge(key)
		return nil, false
	}
	_, hasData := probe["data"]
	_, hasSummary := probe["summary"]
	if hasData && !hasSummary {
		s.purge(key)
		return nil, false
	}

	var record Record
	if err := json.Unmarshal(raw, &record); err != nil {
		s.purge(key)
		return nil, false
	}
	return &record, true
}

func (s *Store) purge(key string) {
	delete(s.entries, key)
	// best effort, a persistence failure must not surface during a read
	s.save()
}

// Set stores record at the normalized key and rewrites the document. The
// fetched_at stamp is set when the record carries none, so lazy enrichment of
// an existing record keeps its original timestamp. Write failures are
// swallowed; the in-memory state stays correct.
func (s *Store) Set(symbol string, record Record) {
	key := NormalizeSymbol(symbol)
	if record.FetchedAt == 0 {
		record.FetchedAt = s.now().Unix()
	}

	raw, err := json.Marshal(record)
	if err != nil {
		slog.Default().Warn("failed to encode gene record", "symbol", key, "error", err)
		return
	}
	s.entries[key] = raw
	s.save()
}

// Delete removes the record for symbol, if any, and persists the removal.
// It reports whether a record was present.
func (s *Store) Delete(symbol string) bool {
	key := NormalizeSymbol(symbol)
	if _, ok := s.entries[key]; !ok {
		return false
	}
	delete(s.entries, key)
	s.save()
	return true
}

// Symbols returns the cached symbols in lexical order.
func (s *Store) Symbols() []string {
	symbols := make([]string, 0, len(s.entries))
	for symbol := range s.entries {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}

// Records returns every usable cached record in lexical symbol order. Legacy
// entries encountered along the way are purged, same as Get.
func (s *Store) Records() []Record {
	records := make([]Record, 0, len(s.entries))
	for _, symbol := range s.Symbols() {
		if record, ok := s.Get(symbol); ok {
			records = append(records, *record)
		}
	}
	return records
}

// Path returns the location of the backing document.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) save() {
	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(s.entries); err != nil {
		slog.Default().Warn("failed to encode gene cache", "path", s.path, "error", err)
		return
	}
	if err := os.WriteFile(s.path, buffer.Bytes(), 0644); err != nil {
		// best effort; a failed write means the next process start re-fetches
		slog.Default().Warn("failed to write gene cache", "path", s.path, "error", err)
	}
}
