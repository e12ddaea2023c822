// Package jsonfile persists each entity type as a JSON array of records in a
// single file. Every repository method is a self-contained
// read-all/validate/mutate/write-all cycle against its backing file; nothing
// is cached between calls.
package jsonfile

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"hotelreserve/internal/adapters/observability"
)

// Store reads and writes sequences of untyped key-value records. Load and
// save anomalies degrade to diagnostics; neither call ever returns an error.
type Store struct {
	log zerolog.Logger
}

func NewStore(log zerolog.Logger) *Store {
	return &Store{log: log.With().Str("component", "store").Logger()}
}

// LoadList returns the records held in the file at path. A missing, empty,
// whitespace-only, or unparseable file yields an empty list; array elements
// that are not JSON objects are dropped individually. Each anomaly is logged.
func (s *Store) LoadList(path string) []map[string]any {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Warn().Str("path", path).Msg("data file missing, treating as empty")
			observability.ObserveStore("load", "missing")
		} else {
			s.log.Warn().Err(err).Str("path", path).Msg("data file unreadable, treating as empty")
			observability.ObserveStore("load", "error")
		}
		return nil
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		observability.ObserveStore("load", "empty")
		return nil
	}

	var items []any
	if err := json.Unmarshal(raw, &items); err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("data file is not a JSON array, treating as empty")
		observability.ObserveStore("load", "corrupt")
		return nil
	}

	entity := entityName(path)
	out := make([]map[string]any, 0, len(items))
	for i, item := range items {
		rec, ok := item.(map[string]any)
		if !ok {
			s.log.Warn().Str("path", path).Int("index", i).Msg("dropping record: not a JSON object")
			observability.ObserveDropped(entity, "not_object")
			continue
		}
		out = append(out, rec)
	}
	observability.ObserveStore("load", "ok")
	return out
}

// SaveList rewrites the file at path with the given records, creating parent
// directories as needed. Persistence is best-effort: an I/O failure is
// logged and swallowed, so callers cannot observe a failed write.
func (s *Store) SaveList(path string, records []map[string]any) {
	if records == nil {
		records = []map[string]any{} // keep "[]" on disk, not "null"
	}
	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("marshal records failed, save skipped")
		observability.ObserveStore("save", "error")
		return
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			s.log.Error().Err(err).Str("path", path).Msg("create data dir failed, save skipped")
			observability.ObserveStore("save", "error")
			return
		}
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("write data file failed, save skipped")
		observability.ObserveStore("save", "error")
		return
	}
	observability.ObserveStore("save", "ok")
}

func entityName(path string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != "" {
		base = base[:len(base)-len(ext)]
	}
	return base
}
