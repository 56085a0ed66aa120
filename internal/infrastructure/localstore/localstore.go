// Package localstore implements the flat key-value map the storefront
// persists into, standing in for a real backend. Records are JSON-encoded
// values keyed by "<collection>_<id>"; collection queries are linear scans
// over the key prefix. There are no transactions: concurrent writers race
// on whole-record overwrites and the last writer wins.
package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"gtshop/pkg/errs"
	"gtshop/pkg/utils"
)

type Store struct {
	mu   sync.RWMutex
	path string
	data map[string]json.RawMessage
}

// Open loads the store from path, or starts empty when the file does not
// exist. An empty path keeps the store in memory only. A corrupted backing
// file is logged and treated as empty, mirroring the recovery policy for
// corrupted records.
func Open(path string) (*Store, error) {
	s := &Store{
		path: path,
		data: make(map[string]json.RawMessage),
	}

	if path == "" {
		return s, nil
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading store file: %w", err)
	}

	if err := json.Unmarshal(raw, &s.data); err != nil {
		log.Warn().Err(err).Str("component", "localstore").Str("path", path).Msg("store file is corrupted, starting empty")
		s.data = make(map[string]json.RawMessage)
	}

	return s, nil
}

func key(collection, id string) string {
	return collection + "_" + id
}

// Get unmarshals the record into out. The second return is false when the
// record is absent. A record that no longer parses yields ErrParse.
func (s *Store) Get(collection, id string, out interface{}) (bool, error) {
	s.mu.RLock()
	raw, ok := s.data[key(collection, id)]
	s.mu.RUnlock()

	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("%w: %s/%s: %v", errs.ErrParse, collection, id, err)
	}
	return true, nil
}

// Set overwrites the record wholesale.
func (s *Store) Set(collection, id string, record interface{}) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding %s/%s: %w", collection, id, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key(collection, id)] = raw
	return s.persistLocked()
}

// Update shallow-merges partial into the existing record, creating the
// record when absent.
func (s *Store) Update(collection, id string, partial map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := make(map[string]interface{})
	if raw, ok := s.data[key(collection, id)]; ok {
		if err := json.Unmarshal(raw, &merged); err != nil {
			return fmt.Errorf("%w: %s/%s: %v", errs.ErrParse, collection, id, err)
		}
	}
	for k, v := range partial {
		merged[k] = v
	}

	raw, err := json.Marshal(merged)
	if err != nil {
		return fmt.Errorf("encoding %s/%s: %w", collection, id, err)
	}
	s.data[key(collection, id)] = raw
	return s.persistLocked()
}

func (s *Store) Delete(collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key(collection, id))
	return s.persistLocked()
}

// Add stores the record under a generated id and stamps id and createdAt
// fields into it.
func (s *Store) Add(collection string, record interface{}) (string, error) {
	fields := make(map[string]interface{})
	raw, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("encoding %s record: %w", collection, err)
	}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return "", fmt.Errorf("encoding %s record: %w", collection, err)
	}

	id := utils.GenerateRecordID()
	fields["id"] = id
	fields["createdAt"] = time.Now().Format(time.RFC3339)

	raw, err = json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("encoding %s record: %w", collection, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key(collection, id)] = raw
	return id, s.persistLocked()
}

// List returns every record of the collection, in unspecified order.
func (s *Store) List(collection string) ([]json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prefix := collection + "_"
	var records []json.RawMessage
	for k, raw := range s.data {
		if strings.HasPrefix(k, prefix) {
			records = append(records, raw)
		}
	}
	return records, nil
}

// Query scans the collection and returns records whose field satisfies the
// comparison. Supported operators: ==, !=, >, >=, <, <=. Order is
// unspecified.
func (s *Store) Query(collection, field, op string, value interface{}) ([]json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prefix := collection + "_"
	var matches []json.RawMessage
	for k, raw := range s.data {
		if !strings.HasPrefix(k, prefix) {
			continue
		}

		fields := make(map[string]interface{})
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", errs.ErrParse, k, err)
		}

		ok, err := compare(op, fields[field], value)
		if err != nil {
			return nil, err
		}
		if ok {
			matches = append(matches, raw)
		}
	}
	return matches, nil
}

func compare(op string, fieldValue, queryValue interface{}) (bool, error) {
	switch op {
	case "==":
		return equal(fieldValue, queryValue), nil
	case "!=":
		return !equal(fieldValue, queryValue), nil
	case ">", ">=", "<", "<=":
		return ordered(op, fieldValue, queryValue)
	default:
		return false, fmt.Errorf("%w: unknown operator %q", errs.ErrClient, op)
	}
}

func equal(a, b interface{}) bool {
	if fa, fb, ok := asNumbers(a, b); ok {
		return fa == fb
	}
	return a == b
}

func ordered(op string, a, b interface{}) (bool, error) {
	if fa, fb, ok := asNumbers(a, b); ok {
		switch op {
		case ">":
			return fa > fb, nil
		case ">=":
			return fa >= fb, nil
		case "<":
			return fa < fb, nil
		default:
			return fa <= fb, nil
		}
	}

	sa, aok := a.(string)
	sb, bok := b.(string)
	if !aok || !bok {
		return false, nil
	}
	switch op {
	case ">":
		return sa > sb, nil
	case ">=":
		return sa >= sb, nil
	case "<":
		return sa < sb, nil
	default:
		return sa <= sb, nil
	}
}

// asNumbers coerces both operands to float64 when each is numeric. JSON
// decoding always yields float64, the query side may pass any Go integer.
func asNumbers(a, b interface{}) (float64, float64, bool) {
	fa, aok := toFloat(a)
	fb, bok := toFloat(b)
	return fa, fb, aok && bok
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// persistLocked rewrites the backing file. Callers hold the write lock.
func (s *Store) persistLocked() error {
	if s.path == "" {
		return nil
	}

	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding store: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating store directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("writing store file: %w", err)
	}
	return nil
}
