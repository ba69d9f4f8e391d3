package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

// fileStore keeps one pretty-printed JSON array of objects per collection,
// e.g. <dir>/users.json. Every operation is a read-modify-write of the
// whole file, so a per-collection mutex serializes writers; cross-call
// sequences (check email, then insert) are still not atomic.
type fileStore struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// OpenFile opens the flat-file backend rooted at dir, creating it if needed.
func OpenFile(dir string) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &fileStore{dir: dir, locks: make(map[string]*sync.Mutex)}, nil
}

func (s *fileStore) lock(collection string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[collection]
	if !ok {
		l = &sync.Mutex{}
		s.locks[collection] = l
	}
	return l
}

func (s *fileStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// load reads a collection file. A missing file is an empty collection; a
// corrupt file is logged and treated as empty rather than failing the
// request.
func (s *fileStore) load(collection string) []map[string]any {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logrus.WithError(err).WithField("collection", collection).Warn("failed to read collection file")
		}
		return nil
	}
	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		logrus.WithError(err).WithField("collection", collection).Warn("malformed collection file, treating as empty")
		return nil
	}
	return records
}

func (s *fileStore) save(collection string, records []map[string]any) error {
	if records == nil {
		records = []map[string]any{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path(collection) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(collection))
}

func (s *fileStore) FindOne(_ context.Context, collection string, filter Filter, out any) error {
	l := s.lock(collection)
	l.Lock()
	records := s.load(collection)
	l.Unlock()

	for _, rec := range records {
		if matches(rec, filter) {
			return decodeRecord(rec, out)
		}
	}
	return ErrNotFound
}

func (s *fileStore) FindMany(_ context.Context, collection string, filter Filter, limit int64, out any) error {
	l := s.lock(collection)
	l.Lock()
	records := s.load(collection)
	l.Unlock()

	matched := make([]map[string]any, 0)
	for _, rec := range records {
		if matches(rec, filter) {
			matched = append(matched, rec)
			if limit > 0 && int64(len(matched)) >= limit {
				break
			}
		}
	}
	return decodeRecord(matched, out)
}

func (s *fileStore) Insert(_ context.Context, collection string, doc any) error {
	rec, err := encodeRecord(doc)
	if err != nil {
		return err
	}

	l := s.lock(collection)
	l.Lock()
	defer l.Unlock()

	records := s.load(collection)
	return s.save(collection, append(records, rec))
}

func (s *fileStore) Update(_ context.Context, collection string, filter Filter, patch Patch) (int64, error) {
	l := s.lock(collection)
	l.Lock()
	defer l.Unlock()

	records := s.load(collection)
	var matchedCount int64
	for _, rec := range records {
		if !matches(rec, filter) {
			continue
		}
		matchedCount++
		for k, v := range patch.Set {
			nv, err := normalizeValue(v)
			if err != nil {
				return 0, err
			}
			rec[k] = nv
		}
		for k, delta := range patch.Inc {
			cur, _ := rec[k].(float64)
			rec[k] = cur + float64(delta)
		}
	}
	if matchedCount == 0 {
		return 0, nil
	}
	return matchedCount, s.save(collection, records)
}

func (s *fileStore) Count(_ context.Context, collection string, filter Filter) (int64, error) {
	l := s.lock(collection)
	l.Lock()
	records := s.load(collection)
	l.Unlock()

	var n int64
	for _, rec := range records {
		if matches(rec, filter) {
			n++
		}
	}
	return n, nil
}

func (s *fileStore) Close(context.Context) error { return nil }

// matches checks all filter pairs against the stored record. Values are
// compared through their JSON encoding so typed filter values (ints,
// bools, times) line up with what the file round-trip produced.
func matches(rec map[string]any, filter Filter) bool {
	for k, want := range filter {
		got, ok := rec[k]
		if !ok {
			return false
		}
		if !jsonEqual(got, want) {
			return false
		}
	}
	return true
}

func jsonEqual(a, b any) bool {
	ab, err := json.Marshal(a)
	if err != nil {
		return false
	}
	bb, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return bytes.Equal(ab, bb)
}

// encodeRecord converts a struct into the generic map shape stored on disk.
// Going through JSON keeps field names and date formats identical to what
// clients see (ISO-8601 text).
func encodeRecord(doc any) (map[string]any, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var rec map[string]any
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func decodeRecord(rec any, out any) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func normalizeValue(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var nv any
	if err := json.Unmarshal(data, &nv); err != nil {
		return nil, err
	}
	return nv, nil
}
