package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/dtroode/postboard-server/internal/model"
)

// Store reads and writes named record collections as JSON files under a
// base directory. A collection is an ordered sequence of records; reads
// decode the whole file, writes replace it atomically via a temp file and
// rename. Mutations on the same collection are serialized per collection,
// so read-modify-write sequences done through Update cannot lose updates
// within the process.
type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStore creates a Store rooted at dir, creating the directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return nil, fmt.Errorf("failed to create store dir %s: %w", dir, err)
	}
	return &Store{dir: dir, locks: make(map[string]*sync.Mutex)}, nil
}

// Dir returns the base directory of the store.
func (s *Store) Dir() string {
	return s.dir
}

// Ensure creates an empty collection file if none exists yet.
func (s *Store) Ensure(collection string) error {
	lock := s.lock(collection)
	lock.Lock()
	defer lock.Unlock()

	path := s.path(collection)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to stat collection %s: %w", collection, err)
	}
	return writeAtomic(path, []byte("[]\n"))
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

func (s *Store) lock(collection string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[collection]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[collection] = lock
	}
	return lock
}

// Load reads an entire collection into memory in stored order. A missing
// file is reported as model.ErrNotFound, malformed content as a decode
// error; neither is recovered here.
func Load[T any](s *Store, collection string) ([]T, error) {
	lock := s.lock(collection)
	lock.Lock()
	defer lock.Unlock()

	return load[T](s, collection)
}

// Save replaces the entire collection with the given records.
func Save[T any](s *Store, collection string, records []T) error {
	lock := s.lock(collection)
	lock.Lock()
	defer lock.Unlock()

	return save(s, collection, records)
}

// Update applies fn to the current records of a collection and persists the
// result, all under the collection lock.
func Update[T any](s *Store, collection string, fn func(records []T) ([]T, error)) error {
	lock := s.lock(collection)
	lock.Lock()
	defer lock.Unlock()

	records, err := load[T](s, collection)
	if err != nil {
		return err
	}

	updated, err := fn(records)
	if err != nil {
		return err
	}

	return save(s, collection, updated)
}

func load[T any](s *Store, collection string) ([]T, error) {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("collection %s: %w", collection, model.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read collection %s: %w", collection, err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode collection %s: %w", collection, err)
	}

	return records, nil
}

func save[T any](s *Store, collection string, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", collection, err)
	}

	if err := writeAtomic(s.path(collection), append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", collection, err)
	}

	return nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), path)
}
