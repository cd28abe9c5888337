package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	apperrors "github.com/Taichi-iskw/tv-guide/internal/errors"
)

// FileStore keeps all keys in one JSON object file. Every Set rewrites the
// file atomically through a temporary file and rename.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store backed by the file at path. The file is created on first Set.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path
func (s *FileStore) Path() string {
	return s.path
}

// Get returns the value stored under key
func (s *FileStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		return "", err
	}
	value, ok := values[key]
	if !ok {
		return "", notFound(key)
	}
	return value, nil
}

// Set stores value under key, keeping the other keys of the file
func (s *FileStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		// A corrupt file is overwritten.
		values = make(map[string]string)
	}
	values[key] = value
	return s.write(values)
}

// Close is a no-op; the file is not held open between calls
func (s *FileStore) Close() error {
	return nil
}

// read loads the key map. A missing or empty file is an empty map.
func (s *FileStore) read() (map[string]string, error) {
	values := make(map[string]string)

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return values, nil
		}
		return nil, apperrors.Wrap(err, apperrors.CodeUnavailable, "failed to open store file")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeUnavailable, "failed to read store file")
	}
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to decode store file")
	}
	return values, nil
}

func (s *FileStore) write(values map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return apperrors.Wrap(err, apperrors.CodeUnavailable, "failed to create store directory")
	}

	tmp := s.path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeUnavailable, "failed to open temporary store file")
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(values); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return apperrors.Wrap(err, apperrors.CodeInternal, "failed to encode store file")
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return apperrors.Wrap(err, apperrors.CodeUnavailable, fmt.Sprintf("failed to close %s", tmp))
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return apperrors.Wrap(err, apperrors.CodeUnavailable, "failed to replace store file")
	}
	return nil
}
