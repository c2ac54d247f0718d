package out

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	recordout "eduvibe/internal/modules/record/port/out"
	apperrors "eduvibe/internal/platform/errors"
)

type FileRecordStore struct {
	mu   sync.Mutex
	path string
}

func NewFileRecordStore(path string) recordout.Store {
	return &FileRecordStore{path: path}
}

func (s *FileRecordStore) Load(_ context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("read record: %w", err)
	}
	return payload, nil
}

func (s *FileRecordStore) Save(_ context.Context, document []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create record dir: %w", err)
	}
	if err := writeFileAtomic(s.path, document); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return nil
}

func (s *FileRecordStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear record: %w", err)
	}
	return nil
}

// writeFileAtomic writes to a sibling temp file and renames it over path, so
// readers only ever see the old or the new document.
func writeFileAtomic(path string, payload []byte) error {
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(payload); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}
