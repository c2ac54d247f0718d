package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	recordout "eduvibe/internal/modules/record/port/out"
)

type DirBackupWriter struct{}

func NewDirBackupWriter() recordout.BackupWriter {
	return DirBackupWriter{}
}

func (DirBackupWriter) Write(_ context.Context, path string, document []byte) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve backup path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}
	if err := writeFileAtomic(abs, document); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	return abs, nil
}
