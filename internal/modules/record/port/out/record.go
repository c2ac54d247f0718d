package out

import (
	"context"

	"eduvibe/internal/modules/record/domain"
)

// Store persists the whole record document. Load returns apperrors.ErrNotFound
// when nothing has been saved yet.
type Store interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, document []byte) error
	Clear(ctx context.Context) error
}

// Transactor is the unit of work every module mutates the record through.
// Update loads the record, applies fn to a copy and persists the result; when
// fn fails nothing is saved.
type Transactor interface {
	View(ctx context.Context) (domain.Record, error)
	Update(ctx context.Context, fn func(*domain.Record) error) (domain.Record, error)
}

// BackupWriter places an exported document at path and returns the
// resolved location.
type BackupWriter interface {
	Write(ctx context.Context, path string, document []byte) (string, error)
}
