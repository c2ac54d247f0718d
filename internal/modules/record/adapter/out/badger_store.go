package out

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"

	apperrors "eduvibe/internal/platform/errors"
)

var recordKey = []byte("record")

// BadgerRecordStore keeps the record document under a single key.
type BadgerRecordStore struct {
	db *badger.DB
}

// OpenBadgerRecordStore opens (creating if needed) the database in dir. An
// empty dir opens an in-memory database.
func OpenBadgerRecordStore(dir string, logger *zap.Logger) (*BadgerRecordStore, error) {
	var opts badger.Options
	if dir == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create badger dir %s: %w", dir, err)
		}
		opts = badger.DefaultOptions(dir).WithSyncWrites(true)
	}
	opts = opts.WithNumVersionsToKeep(1)
	if logger != nil {
		opts = opts.WithLogger(badgerLogger{logger: logger.Sugar()})
	} else {
		opts = opts.WithLogger(nil)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger database: %w", err)
	}
	return &BadgerRecordStore{db: db}, nil
}

func (s *BadgerRecordStore) Load(_ context.Context) ([]byte, error) {
	var payload []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(recordKey)
		if err != nil {
			return err
		}
		payload, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("read record: %w", err)
	}
	return payload, nil
}

func (s *BadgerRecordStore) Save(_ context.Context, document []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(recordKey, document)
	})
	if err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return nil
}

func (s *BadgerRecordStore) Clear(_ context.Context) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(recordKey)
	})
	if err != nil {
		return fmt.Errorf("clear record: %w", err)
	}
	return nil
}

func (s *BadgerRecordStore) Close() error {
	return s.db.Close()
}

// badgerLogger routes badger's internal logging through zap.
type badgerLogger struct {
	logger *zap.SugaredLogger
}

func (l badgerLogger) Errorf(format string, args ...any)   { l.logger.Errorf(format, args...) }
func (l badgerLogger) Warningf(format string, args ...any) { l.logger.Warnf(format, args...) }
func (l badgerLogger) Infof(format string, args ...any)    { l.logger.Debugf(format, args...) }
func (l badgerLogger) Debugf(format string, args ...any)   { l.logger.Debugf(format, args...) }
