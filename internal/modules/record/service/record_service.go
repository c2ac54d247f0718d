package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	achievementdomain "eduvibe/internal/modules/achievement/domain"
	"eduvibe/internal/modules/record/domain"
	recordout "eduvibe/internal/modules/record/port/out"
	"eduvibe/internal/platform/clock"
	"eduvibe/internal/platform/day"
	apperrors "eduvibe/internal/platform/errors"
)

// RecordService owns the persisted record. It is the only writer: every
// mutation elsewhere runs through Update.
type RecordService struct {
	mu     sync.Mutex
	store  recordout.Store
	clock  clock.Clock
	cal    day.Calendar
	logger *zap.Logger
}

func NewRecordService(store recordout.Store, clock clock.Clock, cal day.Calendar, logger *zap.Logger) *RecordService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecordService{store: store, clock: clock, cal: cal, logger: logger}
}

func (s *RecordService) View(ctx context.Context) (domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *RecordService) Update(ctx context.Context, fn func(*domain.Record) error) (domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, err := s.load(ctx)
	if err != nil {
		return domain.Record{}, err
	}
	next := current.Clone()
	if err := fn(&next); err != nil {
		return domain.Record{}, err
	}
	return s.save(ctx, next)
}

// Snapshot returns the current document as it would be exported, plus the
// dated backup file name.
func (s *RecordService) Snapshot(ctx context.Context) ([]byte, string, error) {
	rec, err := s.View(ctx)
	if err != nil {
		return nil, "", err
	}
	payload, err := domain.Encode(rec)
	if err != nil {
		return nil, "", err
	}
	return payload, fmt.Sprintf("eduvibe-backup-%s.json", s.cal.Key(s.clock.Now())), nil
}

func (s *RecordService) MarkExported(ctx context.Context) (time.Time, error) {
	now := s.clock.Now()
	_, err := s.Update(ctx, func(rec *domain.Record) error {
		at := now
		rec.Settings.LastExport = &at
		return nil
	})
	if err != nil {
		return time.Time{}, err
	}
	return now, nil
}

// Import replaces the whole record with the decoded backup.
func (s *RecordService) Import(ctx context.Context, raw []byte) (domain.Record, error) {
	res, err := domain.DecodeImport(raw)
	if err != nil {
		return domain.Record{}, err
	}
	s.logDecode("import", res)
	return s.Update(ctx, func(rec *domain.Record) error {
		*rec = res.Record
		return nil
	})
}

func (s *RecordService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear record: %w: %w", apperrors.ErrPersistence, err)
	}
	s.logger.Info("record cleared")
	return nil
}

// Size reports the stored document length in bytes, 0 when nothing is saved.
func (s *RecordService) Size(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := s.store.Load(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("load record: %w: %w", apperrors.ErrPersistence, err)
	}
	return len(raw), nil
}

func (s *RecordService) load(ctx context.Context) (domain.Record, error) {
	raw, err := s.store.Load(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.New(), nil
		}
		return domain.Record{}, fmt.Errorf("load record: %w: %w", apperrors.ErrPersistence, err)
	}
	res := domain.Decode(raw)
	s.logDecode("load", res)
	return res.Record, nil
}

func (s *RecordService) save(ctx context.Context, rec domain.Record) (domain.Record, error) {
	domain.Normalize(&rec)
	rec.Achievements = achievementdomain.Cache(achievementdomain.Evaluate(achievementdomain.MetricsOf(rec)))
	payload, err := domain.Encode(rec)
	if err != nil {
		return domain.Record{}, fmt.Errorf("save record: %w: %w", apperrors.ErrPersistence, err)
	}
	if err := s.store.Save(ctx, payload); err != nil {
		s.logger.Error("save record failed", zap.Error(err))
		return domain.Record{}, fmt.Errorf("save record: %w: %w", apperrors.ErrPersistence, err)
	}
	return rec, nil
}

func (s *RecordService) logDecode(op string, res domain.DecodeResult) {
	if len(res.Defaulted) > 0 {
		s.logger.Warn("record fields replaced by defaults", zap.String("op", op), zap.Strings("fields", res.Defaulted))
	}
	if res.SourceVersion != "" && res.SourceVersion != domain.SchemaVersion {
		s.logger.Warn("record version differs", zap.String("op", op), zap.String("found", res.SourceVersion), zap.String("current", domain.SchemaVersion))
	}
}
