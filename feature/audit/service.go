package audit

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// DefaultLimit is the number of records listed when no limit is given.
	DefaultLimit = 50
	// MaxLimit caps a single listing.
	MaxLimit = 500
)

// ErrUnavailable is returned when no database is configured.
var ErrUnavailable = errors.New("audit database is not configured")

// Recorder persists sync records.
type Recorder interface {
	Record(ctx context.Context, rec *SyncRecord) error
}

// NopRecorder drops every record.
type NopRecorder struct{}

func (NopRecorder) Record(ctx context.Context, rec *SyncRecord) error {
	return nil
}

// Service stores and lists sync records. A nil database disables it.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new audit service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Enabled reports whether a database is attached.
func (s *Service) Enabled() bool {
	return s.db != nil
}

// Migrate creates or updates the sync_records table.
func (s *Service) Migrate() error {
	if s.db == nil {
		return ErrUnavailable
	}
	if err := s.db.AutoMigrate(&SyncRecord{}); err != nil {
		return fmt.Errorf("failed to migrate audit table: %w", err)
	}
	return nil
}

// Record inserts rec. Without a database it is a no-op.
func (s *Service) Record(ctx context.Context, rec *SyncRecord) error {
	if s.db == nil {
		return nil
	}
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("failed to record sync of variant %d: %w", rec.VariantID, err)
	}
	return nil
}

// Recent lists the latest records, newest first. limit is clamped to [1, MaxLimit].
func (s *Service) Recent(ctx context.Context, limit int) ([]SyncRecord, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	var records []SyncRecord
	if err := s.db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list sync records: %w", err)
	}
	return records, nil
}
