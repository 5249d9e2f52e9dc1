package sizechart

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Service owns the current chart snapshot and swaps it atomically on reload.
type Service struct {
	source Source
	logger *zap.Logger
	table  atomic.Pointer[Table]
	sf     singleflight.Group
}

// NewService creates a size chart service. The chart is empty until Reload succeeds.
func NewService(source Source, logger *zap.Logger) *Service {
	s := &Service{
		source: source,
		logger: logger,
	}
	s.table.Store(NewTable(nil))
	return s
}

// NewStaticService serves a fixed set of rows.
func NewStaticService(rows []ReferenceRow, logger *zap.Logger) *Service {
	s := NewService(nil, logger)
	s.table.Store(NewTable(rows))
	return s
}

// Table returns the current snapshot.
func (s *Service) Table() *Table {
	return s.table.Load()
}

// Resolve looks size up in the current snapshot.
func (s *Service) Resolve(brand string, gender Gender, size decimal.Decimal) (*SizeMapping, bool) {
	mapping, ok := s.Table().Resolve(brand, gender, size)
	if ok {
		s.logger.Debug("Size chart match",
			zap.String("brand", brand),
			zap.String("gender", string(gender)),
			zap.String("size", size.String()),
			zap.String("scale", string(mapping.ScaleMatched)),
		)
	} else {
		s.logger.Debug("No size chart match",
			zap.String("brand", brand),
			zap.String("gender", string(gender)),
			zap.String("size", size.String()),
		)
	}
	return mapping, ok
}

// Reload re-reads the source and publishes a new snapshot. Concurrent calls share a
// single read. The previous snapshot stays in place when loading fails.
func (s *Service) Reload(ctx context.Context) (int, error) {
	if s.source == nil {
		return s.Table().Len(), nil
	}

	v, err, _ := s.sf.Do("reload", func() (any, error) {
		rc, err := s.source.Open(ctx)
		if err != nil {
			return nil, err
		}
		defer rc.Close()

		rows, err := ParseCSV(rc)
		if err != nil {
			return nil, fmt.Errorf("failed to parse size chart from %s: %w", s.source, err)
		}

		table := NewTable(rows)
		s.table.Store(table)
		s.logger.Info("Size chart loaded",
			zap.String("source", s.source.String()),
			zap.Int("rows", table.Len()),
			zap.Int("brands", table.Brands()),
		)
		return table.Len(), nil
	})
	if err != nil {
		return 0, err
	}
	return v.(int), nil
}
