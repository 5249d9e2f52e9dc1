package metafields

import (
	"context"
	"errors"
	"fmt"

	"size-sync/core/shopify"
	"size-sync/feature/sizechart"

	"go.uber.org/zap"
)

// Store reads and writes variant attributes. *shopify.Client implements it.
type Store interface {
	ListVariantMetafields(ctx context.Context, variantID int64) ([]shopify.Metafield, error)
	CreateVariantMetafield(ctx context.Context, variantID int64, input shopify.MetafieldInput) (*shopify.Metafield, error)
	UpdateMetafield(ctx context.Context, metafieldID string, value string) (*shopify.Metafield, error)
}

// Options controls a Synchronizer.
type Options struct {
	// DryRun plans every action without issuing writes.
	DryRun bool
}

// Synchronizer makes a variant's size attributes match a resolved mapping.
type Synchronizer struct {
	store  Store
	logger *zap.Logger
	opts   Options
}

// NewSynchronizer creates a synchronizer backed by store.
func NewSynchronizer(store Store, logger *zap.Logger, opts Options) *Synchronizer {
	return &Synchronizer{store: store, logger: logger, opts: opts}
}

// DryRun reports whether writes are suppressed.
func (s *Synchronizer) DryRun() bool {
	return s.opts.DryRun
}

// Sync reads the variant's attributes once, plans every key and applies the writes in
// order. A failed write is recorded and the remaining keys are still processed; the
// returned error then joins every write failure. An invalid variant reference or a
// failed read aborts the variant before any write.
func (s *Synchronizer) Sync(ctx context.Context, variantRef string, mapping sizechart.SizeMapping) (*Result, error) {
	result := &Result{}

	variantID, err := shopify.ParseVariantID(variantRef)
	if err != nil {
		s.logger.Warn("Could not extract numeric variant id", zap.String("variant_ref", variantRef))
		return result, err
	}
	result.VariantID = variantID
	l := s.logger.With(zap.Int64("variant_id", variantID))

	existing, err := s.store.ListVariantMetafields(ctx, variantID)
	if err != nil {
		l.Error("Failed to read variant metafields", zap.Error(err))
		return result, fmt.Errorf("failed to read metafields of variant %d: %w", variantID, err)
	}

	actions := BuildPlan(DesiredFromMapping(mapping), existing)

	var errs []error
	for _, action := range actions {
		outcome := Outcome{Action: action}

		if action.Writes() && s.opts.DryRun {
			outcome.DryRun = true
		} else if action.Writes() {
			if err := s.apply(ctx, variantID, action); err != nil {
				outcome.Error = err.Error()
				errs = append(errs, fmt.Errorf("%s: %w", action.Key, err))
			}
		}

		result.record(outcome)
		fields := []zap.Field{
			zap.String("key", action.Key),
			zap.String("action", string(action.Type)),
			zap.String("value", action.Value),
		}
		switch {
		case outcome.Error != "":
			l.Error("Metafield write failed", append(fields, zap.String("error", outcome.Error))...)
		case outcome.DryRun:
			l.Info("Metafield write planned (dry run)", fields...)
		case action.Writes():
			l.Info("Metafield written", fields...)
		default:
			l.Debug("Metafield left as is", fields...)
		}
	}

	if len(errs) > 0 {
		return result, fmt.Errorf("failed to write %d metafield(s) of variant %d: %w", len(errs), variantID, errors.Join(errs...))
	}
	return result, nil
}

func (s *Synchronizer) apply(ctx context.Context, variantID int64, action Action) error {
	switch action.Type {
	case ActionCreate:
		_, err := s.store.CreateVariantMetafield(ctx, variantID, shopify.MetafieldInput{
			Namespace: Namespace,
			Key:       action.Key,
			Type:      shopify.TypeSingleLineText,
			Value:     action.Value,
		})
		return err
	case ActionUpdate:
		_, err := s.store.UpdateMetafield(ctx, action.MetafieldID, action.Value)
		return err
	default:
		return nil
	}
}
