package webhook

import (
	"context"

	"size-sync/feature/audit"
	"size-sync/feature/metafields"
	"size-sync/feature/sizechart"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Status values returned to the webhook caller.
const (
	StatusIgnored = "ignored"
	StatusOK      = "OK"
)

// Resolver looks a size up in the size chart.
type Resolver interface {
	Resolve(brand string, gender sizechart.Gender, size decimal.Decimal) (*sizechart.SizeMapping, bool)
}

// Syncer writes a mapping onto a variant.
type Syncer interface {
	Sync(ctx context.Context, variantRef string, mapping sizechart.SizeMapping) (*metafields.Result, error)
	DryRun() bool
}

// Summary describes what happened to one product event.
type Summary struct {
	Status          string           `json:"status"`
	ProductID       string           `json:"product_id,omitempty"`
	Gender          sizechart.Gender `json:"gender,omitempty"`
	Variants        int              `json:"variants"`
	VariantsMapped  int              `json:"variants_mapped"`
	SkippedVariants int              `json:"skipped_variants"`
	Unmatched       int              `json:"unmatched"`
	FailedVariants  int              `json:"failed_variants"`
}

// Service runs a product event through classification, resolution and synchronization.
type Service struct {
	resolver Resolver
	syncer   Syncer
	recorder audit.Recorder
	logger   *zap.Logger
}

// NewService creates a new webhook service. A nil recorder disables the audit trail.
func NewService(resolver Resolver, syncer Syncer, recorder audit.Recorder, logger *zap.Logger) *Service {
	if recorder == nil {
		recorder = audit.NopRecorder{}
	}
	return &Service{
		resolver: resolver,
		syncer:   syncer,
		recorder: recorder,
		logger:   logger,
	}
}

// Handle processes one product event. Variants are handled one at a time, in order;
// a failing variant is logged and counted and never stops the others.
func (s *Service) Handle(ctx context.Context, event *ProductEvent) Summary {
	l := s.logger.With(zap.String("product_id", event.ID.String()))
	if rid := rayIDFrom(ctx); rid != "" {
		l = l.With(zap.String("ray_id", rid))
	}

	summary := Summary{
		Status:    StatusIgnored,
		ProductID: event.ID.String(),
		Variants:  len(event.Variants),
	}

	l.Info("Product created event",
		zap.String("title", event.Title),
		zap.String("vendor", event.Vendor),
		zap.Strings("tags", event.Tags),
	)

	if !IsEligible(event.Tags) {
		l.Info("Product is not footwear, ignoring")
		return summary
	}

	gender, ok := Classify(event.Tags)
	if !ok {
		l.Info("Product has no gender tag, ignoring")
		return summary
	}
	summary.Gender = gender

	for _, variant := range event.Variants {
		label := variant.SizeLabel()
		vl := l.With(zap.String("variant_ref", variant.Ref()), zap.String("label", label))

		size, ok := sizechart.ParseLabel(label)
		if !ok {
			vl.Debug("Variant has no usable size, skipping")
			summary.SkippedVariants++
			continue
		}

		mapping, ok := s.resolver.Resolve(event.Vendor, gender, size)
		if !ok {
			vl.Info("No size chart match",
				zap.String("brand", event.Vendor),
				zap.String("size", size.String()),
			)
			summary.Unmatched++
			continue
		}

		summary.VariantsMapped++
		result, err := s.syncer.Sync(ctx, variant.Ref(), *mapping)
		if err != nil {
			summary.FailedVariants++
			vl.Error("Variant sync failed", zap.Error(err))
		}

		s.record(ctx, vl, event, variant, gender, size, mapping, result, err)
	}

	l.Info("Product event processed",
		zap.Int("variants", summary.Variants),
		zap.Int("variants_mapped", summary.VariantsMapped),
		zap.Int("skipped_variants", summary.SkippedVariants),
		zap.Int("unmatched", summary.Unmatched),
		zap.Int("failed_variants", summary.FailedVariants),
	)

	summary.Status = StatusOK
	return summary
}

func (s *Service) record(
	ctx context.Context,
	l *zap.Logger,
	event *ProductEvent,
	variant Variant,
	gender sizechart.Gender,
	size decimal.Decimal,
	mapping *sizechart.SizeMapping,
	result *metafields.Result,
	syncErr error,
) {
	rec := &audit.SyncRecord{
		ProductID:    event.ID.String(),
		VariantRef:   variant.Ref(),
		Brand:        event.Vendor,
		Gender:       string(gender),
		Size:         size.String(),
		ScaleMatched: string(mapping.ScaleMatched),
		DryRun:       s.syncer.DryRun(),
		RayID:        rayIDFrom(ctx),
	}
	if result != nil {
		rec.VariantID = result.VariantID
		rec.Created = result.Created
		rec.Updated = result.Updated
		rec.Unchanged = result.Unchanged
		rec.Skipped = result.Skipped
		rec.Failed = result.Failed
	}
	if syncErr != nil {
		rec.Error = syncErr.Error()
	}

	if err := s.recorder.Record(ctx, rec); err != nil {
		l.Warn("Failed to record sync audit", zap.Error(err))
	}
}

type rayIDKey struct{}

// WithRayID attaches a request id to ctx so that audit records can be correlated
// with request logs.
func WithRayID(ctx context.Context, rid string) context.Context {
	if rid == "" {
		return ctx
	}
	return context.WithValue(ctx, rayIDKey{}, rid)
}

func rayIDFrom(ctx context.Context) string {
	rid, _ := ctx.Value(rayIDKey{}).(string)
	return rid
}
