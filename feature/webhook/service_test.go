package webhook

import (
	"context"
	"errors"
	"testing"

	"size-sync/core/shopify"
	"size-sync/feature/audit"
	"size-sync/feature/metafields"
	"size-sync/feature/sizechart"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type resolveCall struct {
	brand  string
	gender sizechart.Gender
	size   string
}

type fakeResolver struct {
	calls   []resolveCall
	mapping *sizechart.SizeMapping
}

func (f *fakeResolver) Resolve(brand string, gender sizechart.Gender, size decimal.Decimal) (*sizechart.SizeMapping, bool) {
	f.calls = append(f.calls, resolveCall{brand, gender, size.String()})
	if f.mapping == nil {
		return nil, false
	}
	return f.mapping, true
}

type fakeSyncer struct {
	refs []string
	fail map[string]bool
}

func (f *fakeSyncer) Sync(ctx context.Context, ref string, mapping sizechart.SizeMapping) (*metafields.Result, error) {
	f.refs = append(f.refs, ref)
	if f.fail[ref] {
		return &metafields.Result{Failed: 1}, errors.New("write failed")
	}
	return &metafields.Result{VariantID: 1, Created: 4, Skipped: 1}, nil
}

func (f *fakeSyncer) DryRun() bool { return false }

type fakeRecorder struct {
	records []*audit.SyncRecord
	err     error
}

func (f *fakeRecorder) Record(ctx context.Context, rec *audit.SyncRecord) error {
	f.records = append(f.records, rec)
	return f.err
}

func variant(ref, label string) Variant {
	return Variant{ID: "", AdminGraphqlAPIID: ref, Options: []VariantOption{{Value: shopify.FlexString(label)}}}
}

func TestHandleIgnoresIneligibleProducts(t *testing.T) {
	resolver := &fakeResolver{mapping: &sizechart.SizeMapping{US: "9"}}
	syncer := &fakeSyncer{}
	svc := NewService(resolver, syncer, nil, zap.NewNop())

	for _, tags := range []Tags{{"uomo"}, {"Footwear", "uomo"}, {"footwear"}, nil} {
		summary := svc.Handle(context.Background(), &ProductEvent{
			Vendor:   "Nike",
			Tags:     tags,
			Variants: []Variant{variant("111", "9")},
		})
		assert.Equal(t, StatusIgnored, summary.Status)
	}
	assert.Empty(t, resolver.calls)
	assert.Empty(t, syncer.refs)
}

func TestHandleVariants(t *testing.T) {
	resolver := &fakeResolver{mapping: &sizechart.SizeMapping{ScaleMatched: sizechart.ScaleUSW, US: "9"}}
	syncer := &fakeSyncer{fail: map[string]bool{"333": true}}
	recorder := &fakeRecorder{err: errors.New("db down")}
	svc := NewService(resolver, syncer, recorder, zap.NewNop())

	ctx := WithRayID(context.Background(), "ray-1")
	summary := svc.Handle(ctx, &ProductEvent{
		ID:     "42",
		Vendor: "Nike",
		Tags:   Tags{"footwear", "Donna"},
		Variants: []Variant{
			variant("111", "US 9.5"),
			variant("222", "0"),
			variant("333", "10"),
			variant("444", "One Size"),
		},
	})

	assert.Equal(t, StatusOK, summary.Status)
	assert.Equal(t, sizechart.GenderFemale, summary.Gender)
	assert.Equal(t, 4, summary.Variants)
	assert.Equal(t, 2, summary.VariantsMapped)
	assert.Equal(t, 2, summary.SkippedVariants)
	assert.Equal(t, 1, summary.FailedVariants)

	assert.Equal(t, []resolveCall{
		{"Nike", sizechart.GenderFemale, "9.5"},
		{"Nike", sizechart.GenderFemale, "10"},
	}, resolver.calls)
	assert.Equal(t, []string{"111", "333"}, syncer.refs)

	require.Len(t, recorder.records, 2)
	assert.Equal(t, "42", recorder.records[0].ProductID)
	assert.Equal(t, "USW", recorder.records[0].ScaleMatched)
	assert.Equal(t, 4, recorder.records[0].Created)
	assert.Equal(t, "ray-1", recorder.records[0].RayID)
	assert.Equal(t, "write failed", recorder.records[1].Error)
}

func TestHandleUnmatched(t *testing.T) {
	resolver := &fakeResolver{}
	syncer := &fakeSyncer{}
	svc := NewService(resolver, syncer, nil, zap.NewNop())

	summary := svc.Handle(context.Background(), &ProductEvent{
		Vendor:   "Unknown",
		Tags:     Tags{"footwear", "man"},
		Variants: []Variant{variant("111", "9"), variant("222", "10")},
	})

	assert.Equal(t, StatusOK, summary.Status)
	assert.Equal(t, 2, summary.Unmatched)
	assert.Equal(t, 0, summary.VariantsMapped)
	assert.Empty(t, syncer.refs)
}
