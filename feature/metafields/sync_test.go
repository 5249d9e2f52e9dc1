package metafields

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"size-sync/core/shopify"
	"size-sync/feature/sizechart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeStore keeps metafields per variant in memory.
type fakeStore struct {
	byVariant map[int64][]shopify.Metafield
	nextID    int
	reads     int
	creates   []string
	updates   []string
	listErr   error
	failKeys  map[string]bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{byVariant: make(map[int64][]shopify.Metafield), nextID: 100, failKeys: map[string]bool{}}
}

func (f *fakeStore) ListVariantMetafields(ctx context.Context, variantID int64) ([]shopify.Metafield, error) {
	f.reads++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]shopify.Metafield(nil), f.byVariant[variantID]...), nil
}

func (f *fakeStore) CreateVariantMetafield(ctx context.Context, variantID int64, input shopify.MetafieldInput) (*shopify.Metafield, error) {
	f.creates = append(f.creates, input.Key)
	if f.failKeys[input.Key] {
		return nil, errors.New("boom")
	}
	f.nextID++
	mf := shopify.Metafield{
		ID:        shopify.FlexString(fmt.Sprint(f.nextID)),
		Namespace: input.Namespace,
		Key:       input.Key,
		Value:     shopify.FlexString(input.Value),
		Type:      input.Type,
	}
	f.byVariant[variantID] = append(f.byVariant[variantID], mf)
	return &mf, nil
}

func (f *fakeStore) UpdateMetafield(ctx context.Context, metafieldID string, value string) (*shopify.Metafield, error) {
	f.updates = append(f.updates, metafieldID)
	for vid, list := range f.byVariant {
		for i := range list {
			if list[i].ID.String() == metafieldID {
				if f.failKeys[list[i].Key] {
					return nil, errors.New("boom")
				}
				f.byVariant[vid][i].Value = shopify.FlexString(value)
				return &f.byVariant[vid][i], nil
			}
		}
	}
	return nil, errors.New("not found")
}

var fullMapping = sizechart.SizeMapping{
	ScaleMatched: sizechart.ScaleUS,
	US:           "9.5",
	USW:          "11",
	UK:           "8.5",
	EUR:          "43",
	CM:           "27.5",
}

func TestSyncCreatesAllKeysInOrder(t *testing.T) {
	store := newFakeStore()
	sync := NewSynchronizer(store, zap.NewNop(), Options{})

	result, err := sync.Sync(context.Background(), "gid://shopify/ProductVariant/555", fullMapping)
	require.NoError(t, err)

	assert.Equal(t, int64(555), result.VariantID)
	assert.Equal(t, 5, result.Created)
	assert.Equal(t, 1, store.reads)
	assert.Equal(t, Keys, store.creates)
	require.Len(t, result.Outcomes, 5)
	for i, o := range result.Outcomes {
		assert.Equal(t, Keys[i], o.Key)
		assert.Equal(t, ActionCreate, o.Type)
	}
}

func TestSyncIsIdempotent(t *testing.T) {
	store := newFakeStore()
	sync := NewSynchronizer(store, zap.NewNop(), Options{})

	_, err := sync.Sync(context.Background(), "555", fullMapping)
	require.NoError(t, err)
	writes := len(store.creates) + len(store.updates)

	result, err := sync.Sync(context.Background(), "555", fullMapping)
	require.NoError(t, err)
	assert.Equal(t, 5, result.Unchanged)
	assert.Equal(t, 0, result.Writes())
	assert.Equal(t, writes, len(store.creates)+len(store.updates))
}

func TestSyncUpdatesOnlyChangedKeys(t *testing.T) {
	store := newFakeStore()
	store.byVariant[7] = []shopify.Metafield{
		{ID: "11", Namespace: "custom", Key: KeyUS, Value: "9.5"},
		{ID: "12", Namespace: "custom", Key: KeyEUR, Value: "42.5"},
		{ID: "13", Namespace: "other", Key: KeyUK, Value: "8.5"},
	}
	sync := NewSynchronizer(store, zap.NewNop(), Options{})

	result, err := sync.Sync(context.Background(), "gid://shopify/ProductVariant/7", fullMapping)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Unchanged)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 3, result.Created)
	assert.Equal(t, []string{"12"}, store.updates)
	assert.Equal(t, []string{KeyUSW, KeyUK, KeyCM}, store.creates)
}

func TestSyncNeverWritesEmptyValues(t *testing.T) {
	store := newFakeStore()
	store.byVariant[7] = []shopify.Metafield{
		{ID: "11", Namespace: "custom", Key: KeyUSW, Value: "stale"},
	}
	sync := NewSynchronizer(store, zap.NewNop(), Options{})

	mapping := sizechart.SizeMapping{US: "10", USW: "", UK: " ", EUR: "44", CM: ""}
	result, err := sync.Sync(context.Background(), "7", mapping)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Skipped)
	assert.Equal(t, 2, result.Created)
	assert.Empty(t, store.updates)
	assert.Equal(t, []string{KeyUS, KeyEUR}, store.creates)
}

func TestSyncInvalidVariantRef(t *testing.T) {
	store := newFakeStore()
	sync := NewSynchronizer(store, zap.NewNop(), Options{})

	for _, ref := range []string{"", "gid://shopify/Product/123", "abc"} {
		_, err := sync.Sync(context.Background(), ref, fullMapping)
		assert.ErrorIs(t, err, shopify.ErrInvalidIdentifier, ref)
	}
	assert.Equal(t, 0, store.reads)
}

func TestSyncReadFailureAborts(t *testing.T) {
	store := newFakeStore()
	store.listErr = &shopify.StatusError{StatusCode: 500, Status: "500 Internal Server Error"}
	sync := NewSynchronizer(store, zap.NewNop(), Options{})

	result, err := sync.Sync(context.Background(), "7", fullMapping)
	require.Error(t, err)

	var statusErr *shopify.StatusError
	assert.True(t, errors.As(err, &statusErr))
	assert.Empty(t, result.Outcomes)
	assert.Empty(t, store.creates)
}

func TestSyncContinuesAfterFailedWrite(t *testing.T) {
	store := newFakeStore()
	store.failKeys[KeyUSW] = true
	sync := NewSynchronizer(store, zap.NewNop(), Options{})

	result, err := sync.Sync(context.Background(), "7", fullMapping)
	require.Error(t, err)
	assert.Contains(t, err.Error(), KeyUSW)

	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 4, result.Created)
	assert.Equal(t, Keys, store.creates)
	assert.Equal(t, "boom", result.Outcomes[1].Error)
}

func TestSyncDryRun(t *testing.T) {
	store := newFakeStore()
	store.byVariant[7] = []shopify.Metafield{
		{ID: "11", Namespace: "custom", Key: KeyUS, Value: "9"},
	}
	sync := NewSynchronizer(store, zap.NewNop(), Options{DryRun: true})
	assert.True(t, sync.DryRun())

	result, err := sync.Sync(context.Background(), "7", fullMapping)
	require.NoError(t, err)

	assert.Empty(t, store.creates)
	assert.Empty(t, store.updates)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 4, result.Created)
	for _, o := range result.Outcomes {
		assert.True(t, o.DryRun)
	}
}
