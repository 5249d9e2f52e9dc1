package metafields

import (
	"testing"

	"size-sync/core/shopify"
	"size-sync/feature/sizechart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPlan(t *testing.T) {
	existing := []shopify.Metafield{
		{ID: "1", Namespace: "custom", Key: KeyUS, Value: "9.5"},
		{ID: "2", Namespace: "custom", Key: KeyUSW, Value: "10"},
		{ID: "3", Namespace: "custom", Key: KeyCM, Value: "27"},
		{ID: "4", Namespace: "global", Key: KeyUK, Value: "8.5"},
	}
	desired := DesiredFromMapping(sizechart.SizeMapping{
		US: "9.5", USW: "11", UK: "8.5", EUR: "", CM: "27",
	})

	actions := BuildPlan(desired, existing)
	require.Len(t, actions, 5)

	assert.Equal(t, ActionUnchanged, actions[0].Type)
	assert.Equal(t, ActionUpdate, actions[1].Type)
	assert.Equal(t, "2", actions[1].MetafieldID)
	assert.Equal(t, "10", actions[1].Current)
	assert.Equal(t, ActionCreate, actions[2].Type)
	assert.Equal(t, ActionSkipEmpty, actions[3].Type)
	assert.Equal(t, ActionUnchanged, actions[4].Type)
}

func TestBuildPlanComparesText(t *testing.T) {
	existing := []shopify.Metafield{
		{ID: "1", Namespace: "custom", Key: KeyUS, Value: "9.50"},
	}
	actions := BuildPlan([]Desired{{Key: KeyUS, Value: "9.5"}}, existing)

	require.Len(t, actions, 1)
	assert.Equal(t, ActionUpdate, actions[0].Type)
}

func TestBuildPlanFirstStoredAttributeWins(t *testing.T) {
	existing := []shopify.Metafield{
		{ID: "1", Namespace: "custom", Key: KeyUS, Value: "9"},
		{ID: "2", Namespace: "custom", Key: KeyUS, Value: "9.5"},
	}
	actions := BuildPlan([]Desired{{Key: KeyUS, Value: "9.5"}}, existing)

	require.Len(t, actions, 1)
	assert.Equal(t, ActionUpdate, actions[0].Type)
	assert.Equal(t, "1", actions[0].MetafieldID)
}
