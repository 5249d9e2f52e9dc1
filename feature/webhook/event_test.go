package webhook

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeProductEvent(t *testing.T) {
	payload := `{
		"id": 788032119674292922,
		"title": "Air Max",
		"vendor": "Nike",
		"tags": "footwear, uomo,  sale",
		"variants": [
			{"id": 642667041472713922, "admin_graphql_api_id": "gid://shopify/ProductVariant/642667041472713922", "option1": "9.5"},
			{"id": null, "admin_graphql_api_id": "gid://shopify/ProductVariant/7", "options": [{"name": "Size", "value": "10 US"}]}
		]
	}`

	var event ProductEvent
	require.NoError(t, json.Unmarshal([]byte(payload), &event))

	assert.Equal(t, "788032119674292922", event.ID.String())
	assert.Equal(t, Tags{"footwear", "uomo", "sale"}, event.Tags)
	require.Len(t, event.Variants, 2)

	assert.Equal(t, "642667041472713922", event.Variants[0].Ref())
	assert.Equal(t, "9.5", event.Variants[0].SizeLabel())
	assert.Equal(t, "gid://shopify/ProductVariant/7", event.Variants[1].Ref())
	assert.Equal(t, "10 US", event.Variants[1].SizeLabel())
}

func TestDecodeTags(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Tags
		wantErr bool
	}{
		{"array", `["footwear","donna"]`, Tags{"footwear", "donna"}, false},
		{"string", `"footwear,donna"`, Tags{"footwear", "donna"}, false},
		{"empty string", `""`, nil, false},
		{"null", `null`, nil, false},
		{"number", `12`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tags Tags
			err := json.Unmarshal([]byte(tt.in), &tags)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, tags)
		})
	}
}

func TestVariantLabelFallback(t *testing.T) {
	v := Variant{Option1: "42", Options: []VariantOption{{Value: ""}}}
	assert.Equal(t, "42", v.SizeLabel())

	assert.Equal(t, "", Variant{}.SizeLabel())
	assert.Equal(t, "", Variant{}.Ref())
}
