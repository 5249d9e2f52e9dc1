package shopify

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// TypeSingleLineText is the metafield type used for size values.
const TypeSingleLineText = "single_line_text_field"

// Metafield is a namespaced key/value persisted on a resource.
type Metafield struct {
	ID        FlexString `json:"id"`
	Namespace string     `json:"namespace"`
	Key       string     `json:"key"`
	Value     FlexString `json:"value"`
	Type      string     `json:"type,omitempty"`
}

// MetafieldInput describes a metafield to create.
type MetafieldInput struct {
	Namespace string `json:"namespace"`
	Key       string `json:"key"`
	Type      string `json:"type"`
	Value     string `json:"value"`
}

type metafieldList struct {
	Metafields []Metafield `json:"metafields"`
}

type metafieldEnvelope struct {
	Metafield *Metafield `json:"metafield"`
}

// ListVariantMetafields returns every metafield stored on a variant.
func (c *Client) ListVariantMetafields(ctx context.Context, variantID int64) ([]Metafield, error) {
	var out metafieldList
	path := fmt.Sprintf("/variants/%d/metafields.json", variantID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Metafields, nil
}

// CreateVariantMetafield creates a metafield on a variant.
func (c *Client) CreateVariantMetafield(ctx context.Context, variantID int64, input MetafieldInput) (*Metafield, error) {
	if strings.TrimSpace(input.Namespace) == "" || strings.TrimSpace(input.Key) == "" {
		return nil, fmt.Errorf("shopify metafield namespace and key are required")
	}
	if input.Type == "" {
		input.Type = TypeSingleLineText
	}

	var out metafieldEnvelope
	path := fmt.Sprintf("/variants/%d/metafields.json", variantID)
	if err := c.do(ctx, http.MethodPost, path, map[string]any{"metafield": input}, &out); err != nil {
		return nil, err
	}
	return out.Metafield, nil
}

// UpdateMetafield replaces the value of an existing metafield.
func (c *Client) UpdateMetafield(ctx context.Context, metafieldID string, value string) (*Metafield, error) {
	metafieldID = strings.TrimSpace(metafieldID)
	if metafieldID == "" {
		return nil, fmt.Errorf("shopify metafield id is required")
	}

	payload := map[string]any{
		"metafield": map[string]any{
			"id":    jsonID(metafieldID),
			"value": value,
		},
	}

	var out metafieldEnvelope
	path := fmt.Sprintf("/metafields/%s.json", metafieldID)
	if err := c.do(ctx, http.MethodPut, path, payload, &out); err != nil {
		return nil, err
	}
	return out.Metafield, nil
}
