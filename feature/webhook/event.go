package webhook

import (
	"encoding/json"
	"fmt"
	"strings"

	"size-sync/core/shopify"
)

// ProductEvent is the product creation payload. Unknown fields are ignored and
// missing ones decode to their zero value.
type ProductEvent struct {
	ID       shopify.FlexString `json:"id"`
	Title    string             `json:"title"`
	Vendor   string             `json:"vendor"`
	Tags     Tags               `json:"tags"`
	Variants []Variant          `json:"variants"`
}

// Variant is one purchasable variant of the product.
type Variant struct {
	ID                shopify.FlexString `json:"id"`
	AdminGraphqlAPIID string             `json:"admin_graphql_api_id"`
	Title             string             `json:"title"`
	Option1           shopify.FlexString `json:"option1"`
	Options           []VariantOption    `json:"options"`
}

// VariantOption is a selected option value.
type VariantOption struct {
	Name  string             `json:"name"`
	Value shopify.FlexString `json:"value"`
}

// Ref returns the reference used to address the variant's attributes: the id when
// present, otherwise the admin GraphQL id.
func (v Variant) Ref() string {
	if ref := strings.TrimSpace(v.ID.String()); ref != "" {
		return ref
	}
	return strings.TrimSpace(v.AdminGraphqlAPIID)
}

// SizeLabel returns the raw size label: the first option value, falling back to option1.
func (v Variant) SizeLabel() string {
	if len(v.Options) > 0 && v.Options[0].Value != "" {
		return v.Options[0].Value.String()
	}
	return v.Option1.String()
}

// Tags decodes either a JSON array of strings or a comma-separated string.
type Tags []string

func (t *Tags) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	switch {
	case trimmed == "null":
		*t = nil
		return nil
	case strings.HasPrefix(trimmed, "["):
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return fmt.Errorf("tags: %w", err)
		}
		*t = list
		return nil
	case strings.HasPrefix(trimmed, `"`):
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = splitTags(s)
		return nil
	default:
		return fmt.Errorf("tags: unsupported value %s", trimmed)
	}
}

func splitTags(s string) []string {
	var tags []string
	for _, part := range strings.Split(s, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
