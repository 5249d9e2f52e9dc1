package shopify

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	variantGIDPattern = regexp.MustCompile(`/ProductVariant/(\d+)`)
	digitsPattern     = regexp.MustCompile(`^\d+$`)
)

// ParseVariantID extracts the numeric id from a variant reference.
// Both gid://shopify/ProductVariant/<id> and a bare numeric id are accepted.
func ParseVariantID(ref string) (int64, error) {
	ref = strings.TrimSpace(ref)
	raw := ""
	if m := variantGIDPattern.FindStringSubmatch(ref); m != nil {
		raw = m[1]
	} else if digitsPattern.MatchString(ref) {
		raw = ref
	}
	if raw == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIdentifier, ref)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIdentifier, ref)
	}
	return id, nil
}

// FlexString decodes a JSON string, number or boolean into its literal text.
// The platform sends ids as numbers in REST payloads and as strings elsewhere.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return fmt.Errorf("shopify: cannot decode %s into a scalar", trimmed)
	}
	*f = FlexString(trimmed)
	return nil
}

func (f FlexString) String() string {
	return string(f)
}

// jsonID renders a numeric id as a JSON number and anything else as a string.
func jsonID(id string) any {
	if digitsPattern.MatchString(id) {
		return json.Number(id)
	}
	return id
}
