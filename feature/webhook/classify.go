package webhook

import (
	"slices"
	"strings"

	"size-sync/feature/sizechart"
)

// FootwearTag marks products handled by the sync. The match is exact and case-sensitive.
const FootwearTag = "footwear"

// IsEligible reports whether the product carries the footwear tag.
func IsEligible(tags []string) bool {
	return slices.Contains(tags, FootwearTag)
}

// Classify infers the gender category from the tags, compared case-insensitively.
// Male tags take precedence when both are present.
func Classify(tags []string) (sizechart.Gender, bool) {
	lower := make([]string, len(tags))
	for i, tag := range tags {
		lower[i] = strings.ToLower(tag)
	}

	switch {
	case slices.Contains(lower, "uomo") || slices.Contains(lower, "man"):
		return sizechart.GenderMale, true
	case slices.Contains(lower, "donna") || slices.Contains(lower, "woman"):
		return sizechart.GenderFemale, true
	default:
		return "", false
	}
}
