package metafields

import (
	"strings"

	"size-sync/core/shopify"
)

// BuildPlan decides, per desired key and in order, what to do given the attributes
// already stored on the variant. Only attributes in Namespace are considered.
func BuildPlan(desired []Desired, existing []shopify.Metafield) []Action {
	current := make(map[string]shopify.Metafield, len(existing))
	for _, mf := range existing {
		if mf.Namespace != Namespace {
			continue
		}
		if _, seen := current[mf.Key]; !seen {
			current[mf.Key] = mf
		}
	}

	actions := make([]Action, 0, len(desired))
	for _, d := range desired {
		action := Action{Key: d.Key, Value: d.Value}

		if strings.TrimSpace(d.Value) == "" {
			action.Type = ActionSkipEmpty
			actions = append(actions, action)
			continue
		}

		mf, ok := current[d.Key]
		switch {
		case !ok:
			action.Type = ActionCreate
		case mf.Value.String() == d.Value:
			action.Type = ActionUnchanged
			action.Current = mf.Value.String()
		default:
			action.Type = ActionUpdate
			action.Current = mf.Value.String()
			action.MetafieldID = mf.ID.String()
		}
		actions = append(actions, action)
	}
	return actions
}
