package metafields

import (
	"size-sync/feature/sizechart"
)

// Namespace is the metafield namespace holding the size attributes.
const Namespace = "custom"

// Attribute keys, in the order they are synchronized.
const (
	KeyUS  = "us_size"
	KeyUSW = "usw_size"
	KeyUK  = "uk_size"
	KeyEUR = "eur_size"
	KeyCM  = "cm_size"
)

// Keys lists the attribute keys in synchronization order.
var Keys = []string{KeyUS, KeyUSW, KeyUK, KeyEUR, KeyCM}

// Desired is one attribute value the variant should carry.
type Desired struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// DesiredFromMapping lists the attribute values of m in key order.
func DesiredFromMapping(m sizechart.SizeMapping) []Desired {
	return []Desired{
		{Key: KeyUS, Value: m.US},
		{Key: KeyUSW, Value: m.USW},
		{Key: KeyUK, Value: m.UK},
		{Key: KeyEUR, Value: m.EUR},
		{Key: KeyCM, Value: m.CM},
	}
}

// ActionType is the decision taken for one attribute key.
type ActionType string

const (
	// ActionCreate creates a missing attribute.
	ActionCreate ActionType = "create"
	// ActionUpdate replaces a stored value that differs.
	ActionUpdate ActionType = "update"
	// ActionUnchanged leaves an attribute that already holds the value.
	ActionUnchanged ActionType = "unchanged"
	// ActionSkipEmpty leaves the attribute alone because the desired value is empty.
	ActionSkipEmpty ActionType = "skip_empty"
)

// Action is the planned operation for one attribute key.
type Action struct {
	Type ActionType `json:"type"`
	Key  string     `json:"key"`

	// Value is the desired value.
	Value string `json:"value,omitempty"`

	// Current is the stored value, for update and unchanged actions.
	Current string `json:"current,omitempty"`

	// MetafieldID addresses the stored attribute for update actions.
	MetafieldID string `json:"metafield_id,omitempty"`
}

// Writes reports whether the action issues a remote write.
func (a Action) Writes() bool {
	return a.Type == ActionCreate || a.Type == ActionUpdate
}

// Outcome is the result of one action.
type Outcome struct {
	Action
	// Error is set when the write failed.
	Error string `json:"error,omitempty"`
	// DryRun is set when the write was planned but not issued.
	DryRun bool `json:"dry_run,omitempty"`
}

// Result aggregates the outcomes of one variant synchronization.
type Result struct {
	VariantID int64     `json:"variant_id"`
	Created   int       `json:"created"`
	Updated   int       `json:"updated"`
	Unchanged int       `json:"unchanged"`
	Skipped   int       `json:"skipped"`
	Failed    int       `json:"failed"`
	Outcomes  []Outcome `json:"outcomes"`
}

// Writes returns the number of remote writes issued successfully.
func (r *Result) Writes() int {
	return r.Created + r.Updated
}

func (r *Result) record(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
	if o.Error != "" {
		r.Failed++
		return
	}
	switch o.Type {
	case ActionCreate:
		r.Created++
	case ActionUpdate:
		r.Updated++
	case ActionUnchanged:
		r.Unchanged++
	case ActionSkipEmpty:
		r.Skipped++
	}
}
