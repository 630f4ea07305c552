// Package catalog holds the static lookup tables served by the API.
package catalog

// AllInteractionTypes is the filter value that matches every type.
const AllInteractionTypes = "all"

// Option is a value/label pair rendered in filter dropdowns.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var interactionTypes = []Option{
	{Value: AllInteractionTypes, Label: "All Types"},
	{Value: "meeting", Label: "Meeting"},
	{Value: "email", Label: "Email"},
	{Value: "phone", Label: "Phone Call"},
	{Value: "note", Label: "Note"},
	{Value: "referral", Label: "Referral"},
}

// InteractionTypes returns the filter options, "all" first. The slice is a copy.
func InteractionTypes() []Option {
	out := make([]Option, len(interactionTypes))
	copy(out, interactionTypes)
	return out
}

// IsInteractionType reports whether v can be stored on an interaction.
// The "all" filter value is not a storable type.
func IsInteractionType(v string) bool {
	if v == AllInteractionTypes {
		return false
	}
	for _, o := range interactionTypes {
		if o.Value == v {
			return true
		}
	}
	return false
}
