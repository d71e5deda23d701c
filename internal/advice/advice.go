// Package advice maps item descriptions to disposal guidance.
package advice

import "strings"

// Rule pairs a lowercase keyword with its guidance. Rules are evaluated in
// definition order and the first keyword contained in the query wins, so the
// result for a fixed query never changes between calls.
type Rule struct {
	Keyword  string
	Guidance string
}

// Rules is the static sorting table. Keywords must stay lowercase.
var Rules = []Rule{
	{"pizza box", "Compost (if greasy) / Recycle (if clean)"},
	{"plastic bottle", "Recycle (Rinse first)"},
	{"banana peel", "Compost"},
	{"styrofoam", "Landfill (Avoid usage!)"},
	{"aluminum foil", "Recycle (Clean)"},
	{"batteries", "E-Waste Drop-off (Do not bin)"},
	{"coffee cup", "Landfill (Lined with plastic) / Lid is Recyclable"},
	{"glass jar", "Recycle"},
}

// DefaultGuidance is returned when no rule matches.
const DefaultGuidance = "Unknown item. General rule: When in doubt, throw it out (Landfill)."

// Lookup returns guidance for the described item. Matching is
// case-insensitive substring containment: "a used plastic bottle" matches
// the "plastic bottle" rule.
func Lookup(query string) string {
	query = strings.ToLower(strings.TrimSpace(query))
	for _, r := range Rules {
		if strings.Contains(query, r.Keyword) {
			return r.Guidance
		}
	}
	return DefaultGuidance
}
