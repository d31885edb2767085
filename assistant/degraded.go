package assistant

import "strings"

// DefaultDegradedMarkers are substrings that identify a degraded external
// response: the service answered, but with an availability or quota notice
// instead of an actual answer. Matching is case-sensitive.
var DefaultDegradedMarkers = []string{
	"nu este disponibil",
	"nu este configurat",
	"Quota",
	"quota",
	"Rate Limit",
	"temporar indisponibil",
}

// DegradedPredicate reports whether an external answer should be treated as
// degraded and replaced with a locally generated one.
type DegradedPredicate func(answer string) bool

// MarkerPredicate builds a DegradedPredicate that fires when the answer
// contains any of the markers.
func MarkerPredicate(markers ...string) DegradedPredicate {
	return func(answer string) bool {
		for _, marker := range markers {
			if strings.Contains(answer, marker) {
				return true
			}
		}
		return false
	}
}
