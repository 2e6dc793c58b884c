package domain

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// SameParticipantSet reports whether a and b hold the same identifiers,
// ignoring order. Sets of different cardinality are never equal.
func SameParticipantSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	return lo.Every(a, b) && lo.Every(b, a)
}

// ParticipantKey is the canonical form of a participant set: ids sorted and comma joined.
func ParticipantKey(ids []string) string {
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}
