package itinerary

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// NormalizeName folds a display name into its lookup key: NFC composed,
// surrounding space trimmed, inner runs of space collapsed and case folded.
// "  Élodie   MARTIN " and "élodie martin" share a key.
func NormalizeName(name string) string {
	composed := norm.NFC.String(name)
	collapsed := strings.Join(strings.Fields(composed), " ")
	// a Caser keeps state, so each call gets its own
	return cases.Fold().String(collapsed)
}
