// Package textclean removes the artifacts the upstream model leaves in
// generated answers: inline citation markers of the form ##<digits>$$ and a
// trailing self-repetition the model sometimes produces at the end of a
// completion.
package textclean

import "regexp"

// DefaultMinRun is the smallest duplicated suffix length worth collapsing.
const DefaultMinRun = 5

var markerPattern = regexp.MustCompile(`##\d+\$\$`)

// StripMarkers removes every ##<digits>$$ citation marker wherever it
// appears, leaving the surrounding text untouched.
func StripMarkers(text string) string {
	return markerPattern.ReplaceAllString(text, "")
}

// CollapseDuplicateTail removes a trailing duplicated run from text.
// Candidate run lengths are scanned from the largest possible (half the text)
// down to minRun, and the first match wins, so the largest duplicated suffix
// is removed. At most one suffix is ever removed; the scan is deliberately
// not recursive, even when the remaining text still ends in a repeat.
func CollapseDuplicateTail(text string, minRun int) string {
	runes := []rune(text)
	n := len(runes)
	if n < 2*minRun {
		return text
	}
	for l := n / 2; l >= minRun; l-- {
		if string(runes[n-2*l:n-l]) == string(runes[n-l:]) {
			return string(runes[:n-l])
		}
	}
	return text
}

// Finalize is the one-shot cleanup applied once when an answer finishes
// streaming: markers first, then the duplicate-tail collapse on the stripped
// text. Per-delta cleanup during streaming uses StripMarkers alone.
func Finalize(text string) string {
	return CollapseDuplicateTail(StripMarkers(text), DefaultMinRun)
}
