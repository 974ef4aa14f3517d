// Package converter turns SubRip subtitle markup into plain dialogue text.
package converter

import (
	"regexp"
	"strings"
)

// Each pattern runs over the residue of the previous one, so they are
// applied as separate passes rather than one alternation.
//
// The cue-number class covers every rune strings.TrimSpace strips; anything
// narrower leaves "12\u00a0" behind as a bare "12" after trimming.
var (
	reCueNumber = regexp.MustCompile(`(?m)^[\s\v\x{85}\p{Z}]*\p{Nd}+[\s\v\x{85}\p{Z}]*$`)
	reTimestamp = regexp.MustCompile(`\d{2}:\d{2}:\d{2},\d{3} --> \d{2}:\d{2}:\d{2},\d{3}`)
	reTag       = regexp.MustCompile(`<[^>]+>`)
)

// Convert strips cue numbers, timestamp ranges and inline tags from raw SRT
// content and returns the remaining dialogue, one trimmed non-empty line per
// line, in input order.
func Convert(srt string) string {
	text := srt
	for {
		next := stripMarkup(text)
		if next == text {
			break
		}
		text = next
	}

	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}

	return strings.Join(kept, "\n")
}

// stripMarkup runs one round of the removal passes. Removing a tag can expose
// new markup ("<b>42</b>" leaves a bare number), so Convert repeats rounds
// until nothing changes.
func stripMarkup(text string) string {
	text = reCueNumber.ReplaceAllString(text, "")
	text = reTimestamp.ReplaceAllString(text, "")
	return reTag.ReplaceAllString(text, "")
}
