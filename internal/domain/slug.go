package domain

import (
	"regexp"
	"strings"
)

var (
	nonSlugChars    = regexp.MustCompile(`[^\w\s-]`)
	whitespaceRuns  = regexp.MustCompile(`\s+`)
	hyphenRuns      = regexp.MustCompile(`-+`)
	nonSpeakerChars = regexp.MustCompile(`[^\w-]`)
)

// SlugifyTitle derives a session identifier from its title: lowercase,
// characters outside letters/digits/underscore/whitespace/hyphen stripped,
// whitespace runs collapsed to a single hyphen, hyphen runs collapsed to one.
// Idempotent, so a slug fed back in comes out unchanged. Two titles that
// slugify identically collide; the extractor lets the last row win.
func SlugifyTitle(title string) string {
	s := strings.ToLower(title)
	s = nonSlugChars.ReplaceAllString(s, "")
	s = whitespaceRuns.ReplaceAllString(s, "-")
	return hyphenRuns.ReplaceAllString(s, "-")
}

// SpeakerSlug derives a speaker identifier from first and last name, joined
// by a hyphen. Unlike SlugifyTitle, whitespace is removed outright rather
// than hyphenated: ("Ann", "van Lee") becomes "ann-vanlee".
func SpeakerSlug(firstName, lastName string) string {
	s := strings.ToLower(firstName + "-" + lastName)
	return nonSpeakerChars.ReplaceAllString(s, "")
}
