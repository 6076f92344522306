package validation

import (
	"regexp"
	"strings"
)

// maxSimilarity is the ratio above which a password is rejected as too
// similar to a user attribute. Matches Django's default threshold.
const maxSimilarity = 0.7

var wordSplitPattern = regexp.MustCompile(`\W+`)

// tooSimilar reports whether password is too close to the given attribute
// value. The value is compared both whole and split into word parts, so a
// password matching the local part of an email address is still caught.
func tooSimilar(password, value string) bool {
	if password == "" || value == "" {
		return false
	}
	password = strings.ToLower(password)
	value = strings.ToLower(value)

	parts := wordSplitPattern.Split(value, -1)
	parts = append(parts, value)
	for _, part := range parts {
		if part == "" {
			continue
		}
		if similarityRatio(password, part) >= maxSimilarity {
			return true
		}
	}
	return false
}

// similarityRatio is difflib.SequenceMatcher.quick_ratio: twice the number
// of characters the two strings have in common (counting multiplicity)
// divided by the total length. Order-insensitive, which makes the check a
// strict upper bound on the true sequence ratio.
func similarityRatio(a, b string) float64 {
	if len(a)+len(b) == 0 {
		return 1.0
	}

	counts := make(map[rune]int)
	lb := 0
	for _, r := range b {
		counts[r]++
		lb++
	}

	matches := 0
	la := 0
	for _, r := range a {
		la++
		if counts[r] > 0 {
			counts[r]--
			matches++
		}
	}

	return 2.0 * float64(matches) / float64(la+lb)
}
