// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package reference derives filesystem-safe labels from page text.
//
// A label is the run of decimal digits found in the text (a product or
// part number on a catalogue page, typically), or the literal "page" when
// the text holds no digits.
package reference

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Fallback is the label used when page text yields no digits.
const Fallback = "page"

// Label returns the ASCII digits of text, concatenated in order, or
// Fallback when text is empty or contains no digits. The result is never
// empty and is not length-capped; see Truncate.
func Label(text string) string {
	if text == "" {
		return Fallback
	}

	text = strings.NewReplacer("\n", " ", "\t", " ").Replace(text)
	text = norm.NFKC.String(text)

	var b strings.Builder
	for _, r := range stripPunctuation(text) {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return Fallback
	}
	return b.String()
}

// stripPunctuation drops every rune that is not a word character
// (letter, digit, underscore) or whitespace.
func stripPunctuation(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, s)
}

// Truncate returns the first n runes of label, or Fallback when label is
// empty. A non-positive n leaves label whole.
func Truncate(label string, n int) string {
	if label == "" {
		return Fallback
	}
	if n <= 0 {
		return label
	}
	runes := []rune(label)
	if len(runes) > n {
		return string(runes[:n])
	}
	return label
}
