// Copyright (c) 2025 Vex Labs
// SPDX-License-Identifier: MIT

package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateRunes shortens s to at most maxRunes characters, appending a
// single ellipsis rune when anything was cut. Truncation counts runes,
// not bytes, so multi-byte UTF-8 content is never split mid-character.
func TruncateRunes(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes]) + "…"
}

// RuneLen returns the number of characters in s. UNICODE: len(s) counts
// bytes, which over-counts for anything outside ASCII.
func RuneLen(s string) int {
	return len([]rune(s))
}

// TruncateDisplay shortens s to fit within maxWidth terminal cells,
// accounting for double-width characters (CJK, emoji).
func TruncateDisplay(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

// PadDisplay pads s with trailing spaces to exactly width terminal cells.
// Strings already wider than width are returned unchanged.
func PadDisplay(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// FirstLine returns the content of s up to the first newline, with
// surrounding whitespace trimmed. Used for titles and previews derived
// from message bodies.
func FirstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
