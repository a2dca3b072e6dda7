package cards

import (
	"fmt"
	"strconv"
	"strings"
)

// Wrap splits text into lines no wider than maxWidth using a greedy
// first-fit strategy. Words are never broken: a single word wider than
// maxWidth is kept whole on its own line. Output is deterministic for
// identical inputs and metrics.
func Wrap(text string, maxWidth float64, font Font, m FontMetrics) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	line := words[0]
	var lines []string
	for _, word := range words[1:] {
		candidate := line + " " + word
		if m.StringWidth(candidate, font) <= maxWidth {
			line = candidate
		} else {
			lines = append(lines, line)
			line = word
		}
	}
	return append(lines, line)
}

// Pluralize formats a count with its unit word, applying English suffix
// rules: consonant+y -> ies, vowel+y -> ys, sibilant endings -> es,
// otherwise -> s.
func Pluralize(count int, word string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, word)
	}
	plural := word
	switch {
	case strings.HasSuffix(word, "y") && len(word) > 1 && !isVowel(word[len(word)-2]):
		plural = word[:len(word)-1] + "ies"
	case strings.HasSuffix(word, "y"):
		plural = word + "s"
	case strings.HasSuffix(word, "s"), strings.HasSuffix(word, "sh"),
		strings.HasSuffix(word, "ch"), strings.HasSuffix(word, "x"),
		strings.HasSuffix(word, "z"):
		plural = word + "es"
	default:
		plural = word + "s"
	}
	return fmt.Sprintf("%d %s", count, plural)
}

func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// ParseColor parses a "#RRGGBB" string (leading '#' and surrounding
// whitespace optional). The second return is false for anything that is not
// exactly six hex digits, including alpha-carrying 8-digit values.
func ParseColor(s string) (RGB, bool) {
	clean := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(clean) != 6 {
		return RGB{}, false
	}
	v, err := strconv.ParseUint(clean, 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, true
}

// ParseColorOrDefault resolves a color string to a usable color, falling
// back to def on malformed input. Bad colors never fail a render.
func ParseColorOrDefault(s string, def RGB) RGB {
	if c, ok := ParseColor(s); ok {
		return c
	}
	return def
}

// IsLight reports whether a background color reads as light, using the
// perceptual luminance formula L = (0.299R + 0.587G + 0.114B) / 255.
func IsLight(c RGB) bool {
	luminance := (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
	return luminance > 0.5
}

// ChooseTextColor picks black or white text for the given background color
// string. Malformed input counts as a dark background, so text defaults to
// white.
func ChooseTextColor(hexColor string) RGB {
	c, ok := ParseColor(hexColor)
	if !ok {
		return White
	}
	if IsLight(c) {
		return Black
	}
	return White
}
