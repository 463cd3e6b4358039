// Package textutil holds the small text helpers shared by the providers.
package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SplitSentences splits text after '.', '!' or '?' when followed by whitespace.
// Empty pieces are dropped.
func SplitSentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var sentences []string
	start := 0
	for i, r := range text {
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		end := i + utf8.RuneLen(r)
		next, size := utf8.DecodeRuneInString(text[end:])
		if size == 0 || !unicode.IsSpace(next) {
			continue
		}
		sentences = append(sentences, text[start:end])
		start = end
		for start < len(text) {
			nr, ns := utf8.DecodeRuneInString(text[start:])
			if !unicode.IsSpace(nr) {
				break
			}
			start += ns
		}
	}
	if start < len(text) {
		sentences = append(sentences, text[start:])
	}

	out := sentences[:0]
	for _, s := range sentences {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Normalize collapses whitespace runs into single spaces and trims the ends.
func Normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Truncate cuts s to at most n characters.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
