// Package sanitize provides text sanitization utilities to prevent XSS attacks.
package sanitize

import (
	"strings"

	"golang.org/x/net/html"
)

// StripHTML removes all markup from a string and returns its text content.
// Script and style bodies are dropped entirely. Entities are decoded once;
// markup that appears after decoding is stripped again.
func StripHTML(s string) string {
	text := extractText(s)
	if strings.ContainsAny(text, "<>") {
		text = extractText(text)
	}
	return strings.TrimSpace(text)
}

// Text sanitizes a string for safe text storage by stripping HTML.
// Use for multi-line user-provided fields like messages and notes.
func Text(s string) string {
	return StripHTML(s)
}

// Line sanitizes a single-line field: HTML is stripped and runs of
// whitespace, including newlines, collapse to one space.
func Line(s string) string {
	return strings.Join(strings.Fields(StripHTML(s)), " ")
}

// TextPtr is a helper for optional string pointers
func TextPtr(s *string) *string {
	if s == nil {
		return nil
	}
	result := Text(*s)
	return &result
}

func extractText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	skipDepth := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or a malformed tail; either way the text so far is the result
			return b.String()
		case html.StartTagToken:
			if isRawTextTag(z) {
				skipDepth++
			}
		case html.EndTagToken:
			if isRawTextTag(z) && skipDepth > 0 {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth == 0 {
				b.Write(z.Text())
			}
		}
	}
}

func isRawTextTag(z *html.Tokenizer) bool {
	name, _ := z.TagName()
	switch string(name) {
	case "script", "style":
		return true
	}
	return false
}
