// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package textnorm

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// Normalize strips HTML markup, applies NFKC, and collapses whitespace.
func Normalize(raw string) string {
	text := stripTags(raw)
	text = norm.NFKC.String(text)
	return strings.Join(strings.Fields(text), " ")
}

// stripTags keeps only the text content of an HTML fragment. Entity
// references are decoded; tag nesting is irrelevant.
func stripTags(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	tok := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	b.Grow(len(s))
	for {
		switch tok.Next() {
		case html.ErrorToken:
			// io.EOF ends the fragment; the tokenizer has no other
			// error mode for in-memory input.
			return b.String()
		case html.TextToken:
			b.Write(tok.Text())
		}
	}
}
