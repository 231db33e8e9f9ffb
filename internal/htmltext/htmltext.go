// Package htmltext flattens the HTML fragments the text API returns into
// plain terminal text. Sefaria texts carry bold/italic markup, footnote
// references, and inline links; a terminal reader wants just the words.
package htmltext

import (
	"strings"

	"golang.org/x/net/html"
)

// elements whose entire content is dropped rather than flattened.
var skippedElements = map[string]bool{
	"script": true,
	"style":  true,
	"sup":    true, // footnote markers
}

// Strip returns the text content of an HTML fragment with tags removed,
// entities decoded, and whitespace collapsed to single spaces. Malformed
// markup is tolerated; the tokenizer simply yields what it can.
func Strip(fragment string) string {
	if !strings.ContainsAny(fragment, "<&") {
		return collapseSpace(fragment)
	}
	tokenizer := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	skipDepth := 0
	for {
		tokenType := tokenizer.Next()
		switch tokenType {
		case html.ErrorToken:
			return collapseSpace(b.String())
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if skippedElements[string(name)] {
				skipDepth++
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if skippedElements[string(name)] && skipDepth > 0 {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth == 0 {
				b.Write(tokenizer.Text())
			}
		}
	}
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
