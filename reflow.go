// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsondoc

package jsondoc

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// sentenceBoundary matches a period that ends a sentence: it must be
// followed by whitespace, and that whitespace must not lead straight
// into a single capital letter with its own period ("E. B." style
// abbreviations). Needs lookahead, which the stdlib engine lacks.
var sentenceBoundary = regexp2.MustCompile(`\.(?=\s+(?![A-Z]\.))`, 0)

// splitAtPeriod reflows prose into paragraph chunks split at sentence
// boundaries. Each chunk is trimmed, indented for depth and separated
// from the next by one blank line. When no boundary qualifies the text
// comes back unchanged with split=false.
func (r *Renderer) splitAtPeriod(text string, depth int) (reflowed string, split bool) {
	chunks := splitSentences(text)
	if len(chunks) < 2 {
		return text, false
	}

	indent := r.indent(depth)

	var out strings.Builder
	out.Grow(len(text) + len(chunks)*(len(indent)+2))

	for i, chunk := range chunks {
		if i > 0 {
			out.WriteString("\n\n")
		}

		out.WriteString(indent)
		out.WriteString(strings.TrimSpace(chunk))
	}

	return out.String(), true
}

// splitSentences cuts text at every sentence boundary, consuming the
// boundary period itself. Returns nil when there is nothing to cut.
func splitSentences(text string) []string {
	match, err := sentenceBoundary.FindStringMatch(text)
	if err != nil {
		// The engine errors only when a match timeout is set; none is.
		panic("jsondoc: sentence boundary scan: " + err.Error())
	}

	if match == nil {
		return nil
	}

	// Capture indexes are rune offsets, so slice runes, not bytes.
	runes := []rune(text)
	chunks := make([]string, 0, 4)
	start := 0

	for match != nil {
		chunks = append(chunks, string(runes[start:match.Index]))
		start = match.Index + match.Length

		match, err = sentenceBoundary.FindNextMatch(match)
		if err != nil {
			panic("jsondoc: sentence boundary scan: " + err.Error())
		}
	}

	return append(chunks, string(runes[start:]))
}
