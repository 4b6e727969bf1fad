// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsondoc

package jsondoc

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// previewEngine converts markdown previews with the GFM extension set
// and stable heading anchors.
var previewEngine = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// PreviewHTML converts rendered markdown into an HTML fragment for
// quick visual inspection of renderer output.
func PreviewHTML(markdown string) (string, error) {
	var out bytes.Buffer
	if err := previewEngine.Convert([]byte(markdown), &out); err != nil {
		return "", fmt.Errorf("%w: %w", ErrConvertMarkdown, err)
	}

	return out.String(), nil
}
