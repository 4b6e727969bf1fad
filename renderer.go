// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsondoc

package jsondoc

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	// defaultIndentSpaces is the width of one indentation unit.
	defaultIndentSpaces = 1
	// defaultDepthIncrement is the depth step per nesting level below the header zone.
	defaultDepthIncrement = 2
	// nullText stands in for null values in rendered output.
	nullText = "N/A"
	// urlPrefix marks string values that are copied verbatim without reflow.
	urlPrefix = "http"
)

// renderStyle is the structural role of the current rendering context.
type renderStyle uint8

const (
	styleRoot renderStyle = iota
	styleSection
	styleSubsection
	styleListItem
	styleNestedItem
)

// headingRun matches heading marker runs past markdown's maximum of six.
var headingRun = regexp.MustCompile(`#{7,}`)

// Renderer converts JSON-like values into markdown text. Configuration
// is fixed at construction; the zero value is not usable.
type Renderer struct {
	formatKey      KeyFormatter
	indentSpaces   int
	depthIncrement int
}

// NewRenderer returns a renderer with the given indentation unit width
// and per-level depth step. Negative arguments fall back to the
// defaults (1 and 2); zero is honored exactly.
func NewRenderer(indentSpaces, depthIncrement int) *Renderer {
	return &Renderer{
		formatKey:      TitleCaseKey,
		indentSpaces:   normalizeNonNegative(indentSpaces, defaultIndentSpaces),
		depthIncrement: normalizeNonNegative(depthIncrement, defaultDepthIncrement),
	}
}

// WithKeyFormatter returns a copy of the renderer that labels keys
// with formatter. A nil formatter keeps the Title Case default.
func (r *Renderer) WithKeyFormatter(formatter KeyFormatter) *Renderer {
	if formatter == nil {
		formatter = TitleCaseKey
	}

	derived := *r
	derived.formatKey = formatter
	return &derived
}

// Render walks value and returns its markdown rendition. It is total
// over every value kind, nil included, and cannot fail.
func (r *Renderer) Render(value Value) string {
	var out strings.Builder
	out.Grow(256)

	r.renderValue(value, 0, styleRoot, &out, false)

	return clampHeadingRuns(out.String())
}

// renderValue dispatches one value by kind into the output buffer.
func (r *Renderer) renderValue(value Value, depth int, style renderStyle, out *strings.Builder, labeled bool) {
	switch v := value.(type) {
	case Object:
		r.renderObject(v, depth, style, out)
	case Array:
		r.renderArray(v, depth, style, out)
	case String:
		formatScalar(string(v), style, out, labeled)
	case Number:
		formatScalar(string(v), style, out, labeled)
	case Bool:
		formatScalar(strconv.FormatBool(bool(v)), style, out, labeled)
	default:
		// Null, and nil values treated as null.
		formatScalar(nullText, style, out, labeled)
	}
}

// nextStyle is the style transition table: the first two object levels
// become H2/H3 headers, everything deeper becomes bold list items
// nested by the configured depth step.
func (r *Renderer) nextStyle(depth int, style renderStyle) (next renderStyle, marker string, increment int) {
	switch {
	case depth == 0 && style == styleRoot:
		return styleSection, "## ", 0
	case depth == 1 && style == styleSection:
		return styleSubsection, "### ", 0
	default:
		return styleListItem, "", r.depthIncrement
	}
}

// renderObject emits one key label plus value block per member, in
// document order.
func (r *Renderer) renderObject(obj Object, depth int, style renderStyle, out *strings.Builder) {
	indent := r.indent(depth)

	for _, member := range obj {
		newStyle, marker, increment := r.nextStyle(depth, style)

		switch newStyle {
		case styleSection, styleSubsection:
			out.WriteString(indent)
			out.WriteString(marker)
			out.WriteString(r.formatKey(member.Key))
			out.WriteString("\n\n")
		case styleListItem:
			out.WriteString(indent)
			out.WriteString("- **")
			out.WriteString(r.formatKey(member.Key))
			out.WriteString("**")
		default:
			out.WriteString(r.formatKey(member.Key))
		}

		switch v := member.Value.(type) {
		case Object:
			if len(v) == 0 {
				// Empty containers contribute nothing after their label.
				continue
			}

			// Header levels advance by literal ones so H3 follows H2;
			// the configured step only applies below the header zone.
			nextDepth := depth + increment
			if isHeaderStyle(newStyle) {
				nextDepth = depth + 1
			}

			out.WriteString("\n\n")
			r.renderObject(v, nextDepth, newStyle, out)
		case Array:
			if len(v) == 0 {
				continue
			}

			out.WriteString("\n\n")
			r.renderArray(v, depth+increment, styleNestedItem, out)
			out.WriteString("\n\n")
		case String:
			out.WriteString("\n\n")
			r.writeProse(string(v), depth, newStyle, out)
		default:
			r.renderValue(member.Value, depth+increment, styleNestedItem, out, true)
		}
	}
}

// renderArray emits one line or nested block per item.
func (r *Renderer) renderArray(items Array, depth int, style renderStyle, out *strings.Builder) {
	indent := r.indent(depth)

	marker := "- "
	if style == styleNestedItem {
		marker = "  - "
	}

	for _, item := range items {
		// Nested containers bring their own key bullets, so no marker.
		if obj, ok := item.(Object); ok && len(obj) > 0 {
			r.renderObject(obj, depth+r.depthIncrement, styleNestedItem, out)
			continue
		}

		if arr, ok := item.(Array); ok && len(arr) > 0 {
			r.renderArray(arr, depth+r.depthIncrement, styleNestedItem, out)
			continue
		}

		out.WriteString(indent)
		out.WriteString(marker)

		if s, ok := item.(String); ok {
			// Array strings are copied as-is, never reflowed.
			out.WriteString(string(s))
			out.WriteByte('\n')
			continue
		}

		r.renderValue(item, depth+r.depthIncrement, styleNestedItem, out, false)
	}
}

// writeProse emits an object string value: URLs verbatim, prose
// reflowed at sentence boundaries. Reflow indentation is zero inside
// header contexts and two levels past the frame depth below them.
func (r *Renderer) writeProse(text string, depth int, style renderStyle, out *strings.Builder) {
	indent := r.indent(depth)

	if strings.HasPrefix(text, urlPrefix) {
		out.WriteString(indent)
		out.WriteString(text)
		out.WriteByte('\n')
		return
	}

	reflowDepth := depth + 2
	if isHeaderStyle(style) {
		reflowDepth = 0
	}

	reflowed, split := r.splitAtPeriod(text, reflowDepth)
	switch {
	case split:
		out.WriteString(reflowed)
	case isHeaderStyle(style):
		out.WriteString(text)
	default:
		out.WriteString(indent)
		out.WriteString(text)
	}

	out.WriteByte('\n')
}

// formatScalar writes scalar text with the separators its context needs.
func formatScalar(text string, style renderStyle, out *strings.Builder, labeled bool) {
	if labeled {
		out.WriteString(": ")
	}

	out.WriteString(text)

	switch style {
	case styleListItem, styleNestedItem:
		out.WriteByte('\n')
	default:
		out.WriteString("\n\n")
	}
}

// isHeaderStyle reports whether style renders as a markdown heading.
func isHeaderStyle(style renderStyle) bool {
	return style == styleSection || style == styleSubsection
}

// indent returns the indentation for depth.
func (r *Renderer) indent(depth int) string {
	return strings.Repeat(" ", depth*r.indentSpaces)
}

// clampHeadingRuns collapses heading marker runs of seven or more to
// markdown's maximum of six.
func clampHeadingRuns(markdown string) string {
	return headingRun.ReplaceAllString(markdown, "######")
}

// normalizeNonNegative validates a renderer size and falls back to its default.
func normalizeNonNegative(value, fallback int) int {
	if value < 0 {
		return fallback
	}

	return value
}
