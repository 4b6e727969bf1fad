// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsondoc

package jsondoc

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

const (
	// defaultTitle is used when a wrapper template is requested without a title.
	defaultTitle = "rendered document"
	// defaultTemplateName is used when caller does not provide template name.
	defaultTemplateName = templateDocumentName
)

const (
	templateDocumentName = "document"
	templateReportName   = "report"
)

// Options configures decoding and rendering for the one-call API.
// The zero value decodes auto-detected input and returns the bare
// markdown body.
type Options struct {
	// Format pins the input markup; empty means auto-detection.
	Format Format
	// Title wraps output in a document template with an H1 title.
	Title string
	// SourcePath names the input origin in templates that show it.
	SourcePath string
	// TemplateName selects the built-in wrapper template used when Title
	// or TemplateText requests wrapping, default "document".
	TemplateName string
	// TemplateText overrides TemplateName with custom template source.
	TemplateText string
	// Indent is the indentation unit width; values below one mean the
	// default of 1. Use NewRenderer directly for zero-width indentation.
	Indent int
	// DepthStep is the nesting step below the header zone; values below
	// one mean the default of 2.
	DepthStep int
	// MaxDepth bounds document nesting; values below one mean the
	// default of 1000.
	MaxDepth int
	// KeyFormatter overrides the Title Case key labels.
	KeyFormatter KeyFormatter
}

// RenderFile reads a document from file and renders markdown.
func RenderFile(path string, opt Options) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadDocumentFile, err)
	}

	if strings.TrimSpace(opt.SourcePath) == "" {
		opt.SourcePath = path
	}

	return Render(data, opt)
}

// Render converts document bytes into markdown. Without a title or
// template in opt the result is exactly the renderer's body text.
func Render(data []byte, opt Options) (string, error) {
	value, err := decodeWithOptions(data, opt)
	if err != nil {
		return "", err
	}

	body := rendererFromOptions(opt).Render(value)
	if !wantsWrapper(opt) {
		return body, nil
	}

	view := documentView{
		Title:      sanitizeText(opt.Title),
		SourcePath: escapeInline(strings.TrimSpace(opt.SourcePath)),
		Body:       body,
	}
	if view.Title == "" {
		view.Title = defaultTitle
	}

	documentTemplate, err := resolveTemplate(opt)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	if err := documentTemplate.Execute(&out, view); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecuteDocumentTemplate, err)
	}

	return out.String(), nil
}

// decodeWithOptions translates Options into decoder options.
func decodeWithOptions(data []byte, opt Options) (Value, error) {
	decodeOpts := make([]DecodeOption, 0, 2)
	if strings.TrimSpace(string(opt.Format)) != "" {
		decodeOpts = append(decodeOpts, WithFormat(opt.Format))
	}

	if opt.MaxDepth > 0 {
		decodeOpts = append(decodeOpts, WithMaxDepth(opt.MaxDepth))
	}

	return Decode(data, decodeOpts...)
}

// rendererFromOptions builds the core renderer for one Render call.
func rendererFromOptions(opt Options) *Renderer {
	renderer := NewRenderer(
		normalizePositive(opt.Indent, defaultIndentSpaces),
		normalizePositive(opt.DepthStep, defaultDepthIncrement),
	)

	if opt.KeyFormatter != nil {
		renderer = renderer.WithKeyFormatter(opt.KeyFormatter)
	}

	return renderer
}

// wantsWrapper reports whether output goes through a document template.
func wantsWrapper(opt Options) bool {
	return strings.TrimSpace(opt.Title) != "" || strings.TrimSpace(opt.TemplateText) != ""
}

// normalizePositive validates an option size and falls back to its default.
func normalizePositive(value, fallback int) int {
	if value < 1 {
		return fallback
	}

	return value
}

// BuiltinTemplateNames returns all available built-in template names.
func BuiltinTemplateNames() []string {
	names := make([]string, 0, len(builtInTemplateFiles))
	for name := range builtInTemplateFiles {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// BuiltinTemplate returns one built-in template by name.
func BuiltinTemplate(name string) (string, error) {
	name = normalizeTemplateName(name)
	path, ok := builtInTemplateFiles[name]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownBuiltinTemplate, name)
	}

	data, err := templateFS.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadBuiltinTemplate, err)
	}

	return string(data), nil
}
