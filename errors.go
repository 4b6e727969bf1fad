// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsondoc

package jsondoc

import "errors"

var (
	// ErrReadDocumentFile is returned when document file loading fails.
	ErrReadDocumentFile = errors.New("read document file")
	// ErrDecodeDocument is returned when document decoding fails.
	ErrDecodeDocument = errors.New("decode document")
	// ErrTrailingData is returned when extra content follows the first decoded document.
	ErrTrailingData = errors.New("trailing data after document")
	// ErrMaxDepthExceeded is returned when document nesting is deeper than the configured limit.
	ErrMaxDepthExceeded = errors.New("maximum nesting depth exceeded")
	// ErrUnknownFormat is returned when requested input format is not registered.
	ErrUnknownFormat = errors.New("unknown input format")
	// ErrOptionValue is returned when a decode option value is out of range.
	ErrOptionValue = errors.New("invalid option value")
	// ErrUnknownBuiltinTemplate is returned when requested built-in template name is not registered.
	ErrUnknownBuiltinTemplate = errors.New("unknown built-in template")
	// ErrReadBuiltinTemplate is returned when built-in template file loading fails.
	ErrReadBuiltinTemplate = errors.New("read built-in template")
	// ErrParseBuiltinTemplate is returned when built-in template parsing fails.
	ErrParseBuiltinTemplate = errors.New("parse built-in template")
	// ErrExecuteDocumentTemplate is returned when document template execution fails.
	ErrExecuteDocumentTemplate = errors.New("execute document template")
	// ErrConvertMarkdown is returned when markdown to HTML conversion fails.
	ErrConvertMarkdown = errors.New("convert markdown to html")
)
