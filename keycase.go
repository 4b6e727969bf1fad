// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsondoc

package jsondoc

import "github.com/ettle/strcase"

// KeyFormatter converts a raw document key into its display label.
type KeyFormatter func(key string) string

// TitleCaseKey is the default key formatter. It turns snake_case,
// camelCase and kebab-case keys into space-separated Title Case,
// so "project_name" and "projectName" both display as "Project Name".
func TitleCaseKey(key string) string {
	return strcase.ToCase(key, strcase.TitleCase, ' ')
}
