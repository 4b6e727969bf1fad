// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsondoc

/*
Package jsondoc renders JSON and YAML documents as human-readable markdown.

Structural nesting maps onto markdown conventions: top-level keys become
"##" headers, their immediate children become "###" headers, deeper keys
become bold list items, long prose strings are split into paragraphs at
sentence boundaries, URLs pass through untouched and null renders as "N/A".
Keys display in Title Case, so "project_name" becomes "Project Name".

Basic render from document bytes:

	md, err := jsondoc.Render(data, jsondoc.Options{})
	if err != nil {
		return err
	}

	fmt.Println(md)

Render directly from file with a titled document wrapper:

	md, err := jsondoc.RenderFile("service.json", jsondoc.Options{
		Title:        "Service Overview",
		TemplateName: "report",
	})
	if err != nil {
		return err
	}

	fmt.Println(md)

Work with decoded values and a configured renderer:

	value, err := jsondoc.Decode(data, jsondoc.WithFormat(jsondoc.FormatYAML))
	if err != nil {
		return err
	}

	renderer := jsondoc.NewRenderer(2, 2)
	fmt.Println(renderer.Render(value))

Custom key labels:

	renderer := jsondoc.NewRenderer(1, 2).WithKeyFormatter(strings.ToUpper)
	fmt.Println(renderer.Render(value))

Preview rendered markdown as HTML:

	html, err := jsondoc.PreviewHTML(md)
	if err != nil {
		return err
	}

	fmt.Println(html)
*/
package jsondoc
