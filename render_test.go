// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsondoc

package jsondoc

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

var updateGolden = flag.Bool("update", false, "update golden files")

func TestRenderBareBodyWithoutTitle(t *testing.T) {
	t.Parallel()

	got, err := Render([]byte(`{"title": "My Project"}`), Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := "## Title\n\n\n\nMy Project\n"
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestRenderTitleSelectsDocumentTemplate(t *testing.T) {
	t.Parallel()

	got, err := Render([]byte(`{"a": 1}`), Options{Title: "My Docs"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := "# My Docs\n\n## A\n\n: 1\n"
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestRenderSanitizesTitleWhitespace(t *testing.T) {
	t.Parallel()

	got, err := Render([]byte(`{"a": 1}`), Options{Title: "  My \t Docs  "})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	assertContains(t, got, "# My Docs\n")
}

func TestRenderReportTemplateIncludesSource(t *testing.T) {
	t.Parallel()

	got, err := Render([]byte(`{"a": 1}`), Options{
		Title:        "Config",
		TemplateName: "report",
		SourcePath:   "cfg.json",
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := "# Config\n\n> Source: `cfg.json`\n\n## A\n\n: 1\n"
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestRenderReportTemplateSkipsEmptySource(t *testing.T) {
	t.Parallel()

	got, err := Render([]byte(`{"a": 1}`), Options{
		Title:        "Config",
		TemplateName: "Report",
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := "# Config\n\n## A\n\n: 1\n"
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestRenderTemplateNameAloneKeepsBareBody(t *testing.T) {
	t.Parallel()

	// Without a title or custom template text the template name is just
	// a selection, not a request for wrapping.
	got, err := Render([]byte(`{"a": 1}`), Options{TemplateName: "report"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := "## A\n\n: 1\n"
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestRenderCustomTemplateText(t *testing.T) {
	t.Parallel()

	got, err := Render([]byte(`{"a": 1}`), Options{
		TemplateText: "-- {{ .Title }} --\n{{ .Body -}}\n",
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := "-- rendered document --\n## A\n\n: 1\n"
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestRenderCustomTemplateFuncs(t *testing.T) {
	t.Parallel()

	got, err := Render([]byte(`{"a": 1}`), Options{
		Title:        "My Heading!",
		TemplateText: "{{ titlecase \"service_name\" }}\n{{ anchor .Title }}\n{{ .Body -}}\n",
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := "Service Name\nmy-heading\n## A\n\n: 1\n"
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestRenderInvalidTemplateText(t *testing.T) {
	t.Parallel()

	_, err := Render([]byte(`{"a": 1}`), Options{TemplateText: "{{ .Body"})
	if err == nil {
		t.Fatal("expected error for unparsable template text")
	}
}

func TestRenderUnknownTemplateName(t *testing.T) {
	t.Parallel()

	_, err := Render([]byte(`{"a": 1}`), Options{Title: "x", TemplateName: "bogus"})
	if !errors.Is(err, ErrUnknownBuiltinTemplate) {
		t.Fatalf("Render error = %v, want ErrUnknownBuiltinTemplate", err)
	}
}

func TestRenderPropagatesDecodeErrors(t *testing.T) {
	t.Parallel()

	_, err := Render([]byte("zulu: 1\n"), Options{Format: FormatJSON})
	if !errors.Is(err, ErrDecodeDocument) {
		t.Fatalf("Render error = %v, want ErrDecodeDocument", err)
	}

	_, err = Render([]byte(`{"a": 1}`), Options{Format: "xml"})
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("Render error = %v, want ErrUnknownFormat", err)
	}

	_, err = Render([]byte(`{"a": {"b": {"c": 1}}}`), Options{MaxDepth: 1})
	if !errors.Is(err, ErrMaxDepthExceeded) {
		t.Fatalf("Render error = %v, want ErrMaxDepthExceeded", err)
	}
}

func TestRenderYAMLInput(t *testing.T) {
	t.Parallel()

	got, err := Render([]byte("zulu: 1\nalpha: two\n"), Options{Format: FormatYAML})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := "## Zulu\n\n: 1\n## Alpha\n\n\n\ntwo\n"
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestRenderIndentOption(t *testing.T) {
	t.Parallel()

	input := []byte(`{"a": {"b": {"c": "x"}}}`)

	got, err := Render(input, Options{Indent: 3})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := "## A\n\n\n\n   ### B\n\n\n\n      - **C**\n\n      x\n"
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}

	// Zero and negative indents mean the default here; zero-width
	// rendering is reachable through NewRenderer only.
	defaultWant := "## A\n\n\n\n ### B\n\n\n\n  - **C**\n\n  x\n"
	for _, indent := range []int{0, -2} {
		got, err := Render(input, Options{Indent: indent})
		if err != nil {
			t.Fatalf("Render: %v", err)
		}

		if got != defaultWant {
			t.Fatalf("Render indent %d = %q, want %q", indent, got, defaultWant)
		}
	}
}

func TestRenderDepthStepOption(t *testing.T) {
	t.Parallel()

	got, err := Render([]byte(`{"a": {"b": {"c": {"d": "v"}}}}`), Options{DepthStep: 4})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := "## A\n\n\n\n ### B\n\n\n\n  - **C**\n\n      - **D**\n\n      v\n"
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestRenderKeyFormatterOption(t *testing.T) {
	t.Parallel()

	got, err := Render([]byte(`{"name": "x"}`), Options{KeyFormatter: strings.ToUpper})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := "## NAME\n\n\n\nx\n"
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestRenderFileReadsDocument(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"a": 1}`), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := RenderFile(path, Options{})
	if err != nil {
		t.Fatalf("RenderFile: %v", err)
	}

	want := "## A\n\n: 1\n"
	if got != want {
		t.Fatalf("RenderFile = %q, want %q", got, want)
	}
}

func TestRenderFileDefaultsSourcePath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"a": 1}`), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := RenderFile(path, Options{Title: "Config", TemplateName: "report"})
	if err != nil {
		t.Fatalf("RenderFile: %v", err)
	}

	assertContains(t, got, "> Source: `"+path+"`")
}

func TestRenderFileMissing(t *testing.T) {
	t.Parallel()

	_, err := RenderFile(filepath.Join(t.TempDir(), "missing.json"), Options{})
	if !errors.Is(err, ErrReadDocumentFile) {
		t.Fatalf("RenderFile error = %v, want ErrReadDocumentFile", err)
	}
}

func TestRenderOutputHasNoHTML(t *testing.T) {
	t.Parallel()

	rendered, err := RenderFile(filepath.Join("testdata", "config.fixture.json"), Options{})
	if err != nil {
		t.Fatalf("RenderFile: %v", err)
	}

	htmlPattern := regexp.MustCompile(`<[A-Za-z/][^>]*>`)
	if htmlPattern.MatchString(rendered) {
		t.Fatalf("rendered markdown contains html tags")
	}
}

func TestRenderGoldenDocument(t *testing.T) {
	testRenderGoldenTemplate(t, "document", filepath.Join("testdata", "config.golden.document.md"))
}

func TestRenderGoldenReport(t *testing.T) {
	testRenderGoldenTemplate(t, "report", filepath.Join("testdata", "config.golden.report.md"))
}

func testRenderGoldenTemplate(t *testing.T, templateName, goldenPath string) {
	t.Helper()

	documentPath := filepath.Join("testdata", "config.fixture.json")
	const sourcePath = "testdata/config.fixture.json"
	got, err := RenderFile(documentPath, Options{
		Title:        "configuration reference",
		SourcePath:   sourcePath,
		TemplateName: templateName,
	})
	if err != nil {
		t.Fatalf("RenderFile: %v", err)
	}

	if *updateGolden {
		if err := os.WriteFile(goldenPath, []byte(got), 0o600); err != nil {
			t.Fatalf("write golden: %v", err)
		}
	}

	wantBytes, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}

	want := string(wantBytes)
	if got != want {
		t.Fatalf("golden mismatch for %s; run `go test . -run TestRenderGolden -update`", templateName)
	}
}

func TestBuiltinTemplateNames(t *testing.T) {
	t.Parallel()

	assertChunks(t, BuiltinTemplateNames(), []string{"document", "report"})
}

func TestBuiltinTemplate(t *testing.T) {
	t.Parallel()

	document, err := BuiltinTemplate("document")
	if err != nil {
		t.Fatalf("BuiltinTemplate: %v", err)
	}

	want := "# {{ .Title }}\n\n{{ .Body -}}\n"
	if document != want {
		t.Fatalf("document template = %q, want %q", document, want)
	}

	report, err := BuiltinTemplate("Report")
	if err != nil {
		t.Fatalf("BuiltinTemplate: %v", err)
	}

	assertContains(t, report, "> Source:")

	if _, err := BuiltinTemplate("weird"); !errors.Is(err, ErrUnknownBuiltinTemplate) {
		t.Fatalf("BuiltinTemplate error = %v, want ErrUnknownBuiltinTemplate", err)
	}
}

func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if !strings.Contains(haystack, needle) {
		t.Fatalf("missing substring %q in:\n%s", needle, haystack)
	}
}

func assertNotContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if strings.Contains(haystack, needle) {
		t.Fatalf("unexpected substring %q in:\n%s", needle, haystack)
	}
}
