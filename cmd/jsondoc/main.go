// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsondoc

// jsondoc renders JSON and YAML documents as markdown.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/jsondoc"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/jsondoc"
	_buildTime string
)

// cliOptions describes jsondoc CLI flags and subcommands.
type cliOptions struct {
	Verbose bool `short:"v" long:"verbose" description:"Enable debug logging to stderr"`

	Version  versionCommand  `command:"version" description:"Print version information"`
	Convert  convertCommand  `command:"convert" description:"Convert JSON or YAML document to markdown"`
	Preview  previewCommand  `command:"preview" description:"Convert document to markdown and print HTML preview"`
	Template templateCommand `command:"template" description:"Print built-in document template"`
}

// formatFlags groups input decoding flags.
type formatFlags struct {
	Format   string `short:"f" long:"format" description:"Input document format" choice:"auto" choice:"json" choice:"yaml" default:"auto"`
	MaxDepth int    `short:"m" long:"max-depth" description:"Maximum container nesting depth" default:"1000"`
}

// renderFlags groups markdown rendering flags.
type renderFlags struct {
	Title        string `short:"T" long:"title" description:"Wrap output in a document template with this title"`
	TemplateName string `short:"t" long:"template" description:"Built-in wrapper template style" choice:"document" choice:"report" default:"document"`
	TemplatePath string `long:"template-file" description:"Path to custom document template (.gotmpl)"`
	Indent       int    `short:"i" long:"indent" description:"Indentation unit width" default:"1"`
	DepthStep    int    `short:"d" long:"depth-step" description:"Nesting depth step below the header zone" default:"2"`
}

// convertCommand renders a document into markdown.
type convertCommand struct {
	runner *cliRunner
	Args   struct {
		Input  string `positional-arg-name:"input" description:"Input document path (optional; stdin when omitted or \"-\")"`
		Output string `positional-arg-name:"output" description:"Output markdown file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	FormatFlags formatFlags `group:"Input Format"`
	RenderFlags renderFlags `group:"Markdown Render"`
}

// Execute runs convert subcommand.
func (command *convertCommand) Execute(_ []string) error {
	return command.runner.runConvert(command.FormatFlags, command.RenderFlags, command.Args.Input, command.Args.Output)
}

// previewCommand renders a document into markdown and converts it to HTML.
type previewCommand struct {
	runner *cliRunner
	Args   struct {
		Input  string `positional-arg-name:"input" description:"Input document path (optional; stdin when omitted or \"-\")"`
		Output string `positional-arg-name:"output" description:"Output HTML file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	FormatFlags formatFlags `group:"Input Format"`
	RenderFlags renderFlags `group:"Markdown Render"`
}

// Execute runs preview subcommand.
func (command *previewCommand) Execute(_ []string) error {
	return command.runner.runPreview(command.FormatFlags, command.RenderFlags, command.Args.Input, command.Args.Output)
}

// templateCommand exports built-in document template.
type templateCommand struct {
	runner *cliRunner
	Args   struct {
		Output string `positional-arg-name:"output" description:"Output template file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	TemplateName string `short:"t" long:"template" description:"Built-in template style" choice:"document" choice:"report" default:"document"`
}

// Execute runs template subcommand.
func (command *templateCommand) Execute(_ []string) error {
	return command.runner.runTemplate(command.TemplateName, command.Args.Output)
}

// versionCommand prints version information.
type versionCommand struct {
	runner *cliRunner
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	return command.runner.printVersionInfo()
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	options     *cliOptions
	programName string
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithIO(args, os.Stdin, stdout, stderr)
}

// runWithIO executes CLI logic with custom stdin, for tests.
func runWithIO(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "jsondoc"
	}

	programName = filepath.Base(programName)
	runner := cliRunner{
		programName: programName,
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// logger builds the CLI diagnostics logger honoring --verbose.
func (runner *cliRunner) logger() *log.Logger {
	level := log.WarnLevel
	if runner.options != nil && runner.options.Verbose {
		level = log.DebugLevel
	}

	return log.NewWithOptions(runner.stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// runConvert executes document-to-markdown flow and writes result to stdout or file.
func (runner *cliRunner) runConvert(format formatFlags, render renderFlags, inputPath, outputPath string) error {
	data, sourcePath, err := runner.readDocumentInput(inputPath)
	if err != nil {
		return fmt.Errorf("read document input: %w", err)
	}

	logger := runner.logger()
	logger.Debug("document loaded", "source", sourceLabel(sourcePath), "bytes", len(data))

	options, err := buildRenderOptions(format, render, sourcePath)
	if err != nil {
		return err
	}

	rendered, err := jsondoc.Render(data, options)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}

	logger.Debug("markdown rendered", "bytes", len(rendered))

	return runner.writeOutput(rendered, outputPath, "markdown")
}

// runPreview executes document-to-HTML flow and writes result to stdout or file.
func (runner *cliRunner) runPreview(format formatFlags, render renderFlags, inputPath, outputPath string) error {
	data, sourcePath, err := runner.readDocumentInput(inputPath)
	if err != nil {
		return fmt.Errorf("read document input: %w", err)
	}

	logger := runner.logger()
	logger.Debug("document loaded", "source", sourceLabel(sourcePath), "bytes", len(data))

	options, err := buildRenderOptions(format, render, sourcePath)
	if err != nil {
		return err
	}

	rendered, err := jsondoc.Render(data, options)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}

	html, err := jsondoc.PreviewHTML(rendered)
	if err != nil {
		return fmt.Errorf("render html preview: %w", err)
	}

	logger.Debug("html preview rendered", "bytes", len(html))

	return runner.writeOutput(html, outputPath, "html")
}

// runTemplate writes selected built-in template to stdout or file.
func (runner *cliRunner) runTemplate(templateName, outputPath string) error {
	tpl, err := jsondoc.BuiltinTemplate(templateName)
	if err != nil {
		return fmt.Errorf("load built-in template %q: %w", templateName, err)
	}

	return runner.writeOutput(tpl, outputPath, "template")
}

// buildRenderOptions maps CLI flags onto library options.
func buildRenderOptions(format formatFlags, render renderFlags, sourcePath string) (jsondoc.Options, error) {
	options := jsondoc.Options{
		Format:       jsondoc.Format(format.Format),
		Title:        render.Title,
		SourcePath:   sourcePath,
		TemplateName: render.TemplateName,
		Indent:       render.Indent,
		DepthStep:    render.DepthStep,
		MaxDepth:     format.MaxDepth,
	}

	if render.TemplatePath != "" {
		templateText, err := os.ReadFile(render.TemplatePath)
		if err != nil {
			return jsondoc.Options{}, fmt.Errorf("read template file %q: %w", render.TemplatePath, err)
		}

		options.TemplateText = string(templateText)
	}

	return options, nil
}

// readDocumentInput reads document from file path or stdin. The source
// path is empty for stdin so templates skip their source line.
func (runner *cliRunner) readDocumentInput(path string) ([]byte, string, error) {
	path = strings.TrimSpace(path)
	if path != "" && path != "-" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, "", fmt.Errorf("read document file %q: %w", path, err)
		}

		return data, path, nil
	}

	data, err := io.ReadAll(runner.stdin)
	if err != nil {
		return nil, "", fmt.Errorf("read document from stdin: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, "", errors.New("read document from stdin: empty input")
	}

	return data, "", nil
}

// writeOutput writes rendered content to stdout or file.
func (runner *cliRunner) writeOutput(content, outputPath, kind string) error {
	if strings.TrimSpace(outputPath) == "" {
		if _, err := io.WriteString(runner.stdout, content); err != nil {
			return fmt.Errorf("write %s to stdout: %w", kind, err)
		}

		return nil
	}

	if err := os.WriteFile(outputPath, []byte(content), 0o600); err != nil {
		return fmt.Errorf("write %s file %q: %w", kind, outputPath, err)
	}

	return nil
}

// sourceLabel names the document origin in log lines.
func sourceLabel(sourcePath string) string {
	if sourcePath == "" {
		return "(stdin)"
	}

	return sourcePath
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Version.runner = runner
	options.Convert.runner = runner
	options.Preview.runner = runner
	options.Template.runner = runner
	runner.options = options

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	if err != nil {
		return err
	}

	return nil
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"convert": strings.TrimSpace(fmt.Sprintf(`
Convert a JSON or YAML document to markdown.
Reads the document from file argument or stdin; writes markdown to file argument or stdout.

Examples:
> $ %s convert config.json > config.md
> $ cat data.yaml | %s convert -f yaml
> $ %s convert -T "Service Overview" -t report config.json docs/config.md
`, programName, programName, programName)),
		"preview": strings.TrimSpace(fmt.Sprintf(`
Convert a document to markdown and print it as HTML.
Useful for checking how rendered markdown looks in a browser.

Examples:
> $ %s preview config.json > config.html
> $ cat data.yaml | %s preview -f yaml preview.html
`, programName, programName)),
		"template": strings.TrimSpace(fmt.Sprintf(`
Print built-in document template text (%s).
Use it as a starting point for a custom template file.

Examples:
> $ %s template > document.gotmpl
> $ %s template -t report templates/report.gotmpl
`, strings.Join(jsondoc.BuiltinTemplateNames(), ", "), programName, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

// printVersionInfo writes version details to the runner output stream.
func (runner *cliRunner) printVersionInfo() error {
	_, err := fmt.Fprintf(runner.stdout, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
	if err != nil {
		return fmt.Errorf("write version to stdout: %w", err)
	}

	return nil
}
