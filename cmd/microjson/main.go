// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/microjson

// microjson renders typed tree document files into fixed-capacity JSON
// buffers.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/microjson"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/microjson"
	_buildTime string
)

// cliOptions describes microjson CLI flags and subcommands.
type cliOptions struct {
	Version versionCommand `command:"version" description:"Print version information"`
	Render  renderCommand  `command:"render" description:"Render a document file to JSON inside a fixed-capacity buffer"`
	Size    sizeCommand    `command:"size" description:"Print the exact buffer capacity a document needs"`
	Example exampleCommand `command:"example" description:"Print the built-in sample document file"`
}

// renderFlags groups render behaviour flags.
type renderFlags struct {
	Capacity int  `short:"c" long:"capacity" description:"Output buffer capacity in bytes, including the terminator byte" default:"4096"`
	MaxDepth int  `short:"d" long:"max-depth" description:"Maximum nesting depth (0 selects the engine default)"`
	CheckRaw bool `long:"check-raw" description:"Reject raw fragments that are not valid JSON"`
}

// renderCommand renders a document file into a bounded buffer.
type renderCommand struct {
	runner *cliRunner

	RenderFlags renderFlags `group:"Render"`
	Args        struct {
		Input  string `positional-arg-name:"input" description:"Input document file path (optional; stdin when omitted)"`
		Output string `positional-arg-name:"output" description:"Output JSON file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs render subcommand.
func (command *renderCommand) Execute(_ []string) error {
	return command.runner.runRender(command.RenderFlags, command.Args.Input, command.Args.Output)
}

// sizeCommand prints the required buffer capacity for a document file.
type sizeCommand struct {
	runner *cliRunner

	MaxDepth int `short:"d" long:"max-depth" description:"Maximum nesting depth (0 selects the engine default)"`
	Args     struct {
		Input string `positional-arg-name:"input" description:"Input document file path (optional; stdin when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs size subcommand.
func (command *sizeCommand) Execute(_ []string) error {
	return command.runner.runSize(command.MaxDepth, command.Args.Input)
}

// exampleCommand prints the built-in sample document file.
type exampleCommand struct {
	runner *cliRunner

	Args struct {
		Output string `positional-arg-name:"output" description:"Output document file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs example subcommand.
func (command *exampleCommand) Execute(_ []string) error {
	return command.runner.runExample(command.Args.Output)
}

// versionCommand prints version information.
type versionCommand struct {
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	printVersionInfo()
	return nil
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
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
		programName = "microjson"
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

// runRender decodes a document file and renders it into a bounded buffer.
func (runner *cliRunner) runRender(renderFlags renderFlags, inputPath, outputPath string) error {
	if renderFlags.Capacity < 1 {
		return fmt.Errorf("capacity must be at least 1, got %d", renderFlags.Capacity)
	}

	data, err := runner.readDocumentInput(inputPath)
	if err != nil {
		return fmt.Errorf("read document input: %w", err)
	}

	doc, err := decodeDocument(data, renderFlags.CheckRaw)
	if err != nil {
		return err
	}

	buf := make([]byte, renderFlags.Capacity)
	n, err := microjson.Render(buf, doc, microjson.Options{MaxDepth: renderFlags.MaxDepth})
	if err != nil {
		return fmt.Errorf("render document: %w", err)
	}

	return runner.writeOutput(string(buf[:n])+"\n", outputPath, "json")
}

// runSize prints the smallest buffer capacity Render would accept, text
// plus one terminator byte.
func (runner *cliRunner) runSize(maxDepth int, inputPath string) error {
	data, err := runner.readDocumentInput(inputPath)
	if err != nil {
		return fmt.Errorf("read document input: %w", err)
	}

	doc, err := decodeDocument(data, false)
	if err != nil {
		return err
	}

	need, err := microjson.Size(doc, microjson.Options{MaxDepth: maxDepth})
	if err != nil {
		return fmt.Errorf("measure document: %w", err)
	}

	if _, err := fmt.Fprintf(runner.stdout, "%d\n", need+1); err != nil {
		return fmt.Errorf("write size to stdout: %w", err)
	}

	return nil
}

// runExample writes the built-in sample document file to stdout or file.
func (runner *cliRunner) runExample(outputPath string) error {
	return runner.writeOutput(microjson.SampleDocumentYAML, outputPath, "document")
}

// writeOutput writes text to stdout when path is empty, to a file otherwise.
func (runner *cliRunner) writeOutput(text, outputPath, kind string) error {
	if strings.TrimSpace(outputPath) == "" {
		if _, err := io.WriteString(runner.stdout, text); err != nil {
			return fmt.Errorf("write %s to stdout: %w", kind, err)
		}

		return nil
	}

	if err := os.WriteFile(outputPath, []byte(text), 0o600); err != nil {
		return fmt.Errorf("write %s file %q: %w", kind, outputPath, err)
	}

	return nil
}

// readDocumentInput reads a document file from path or stdin.
func (runner *cliRunner) readDocumentInput(path string) ([]byte, error) {
	path = strings.TrimSpace(path)
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read document file %q: %w", path, err)
		}

		return data, nil
	}

	data, err := io.ReadAll(runner.stdin)
	if err != nil {
		return nil, fmt.Errorf("read document from stdin: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("read document from stdin: empty input")
	}

	return data, nil
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
	options.Render.runner = runner
	options.Size.runner = runner
	options.Example.runner = runner

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
		"render": strings.TrimSpace(fmt.Sprintf(`
Render a typed tree document (YAML or JSON) to compact JSON text inside a
fixed-capacity buffer. Fails when text plus terminator does not fit in
--capacity bytes; nothing is ever written past the capacity.

Examples:
> $ %s render document.yaml > out.json
> $ cat document.yaml | %s render -c 256
`, programName, programName)),
		"size": strings.TrimSpace(fmt.Sprintf(`
Print the smallest --capacity value the render subcommand would accept for a
document: rendered text length plus one terminator byte.

Examples:
> $ %s size document.yaml
`, programName)),
		"example": strings.TrimSpace(fmt.Sprintf(`
Print the built-in sample document covering every value type.
Use it as a starting point for document files.

Examples:
> $ %s example > document.yaml
> $ %s example | %s render
`, programName, programName, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

func printVersionInfo() {
	fmt.Printf(`url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
