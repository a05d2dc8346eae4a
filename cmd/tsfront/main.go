// Command tsfront parses one or more source files and reports
// diagnostics, or dumps the resulting AST when asked to.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"tsfront/pkg/config"
	"tsfront/pkg/diag"
	"tsfront/pkg/driver"
	"tsfront/pkg/lsp"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tsfront",
		Short: "Front-end tokenizer/parser for a strict scripting-language subset",
	}

	var dumpAST bool
	var format string
	var configPath string
	checkCmd := &cobra.Command{
		Use:   "check <entry-file>",
		Short: "Parse a file and every file it transitively imports, reporting diagnostics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args[0], dumpAST, format, configPath)
		},
	}
	checkCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print each parsed source's top-level statements")
	checkCmd.Flags().StringVar(&format, "format", "text", "diagnostic output format: text, json, or yaml")
	checkCmd.Flags().StringVar(&configPath, "config", "tsfront.toml", "path to a project config file")

	lspCmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start a Language Server Protocol server over stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			return lsp.NewServer("0.1.0").RunStdio()
		},
	}

	rootCmd.AddCommand(checkCmd, lspCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCheck(entryPath string, dumpAST bool, format string, configPath string) error {
	project, err := config.Load(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		project = config.Default()
	}

	p := driver.New()

	if err := parseAndFollow(p, entryPath, true, project); err != nil {
		return err
	}
	for {
		next, ok := p.NextFile()
		if !ok {
			break
		}
		if err := parseAndFollow(p, next, false, project); err != nil {
			return err
		}
	}

	program, err := p.Finish()
	if err != nil {
		return err
	}

	if dumpAST {
		for _, src := range program.Sources {
			fmt.Printf("--- %s ---\n", src.DisplayPath())
			for _, stmt := range src.Statements {
				fmt.Println(stmt)
			}
		}
	}

	store := p.Diagnostics()
	if store.Len() > 0 {
		rendered, err := renderDiagnostics(store, format)
		if err != nil {
			return err
		}
		fmt.Print(rendered)
	}

	failed := false
	for _, d := range store.All() {
		if project.FailsOn(d.Severity.String()) {
			failed = true
			break
		}
	}
	if failed {
		return fmt.Errorf("tsfront: parsing failed with diagnostics the project config marks fatal")
	}
	return nil
}

// diagnosticRecord is the serialization shape used by the json and yaml
// output formats: a flattened view of a diag.Diagnostic that doesn't leak
// the Ranger interface or its concrete Range type to encoders that can't
// see through it.
type diagnosticRecord struct {
	Code     int    `json:"code" yaml:"code"`
	Severity string `json:"severity" yaml:"severity"`
	Source   string `json:"source" yaml:"source"`
	Line     int    `json:"line" yaml:"line"`
	Column   int    `json:"column" yaml:"column"`
	Message  string `json:"message" yaml:"message"`
}

func renderDiagnostics(store *diag.Store, format string) (string, error) {
	switch format {
	case "text", "":
		return diag.Render(store), nil
	case "json", "yaml":
		records := toDiagnosticRecords(store)
		var out []byte
		var err error
		if format == "json" {
			out, err = json.MarshalIndent(records, "", "  ")
		} else {
			out, err = yaml.Marshal(records)
		}
		if err != nil {
			return "", fmt.Errorf("tsfront: encoding diagnostics as %s: %w", format, err)
		}
		return string(out) + "\n", nil
	default:
		return "", fmt.Errorf("tsfront: unknown output format %q (want text, json, or yaml)", format)
	}
}

func toDiagnosticRecords(store *diag.Store) []diagnosticRecord {
	records := make([]diagnosticRecord, 0, store.Len())
	for _, d := range store.All() {
		_, _, sourceName := d.Range.Bounds()
		pos := d.Range.Resolve(d.Range.Text())
		records = append(records, diagnosticRecord{
			Code:     int(d.Code),
			Severity: d.Severity.String(),
			Source:   sourceName,
			Line:     pos.Line,
			Column:   pos.Column,
			Message:  d.Message(),
		})
	}
	return records
}

// parseAndFollow reads path from disk and feeds it to the driver.
// isEntry is only true for the file named on the command line; every
// path discovered through an import is resolved relative to the
// filesystem, mirroring how the work-list's normalized paths are
// resolved against the importing Source in-memory. project.Discovery
// supplies the on-disk extension appended to a normalized (extensionless)
// dependency path.
func parseAndFollow(p *driver.Parser, path string, isEntry bool, project *config.Project) error {
	diskPath := path
	if !isEntry {
		diskPath = path + project.Discovery.Extension
	}
	text, err := os.ReadFile(diskPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", diskPath, err)
	}
	normalized := filepath.ToSlash(path)
	return p.ParseFile(string(text), normalized, isEntry)
}
