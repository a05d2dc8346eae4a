package main

import (
	"strings"
	"testing"

	"tsfront/pkg/diag"
	"tsfront/pkg/source"
)

func TestRenderDiagnosticsText(t *testing.T) {
	store := diag.NewStore()
	src := source.NewSource("main.ts", "main", "const x = ;", true)
	store.Error(diag.CodeExpressionExpected, source.Range{Src: src, Start: 10, End: 11})

	out, err := renderDiagnostics(store, "text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Expression expected") {
		t.Fatalf("expected rendered text to contain the diagnostic message, got %q", out)
	}
}

func TestRenderDiagnosticsJSON(t *testing.T) {
	store := diag.NewStore()
	src := source.NewSource("main.ts", "main", "const x = ;", true)
	store.Error(diag.CodeExpressionExpected, source.Range{Src: src, Start: 10, End: 11})

	out, err := renderDiagnostics(store, "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"severity": "error"`) {
		t.Fatalf("expected JSON output to report the severity, got %q", out)
	}
}

func TestRenderDiagnosticsYAML(t *testing.T) {
	store := diag.NewStore()
	src := source.NewSource("main.ts", "main", "const x = ;", true)
	store.Warning(diag.CodeLineBreakNotPermittedHere, source.Range{Src: src, Start: 0, End: 1})

	out, err := renderDiagnostics(store, "yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "severity: warning") {
		t.Fatalf("expected YAML output to report the severity, got %q", out)
	}
}

func TestRenderDiagnosticsUnknownFormat(t *testing.T) {
	store := diag.NewStore()
	if _, err := renderDiagnostics(store, "xml"); err == nil {
		t.Fatalf("expected an error for an unsupported output format")
	}
}

func TestToDiagnosticRecordsIsEmptyForCleanStore(t *testing.T) {
	store := diag.NewStore()
	if records := toDiagnosticRecords(store); len(records) != 0 {
		t.Fatalf("expected no records for an empty store, got %d", len(records))
	}
}
