package lsp

import (
	"testing"

	"tsfront/pkg/diag"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestOffsetToPositionCountsLinesAndColumns(t *testing.T) {
	text := "const a = 1;\nconst b = 2;\n"
	line, col := 0, 0
	pos := offsetToPosition(text, 0)
	if pos.Line != uint32(line) || pos.Character != uint32(col) {
		t.Fatalf("expected start of file to resolve to 0:0, got %d:%d", pos.Line, pos.Character)
	}

	secondLineStart := len("const a = 1;\n")
	pos = offsetToPosition(text, secondLineStart)
	if pos.Line != 1 || pos.Character != 0 {
		t.Fatalf("expected offset %d to resolve to 1:0, got %d:%d", secondLineStart, pos.Line, pos.Character)
	}
}

func TestOffsetToPositionClampsPastEnd(t *testing.T) {
	text := "abc"
	pos := offsetToPosition(text, 100)
	if pos.Line != 0 || pos.Character != 3 {
		t.Fatalf("expected an out-of-range offset to clamp to the text length, got %d:%d", pos.Line, pos.Character)
	}
}

func TestURIToPathStripsFileScheme(t *testing.T) {
	got, err := uriToPath("file:///home/user/project/main.ts")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "/home/user/project/main.ts" {
		t.Fatalf("expected a stripped filesystem path, got %q", got)
	}
}

func TestURIToPathPassesThroughNonFileScheme(t *testing.T) {
	got, err := uriToPath("untitled:Untitled-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "untitled:Untitled-1" {
		t.Fatalf("expected a non-file URI to pass through unchanged, got %q", got)
	}
}

func TestToProtocolSeverityMapsErrorAndWarning(t *testing.T) {
	if sev := toProtocolSeverity(diag.SeverityError); sev != protocol.DiagnosticSeverityError {
		t.Fatalf("expected diag.SeverityError to map to the LSP error severity, got %v", sev)
	}
	if sev := toProtocolSeverity(diag.SeverityWarning); sev != protocol.DiagnosticSeverityWarning {
		t.Fatalf("expected diag.SeverityWarning to map to the LSP warning severity, got %v", sev)
	}
}
