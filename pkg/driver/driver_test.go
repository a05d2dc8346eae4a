package driver

import "testing"

func TestParseFileAndFinishWithNoImports(t *testing.T) {
	p := New()
	if err := p.ParseFile("const x: i32 = 1;", "main.ts", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	program, err := p.Finish()
	if err != nil {
		t.Fatalf("unexpected error from Finish: %v", err)
	}
	if len(program.Sources) != 1 {
		t.Fatalf("expected one Source, got %d", len(program.Sources))
	}
}

func TestParseFileDuplicatePathFailsHard(t *testing.T) {
	p := New()
	if err := p.ParseFile("const x = 1;", "main.ts", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := p.ParseFile("const y = 2;", "main.ts", false)
	if err == nil {
		t.Fatalf("expected a duplicate-source error")
	}
}

func TestFinishFailsWithNonEmptyBacklog(t *testing.T) {
	p := New()
	if err := p.ParseFile(`import { a } from "./dep";`, "main.ts", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.Finish(); err == nil {
		t.Fatalf("expected Finish to fail while './dep' is still undischarged")
	}

	path, ok := p.NextFile()
	if !ok || path != "dep" {
		t.Fatalf("expected NextFile to return the normalized dependency 'dep', got %q, %v", path, ok)
	}
	if err := p.ParseFile("export const a = 1;", path, false); err != nil {
		t.Fatalf("unexpected error resolving dependency: %v", err)
	}
	if _, err := p.Finish(); err != nil {
		t.Fatalf("expected Finish to succeed once the backlog is drained: %v", err)
	}
}

func TestDiagnosticsReportTopLevelReturn(t *testing.T) {
	p := New()
	_ = p.ParseFile("return 1;", "main.ts", true)
	if !p.Diagnostics().HasErrors() {
		t.Fatalf("expected a diagnostic for a top-level return")
	}
}
