// Package lsp exposes the parser's diagnostics through the Language
// Server Protocol, so an editor can underline the same recoverable and
// unrecoverable errors the check command prints to a terminal.
package lsp

import (
	"net/url"
	"path/filepath"
	"strings"

	"tsfront/pkg/diag"
	"tsfront/pkg/driver"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	glspserver "github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const serverName = "tsfront"

// Server is a single-file, single-connection language server. It does not
// follow cross-file imports the way the check command does — an editor
// only ever asks about the document it has open — so each notification
// runs an independent parse of just that document's text.
type Server struct {
	version string
	handler protocol.Handler
	server  *glspserver.Server
}

// NewServer constructs a Server advertising the given version string in
// its InitializeResult.
func NewServer(version string) *Server {
	s := &Server{version: version}

	s.handler = protocol.Handler{
		Initialize:            s.initialize,
		Initialized:           s.initialized,
		Shutdown:              s.shutdown,
		TextDocumentDidOpen:   s.textDocumentDidOpen,
		TextDocumentDidChange: s.textDocumentDidChange,
		TextDocumentDidSave:   s.textDocumentDidSave,
		TextDocumentDidClose:  s.textDocumentDidClose,
	}
	s.server = glspserver.NewServer(&s.handler, serverName, false)
	return s
}

// RunStdio serves requests over stdin/stdout, the transport every LSP
// client speaks when it launches a server as a subprocess.
func (s *Server) RunStdio() error {
	return s.server.RunStdio()
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()
	capabilities.TextDocumentSync = protocol.TextDocumentSyncKindFull

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.check(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		s.check(ctx, params.TextDocument.URI, whole.Text)
	}
	return nil
}

func (s *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		s.check(ctx, params.TextDocument.URI, *params.Text)
	}
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	// Clear any diagnostics left on the editor's screen for a document
	// that no longer exists in this session.
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

// check parses text as a standalone entry file and republishes the full
// diagnostic set for uri, replacing whatever was published before.
func (s *Server) check(ctx *glsp.Context, uri string, text string) {
	path, err := uriToPath(uri)
	if err != nil {
		path = uri
	}

	p := driver.New()
	diagnostics := []protocol.Diagnostic{}
	if err := p.ParseFile(text, path, true); err == nil {
		for _, d := range p.Diagnostics().All() {
			diagnostics = append(diagnostics, toProtocolDiagnostic(d))
		}
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func toProtocolDiagnostic(d diag.Diagnostic) protocol.Diagnostic {
	start, end, _ := d.Range.Bounds()
	text := d.Range.Text()
	severity := toProtocolSeverity(d.Severity)
	source := serverName
	message := d.Message()

	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: offsetToPosition(text, start),
			End:   offsetToPosition(text, end),
		},
		Severity: &severity,
		Source:   &source,
		Message:  message,
	}
}

func toProtocolSeverity(sev diag.Severity) protocol.DiagnosticSeverity {
	switch sev {
	case diag.SeverityError:
		return protocol.DiagnosticSeverityError
	case diag.SeverityWarning:
		return protocol.DiagnosticSeverityWarning
	default:
		return protocol.DiagnosticSeverityInformation
	}
}

// offsetToPosition converts a 0-based byte offset into an LSP Position,
// whose line and character fields are both 0-based (unlike diag.Position,
// which is 1-based for terminal display).
func offsetToPosition(text string, offset int) protocol.Position {
	if offset > len(text) {
		offset = len(text)
	}
	line, col := uint32(0), uint32(0)
	for i := 0; i < offset; i++ {
		if text[i] == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	return protocol.Position{Line: line, Character: col}
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.ToSlash(filepath.Clean(parsed.Path)), nil
	}
	return uri, nil
}
