// Package lsp implements a language server that checks documents against a
// compiled EBNF grammar and reports mismatches as diagnostics.
package lsp

import (
	"sync"

	"github.com/dhamidi/combo/ebnf/grammar"
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "combo"

var log = commonlog.GetLogger("combo.lsp")

type Server struct {
	checker *Checker
	handler protocol.Handler
	server  *server.Server
	version string

	mu   sync.Mutex
	docs map[protocol.DocumentUri]string
}

func NewServer(g *grammar.Grammar, start, version string) (*Server, error) {
	checker, err := NewChecker(g, start)
	if err != nil {
		return nil, err
	}

	ls := &Server{
		checker: checker,
		version: version,
		docs:    make(map[protocol.DocumentUri]string),
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		TextDocumentDidSave:   ls.textDocumentDidSave,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls, nil
}

func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Infof("checking documents against production %s", ls.checker.Start())
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	ls.update(ctx.Notify, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			ls.update(ctx.Notify, params.TextDocument.URI, textChange.Text)
		}
	}
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ls.mu.Lock()
	delete(ls.docs, params.TextDocument.URI)
	ls.mu.Unlock()

	publish(ctx.Notify, params.TextDocument.URI, []protocol.Diagnostic{})
	return nil
}

func (ls *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	uri := params.TextDocument.URI
	if params.Text != nil {
		ls.update(ctx.Notify, uri, *params.Text)
		return nil
	}

	ls.mu.Lock()
	text, ok := ls.docs[uri]
	ls.mu.Unlock()
	if ok {
		ls.update(ctx.Notify, uri, text)
	}
	return nil
}

func (ls *Server) update(notify glsp.NotifyFunc, uri protocol.DocumentUri, text string) {
	ls.mu.Lock()
	ls.docs[uri] = text
	ls.mu.Unlock()

	diagnostics := ls.checker.Check(text)
	log.Debugf("%s: %d diagnostic(s)", uri, len(diagnostics))
	publish(notify, uri, diagnostics)
}

func publish(notify glsp.NotifyFunc, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
