package lsp

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"monadic/internal/compiler"
)

var log = commonlog.GetLogger("monadic.lsp")

// Define the set of supported semantic token types (as required by the LSP spec)
var SemanticTokenTypes = []string{
	"namespace",
	"type",
	"typeParameter",
	"function",
	"variable",
	"parameter",
	"property",
	"keyword",
	"number",
	"string",
	"operator",
}

// Define the set of supported semantic token modifiers (for extra tagging like declaration, readonly, etc.)
var SemanticTokenModifiers = []string{
	"declaration",
	"definition",
	"readonly",
	"static",
	"deprecated",
	"abstract",
}

// Handler implements the LSP server handlers. Documents are recompiled on
// every open and change and kept by URI.
type Handler struct {
	mu   sync.RWMutex
	docs map[string]*compiler.Unit
}

func NewHandler() *Handler {
	return &Handler{
		docs: make(map[string]*compiler.Unit),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider:   ptrBool(false),
				TriggerCharacters: []string{"."},
			},
			HoverProvider: true,
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
	}, nil
}

func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("initialized")
	return nil
}

func (h *Handler) Shutdown(ctx *glsp.Context) error {
	log.Info("shutdown")
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (h *Handler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen compiles the opened text and publishes its diagnostics.
func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Infof("opened %s", params.TextDocument.URI)

	unit := h.update(params.TextDocument.URI, params.TextDocument.Text)
	publishDiagnostics(ctx, params.TextDocument.URI, unit)
	return nil
}

// TextDocumentDidChange recompiles the document. Sync is full, so the last
// change carries the whole text; without one the file is read from disk.
func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Debugf("changed %s", params.TextDocument.URI)

	text, ok := latestText(params.ContentChanges)
	if !ok {
		var err error
		if text, err = readDocument(params.TextDocument.URI); err != nil {
			return fmt.Errorf("failed to update document: %w", err)
		}
	}

	unit := h.update(params.TextDocument.URI, text)
	publishDiagnostics(ctx, params.TextDocument.URI, unit)
	return nil
}

func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Infof("closed %s", params.TextDocument.URI)

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.docs, params.TextDocument.URI)
	return nil
}

// TextDocumentCompletion offers the operations of a strategy after
// "<strategy>." and keywords and strategy names elsewhere.
func (h *Handler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	unit, err := h.document(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	prefix := linePrefix(unit.Source, params.Position)
	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        completionItems(prefix),
	}, nil
}

// TextDocumentHover describes the strategy or operation under the cursor.
func (h *Handler) TextDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	unit, err := h.document(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}
	if unit.Parsed == nil {
		return nil, nil
	}
	return hoverAt(unit.Parsed, params.Position), nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *Handler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	log.Debugf("semantic tokens for %s", params.TextDocument.URI)

	unit, err := h.document(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	tokens := collectSemanticTokens(unit.Parsed)

	data := []uint32{}
	var prevLine, prevStart uint32

	// Encode tokens into LSP wire format (using delta-line, delta-start compression)
	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return &protocol.SemanticTokens{
		Data: data,
	}, nil
}

func (h *Handler) update(uri protocol.DocumentUri, text string) *compiler.Unit {
	path, err := uriToPath(uri)
	if err != nil {
		path = uri
	}

	unit := compiler.Compile(path, text)

	h.mu.Lock()
	h.docs[uri] = unit
	h.mu.Unlock()

	return unit
}

// document returns the compiled document, loading it from disk when the
// client never opened it.
func (h *Handler) document(uri protocol.DocumentUri) (*compiler.Unit, error) {
	h.mu.RLock()
	unit, ok := h.docs[uri]
	h.mu.RUnlock()
	if ok {
		return unit, nil
	}

	text, err := readDocument(uri)
	if err != nil {
		return nil, err
	}
	return h.update(uri, text), nil
}

func latestText(changes []any) (string, bool) {
	for i := len(changes) - 1; i >= 0; i-- {
		switch change := changes[i].(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			return change.Text, true
		case protocol.TextDocumentContentChangeEvent:
			if change.Range == nil {
				return change.Text, true
			}
		}
	}
	return "", false
}

func readDocument(uri protocol.DocumentUri) (string, error) {
	path, err := uriToPath(uri)
	if err != nil {
		return "", err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return string(content), nil
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) -> C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

// publishDiagnostics always sends the full list, so an empty one clears
// what the client showed before.
func publishDiagnostics(ctx *glsp.Context, uri protocol.URI, unit *compiler.Unit) {
	diagnostics := ConvertDiagnostics(unit.Errors)

	if log.AllowLevel(commonlog.Debug) {
		if diagnosticsJSON, err := json.Marshal(diagnostics); err == nil {
			log.Debugf("diagnostics for %s: %s", uri, diagnosticsJSON)
		}
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}

func ptrString(s string) *string {
	return &s
}
