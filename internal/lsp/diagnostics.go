package lsp

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"monadic/internal/errors"
)

// ConvertDiagnostics transforms parse and desugar diagnostics into LSP
// diagnostics. The source names the stage ("monadic-parser",
// "monadic-desugar") and the first suggestion, if any, is appended to the
// message.
func ConvertDiagnostics(errs []errors.CompilerError) []protocol.Diagnostic {
	diagnostics := make([]protocol.Diagnostic, 0, len(errs))

	for _, err := range errs {
		line := uint32(max(err.Position.Line-1, 0))     // Convert to 0-based indexing
		start := uint32(max(err.Position.Column-1, 0)) // Convert to 0-based indexing

		message := err.Message
		if len(err.Suggestions) > 0 {
			message += " (" + err.Suggestions[0].Message + ")"
		}

		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: line, Character: start},
				End:   protocol.Position{Line: line, Character: start + uint32(max(err.Length, 1))},
			},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Code:     &protocol.IntegerOrString{Value: err.Code},
			Source:   ptrString("monadic-" + strings.ToLower(errors.GetErrorCategory(err.Code))),
			Message:  message,
		})
	}

	return diagnostics
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}
