package errors

// Error codes for the monadic toolchain
// These codes are used in diagnostics so that tooling (CLI, REPL, LSP)
// can identify a failure class without parsing messages.
//
// Error code ranges:
// E0100-E0199: Parser errors
// E0200-E0299: Desugaring (do-block and pipeline) errors
// E0300-E0999: Reserved for future use

const (
	// E0100: Source text does not match the grammar
	ErrorSyntax = "E0100"

	// E0200: A do-block has no statements
	ErrorMissingBlock = "E0200"

	// E0201: A do-block ends with `pattern <- action`
	ErrorTrailingBind = "E0201"

	// E0202: A do-block ends with a let statement
	ErrorTrailingLet = "E0202"

	// E0203: A pipe expression does not contain a `|>` chain
	ErrorMissingPipeline = "E0203"

	// E0204: A pipeline stage after the first is not a call
	ErrorPipeStageNotCall = "E0204"

	// E0205: A do-block or pipeline names a strategy that does not exist
	ErrorUnknownStrategy = "E0205"

	// E0206: An unqualified return is called with more than one argument
	ErrorReturnArity = "E0206"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorSyntax:
		return "Source text does not match the grammar"
	case ErrorMissingBlock:
		return "Do-block has no statements"
	case ErrorTrailingBind:
		return "Do-block ends with a binding instead of an expression"
	case ErrorTrailingLet:
		return "Do-block ends with a let statement instead of an expression"
	case ErrorMissingPipeline:
		return "Pipe expression does not contain a |> chain"
	case ErrorPipeStageNotCall:
		return "Pipeline stage is not a call"
	case ErrorUnknownStrategy:
		return "Strategy is not defined"
	case ErrorReturnArity:
		return "Return takes a single value"
	default:
		return "Unknown error code"
	}
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0100" && code < "E0200":
		return "Parser"
	case code >= "E0200" && code < "E0300":
		return "Desugar"
	default:
		return "Unknown"
	}
}
