package diag

import (
	"fmt"
	"sort"
)

// Stage identifies which compiler phase produced the diagnostic.
type Stage string

const (
	StageLexer  Stage = "lexer"
	StageParser Stage = "parser"
	StageBuild  Stage = "build"
)

// Severity captures how impactful the diagnostic is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityNote    Severity = "note"
)

// Code is a stable identifier for a diagnostic.
type Code string

const (
	// Lexer errors
	CodeLexerUnrecognizedCharacter Code = "LEXER_UNRECOGNIZED_CHARACTER"
	CodeLexerUnknownSymbol         Code = "LEXER_UNKNOWN_SYMBOL"
	CodeLexerUnterminatedString    Code = "LEXER_UNTERMINATED_STRING"
	CodeLexerInvalidEscape         Code = "LEXER_INVALID_ESCAPE"
	CodeLexerMalformedNumber       Code = "LEXER_MALFORMED_NUMBER"
	CodeLexerUnterminatedComment   Code = "LEXER_UNTERMINATED_COMMENT"

	// Parser errors
	CodeParseMissingToken          Code = "PARSE_MISSING_TOKEN"
	CodeParseUnexpectedToken       Code = "PARSE_UNEXPECTED_TOKEN"
	CodeParseNumberUnrepresentable Code = "PARSE_NUMBER_UNREPRESENTABLE"

	// Build driver errors
	CodeBuildReadFailed Code = "BUILD_READ_FAILED"
)

// Span represents a location in source code.
type Span struct {
	Filename string
	Line     int
	Column   int
	Start    int
	End      int
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	if s.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", s.Filename, s.Line, s.Column)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// IsValid returns true if the span has valid location information.
func (s Span) IsValid() bool {
	return s.Line > 0 && s.Column > 0
}

// Diagnostic is a compiler diagnostic surfaced to end-users.
type Diagnostic struct {
	Stage    Stage
	Severity Severity
	Code     Code
	Message  string
	Span     Span
	Notes    []string // Additional notes to display
	Help     string   // Help text shown after the snippet
}

// Error makes a Diagnostic usable as an error value.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s: %s", d.Span, d.Severity, d.Message)
}

// WithNote adds a note to the diagnostic.
func (d Diagnostic) WithNote(note string) Diagnostic {
	d.Notes = append(d.Notes, note)
	return d
}

// WithHelp adds help text to the diagnostic.
func (d Diagnostic) WithHelp(help string) Diagnostic {
	d.Help = help
	return d
}

// List is an ordered collection of diagnostics produced by one parse.
type List []Diagnostic

// HasErrors reports whether any diagnostic in the list is an error. It is the
// aggregate indicator callers consult before handing a tree to later stages.
func (l List) HasErrors() bool {
	for _, d := range l {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// ErrorCount returns the number of error-severity diagnostics.
func (l List) ErrorCount() int {
	n := 0
	for _, d := range l {
		if d.Severity == SeverityError {
			n++
		}
	}
	return n
}

// Sort orders the list by file then source position, keeping the emission
// order of diagnostics that share a position.
func (l List) Sort() {
	sort.SliceStable(l, func(i, j int) bool {
		a, b := l[i].Span, l[j].Span
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		return a.Start < b.Start
	})
}

// Codes returns the diagnostic codes in order. Mostly useful in tests.
func (l List) Codes() []Code {
	codes := make([]Code, len(l))
	for i, d := range l {
		codes[i] = d.Code
	}
	return codes
}
