package lexer

import (
	"github.com/mix-lang/mix/internal/diag"
)

type LexerErrorKind int

const (
	ErrUnrecognizedCharacter LexerErrorKind = iota
	ErrUnknownSymbol
	ErrUnterminatedString
	ErrInvalidEscape
	ErrMalformedNumber
	ErrUnterminatedComment
)

func (k LexerErrorKind) String() string {
	switch k {
	case ErrUnrecognizedCharacter:
		return "UnrecognizedCharacter"
	case ErrUnknownSymbol:
		return "UnknownSymbol"
	case ErrUnterminatedString:
		return "UnterminatedString"
	case ErrInvalidEscape:
		return "InvalidEscape"
	case ErrMalformedNumber:
		return "MalformedNumber"
	case ErrUnterminatedComment:
		return "UnterminatedComment"
	default:
		return "Unknown"
	}
}

// Fatal reports whether an error of this kind stops the scan.
func (k LexerErrorKind) Fatal() bool {
	return k == ErrUnrecognizedCharacter
}

func (k LexerErrorKind) diagnosticCode() diag.Code {
	switch k {
	case ErrUnrecognizedCharacter:
		return diag.CodeLexerUnrecognizedCharacter
	case ErrUnknownSymbol:
		return diag.CodeLexerUnknownSymbol
	case ErrUnterminatedString:
		return diag.CodeLexerUnterminatedString
	case ErrInvalidEscape:
		return diag.CodeLexerInvalidEscape
	case ErrMalformedNumber:
		return diag.CodeLexerMalformedNumber
	default:
		return diag.CodeLexerUnterminatedComment
	}
}

func (k LexerErrorKind) severity() diag.Severity {
	if k == ErrUnterminatedComment {
		return diag.SeverityWarning
	}
	return diag.SeverityError
}

type LexerError struct {
	Kind    LexerErrorKind
	Message string
	Span    Span
}

// Error implements the error interface.
func (e LexerError) Error() string {
	return e.Span.String() + ": " + e.Message
}

// ToDiagnostic converts a lexer error into a shared diagnostic structure.
func (e LexerError) ToDiagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Stage:    diag.StageLexer,
		Severity: e.Kind.severity(),
		Code:     e.Kind.diagnosticCode(),
		Message:  e.Message,
		Span: diag.Span{
			Filename: e.Span.Filename,
			Line:     e.Span.Line,
			Column:   e.Span.Column,
			Start:    e.Span.Start,
			End:      e.Span.End,
		},
	}
}
