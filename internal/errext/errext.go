// Package errext attaches exit codes and user hints to errors so the command
// line front end can pick both up after the error has been wrapped.
package errext

import (
	"errors"

	"github.com/mix-lang/mix/internal/errext/exitcodes"
)

// HasExitCode is a wrapper around an error with an attached exit code.
type HasExitCode interface {
	error
	ExitCode() exitcodes.ExitCode
}

// WithExitCodeIfNone attaches an exit code to err unless some error in its
// chain already carries one. A nil err stays nil.
func WithExitCodeIfNone(err error, exitCode exitcodes.ExitCode) error {
	if err == nil {
		return nil
	}
	var ecerr HasExitCode
	if errors.As(err, &ecerr) {
		return err
	}
	return withExitCode{err, exitCode}
}

type withExitCode struct {
	error
	exitCode exitcodes.ExitCode
}

func (wh withExitCode) Unwrap() error {
	return wh.error
}

func (wh withExitCode) ExitCode() exitcodes.ExitCode {
	return wh.exitCode
}

var _ HasExitCode = withExitCode{}

// HasHint is a wrapper around an error with an attached user hint, usually a
// suggestion on how to fix the problem.
type HasHint interface {
	error
	Hint() string
}

// WithHint attaches a hint to err. When err already had a hint the result
// reads "new hint (old hint)".
func WithHint(err error, hint string) error {
	if err == nil {
		return nil
	}
	return withHint{err, hint}
}

type withHint struct {
	error
	hint string
}

func (wh withHint) Unwrap() error {
	return wh.error
}

func (wh withHint) Hint() string {
	hint := wh.hint
	var oldhint HasHint
	if errors.As(wh.error, &oldhint) {
		hint = hint + " (" + oldhint.Hint() + ")"
	}
	return hint
}

var _ HasHint = withHint{}

// Split returns the exit code and hint carried anywhere in err's chain.
// fallback is used when no exit code is attached.
func Split(err error, fallback exitcodes.ExitCode) (exitcodes.ExitCode, string) {
	code := fallback
	var ecerr HasExitCode
	if errors.As(err, &ecerr) {
		code = ecerr.ExitCode()
	}

	var hint string
	var herr HasHint
	if errors.As(err, &herr) {
		hint = herr.Hint()
	}
	return code, hint
}
