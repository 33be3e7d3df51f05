// mcdat2bin - Intel microcode .dat to .bin converter
// errors.go - Error types and process exit codes
// Dual-licensed under MIT and Apache 2.0

package main

import (
	"fmt"

	"github.com/pkg/errors"
)

// Exit codes
const (
	ExitOK               = 0
	ExitIOFailure        = 1
	ExitInvalidExtension = 2
	ExitNotFound         = 3
	ExitOutputExists     = 4
	ExitOpenFailure      = 5
	ExitMalformedToken   = 6
)

// exitCoder is implemented by every error that maps to its own exit status
type exitCoder interface {
	error
	ExitCode() int
}

// UsageError is returned when the argument count is wrong. It is not a
// failure: usage is printed and the process exits cleanly.
type UsageError struct {
	Args int
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("expected exactly one argument, got %d", e.Args)
}

func (e *UsageError) ExitCode() int { return ExitOK }

// InvalidExtensionError is returned when the input path does not name a .dat file
type InvalidExtensionError struct {
	Path string
}

func (e *InvalidExtensionError) Error() string {
	return fmt.Sprintf("file %s is not an Intel ascii .dat file", e.Path)
}

func (e *InvalidExtensionError) ExitCode() int { return ExitInvalidExtension }

// NotFoundError is returned when the input file does not exist
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("cannot locate microcode file %s", e.Path)
}

func (e *NotFoundError) ExitCode() int { return ExitNotFound }

// OutputExistsError is returned when the derived output file is already present
type OutputExistsError struct {
	Path string
}

func (e *OutputExistsError) Error() string {
	return fmt.Sprintf("file %s exists, refusing to overwrite it", e.Path)
}

func (e *OutputExistsError) ExitCode() int { return ExitOutputExists }

// OpenFailureError is returned when the output file cannot be created
type OpenFailureError struct {
	Path string
	Err  error
}

func (e *OpenFailureError) Error() string {
	return fmt.Sprintf("could not open %s: %v", e.Path, e.Err)
}

func (e *OpenFailureError) Unwrap() error { return e.Err }

func (e *OpenFailureError) ExitCode() int { return ExitOpenFailure }

// MalformedTokenError is returned when a token is not a 32-bit hex value
type MalformedTokenError struct {
	Token Token
	Err   error
}

func (e *MalformedTokenError) Error() string {
	return fmt.Sprintf("line %d: malformed token %q: %v", e.Token.Line, e.Token.Text, e.Err)
}

func (e *MalformedTokenError) Unwrap() error { return e.Err }

func (e *MalformedTokenError) ExitCode() int { return ExitMalformedToken }

// exitCodeFor maps an error returned by the converter to a process exit status
func exitCodeFor(err error) int {
	if err == nil {
		return ExitOK
	}
	var coder exitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return ExitIOFailure
}
