package main

import (
	"errors"
	"fmt"
)

// Process exit codes, sysexits-style.
const (
	codeOK          = 0
	codeUsage       = 64 // bad arguments or flags
	codeMissingFile = 65 // input file cannot be opened
	codeBadData     = 66 // input file is malformed
	codeInternal    = 70 // inconsistency or unexpected failure
)

// exitError attaches an exit code to an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func withCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}

func usageErrorf(format string, args ...any) error {
	return withCode(codeUsage, fmt.Errorf(format, args...))
}

// exitCode maps err to a process exit code; untagged errors are internal.
func exitCode(err error) int {
	if err == nil {
		return codeOK
	}
	var e *exitError
	if errors.As(err, &e) {
		return e.code
	}
	return codeInternal
}
