package cmd

import (
	"errors"
	"fmt"
)

// SilentExitError signals an exit code without printing anything.
// Scripting commands (e.g. "lm query index --query has-package") use
// it so shell callers can branch on the exit status.
type SilentExitError struct {
	Code int
}

func (e *SilentExitError) Error() string {
	return fmt.Sprintf("silent exit with code %d", e.Code)
}

// NewSilentExit creates a SilentExitError with the given code.
func NewSilentExit(code int) error {
	return &SilentExitError{Code: code}
}

// IsSilentExit reports whether err is a SilentExitError and returns
// its exit code.
func IsSilentExit(err error) (int, bool) {
	var silent *SilentExitError
	if errors.As(err, &silent) {
		return silent.Code, true
	}
	return 0, false
}
