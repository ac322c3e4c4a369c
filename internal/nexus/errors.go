package nexus

import "fmt"

// Exit codes carried by [Error].
const (
	ExitFailure     = 1
	ExitConfigError = 78
	ExitInterrupted = 130
)

// Error is the failure type returned by [Run]. It implements the ExitCode
// method so the command line can exit with Code.
type Error struct {
	Op   string
	Err  error
	Code int
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit status for this error.
func (e *Error) ExitCode() int {
	if e.Code == 0 {
		return ExitFailure
	}
	return e.Code
}
