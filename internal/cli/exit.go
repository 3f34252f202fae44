package cli

import "fmt"

// ExitError asks main to exit with Code without printing a generic error line;
// the command has already reported the problem.
type ExitError struct {
	Code   int
	Reason string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit %d: %s", e.Code, e.Reason)
}
