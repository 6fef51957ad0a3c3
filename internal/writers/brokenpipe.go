package writers

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether err came from writing to a closed pipe,
// e.g. when listing output is piped into `head`. Such errors are
// suppressed instead of failing the command.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
