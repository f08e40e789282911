package natives

import (
	"fmt"

	"github.com/lox-lang/golox/internal/errors"
)

// runtimeErr builds a RuntimeError with no token; the call site
// (internal/interp's evalCall) always overwrites the location with the
// call's closing paren, so natives never need to thread a token through.
func runtimeErr(format string, args ...any) *errors.RuntimeError {
	return &errors.RuntimeError{Message: fmt.Sprintf(format, args...)}
}
