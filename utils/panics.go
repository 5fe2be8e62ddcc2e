package utils

import (
	"errors"
	"fmt"
)

var PanicError = errors.New("recovered panic")

// RecoverWithError turns a panic into an error; use it as a deferred call.
func RecoverWithError(err *error) {
	if rv := recover(); rv != nil {
		*err = fmt.Errorf("%w: %v", PanicError, rv)
	}
}
