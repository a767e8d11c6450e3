package service

import (
	"errors"
	"fmt"
)

var (
	ErrForbidden      = errors.New("forbidden")
	ErrClientNotFound = errors.New("client not found")
)

// InvalidError is a rejected request. Msg is safe to return to the caller.
type InvalidError struct {
	Msg string
}

func (e *InvalidError) Error() string { return e.Msg }

func invalid(format string, args ...any) error {
	return &InvalidError{Msg: fmt.Sprintf(format, args...)}
}
