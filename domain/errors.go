package domain

import (
	"errors"
	"fmt"

	"github.com/x-xyz/gallery/base/decode"
)

var (
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")
	// ErrInvalidResource wraps every resource construction failure
	ErrInvalidResource = decode.ErrInvalid
	// ErrRequestFailed wraps every non-2xx backend response
	ErrRequestFailed       = errors.New("request failed")
	ErrInvalidNumberFormat = errors.New("invalid number format")

	// account errors
	ErrInvalidAddress   = errors.New("Invalid address")
	ErrInvalidSignature = errors.New("Invalid signature")
	ErrNoAccount        = errors.New("no account connected")
	ErrSigningFailed    = errors.New("signing failed")
)

// RequestFailure is returned by the gallery client for a non-2xx status
type RequestFailure struct {
	Method     string
	Url        string
	StatusCode int
	Body       string
}

func (e *RequestFailure) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Url, e.StatusCode, e.Body)
}

func (e *RequestFailure) Is(target error) bool {
	return target == ErrRequestFailed || (target == ErrNotFound && e.StatusCode == 404)
}
