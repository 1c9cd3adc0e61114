package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies where a request failed: bad client input, missing server
// configuration, a third-party call, or webhook signature verification.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindMethodNotAllowed
	KindConfig
	KindUpstream
	KindSignature
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func Validationf(format string, a ...any) error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, a...)}
}

func Configf(format string, a ...any) error {
	return &Error{Kind: KindConfig, Msg: fmt.Sprintf(format, a...)}
}

func Upstream(err error, format string, a ...any) error {
	return &Error{Kind: KindUpstream, Msg: fmt.Sprintf(format, a...), Err: err}
}

func Signaturef(format string, a ...any) error {
	return &Error{Kind: KindSignature, Msg: fmt.Sprintf(format, a...)}
}

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// Status maps an error to the HTTP status reported at the handler boundary.
// Anything unclassified is a server-side failure.
func Status(err error) int {
	switch KindOf(err) {
	case KindValidation, KindSignature:
		return http.StatusBadRequest
	case KindMethodNotAllowed:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}
