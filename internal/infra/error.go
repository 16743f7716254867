package infra

import (
	"errors"
	"log/slog"

	"evcontrol/internal/pkg/errs"
)

type RequestErrorKind string

// RequestError is the only failure the backend client reports. Every kind
// matches errs.ErrRequestFailed; Kind and Status exist for logs.
type RequestError struct {
	Kind   RequestErrorKind
	Op     string
	Status int
	msg    string
	err    error // wrapped low-level error
}

func (e RequestError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.Op + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.Op + ": " + e.msg
}

func (e RequestError) Unwrap() error {
	return e.err
}

func (e RequestError) Is(target error) bool {
	return target == errs.ErrRequestFailed
}

func WrapRequestErr(slogger *slog.Logger, kind RequestErrorKind, op string, status int, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
		slog.String("op", op),
	}
	if status != 0 {
		logArgs = append(logArgs, slog.Int("status", status))
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	slogger.Error("Backend request error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RequestError{Kind: kind, Op: op, Status: status, msg: msg, err: err}
}

func IsKind(err error, kind RequestErrorKind) bool {
	var e RequestError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Backend error kinds
const (
	KindTransport   RequestErrorKind = "TRANSPORT"
	KindStatus      RequestErrorKind = "UNEXPECTED_STATUS"
	KindEncode      RequestErrorKind = "ENCODE"
	KindDecode      RequestErrorKind = "DECODE"
	KindBadResponse RequestErrorKind = "BAD_RESPONSE"
)
