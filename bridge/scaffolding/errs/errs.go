// Package errs provides the error type returned by bridge handlers and
// its mapping onto HTTP responses.
package errs

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
)

// ErrCode identifies a class of failure.
type ErrCode struct {
	value int
}

// String returns the wire name of the code.
func (ec ErrCode) String() string {
	return codeNames[ec]
}

// MarshalText implements encoding.TextMarshaler.
func (ec ErrCode) MarshalText() ([]byte, error) {
	return []byte(ec.String()), nil
}

// Set of error codes.
var (
	InvalidArgument = ErrCode{value: 1}
	NotFound        = ErrCode{value: 2}
	Internal        = ErrCode{value: 3}
	// InternalOnlyLog is logged in full and answered as a generic Internal.
	InternalOnlyLog = ErrCode{value: 4}
)

var codeNames = map[ErrCode]string{
	InvalidArgument: "invalid_argument",
	NotFound:        "not_found",
	Internal:        "internal",
	InternalOnlyLog: "internal_only_log",
}

var httpStatus = map[ErrCode]int{
	InvalidArgument: http.StatusBadRequest,
	NotFound:        http.StatusNotFound,
	Internal:        http.StatusInternalServerError,
	InternalOnlyLog: http.StatusInternalServerError,
}

// Error is the error returned by handlers. FuncName and FileName record
// where it was created.
type Error struct {
	Code     ErrCode `json:"code"`
	Message  string  `json:"message"`
	FuncName string  `json:"-"`
	FileName string  `json:"-"`
	err      error
}

// New wraps err with code.
func New(code ErrCode, err error) *Error {
	pc, filename, line, _ := runtime.Caller(1)

	return &Error{
		Code:     code,
		Message:  err.Error(),
		FuncName: runtime.FuncForPC(pc).Name(),
		FileName: fmt.Sprintf("%s:%d", filename, line),
		err:      err,
	}
}

// Newf constructs an error from a format string.
func Newf(code ErrCode, format string, v ...any) *Error {
	pc, filename, line, _ := runtime.Caller(1)

	return &Error{
		Code:     code,
		Message:  fmt.Sprintf(format, v...),
		FuncName: runtime.FuncForPC(pc).Name(),
		FileName: fmt.Sprintf("%s:%d", filename, line),
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.err
}

// Encode implements web.Encoder. NotFound answers with an empty body.
func (e *Error) Encode() ([]byte, string, error) {
	if e.Code == NotFound {
		return nil, "", nil
	}

	data, err := json.Marshal(e)
	return data, "application/json", err
}

// HTTPStatus implements the web package's status hook.
func (e *Error) HTTPStatus() int {
	if status, ok := httpStatus[e.Code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
