package errorx

import (
	"errors"
	"fmt"
)

// CodeError is an error carrying a business code.
// It supports wrapping an underlying cause and works with errors.Is/errors.As.
type CodeError struct {
	Code  int
	Msg   string
	cause error
}

func (e *CodeError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.cause)
	}
	return e.Msg
}

// Unwrap exposes the wrapped cause to errors.Is/errors.As.
func (e *CodeError) Unwrap() error {
	return e.cause
}

// New creates a CodeError with the given code and message.
func New(code int, msg string) *CodeError {
	return &CodeError{
		Code: code,
		Msg:  msg,
	}
}

// Newf creates a CodeError with a formatted message.
func Newf(code int, format string, args ...any) *CodeError {
	return &CodeError{
		Code: code,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// Wrap attaches a business code and message to an underlying error.
// Usage: errorx.Wrap(err, CodeNotFound, "contact does not exist")
func Wrap(err error, code int, msg string) *CodeError {
	return &CodeError{
		Code:  code,
		Msg:   msg,
		cause: err,
	}
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, code int, format string, args ...any) *CodeError {
	return &CodeError{
		Code:  code,
		Msg:   fmt.Sprintf(format, args...),
		cause: err,
	}
}

// GetCode extracts the business code from an error chain.
// Non-CodeError errors report CodeServerBusy.
func GetCode(err error) int {
	var codeErr *CodeError
	if errors.As(err, &codeErr) {
		return codeErr.Code
	}
	return CodeServerBusy
}

// Business codes. The handler layer maps these onto HTTP statuses:
// validation and duplicate-name conflicts become 400, not-found 404,
// unauthorized 401, external directory failures 502, the rest 500.
const (
	CodeSuccess         = 1000
	CodeInvalidParam    = 1001 // malformed input, missing required field
	CodeDuplicateName   = 1002 // a non-archived contact already carries this name
	CodeUserExist       = 1003
	CodeInvalidPassword = 1004
	CodeServerBusy      = 1005
	CodeUnauthorized    = 1006
	CodeNotFound        = 1008
	CodeDBError         = 1010
	CodeCacheError      = 1011
	CodeExternalService = 1012 // remote directory call failed
)

// Predefined instances, usable directly or with errors.Is.
var (
	ErrInvalidParam = New(CodeInvalidParam, "invalid request parameters")
	ErrServerBusy   = New(CodeServerBusy, "server busy")
)

// IsNotFound reports whether err carries CodeNotFound. The repository
// layer maps gorm.ErrRecordNotFound onto that code, so a code check is
// sufficient everywhere above it.
func IsNotFound(err error) bool {
	var codeErr *CodeError
	return errors.As(err, &codeErr) && codeErr.Code == CodeNotFound
}
