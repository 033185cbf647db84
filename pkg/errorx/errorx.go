// Package errorx provides coded errors that map business error numbers to
// HTTP status codes and user-safe messages. Coders are registered once at
// init time; WithCode/WrapC attach a code to an error at the call site.
package errorx

import (
	"fmt"
	"net/http"
	"sync"
)

// Coder describes an error code: the business code, the HTTP status it maps
// to, the external (user-safe) message, and an optional reference URL.
type Coder interface {
	Code() int
	HTTPStatus() int
	String() string
	Reference() string
}

var (
	codesMu sync.Mutex
	codes   = map[int]Coder{}
)

// Register registers a Coder, overwriting any previous registration.
func Register(coder Coder) {
	if coder.Code() == 0 {
		panic("code 0 is reserved as unknown error code")
	}
	codesMu.Lock()
	defer codesMu.Unlock()
	codes[coder.Code()] = coder
}

// MustRegister registers a Coder and panics if the code is already taken.
func MustRegister(coder Coder) {
	if coder.Code() == 0 {
		panic("code 0 is reserved as unknown error code")
	}
	codesMu.Lock()
	defer codesMu.Unlock()
	if _, ok := codes[coder.Code()]; ok {
		panic(fmt.Sprintf("code %d already registered", coder.Code()))
	}
	codes[coder.Code()] = coder
}

type withCode struct {
	err  error
	code int
	msg  string
}

func (w *withCode) Error() string {
	if w.err != nil {
		return fmt.Sprintf("%s: %s", w.msg, w.err.Error())
	}
	return w.msg
}

func (w *withCode) Unwrap() error { return w.err }

// WithCode creates an error carrying the given code.
func WithCode(code int, format string, args ...any) error {
	return &withCode{
		code: code,
		msg:  fmt.Sprintf(format, args...),
	}
}

// WrapC wraps err with a code and a contextual message.
func WrapC(err error, code int, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &withCode{
		err:  err,
		code: code,
		msg:  fmt.Sprintf(format, args...),
	}
}

// unknownCoder is returned for errors that carry no registered code.
var unknownCoder Coder = defaultCoder{
	code: 1, http: http.StatusInternalServerError,
	msg: "An internal server error occurred",
}

type defaultCoder struct {
	code int
	http int
	msg  string
}

func (c defaultCoder) Code() int         { return c.code }
func (c defaultCoder) HTTPStatus() int   { return c.http }
func (c defaultCoder) String() string    { return c.msg }
func (c defaultCoder) Reference() string { return "" }

// ParseCoder resolves the Coder for an error. An error without a code, or
// with an unregistered code, resolves to the unknown coder.
func ParseCoder(err error) Coder {
	if err == nil {
		return nil
	}
	if w, ok := err.(*withCode); ok {
		codesMu.Lock()
		defer codesMu.Unlock()
		if coder, ok := codes[w.code]; ok {
			return coder
		}
	}
	return unknownCoder
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code int) bool {
	if w, ok := err.(*withCode); ok {
		return w.code == code
	}
	return false
}
