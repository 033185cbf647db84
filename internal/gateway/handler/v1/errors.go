package v1

import (
	"net/http"

	"github.com/kiosk404/taskmind/pkg/errorx"
)

// Gateway handler error codes.
// Code format: 1XXYYZ
//   - 1:  module prefix (gateway handler)
//   - XX: resource group (00=common, 01=chat)
//   - YY: sequential error number
//   - Z:  reserved (0)

const (
	// Common request errors (100xxx).
	ErrBind     = 100001
	ErrIdentity = 100002

	// Chat errors (1001xx).
	ErrMessageEmpty   = 100101
	ErrMessageTooLong = 100102
)

func init() {
	// Common.
	errorx.MustRegister(newCoder(ErrBind, http.StatusBadRequest, "Request body binding failed"))
	errorx.MustRegister(newCoder(ErrIdentity, http.StatusUnauthorized, "Caller identity is missing"))

	// Chat.
	errorx.MustRegister(newCoder(ErrMessageEmpty, http.StatusBadRequest, "Message must not be empty"))
	errorx.MustRegister(newCoder(ErrMessageTooLong, http.StatusBadRequest, "Message exceeds the maximum length"))
}

type coder struct {
	code int
	http int
	msg  string
}

func newCoder(code, httpStatus int, msg string) *coder {
	return &coder{code: code, http: httpStatus, msg: msg}
}

func (c *coder) Code() int         { return c.code }
func (c *coder) HTTPStatus() int   { return c.http }
func (c *coder) String() string    { return c.msg }
func (c *coder) Reference() string { return "" }
