// Package core holds the shared HTTP response envelope used by all handlers.
package core

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kiosk404/taskmind/pkg/errorx"
	"github.com/kiosk404/taskmind/pkg/logger"
)

// ErrResponse is the error envelope returned for failed requests. Message is
// always the registered user-safe text, never the internal error chain.
type ErrResponse struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Reference string `json:"reference,omitempty"`
}

// WriteResponse writes err as a coded error envelope, or data with 200 when
// err is nil.
func WriteResponse(c *gin.Context, err error, data any) {
	if err != nil {
		coder := errorx.ParseCoder(err)
		logger.Error("[HTTP] %s %s failed (code=%d): %v",
			c.Request.Method, c.Request.URL.Path, coder.Code(), err)
		c.JSON(coder.HTTPStatus(), ErrResponse{
			Code:      coder.Code(),
			Message:   coder.String(),
			Reference: coder.Reference(),
		})
		return
	}

	c.JSON(http.StatusOK, data)
}
