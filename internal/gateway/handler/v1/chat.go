package v1

import (
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/kiosk404/taskmind/internal/gateway/handler/middleware"
	"github.com/kiosk404/taskmind/internal/gateway/service/chat/domain/service"
	"github.com/kiosk404/taskmind/internal/pkg/core"
	"github.com/kiosk404/taskmind/pkg/errorx"
)

// ChatHandler handles POST /api/v1/chat: one user message in, one agent
// reply out. The caller identity comes from the auth middleware, never from
// the request body.
type ChatHandler struct {
	coordinator *service.Coordinator
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(coordinator *service.Coordinator) *ChatHandler {
	return &ChatHandler{coordinator: coordinator}
}

// Handle is the entry point for POST /api/v1/chat.
func (h *ChatHandler) Handle(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		core.WriteResponse(c, errorx.WrapC(err, ErrBind, "bind chat request"), nil)
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		core.WriteResponse(c, errorx.WithCode(ErrMessageEmpty, "message must not be empty"), nil)
		return
	}
	if utf8.RuneCountInString(message) > MessageMaxLen {
		core.WriteResponse(c, errorx.WithCode(ErrMessageTooLong, "message must be at most %d characters", MessageMaxLen), nil)
		return
	}

	userID := middleware.UserID(c)
	if userID == "" {
		core.WriteResponse(c, errorx.WithCode(ErrIdentity, "caller identity is missing"), nil)
		return
	}

	result := h.coordinator.HandleMessage(c.Request.Context(), userID, req.ConversationID, message)

	core.WriteResponse(c, nil, &ChatResponse{
		Message:        result.Message,
		ConversationID: result.ConversationID,
		Success:        result.Success,
		Error:          result.Error,
	})
}
