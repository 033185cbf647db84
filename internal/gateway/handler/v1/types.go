package v1

// MessageMaxLen caps the character length of a single chat request message.
const MessageMaxLen = 1000

// ChatRequest is the body of POST /api/v1/chat.
type ChatRequest struct {
	// Message is the user's natural language input.
	Message string `json:"message" binding:"required"`

	// ConversationID continues an existing conversation. Empty starts a
	// new one.
	ConversationID string `json:"conversation_id,omitempty"`
}

// ChatResponse is the reply to POST /api/v1/chat.
type ChatResponse struct {
	// Message is the agent's user-facing reply.
	Message string `json:"message"`

	// ConversationID identifies the conversation, created on demand.
	ConversationID string `json:"conversation_id"`

	// Success is false only for infrastructure faults.
	Success bool `json:"success"`

	// Error carries the technical failure detail, for clients that log.
	Error string `json:"error,omitempty"`
}

// ToolCatalogEntry is one entry in the GET /api/v1/tools listing.
type ToolCatalogEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
