package entity

import (
	"time"
)

// Role is the sender of a conversation turn. Only user and assistant turns
// are persisted; tool traffic stays in the audit log.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether the role is one of the persisted roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

// TurnContentMaxLen caps the character length of a persisted turn's content.
const TurnContentMaxLen = 10000

// Turn is one message in a conversation, append-only: turns are never edited
// or reordered after creation.
type Turn struct {
	// Role is the sender (user/assistant).
	Role Role `json:"role"`

	// Content is the text content of the turn.
	Content string `json:"content"`

	// CreatedAt is when this turn was appended.
	CreatedAt time.Time `json:"created_at"`
}

// Conversation is a persistent exchange between one user and the agent.
type Conversation struct {
	// ID is the unique conversation identifier.
	ID string `json:"id"`

	// UserID is the verified identity of the owning user.
	UserID string `json:"user_id"`

	// Turns is the ordered history of all turns in this conversation.
	Turns []*Turn `json:"turns"`

	// CreatedAt is when this conversation was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when this conversation last received a turn.
	UpdatedAt time.Time `json:"updated_at"`
}

// AppendTurn appends a turn and bumps the conversation timestamp.
func (c *Conversation) AppendTurn(turn *Turn) {
	c.Turns = append(c.Turns, turn)
	c.UpdatedAt = time.Now().UTC()
}

// LastTurns returns up to limit most recent turns in chronological order.
// limit <= 0 returns all turns.
func (c *Conversation) LastTurns(limit int) []*Turn {
	if limit <= 0 || len(c.Turns) <= limit {
		return c.Turns
	}
	return c.Turns[len(c.Turns)-limit:]
}
