package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	UserMessageRole      = "user"
	AssistantMessageRole = "assistant"
	SystemMessageRole    = "system"
)

type MessageList []Message

type Message struct {
	ID             uuid.UUID `db:"id" json:"id"`
	ConversationID uuid.UUID `db:"conversation_id" json:"conversation_id"`
	Role           string    `db:"role" json:"role"`
	Content        string    `db:"content" json:"content"`
	Position       int64     `db:"position" json:"-"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

type MessageWithExcerptsList []MessageWithExcerpts

type MessageWithExcerpts struct {
	Message

	Excerpts ExcerptList `json:"excerpts"`
}

// FormattedMessage is the UI shape of a message: content is exposed as text,
// excerpts pass through unchanged.
type FormattedMessage struct {
	ID       uuid.UUID   `json:"id"`
	Role     string      `json:"role"`
	Text     string      `json:"text"`
	Excerpts ExcerptList `json:"excerpts"`
}

// PromptExchange is the user+assistant message pair produced by a prompt
// submission or an edit/regenerate round trip.
type PromptExchange struct {
	UserMessage      Message             `json:"user_message"`
	AssistantMessage MessageWithExcerpts `json:"assistant_message"`
}

func IsKnownRole(role string) bool {
	switch role {
	case UserMessageRole, AssistantMessageRole, SystemMessageRole:
		return true
	}
	return false
}
