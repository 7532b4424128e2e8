package model

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ConversationTurn is one message in a user's chat history.
type ConversationTurn struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp Timestamp `json:"timestamp"`
}

// UserState is the persisted record for one user.
type UserState struct {
	Schedule            *Schedule          `json:"schedule"`
	UserID              string             `json:"userId"`
	ConversationHistory []ConversationTurn `json:"conversationHistory"`
}

// Exists reports whether the record was loaded from the store.
func (s UserState) Exists() bool {
	return s.UserID != ""
}
