package model

// Role tags a chat message with its speaker.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether the role is one of the three speaker roles.
// A message is never stored with any other role.
func (r Role) Valid() bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant:
		return true
	}
	return false
}

// Message is a single role-tagged entry in an interview conversation.
// Ordering is significant: insertion order is conversation chronology.
type Message struct {
	Role    Role   `json:"role" bson:"role"`
	Content string `json:"content" bson:"content"`
}
