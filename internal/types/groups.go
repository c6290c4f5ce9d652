package types

import (
	"time"

	"github.com/google/uuid"
)

type Group struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Slug           string    `json:"slug" db:"slug"`
	Name           string    `json:"name" db:"name"`
	DefaultMessage string    `json:"default_message" db:"default_message"`
	IsActive       bool      `json:"is_active" db:"is_active"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// GroupSummary is a group with counters derived at read time.
type GroupSummary struct {
	Group
	ActiveNumbers int64 `json:"active_numbers" db:"active_numbers"`
	Clicks        int64 `json:"clicks" db:"clicks"`
}

type WhatsAppNumber struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	GroupID       uuid.UUID  `json:"group_id" db:"group_id"`
	Phone         string     `json:"phone" db:"phone"`
	Name          *string    `json:"name,omitempty" db:"name"`
	CustomMessage *string    `json:"custom_message,omitempty" db:"custom_message"`
	IsActive      bool       `json:"is_active" db:"is_active"`
	LastUsedAt    *time.Time `json:"last_used_at,omitempty" db:"last_used_at"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// Message returns the text prefilled in the WhatsApp chat: the number's own
// message when set, otherwise the group default.
func (n WhatsAppNumber) Message(g Group) string {
	if n.CustomMessage != nil && *n.CustomMessage != "" {
		return *n.CustomMessage
	}
	return g.DefaultMessage
}
