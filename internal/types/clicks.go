package types

import (
	"time"

	"github.com/google/uuid"
)

// ClickMetadata is everything the redirect request tells us about the visitor.
// All fields are optional.
type ClickMetadata struct {
	IPAddress   string `json:"ip_address"`
	UserAgent   string `json:"user_agent"`
	Referrer    string `json:"referrer"`
	UTMSource   string `json:"utm_source"`
	UTMMedium   string `json:"utm_medium"`
	UTMCampaign string `json:"utm_campaign"`
}

type ClickEvent struct {
	ID          uuid.UUID `json:"id" db:"id"`
	GroupID     uuid.UUID `json:"group_id" db:"group_id"`
	NumberID    uuid.UUID `json:"number_id" db:"number_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	IPAddress   *string   `json:"ip_address,omitempty" db:"ip_address"`
	UserAgent   *string   `json:"user_agent,omitempty" db:"user_agent"`
	DeviceType  *string   `json:"device_type,omitempty" db:"device_type"`
	Referrer    *string   `json:"referrer,omitempty" db:"referrer"`
	UTMSource   *string   `json:"utm_source,omitempty" db:"utm_source"`
	UTMMedium   *string   `json:"utm_medium,omitempty" db:"utm_medium"`
	UTMCampaign *string   `json:"utm_campaign,omitempty" db:"utm_campaign"`
	Country     *string   `json:"country,omitempty" db:"country"`
	City        *string   `json:"city,omitempty" db:"city"`
	Browser     *string   `json:"browser,omitempty" db:"browser"`
	OS          *string   `json:"os,omitempty" db:"os"`
}

func NewClickEvent(id, groupID, numberID uuid.UUID, at time.Time, meta ClickMetadata) ClickEvent {
	return ClickEvent{
		ID:          id,
		GroupID:     groupID,
		NumberID:    numberID,
		CreatedAt:   at.UTC(),
		IPAddress:   Optional(meta.IPAddress),
		UserAgent:   Optional(meta.UserAgent),
		Referrer:    Optional(meta.Referrer),
		UTMSource:   Optional(meta.UTMSource),
		UTMMedium:   Optional(meta.UTMMedium),
		UTMCampaign: Optional(meta.UTMCampaign),
	}
}

// Optional maps an empty string to nil so it is stored as NULL.
func Optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
