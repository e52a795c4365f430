package model

import "time"

// AccessLevel gates premium features.
type AccessLevel string

const (
	// AccessFree is the default tier.
	AccessFree AccessLevel = "free"
	// AccessPremium unlocks advanced analytics.
	AccessPremium AccessLevel = "premium"
)

// ParseAccessLevel converts a stored tier string, defaulting to free for
// anything unrecognized so an invalid row never gates features open.
func ParseAccessLevel(s string) AccessLevel {
	if AccessLevel(s) == AccessPremium {
		return AccessPremium
	}
	return AccessFree
}

// UserProfile is the single local account record.
type UserProfile struct {
	CreatedAt   time.Time
	LastLogin   *time.Time
	ID          string
	DisplayName string
	Email       string
}

// SubscriptionStatus records the user's current tier.
type SubscriptionStatus struct {
	ExpiresOn    *time.Time
	LastVerified *time.Time
	ID           string
	UserID       string
	Tier         AccessLevel
}

// MessageCategory classifies broadcast messages shown on the info screen.
type MessageCategory string

// Message categories.
const (
	MessageSupport        MessageCategory = "Support"
	MessageAdministration MessageCategory = "Administration"
	MessageMarketing      MessageCategory = "Marketing"
	MessageUnknown        MessageCategory = "Unknown"
)

// ParseMessageCategory converts a stored category string, falling back to
// MessageUnknown.
func ParseMessageCategory(s string) MessageCategory {
	switch MessageCategory(s) {
	case MessageSupport, MessageAdministration, MessageMarketing:
		return MessageCategory(s)
	default:
		return MessageUnknown
	}
}

// Message is one broadcast record synced from the record store.
type Message struct {
	Date     time.Time
	ID       string
	Title    string
	Body     string
	Category MessageCategory
	IsActive bool
}
