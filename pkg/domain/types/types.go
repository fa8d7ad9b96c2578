package types

import (
	"github.com/google/uuid"
)

// GuildID represents a Discord guild (server) identifier
type GuildID string

// String returns the string representation
func (id GuildID) String() string {
	return string(id)
}

// ChannelID represents a Discord channel identifier. Threads share the same ID space.
type ChannelID string

// String returns the string representation
func (id ChannelID) String() string {
	return string(id)
}

// MessageID represents a Discord message identifier
type MessageID string

// String returns the string representation
func (id MessageID) String() string {
	return string(id)
}

// UserID represents a Discord user identifier
type UserID string

// String returns the string representation
func (id UserID) String() string {
	return string(id)
}

// PollOptionID identifies a poll option while it is being edited in the composer
type PollOptionID string

// String returns the string representation
func (id PollOptionID) String() string {
	return string(id)
}

// NewPollOptionID creates a new PollOptionID
func NewPollOptionID() PollOptionID {
	return PollOptionID(uuid.New().String())
}

// RequestID identifies a single bridge call for log correlation
type RequestID string

// String returns the string representation
func (id RequestID) String() string {
	return string(id)
}

// NewRequestID creates a new time-ordered RequestID
func NewRequestID() RequestID {
	id, err := uuid.NewV7()
	if err != nil {
		return RequestID(uuid.New().String())
	}
	return RequestID(id.String())
}
