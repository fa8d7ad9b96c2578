package model

import "github.com/wildcards-gg/wcadmin/pkg/domain/types"

// Guild represents a Discord server the bot is a member of
type Guild struct {
	ID   types.GuildID `json:"id"`
	Name string        `json:"name"`
}

// Channel represents a text channel messages can be sent to
type Channel struct {
	ID   types.ChannelID `json:"id"`
	Name string          `json:"name"`
}

// Member represents a non-bot guild member
type Member struct {
	ID          types.UserID `json:"id"`
	Username    string       `json:"username"`
	DisplayName string       `json:"displayName"`
	Tag         string       `json:"tag"`
}

// FindChannel returns the channel with the given ID, or nil
func FindChannel(channels []Channel, id types.ChannelID) *Channel {
	for i := range channels {
		if channels[i].ID == id {
			return &channels[i]
		}
	}
	return nil
}
