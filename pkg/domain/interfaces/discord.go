package interfaces

//go:generate moq -out mocks/discord_mock.go -pkg mocks . DiscordClient DiscordConnector

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// DiscordClient is the capability surface of an authenticated bot session.
// Payload types are discordgo's own; encoding stays the SDK's job.
type DiscordClient interface {
	// BotUser returns the user the session is logged in as
	BotUser() *discordgo.User

	// Guilds returns the guilds known to the session
	Guilds(ctx context.Context) ([]*discordgo.Guild, error)

	// GuildChannels returns every channel of a guild
	GuildChannels(ctx context.Context, guildID string) ([]*discordgo.Channel, error)

	// GuildMembers returns the members of a guild
	GuildMembers(ctx context.Context, guildID string) ([]*discordgo.Member, error)

	// Channel fetches a channel by ID
	Channel(ctx context.Context, channelID string) (*discordgo.Channel, error)

	// SendMessage sends a message with optional embeds, poll and files
	SendMessage(ctx context.Context, channelID string, data *discordgo.MessageSend) (*discordgo.Message, error)

	// StartThread creates a thread that is not attached to a message
	StartThread(ctx context.Context, channelID string, data *discordgo.ThreadStart) (*discordgo.Channel, error)

	// AddReaction reacts to a message with a unicode or custom emoji
	AddReaction(ctx context.Context, channelID, messageID, emoji string) error

	// Close terminates the session
	Close() error
}

// DiscordConnector opens bot sessions
type DiscordConnector interface {
	// Connect logs in with token and returns once the session is ready or ctx is done
	Connect(ctx context.Context, token string) (DiscordClient, error)
}
