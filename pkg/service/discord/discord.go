package discord

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/wildcards-gg/wcadmin/pkg/domain/interfaces"
)

const (
	// DefaultIntents covers guild metadata and the member list
	DefaultIntents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers

	// DefaultGuildSettle is how long to wait after Ready for guild data to arrive
	DefaultGuildSettle = time.Second

	memberPageSize = 1000
	userGuildLimit = 200
)

// Connector opens bot sessions against the Discord gateway
type Connector struct {
	intents discordgo.Intent
	settle  time.Duration
}

var _ interfaces.DiscordConnector = (*Connector)(nil)

// Option configures a Connector
type Option func(*Connector)

// WithIntents overrides the gateway intents
func WithIntents(intents discordgo.Intent) Option {
	return func(c *Connector) {
		c.intents = intents
	}
}

// WithGuildSettle overrides the delay after Ready
func WithGuildSettle(d time.Duration) Option {
	return func(c *Connector) {
		c.settle = d
	}
}

// NewConnector creates a Connector
func NewConnector(opts ...Option) *Connector {
	c := &Connector{
		intents: DefaultIntents,
		settle:  DefaultGuildSettle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Connect opens a gateway session with token and waits until it is ready.
// The wait is bounded by ctx; an unready session is closed before returning.
func (c *Connector) Connect(ctx context.Context, token string) (interfaces.DiscordClient, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Discord session")
	}
	session.Identify.Intents = c.intents

	ready := make(chan *discordgo.Ready, 1)
	session.AddHandlerOnce(func(_ *discordgo.Session, r *discordgo.Ready) {
		select {
		case ready <- r:
		default:
		}
	})

	if err := session.Open(); err != nil {
		return nil, goerr.Wrap(err, "failed to open Discord gateway")
	}

	select {
	case r := <-ready:
		ctxlog.From(ctx).Debug("Discord gateway ready",
			"user", r.User.Username,
			"guilds", len(r.Guilds),
		)
	case <-ctx.Done():
		_ = session.Close()
		return nil, goerr.Wrap(ctx.Err(), "Discord session did not become ready")
	}

	// Guild details stream in as GUILD_CREATE events right after Ready.
	if c.settle > 0 {
		select {
		case <-time.After(c.settle):
		case <-ctx.Done():
			_ = session.Close()
			return nil, goerr.Wrap(ctx.Err(), "Discord session did not become ready")
		}
	}

	return NewService(session), nil
}

// Service wraps a discordgo session and implements interfaces.DiscordClient
type Service struct {
	session *discordgo.Session
}

var _ interfaces.DiscordClient = (*Service)(nil)

// NewService wraps an opened session
func NewService(session *discordgo.Session) *Service {
	return &Service{session: session}
}

// BotUser returns the account the session is logged in as
func (s *Service) BotUser() *discordgo.User {
	if s.session.State == nil {
		return nil
	}
	return s.session.State.User
}

// Guilds returns the guilds known to the session state, falling back to the REST API
func (s *Service) Guilds(ctx context.Context) ([]*discordgo.Guild, error) {
	if guilds := s.stateGuilds(); len(guilds) > 0 {
		return guilds, nil
	}

	userGuilds, err := s.session.UserGuilds(userGuildLimit, "", "", false, discordgo.WithContext(ctx))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch user guilds")
	}

	guilds := make([]*discordgo.Guild, 0, len(userGuilds))
	for _, g := range userGuilds {
		guilds = append(guilds, &discordgo.Guild{ID: g.ID, Name: g.Name})
	}
	return guilds, nil
}

func (s *Service) stateGuilds() []*discordgo.Guild {
	state := s.session.State
	if state == nil {
		return nil
	}

	state.RLock()
	defer state.RUnlock()

	guilds := make([]*discordgo.Guild, 0, len(state.Guilds))
	for _, g := range state.Guilds {
		if g.Unavailable {
			continue
		}
		guilds = append(guilds, &discordgo.Guild{ID: g.ID, Name: g.Name})
	}
	return guilds
}

// GuildChannels fetches every channel of a guild
func (s *Service) GuildChannels(ctx context.Context, guildID string) ([]*discordgo.Channel, error) {
	channels, err := s.session.GuildChannels(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch guild channels", goerr.V("guildID", guildID))
	}
	return channels, nil
}

// GuildMembers fetches every member of a guild, page by page
func (s *Service) GuildMembers(ctx context.Context, guildID string) ([]*discordgo.Member, error) {
	var (
		members []*discordgo.Member
		after   string
	)
	for {
		page, err := s.session.GuildMembers(guildID, after, memberPageSize, discordgo.WithContext(ctx))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to fetch guild members",
				goerr.V("guildID", guildID), goerr.V("after", after))
		}
		members = append(members, page...)

		if len(page) < memberPageSize || page[len(page)-1].User == nil {
			return members, nil
		}
		after = page[len(page)-1].User.ID
	}
}

// Channel fetches a channel by ID
func (s *Service) Channel(ctx context.Context, channelID string) (*discordgo.Channel, error) {
	channel, err := s.session.Channel(channelID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch channel", goerr.V("channelID", channelID))
	}
	return channel, nil
}

// SendMessage posts a message to a channel or thread
func (s *Service) SendMessage(ctx context.Context, channelID string, data *discordgo.MessageSend) (*discordgo.Message, error) {
	msg, err := s.session.ChannelMessageSendComplex(channelID, data, discordgo.WithContext(ctx))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to send Discord message", goerr.V("channelID", channelID))
	}
	return msg, nil
}

// StartThread creates a thread that is not attached to a message
func (s *Service) StartThread(ctx context.Context, channelID string, data *discordgo.ThreadStart) (*discordgo.Channel, error) {
	thread, err := s.session.ThreadStartComplex(channelID, data, discordgo.WithContext(ctx))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to start thread", goerr.V("channelID", channelID))
	}
	return thread, nil
}

// AddReaction reacts to a message with a unicode emoji or a name:id custom emoji
func (s *Service) AddReaction(ctx context.Context, channelID, messageID, emoji string) error {
	if err := s.session.MessageReactionAdd(channelID, messageID, emoji, discordgo.WithContext(ctx)); err != nil {
		return goerr.Wrap(err, "failed to add reaction",
			goerr.V("channelID", channelID), goerr.V("messageID", messageID))
	}
	return nil
}

// Close disconnects from the gateway
func (s *Service) Close() error {
	if err := s.session.Close(); err != nil {
		return goerr.Wrap(err, "failed to close Discord session")
	}
	return nil
}
