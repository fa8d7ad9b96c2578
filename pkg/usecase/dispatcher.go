package usecase

import (
	"context"
	"io"
	"mime"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/wildcards-gg/wcadmin/pkg/domain/interfaces"
	"github.com/wildcards-gg/wcadmin/pkg/domain/model"
	"github.com/wildcards-gg/wcadmin/pkg/domain/types"
)

const (
	// DefaultLoginTimeout bounds how long Authenticate waits for the session to become ready
	DefaultLoginTimeout = 10 * time.Second

	// ProspectThreadArchiveMinutes is the auto-archive duration of prospect threads (one day)
	ProspectThreadArchiveMinutes = 1440
)

// Dispatcher owns the single bot session and turns validated requests into SDK calls
type Dispatcher struct {
	connector      interfaces.DiscordConnector
	loginTimeout   time.Duration
	judgeImagePath string
	openFile       func(path string) (io.ReadCloser, error)

	mu     sync.Mutex
	state  types.SessionState
	client interfaces.DiscordClient
}

// DispatcherOption configures a Dispatcher
type DispatcherOption func(*Dispatcher)

// WithLoginTimeout sets the authentication timeout
func WithLoginTimeout(timeout time.Duration) DispatcherOption {
	return func(d *Dispatcher) {
		if timeout > 0 {
			d.loginTimeout = timeout
		}
	}
}

// WithJudgeImage sets the illustrative image posted first in every prospect thread
func WithJudgeImage(path string) DispatcherOption {
	return func(d *Dispatcher) {
		d.judgeImagePath = path
	}
}

// WithFileOpener replaces os.Open for attachments
func WithFileOpener(open func(path string) (io.ReadCloser, error)) DispatcherOption {
	return func(d *Dispatcher) {
		d.openFile = open
	}
}

// NewDispatcher creates an unauthenticated Dispatcher
func NewDispatcher(connector interfaces.DiscordConnector, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		connector:      connector,
		loginTimeout:   DefaultLoginTimeout,
		judgeImagePath: filepath.Join("media", "Judge.jpg"),
		openFile: func(path string) (io.ReadCloser, error) {
			return os.Open(path)
		},
		state: types.SessionUnauthenticated,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// State returns the current session state
func (d *Dispatcher) State() types.SessionState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

type connectResult struct {
	client interfaces.DiscordClient
	err    error
}

// Authenticate logs in with token. It returns false on invalid credentials,
// connectivity failure or when the login timeout elapses.
func (d *Dispatcher) Authenticate(ctx context.Context, token string) bool {
	logger := ctxlog.From(ctx)

	d.mu.Lock()
	if d.state == types.SessionAuthenticating {
		d.mu.Unlock()
		logger.Warn("Authentication already in progress")
		return false
	}
	prev := d.client
	d.client = nil
	d.state = types.SessionAuthenticating
	d.mu.Unlock()

	if prev != nil {
		if err := prev.Close(); err != nil {
			logger.Warn("Failed to close previous session", "error", err)
		}
	}

	client, err := d.connect(ctx, token)

	d.mu.Lock()
	defer d.mu.Unlock()

	if err != nil {
		d.state = types.SessionUnauthenticated
		logger.Warn("Login failed", "error", err)
		return false
	}

	d.client = client
	d.state = types.SessionReady

	attrs := []any{}
	if u := client.BotUser(); u != nil {
		attrs = append(attrs, "user", u.Username, "userID", u.ID)
	}
	logger.Info("Bot session ready", attrs...)
	return true
}

func (d *Dispatcher) connect(ctx context.Context, token string) (interfaces.DiscordClient, error) {
	if strings.TrimSpace(token) == "" {
		return nil, goerr.New("bot token is empty")
	}

	loginCtx, cancel := context.WithTimeout(ctx, d.loginTimeout)
	defer cancel()

	done := make(chan connectResult, 1)
	go func() {
		client, err := d.connector.Connect(loginCtx, token)
		done <- connectResult{client: client, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return nil, goerr.Wrap(res.err, "failed to connect to Discord")
		}
		return res.client, nil

	case <-loginCtx.Done():
		// A session that shows up after the deadline is discarded.
		go func() {
			if res := <-done; res.client != nil {
				_ = res.client.Close()
			}
		}()
		return nil, goerr.Wrap(loginCtx.Err(), "login timed out",
			goerr.V("timeout", d.loginTimeout))
	}
}

// Close ends the session, if any
func (d *Dispatcher) Close() error {
	d.mu.Lock()
	client := d.client
	d.client = nil
	d.state = types.SessionUnauthenticated
	d.mu.Unlock()

	if client == nil {
		return nil
	}
	if err := client.Close(); err != nil {
		return goerr.Wrap(err, "failed to close Discord session")
	}
	return nil
}

func (d *Dispatcher) session() (interfaces.DiscordClient, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != types.SessionReady || d.client == nil {
		return nil, goerr.Wrap(model.ErrSessionNotReady, "bot is not logged in",
			goerr.V("state", d.state))
	}
	return d.client, nil
}

// ListGuilds returns the guilds the bot is in, or an empty list before authentication
func (d *Dispatcher) ListGuilds(ctx context.Context) ([]model.Guild, error) {
	client, err := d.session()
	if err != nil {
		return []model.Guild{}, nil
	}

	guilds, err := client.Guilds(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch guilds")
	}

	result := make([]model.Guild, 0, len(guilds))
	for _, g := range guilds {
		result = append(result, model.Guild{ID: types.GuildID(g.ID), Name: g.Name})
	}
	slices.SortFunc(result, func(a, b model.Guild) int {
		return compareFold(a.Name, b.Name)
	})
	return result, nil
}

// ListChannels returns the text channels of guildID, or of every guild when
// guildID is empty. Before authentication it returns an empty list.
func (d *Dispatcher) ListChannels(ctx context.Context, guildID types.GuildID) ([]model.Channel, error) {
	client, err := d.session()
	if err != nil {
		return []model.Channel{}, nil
	}

	guildIDs := []string{guildID.String()}
	if guildID == "" {
		guilds, err := client.Guilds(ctx)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to fetch guilds")
		}
		guildIDs = guildIDs[:0]
		for _, g := range guilds {
			guildIDs = append(guildIDs, g.ID)
		}
	}

	result := []model.Channel{}
	for _, gid := range guildIDs {
		channels, err := client.GuildChannels(ctx, gid)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to fetch channels", goerr.V("guildID", gid))
		}
		for _, c := range channels {
			if c.Type != discordgo.ChannelTypeGuildText {
				continue
			}
			result = append(result, model.Channel{ID: types.ChannelID(c.ID), Name: c.Name})
		}
	}

	slices.SortFunc(result, func(a, b model.Channel) int {
		return compareFold(a.Name, b.Name)
	})
	return result, nil
}

// ListMembers returns the non-bot members of a guild sorted by display name
func (d *Dispatcher) ListMembers(ctx context.Context, guildID types.GuildID) ([]model.Member, error) {
	client, err := d.session()
	if err != nil || guildID == "" {
		return []model.Member{}, nil
	}

	members, err := client.GuildMembers(ctx, guildID.String())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch members", goerr.V("guildID", guildID))
	}

	result := make([]model.Member, 0, len(members))
	for _, m := range members {
		if m.User == nil || m.User.Bot {
			continue
		}
		result = append(result, model.Member{
			ID:          types.UserID(m.User.ID),
			Username:    m.User.Username,
			DisplayName: memberDisplayName(m),
			Tag:         m.User.String(),
		})
	}
	slices.SortFunc(result, func(a, b model.Member) int {
		return compareFold(a.DisplayName, b.DisplayName)
	})
	return result, nil
}

func memberDisplayName(m *discordgo.Member) string {
	switch {
	case m.Nick != "":
		return m.Nick
	case m.User.GlobalName != "":
		return m.User.GlobalName
	default:
		return m.User.Username
	}
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func allowedMentions() *discordgo.MessageAllowedMentions {
	return &discordgo.MessageAllowedMentions{
		Parse: []discordgo.AllowedMentionType{
			discordgo.AllowedMentionTypeUsers,
			discordgo.AllowedMentionTypeRoles,
			discordgo.AllowedMentionTypeEveryone,
		},
	}
}

// attachment opens path and names it base plus the file's extension
func (d *Dispatcher) attachment(path, base string) (*discordgo.File, io.Closer, error) {
	r, err := d.openFile(path)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to open image", goerr.V("path", path))
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		ext = ".png"
	}

	return &discordgo.File{
		Name:        base + ext,
		ContentType: mime.TypeByExtension(ext),
		Reader:      r,
	}, r, nil
}

// DispatchMessage sends msg to the channel, attaching imagePath when it is not empty.
// Polls cannot carry attachments, so a poll's image goes out as a second message.
func (d *Dispatcher) DispatchMessage(ctx context.Context, channelID types.ChannelID, msg model.OutboundMessage, imagePath string) error {
	logger := ctxlog.From(ctx)

	client, err := d.session()
	if err != nil {
		return err
	}

	var (
		files []*discordgo.File
		image *discordgo.File
	)
	if imagePath != "" {
		f, closer, err := d.attachment(imagePath, "attachment")
		if err != nil {
			return err
		}
		defer closer.Close()
		image = f
		files = []*discordgo.File{f}
	}

	channel, err := client.Channel(ctx, channelID.String())
	if err != nil {
		return goerr.Wrap(err, "failed to resolve channel", goerr.V("channelID", channelID))
	}

	switch m := msg.(type) {
	case model.SimpleMessage:
		if _, err := client.SendMessage(ctx, channel.ID, &discordgo.MessageSend{
			Content:         m.Text,
			Files:           files,
			AllowedMentions: allowedMentions(),
		}); err != nil {
			return goerr.Wrap(err, "failed to send message", goerr.V("channelID", channel.ID))
		}

	case model.EmbedMessage:
		embed := &discordgo.MessageEmbed{
			Title:       m.Title,
			Description: m.Body,
			Color:       int(m.Color),
		}
		if image != nil {
			embed.Image = &discordgo.MessageEmbedImage{URL: "attachment://" + image.Name}
		}
		if _, err := client.SendMessage(ctx, channel.ID, &discordgo.MessageSend{
			Embeds:          []*discordgo.MessageEmbed{embed},
			Files:           files,
			AllowedMentions: allowedMentions(),
		}); err != nil {
			return goerr.Wrap(err, "failed to send embed", goerr.V("channelID", channel.ID))
		}

	case model.PollMessage:
		answers := make([]discordgo.PollAnswer, 0, len(m.Options))
		for _, opt := range m.Options {
			answers = append(answers, discordgo.PollAnswer{Media: &discordgo.PollMedia{Text: opt}})
		}
		if _, err := client.SendMessage(ctx, channel.ID, &discordgo.MessageSend{
			Poll: &discordgo.Poll{
				Question: discordgo.PollMedia{Text: m.Question},
				Answers:  answers,
				Duration: m.DurationHours,
			},
			AllowedMentions: allowedMentions(),
		}); err != nil {
			return goerr.Wrap(err, "failed to send poll", goerr.V("channelID", channel.ID))
		}

		if len(files) > 0 {
			if _, err := client.SendMessage(ctx, channel.ID, &discordgo.MessageSend{
				Files:           files,
				AllowedMentions: allowedMentions(),
			}); err != nil {
				return goerr.Wrap(err, "failed to send poll image", goerr.V("channelID", channel.ID))
			}
		}

	default:
		return goerr.New("unsupported message variant", goerr.V("type", msg))
	}

	logger.Info("Message dispatched",
		"channelID", channel.ID,
		"variant", msg.Variant(),
		"hasImage", image != nil,
	)
	return nil
}

// DispatchProspectThread creates the review thread, posts the illustrative
// image, posts the review content and reacts to it with the veto emoji.
func (d *Dispatcher) DispatchProspectThread(ctx context.Context, req *model.ThreadRequest) error {
	logger := ctxlog.From(ctx)

	client, err := d.session()
	if err != nil {
		return err
	}

	judge, judgeCloser, err := d.attachment(d.judgeImagePath, "judge")
	if err != nil {
		return goerr.Wrap(err, "failed to load prospect thread image")
	}
	defer judgeCloser.Close()

	var evidence []*discordgo.File
	if req.HasImage() {
		f, closer, err := d.attachment(req.ImagePath, "evidence")
		if err != nil {
			return err
		}
		defer closer.Close()
		evidence = []*discordgo.File{f}
	}

	channel, err := client.Channel(ctx, req.ChannelID.String())
	if err != nil {
		return goerr.Wrap(err, "failed to resolve channel", goerr.V("channelID", req.ChannelID))
	}

	thread, err := client.StartThread(ctx, channel.ID, &discordgo.ThreadStart{
		Name:                req.Name,
		AutoArchiveDuration: ProspectThreadArchiveMinutes,
		Type:                discordgo.ChannelTypeGuildPublicThread,
	})
	if err != nil {
		return goerr.Wrap(err, "failed to create thread", goerr.V("channelID", channel.ID), goerr.V("name", req.Name))
	}
	logger.Info("Prospect thread created", "threadID", thread.ID, "name", req.Name)

	if _, err := client.SendMessage(ctx, thread.ID, &discordgo.MessageSend{
		Files:           []*discordgo.File{judge},
		AllowedMentions: allowedMentions(),
	}); err != nil {
		return goerr.Wrap(err, "failed to post thread image", goerr.V("threadID", thread.ID))
	}

	review, err := client.SendMessage(ctx, thread.ID, &discordgo.MessageSend{
		Content:         req.Content,
		Files:           evidence,
		AllowedMentions: allowedMentions(),
	})
	if err != nil {
		return goerr.Wrap(err, "failed to post review message", goerr.V("threadID", thread.ID))
	}

	if err := client.AddReaction(ctx, thread.ID, review.ID, req.VetoEmoji); err != nil {
		return goerr.Wrap(err, "failed to add veto reaction",
			goerr.V("threadID", thread.ID), goerr.V("emoji", req.VetoEmoji))
	}

	logger.Info("Prospect thread dispatched", "threadID", thread.ID, "messageID", review.ID)
	return nil
}
