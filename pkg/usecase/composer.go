package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/wildcards-gg/wcadmin/pkg/domain/interfaces"
	"github.com/wildcards-gg/wcadmin/pkg/domain/model"
	"github.com/wildcards-gg/wcadmin/pkg/domain/types"
)

// Operator-facing texts
const (
	MsgInvalidToken     = "Invalid Bot Token. Please check and try again."
	MsgConnectionFailed = "Connection failed."
	MsgMessageSent      = "Message Sent Successfully!"
	MsgThreadCreated    = "Thread Created Successfully!"
)

// Scheduler runs f once after d and returns a function that cancels it
type Scheduler func(d time.Duration, f func()) (cancel func())

// TimerScheduler schedules with time.AfterFunc
func TimerScheduler(d time.Duration, f func()) func() {
	t := time.AfterFunc(d, f)
	return func() { t.Stop() }
}

// PollOption is an editable poll answer with a stable identity
type PollOption struct {
	ID   types.PollOptionID
	Text string
}

// ComposerState is a point-in-time copy of the composer form
type ComposerState struct {
	LoggedIn   bool
	LoggingIn  bool
	LoginError string

	Tab       types.Tab
	Channels  []model.Channel
	ChannelID types.ChannelID

	Variant     types.MessageVariant
	Content     string
	EmbedTitle  string
	EmbedColor  string
	PollOptions []PollOption
	ImagePath   string

	ProspectName string
	ProspectDate string
	VetoEmoji    string
	VetoEmojis   []string

	Sending bool
	Status  *model.Status
}

// ChannelName returns the name of the selected channel, or empty
func (s *ComposerState) ChannelName() string {
	if ch := model.FindChannel(s.Channels, s.ChannelID); ch != nil {
		return ch.Name
	}
	return ""
}

// Composer collects operator input for messages and prospect threads and
// submits it through a Bridge. All methods are safe for concurrent use.
type Composer struct {
	bridge    interfaces.Bridge
	presets   *model.Presets
	schedule  Scheduler
	onExpired func()

	mu           sync.Mutex
	st           ComposerState
	statusSeq    uint64
	cancelStatus func()
}

// ComposerOption configures a Composer
type ComposerOption func(*Composer)

// WithPresets sets the form defaults
func WithPresets(presets *model.Presets) ComposerOption {
	return func(c *Composer) {
		if presets != nil {
			c.presets = presets.WithDefaults()
		}
	}
}

// WithScheduler replaces the timer used to expire status messages
func WithScheduler(s Scheduler) ComposerOption {
	return func(c *Composer) {
		c.schedule = s
	}
}

// WithStatusExpiredListener registers f to be called after a status auto-clears
func WithStatusExpiredListener(f func()) ComposerOption {
	return func(c *Composer) {
		c.onExpired = f
	}
}

// NewComposer creates a Composer on the message tab with an empty simple message
func NewComposer(bridge interfaces.Bridge, opts ...ComposerOption) *Composer {
	c := &Composer{
		bridge:   bridge,
		presets:  model.DefaultPresets(),
		schedule: TimerScheduler,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.st = ComposerState{
		Tab:         types.TabMessage,
		Variant:     types.MessageVariantSimple,
		EmbedColor:  c.presets.EmbedColor,
		PollOptions: newPollOptions(c.presets.PollOptions),
		VetoEmoji:   c.presets.VetoEmojis[0],
		VetoEmojis:  slices.Clone(c.presets.VetoEmojis),
		Channels:    []model.Channel{},
	}
	return c
}

func newPollOptions(texts []string) []PollOption {
	opts := make([]PollOption, 0, len(texts))
	for _, t := range texts {
		opts = append(opts, PollOption{ID: types.NewPollOptionID(), Text: t})
	}
	return opts
}

// State returns a copy of the current form
func (c *Composer) State() ComposerState {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.st
	s.Channels = slices.Clone(c.st.Channels)
	s.PollOptions = slices.Clone(c.st.PollOptions)
	s.VetoEmojis = slices.Clone(c.st.VetoEmojis)
	if c.st.Status != nil {
		status := *c.st.Status
		s.Status = &status
	}
	return s
}

// Close cancels a pending status expiry
func (c *Composer) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clearStatusLocked()
}

func (c *Composer) setStatusLocked(kind types.StatusKind, text string) {
	if c.cancelStatus != nil {
		c.cancelStatus()
	}
	c.statusSeq++
	seq := c.statusSeq
	c.st.Status = &model.Status{Kind: kind, Text: text}
	c.cancelStatus = c.schedule(model.StatusDisplayWindow, func() {
		c.expireStatus(seq)
	})
}

func (c *Composer) clearStatusLocked() {
	if c.cancelStatus != nil {
		c.cancelStatus()
		c.cancelStatus = nil
	}
	c.statusSeq++
	c.st.Status = nil
}

func (c *Composer) expireStatus(seq uint64) {
	c.mu.Lock()
	if c.statusSeq != seq {
		c.mu.Unlock()
		return
	}
	c.st.Status = nil
	c.cancelStatus = nil
	c.mu.Unlock()

	if c.onExpired != nil {
		c.onExpired()
	}
}

// Login authenticates the bot and loads the channel list. The outcome is
// recorded in LoggedIn and LoginError.
func (c *Composer) Login(ctx context.Context, token string) bool {
	c.mu.Lock()
	if c.st.LoggingIn {
		c.mu.Unlock()
		return false
	}
	c.st.LoggingIn = true
	c.st.LoginError = ""
	c.mu.Unlock()

	ok, err := c.bridge.Authenticate(ctx, token)

	var channels []model.Channel
	if err == nil && ok {
		channels = c.fetchChannels(ctx)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.st.LoggingIn = false

	switch {
	case err != nil:
		ctxlog.From(ctx).Warn("Login request failed", "error", err)
		c.st.LoginError = MsgConnectionFailed
		return false
	case !ok:
		c.st.LoginError = MsgInvalidToken
		return false
	}

	c.st.LoggedIn = true
	c.applyChannelsLocked(channels)
	return true
}

// RefreshChannels reloads the channel list, keeping the selection when it still exists
func (c *Composer) RefreshChannels(ctx context.Context) {
	channels := c.fetchChannels(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.applyChannelsLocked(channels)
}

func (c *Composer) fetchChannels(ctx context.Context) []model.Channel {
	channels, err := c.bridge.ListChannels(ctx, "")
	if err != nil {
		ctxlog.From(ctx).Warn("Failed to load channels", "error", err)
		return []model.Channel{}
	}
	return channels
}

func (c *Composer) applyChannelsLocked(channels []model.Channel) {
	c.st.Channels = channels
	if model.FindChannel(channels, c.st.ChannelID) != nil {
		return
	}
	c.st.ChannelID = ""
	if len(channels) > 0 {
		c.st.ChannelID = channels[0].ID
	}
}

// SelectChannel sets the destination channel
func (c *Composer) SelectChannel(id types.ChannelID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if model.FindChannel(c.st.Channels, id) == nil {
		return goerr.New("unknown channel", goerr.V("channelID", id))
	}
	c.st.ChannelID = id
	return nil
}

// CycleChannel moves the selection by delta positions, wrapping around
func (c *Composer) CycleChannel(delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.st.Channels)
	if n == 0 {
		return
	}
	idx := 0
	for i, ch := range c.st.Channels {
		if ch.ID == c.st.ChannelID {
			idx = i
			break
		}
	}
	idx = ((idx+delta)%n + n) % n
	c.st.ChannelID = c.st.Channels[idx].ID
}

// SetTab switches forms. Switching clears the attachment and the status.
func (c *Composer) SetTab(tab types.Tab) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.st.Tab == tab {
		return
	}
	c.st.Tab = tab
	c.st.ImagePath = ""
	c.clearStatusLocked()
}

// SetVariant switches the message shape. Switching clears the attachment and the status.
func (c *Composer) SetVariant(v types.MessageVariant) error {
	if !v.IsValid() {
		return goerr.New("unknown message variant", goerr.V("variant", v))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.st.Variant == v {
		return nil
	}
	c.st.Variant = v
	c.st.ImagePath = ""
	c.clearStatusLocked()
	return nil
}

// SetContent sets the message body, or the question of a poll
func (c *Composer) SetContent(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.st.Content = s
}

// SetEmbedTitle sets the embed title
func (c *Composer) SetEmbedTitle(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.st.EmbedTitle = s
}

// SetEmbedColor sets the embed color as "#RRGGBB"
func (c *Composer) SetEmbedColor(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.st.EmbedColor = s
}

// AddPollOption appends an empty option unless the poll already has the maximum
func (c *Composer) AddPollOption() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.st.PollOptions) >= model.MaxPollOptions {
		return false
	}
	c.st.PollOptions = append(c.st.PollOptions, PollOption{ID: types.NewPollOptionID()})
	return true
}

// RemovePollOption removes an option unless the poll is at the minimum
func (c *Composer) RemovePollOption(id types.PollOptionID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.st.PollOptions) <= model.MinPollOptions {
		return false
	}
	idx := slices.IndexFunc(c.st.PollOptions, func(o PollOption) bool { return o.ID == id })
	if idx < 0 {
		return false
	}
	c.st.PollOptions = slices.Delete(c.st.PollOptions, idx, idx+1)
	return true
}

// SetPollOption edits the text of an option
func (c *Composer) SetPollOption(id types.PollOptionID, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.st.PollOptions {
		if c.st.PollOptions[i].ID == id {
			c.st.PollOptions[i].Text = text
			return
		}
	}
}

// SetProspectName sets the prospect's name
func (c *Composer) SetProspectName(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.st.ProspectName = s
}

// SetProspectDate sets the review end date (YYYY-MM-DD)
func (c *Composer) SetProspectDate(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.st.ProspectDate = s
}

// SetVetoEmoji sets the reaction used as the veto signal
func (c *Composer) SetVetoEmoji(e string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.st.VetoEmoji = e
}

// CycleVetoEmoji selects the next preset veto emoji
func (c *Composer) CycleVetoEmoji() {
	c.mu.Lock()
	defer c.mu.Unlock()

	choices := c.st.VetoEmojis
	if len(choices) == 0 {
		return
	}
	idx := (slices.Index(choices, c.st.VetoEmoji) + 1) % len(choices)
	c.st.VetoEmoji = choices[idx]
}

// AttachImage asks the bridge for an image file. A cancelled dialog leaves the form unchanged.
func (c *Composer) AttachImage(ctx context.Context) error {
	path, err := c.bridge.PickImageFile(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.setStatusLocked(types.StatusError, "Error: "+err.Error())
		return goerr.Wrap(err, "failed to attach image")
	}
	if path != nil {
		c.st.ImagePath = *path
	}
	return nil
}

// ClearImage drops the attachment
func (c *Composer) ClearImage() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.st.ImagePath = ""
}

func (c *Composer) messageRequestLocked() model.MessageRequest {
	req := model.MessageRequest{
		ChannelID: c.st.ChannelID,
		Variant:   c.st.Variant,
		Content:   c.st.Content,
		ImagePath: c.st.ImagePath,
	}
	switch c.st.Variant {
	case types.MessageVariantEmbed:
		req.EmbedTitle = c.st.EmbedTitle
		req.EmbedColor = c.st.EmbedColor
	case types.MessageVariantPoll:
		for _, o := range c.st.PollOptions {
			req.PollOptions = append(req.PollOptions, o.Text)
		}
	}
	return req
}

// beginLocked marks a dispatch as in flight. Callers reject a second
// submit before validating.
func (c *Composer) beginLocked() {
	c.st.Sending = true
	c.clearStatusLocked()
}

// SendMessage submits the message form. On success the content fields are
// cleared and the channel is kept; on failure the form is left intact.
func (c *Composer) SendMessage(ctx context.Context) error {
	c.mu.Lock()
	if c.st.Sending {
		c.mu.Unlock()
		return model.ErrDispatchInFlight
	}
	if c.st.ChannelID == "" {
		c.setStatusLocked(types.StatusError, model.ErrChannelNotSelected.Error())
		c.mu.Unlock()
		return model.ErrChannelNotSelected
	}
	req := c.messageRequestLocked()
	c.beginLocked()
	c.mu.Unlock()

	result, err := c.bridge.DispatchMessage(ctx, req)
	if err != nil {
		result = model.DispatchFailed(err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.st.Sending = false

	if !result.Success {
		c.setStatusLocked(types.StatusError, "Error: "+result.Error)
		return goerr.New(result.Error, goerr.V("channelID", req.ChannelID))
	}

	c.setStatusLocked(types.StatusSuccess, MsgMessageSent)
	c.st.Content = ""
	c.st.EmbedTitle = ""
	c.st.ImagePath = ""
	return nil
}

func (c *Composer) prospectLocked() model.Prospect {
	return model.Prospect{
		Name:      c.st.ProspectName,
		EndDate:   c.st.ProspectDate,
		VetoEmoji: c.st.VetoEmoji,
		ImagePath: c.st.ImagePath,
	}
}

// CreateThread submits the prospect form. On success name, date and image
// are cleared and the channel is kept.
func (c *Composer) CreateThread(ctx context.Context) error {
	c.mu.Lock()
	if c.st.Sending {
		c.mu.Unlock()
		return model.ErrDispatchInFlight
	}

	prospect := c.prospectLocked()
	if err := prospect.Validate(); err != nil {
		c.setStatusLocked(types.StatusError, validationText(err))
		c.mu.Unlock()
		return err
	}
	req, err := prospect.ThreadRequest(c.st.ChannelID)
	if err != nil {
		c.setStatusLocked(types.StatusError, validationText(err))
		c.mu.Unlock()
		return err
	}
	c.beginLocked()
	c.mu.Unlock()

	result, err := c.bridge.DispatchProspectThread(ctx, *req)
	if err != nil {
		result = model.DispatchFailed(err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.st.Sending = false

	if !result.Success {
		c.setStatusLocked(types.StatusError, "Error: "+result.Error)
		return goerr.New(result.Error, goerr.V("channelID", req.ChannelID))
	}

	c.setStatusLocked(types.StatusSuccess, MsgThreadCreated)
	c.st.ProspectName = ""
	c.st.ProspectDate = ""
	c.st.ImagePath = ""
	return nil
}

// Submit sends whatever the active tab holds
func (c *Composer) Submit(ctx context.Context) error {
	if c.State().Tab == types.TabProspect {
		return c.CreateThread(ctx)
	}
	return c.SendMessage(ctx)
}

// validationText is the status shown for a rejected form
func validationText(err error) string {
	if errors.Is(err, model.ErrProspectFieldsMissing) || errors.Is(err, model.ErrChannelNotSelected) {
		return err.Error()
	}
	return "Error: " + err.Error()
}

// Preview renders the pending message as markdown
func (c *Composer) Preview() string {
	s := c.State()

	var b strings.Builder
	if s.Tab == types.TabProspect {
		writeProspectPreview(&b, &s)
		return b.String()
	}

	switch s.Variant {
	case types.MessageVariantEmbed:
		if title := strings.TrimSpace(s.EmbedTitle); title != "" {
			fmt.Fprintf(&b, "> **%s**\n>\n", title)
		}
		for _, line := range strings.Split(placeholder(s.Content, "_(empty)_"), "\n") {
			fmt.Fprintf(&b, "> %s\n", line)
		}
		if s.ImagePath != "" {
			b.WriteString(">\n> [Image Attached]\n")
		}
		fmt.Fprintf(&b, "\nColor: `%s`\n", s.EmbedColor)

	case types.MessageVariantPoll:
		fmt.Fprintf(&b, "**📊 %s**\n\n", placeholder(s.Content, "_(no question)_"))
		for i, o := range s.PollOptions {
			fmt.Fprintf(&b, "%d. %s\n", i+1, placeholder(o.Text, fmt.Sprintf("_Option %d_", i+1)))
		}
		fmt.Fprintf(&b, "\n_Open for %d hours_\n", model.DefaultPollDurationHours)
		if s.ImagePath != "" {
			b.WriteString("\n[Image Attached] _(sent as a separate message)_\n")
		}

	default:
		b.WriteString(placeholder(s.Content, "_(empty)_"))
		b.WriteString("\n")
		if s.ImagePath != "" {
			b.WriteString("\n[Image Attached]\n")
		}
	}
	return b.String()
}

func writeProspectPreview(b *strings.Builder, s *ComposerState) {
	p := model.Prospect{
		Name:      placeholder(s.ProspectName, "Name"),
		EndDate:   s.ProspectDate,
		VetoEmoji: s.VetoEmoji,
	}
	fmt.Fprintf(b, "### 🧵 %s\n\n[Judge image]\n\n", p.ThreadName())

	content, err := p.Content()
	if err != nil {
		p.EndDate = "1970-01-01"
		content, _ = p.Content()
		content = strings.Replace(content, model.TimestampMarker(time.Unix(0, 0).UTC()), "`<end date>`", 1)
	}
	b.WriteString(content)
	b.WriteString("\n")
	if s.ImagePath != "" {
		b.WriteString("\n[Image Attached]\n")
	}
	fmt.Fprintf(b, "\nReaction: %s\n", s.VetoEmoji)
}

func placeholder(s, alt string) string {
	if strings.TrimSpace(s) == "" {
		return alt
	}
	return s
}
