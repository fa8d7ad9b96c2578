// Package tui is the terminal front end of the composer.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/m-mizutani/ctxlog"
	"github.com/wildcards-gg/wcadmin/pkg/domain/types"
	"github.com/wildcards-gg/wcadmin/pkg/service/picker"
	"github.com/wildcards-gg/wcadmin/pkg/usecase"
)

type field int

const (
	fieldContent field = iota
	fieldTitle
	fieldColor
	fieldOption
	fieldName
	fieldDate
)

type focusTarget struct {
	kind  field
	index int
}

type (
	loginDoneMsg      struct{ ok bool }
	dispatchDoneMsg   struct{ err error }
	imageDoneMsg      struct{ err error }
	channelsLoadedMsg struct{}

	// StatusExpiredMsg asks the model to redraw after a status cleared itself
	StatusExpiredMsg struct{}
)

// Model is the bubbletea model of the composer
type Model struct {
	ctx      context.Context
	composer *usecase.Composer
	picker   *ModalPicker

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	token     textinput.Model
	content   textarea.Model
	title     textinput.Model
	color     textinput.Model
	name      textinput.Model
	date      textinput.Model
	options   []textinput.Model
	optionIDs []types.PollOptionID

	focus int
	busy  bool

	browsing bool
	files    filepicker.Model
	pending  *pickRequest

	width, height int
	renderer      *glamour.TermRenderer
	rendererWidth int
	previewStyle  string
	initialToken  string
}

// Option configures a Model
type Option func(*Model)

// WithPicker lets the model serve file dialogs for an in-process bridge
func WithPicker(p *ModalPicker) Option {
	return func(m *Model) {
		m.picker = p
	}
}

// WithToken prefills the login form
func WithToken(token string) Option {
	return func(m *Model) {
		m.initialToken = token
	}
}

// WithPreviewStyle selects the glamour style of the preview pane ("dark", "light", "notty")
func WithPreviewStyle(style string) Option {
	return func(m *Model) {
		m.previewStyle = style
	}
}

// New creates the composer model. ctx carries the logger used by background commands.
func New(ctx context.Context, composer *usecase.Composer, opts ...Option) *Model {
	m := &Model{
		ctx:          ctx,
		composer:     composer,
		keys:         defaultKeyMap(),
		help:         help.New(),
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		previewStyle: "dark",
		width:        100,
		height:       30,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.token = textinput.New()
	m.token.Placeholder = "Bot token"
	m.token.EchoMode = textinput.EchoPassword
	m.token.EchoCharacter = '•'
	m.token.Width = 48
	m.token.SetValue(m.initialToken)
	m.token.Focus()

	m.content = textarea.New()
	m.content.ShowLineNumbers = false
	m.content.CharLimit = 4000
	m.content.SetHeight(6)

	m.title = newInput("Embed title")
	m.color = newInput("#RRGGBB")
	m.color.CharLimit = 7
	m.name = newInput("Prospect name")
	m.date = newInput("YYYY-MM-DD")
	m.date.CharLimit = 10

	m.syncFromComposer()
	return m
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.Width = 40
	return ti
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.picker != nil {
		cmds = append(cmds, m.picker.listen())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.content.SetWidth(max(20, m.formWidth()-14))
		if m.browsing {
			m.files.Height = max(5, m.height-8)
		}
		return m, nil

	case pickRequestMsg:
		return m, m.openBrowser(msg.req)

	case loginDoneMsg:
		m.busy = false
		if msg.ok {
			m.token.Blur()
			m.token.SetValue("")
			m.syncFromComposer()
			return m, m.focusCmd()
		}
		return m, nil

	case dispatchDoneMsg, imageDoneMsg, channelsLoadedMsg:
		m.busy = false
		m.syncFromComposer()
		return m, m.focusCmd()

	case StatusExpiredMsg:
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.browsing {
		return m.updateBrowser(msg)
	}

	loggedIn := m.composer.State().LoggedIn
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if !loggedIn {
			var cmd tea.Cmd
			m.token, cmd = m.token.Update(msg)
			return m, cmd
		}
		return m, m.updateFocused(msg)
	}
	if key.Matches(keyMsg, m.keys.Quit) {
		return m, tea.Quit
	}
	if !loggedIn {
		return m.updateLogin(keyMsg)
	}
	return m.updateDashboard(keyMsg)
}

func (m *Model) startBusy(cmd tea.Cmd) tea.Cmd {
	m.busy = true
	return tea.Batch(cmd, m.spinner.Tick)
}

func (m *Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		if m.busy || strings.TrimSpace(m.token.Value()) == "" {
			return m, nil
		}
		token := strings.TrimSpace(m.token.Value())
		return m, m.startBusy(func() tea.Msg {
			return loginDoneMsg{ok: m.composer.Login(m.ctx, token)}
		})
	}

	var cmd tea.Cmd
	m.token, cmd = m.token.Update(msg)
	return m, cmd
}

func (m *Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		if m.busy {
			return m, nil
		}
		return m, m.startBusy(func() tea.Msg {
			err := m.composer.Submit(m.ctx)
			if err != nil {
				ctxlog.From(m.ctx).Debug("Submit rejected", "error", err)
			}
			return dispatchDoneMsg{err: err}
		})

	case key.Matches(msg, m.keys.Attach):
		if m.busy {
			return m, nil
		}
		return m, m.startBusy(func() tea.Msg {
			return imageDoneMsg{err: m.composer.AttachImage(m.ctx)}
		})

	case key.Matches(msg, m.keys.ClearImage):
		m.composer.ClearImage()
		return m, nil

	case key.Matches(msg, m.keys.SwitchTab):
		next := types.TabProspect
		if m.composer.State().Tab == types.TabProspect {
			next = types.TabMessage
		}
		m.composer.SetTab(next)
		m.focus = 0
		m.syncFromComposer()
		return m, m.focusCmd()

	case key.Matches(msg, m.keys.Variant):
		s := m.composer.State()
		if s.Tab != types.TabMessage {
			return m, nil
		}
		if err := m.composer.SetVariant(s.Variant.Next()); err != nil {
			ctxlog.From(m.ctx).Warn("Failed to switch variant", "error", err)
		}
		m.focus = 0
		m.syncFromComposer()
		return m, m.focusCmd()

	case key.Matches(msg, m.keys.Emoji):
		m.composer.CycleVetoEmoji()
		return m, nil

	case key.Matches(msg, m.keys.AddOption):
		if m.composer.State().Variant == types.MessageVariantPoll && m.composer.AddPollOption() {
			m.syncFromComposer()
			m.focus = len(m.targets()) - 1
			return m, m.focusCmd()
		}
		return m, nil

	case key.Matches(msg, m.keys.RemoveOption):
		if t, ok := m.focused(); ok && t.kind == fieldOption {
			if m.composer.RemovePollOption(m.optionIDs[t.index]) {
				m.syncFromComposer()
				m.focus = min(m.focus, len(m.targets())-1)
				return m, m.focusCmd()
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.NextChannel):
		m.composer.CycleChannel(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevChannel):
		m.composer.CycleChannel(-1)
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, m.startBusy(func() tea.Msg {
			m.composer.RefreshChannels(m.ctx)
			return channelsLoadedMsg{}
		})

	case key.Matches(msg, m.keys.NextField):
		m.moveFocus(1)
		return m, m.focusCmd()

	case key.Matches(msg, m.keys.PrevField):
		m.moveFocus(-1)
		return m, m.focusCmd()
	}

	return m, m.updateFocused(msg)
}

// targets lists the editable fields of the active form in display order
func (m *Model) targets() []focusTarget {
	s := m.composer.State()
	if s.Tab == types.TabProspect {
		return []focusTarget{{kind: fieldName}, {kind: fieldDate}}
	}

	switch s.Variant {
	case types.MessageVariantEmbed:
		return []focusTarget{{kind: fieldTitle}, {kind: fieldContent}, {kind: fieldColor}}
	case types.MessageVariantPoll:
		t := []focusTarget{{kind: fieldContent}}
		for i := range m.options {
			t = append(t, focusTarget{kind: fieldOption, index: i})
		}
		return t
	default:
		return []focusTarget{{kind: fieldContent}}
	}
}

func (m *Model) focused() (focusTarget, bool) {
	t := m.targets()
	if m.focus < 0 || m.focus >= len(t) {
		return focusTarget{}, false
	}
	return t[m.focus], true
}

func (m *Model) moveFocus(delta int) {
	n := len(m.targets())
	if n == 0 {
		return
	}
	m.focus = ((m.focus+delta)%n + n) % n
}

// focusCmd focuses the current target and blurs every other input
func (m *Model) focusCmd() tea.Cmd {
	m.content.Blur()
	m.title.Blur()
	m.color.Blur()
	m.name.Blur()
	m.date.Blur()
	for i := range m.options {
		m.options[i].Blur()
	}

	t, ok := m.focused()
	if !ok {
		return nil
	}
	switch t.kind {
	case fieldContent:
		return m.content.Focus()
	case fieldTitle:
		return m.title.Focus()
	case fieldColor:
		return m.color.Focus()
	case fieldName:
		return m.name.Focus()
	case fieldDate:
		return m.date.Focus()
	case fieldOption:
		return m.options[t.index].Focus()
	}
	return nil
}

// updateFocused forwards msg to the focused input and copies its value into the composer
func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	t, ok := m.focused()
	if !ok {
		return nil
	}

	var cmd tea.Cmd
	switch t.kind {
	case fieldContent:
		m.content, cmd = m.content.Update(msg)
		m.composer.SetContent(m.content.Value())
	case fieldTitle:
		m.title, cmd = m.title.Update(msg)
		m.composer.SetEmbedTitle(m.title.Value())
	case fieldColor:
		m.color, cmd = m.color.Update(msg)
		m.composer.SetEmbedColor(m.color.Value())
	case fieldName:
		m.name, cmd = m.name.Update(msg)
		m.composer.SetProspectName(m.name.Value())
	case fieldDate:
		m.date, cmd = m.date.Update(msg)
		m.composer.SetProspectDate(m.date.Value())
	case fieldOption:
		m.options[t.index], cmd = m.options[t.index].Update(msg)
		m.composer.SetPollOption(m.optionIDs[t.index], m.options[t.index].Value())
	}
	return cmd
}

// syncFromComposer copies the composer's form into the inputs
func (m *Model) syncFromComposer() {
	s := m.composer.State()

	if m.content.Value() != s.Content {
		m.content.SetValue(s.Content)
	}
	m.title.SetValue(s.EmbedTitle)
	m.color.SetValue(s.EmbedColor)
	m.name.SetValue(s.ProspectName)
	m.date.SetValue(s.ProspectDate)

	existing := make(map[types.PollOptionID]textinput.Model, len(m.options))
	for i, id := range m.optionIDs {
		existing[id] = m.options[i]
	}
	m.options = m.options[:0]
	m.optionIDs = m.optionIDs[:0]
	for i, o := range s.PollOptions {
		ti, ok := existing[o.ID]
		if !ok {
			ti = newInput("Option")
		}
		ti.Placeholder = fmt.Sprintf("Option %d", i+1)
		ti.SetValue(o.Text)
		m.options = append(m.options, ti)
		m.optionIDs = append(m.optionIDs, o.ID)
	}

	if n := len(m.targets()); m.focus >= n {
		m.focus = max(0, n-1)
	}
}

func (m *Model) openBrowser(req pickRequest) tea.Cmd {
	m.pending = &req
	m.browsing = true

	m.files = filepicker.New()
	m.files.AllowedTypes = allowedTypes()
	m.files.Height = max(5, m.height-8)
	if dir, err := os.Getwd(); err == nil {
		m.files.CurrentDirectory = dir
	}
	return m.files.Init()
}

func allowedTypes() []string {
	exts := make([]string, 0, len(picker.ImageExtensions)*2)
	for _, ext := range picker.ImageExtensions {
		exts = append(exts, ext, strings.ToUpper(ext))
	}
	return exts
}

func (m *Model) closeBrowser(path *string) tea.Cmd {
	if m.pending != nil {
		m.pending.reply <- path
	}
	m.pending = nil
	m.browsing = false

	if m.picker == nil {
		return nil
	}
	return m.picker.listen()
}

func (m *Model) updateBrowser(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			return m, tea.Batch(m.closeBrowser(nil), tea.Quit)
		case key.Matches(keyMsg, m.keys.Cancel):
			return m, m.closeBrowser(nil)
		}
	}

	var cmd tea.Cmd
	m.files, cmd = m.files.Update(msg)

	if ok, path := m.files.DidSelectFile(msg); ok {
		return m, tea.Batch(cmd, m.closeBrowser(&path))
	}
	return m, cmd
}

// renderPreview renders markdown with glamour, falling back to the raw text
func (m *Model) renderPreview(md string, width int) string {
	if m.renderer == nil || m.rendererWidth != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(m.previewStyle),
			glamour.WithWordWrap(width),
			glamour.WithEmoji(),
		)
		if err != nil {
			ctxlog.From(m.ctx).Debug("Preview renderer unavailable", "error", err)
			return md
		}
		m.renderer, m.rendererWidth = r, width
	}

	out, err := m.renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

func (m *Model) formWidth() int {
	return max(40, m.width/2)
}
