package tui

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	"github.com/wildcards-gg/wcadmin/pkg/domain/interfaces/mocks"
	"github.com/wildcards-gg/wcadmin/pkg/domain/model"
	"github.com/wildcards-gg/wcadmin/pkg/domain/types"
	"github.com/wildcards-gg/wcadmin/pkg/usecase"
)

func newTestContext() context.Context {
	return ctxlog.With(context.Background(), slog.New(slog.NewTextHandler(os.Stdout, nil)))
}

func newBridgeMock() *mocks.BridgeMock {
	return &mocks.BridgeMock{
		AuthenticateFunc: func(ctx context.Context, token string) (bool, error) {
			return token == "valid-token", nil
		},
		ListChannelsFunc: func(ctx context.Context, guildID types.GuildID) ([]model.Channel, error) {
			return []model.Channel{{ID: "C1", Name: "announcements"}, {ID: "C2", Name: "prospects"}}, nil
		},
		DispatchMessageFunc: func(ctx context.Context, req model.MessageRequest) (model.DispatchResult, error) {
			return model.DispatchSucceeded(), nil
		},
		DispatchProspectThreadFunc: func(ctx context.Context, req model.ThreadRequest) (model.DispatchResult, error) {
			return model.DispatchSucceeded(), nil
		},
	}
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func typeText(m *Model, s string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

// runBusy executes a command returned by startBusy and feeds every result back into m
func runBusy(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	gt.True(t, cmd != nil)

	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		batch = tea.BatchMsg{func() tea.Msg { return msg }}
	}
	for _, c := range batch {
		if c == nil {
			continue
		}
		m.Update(c())
	}
}

func loggedIn(t *testing.T, bridge *mocks.BridgeMock, opts ...Option) (*Model, *usecase.Composer) {
	t.Helper()
	composer := usecase.NewComposer(bridge)
	t.Cleanup(composer.Close)
	m := New(newTestContext(), composer, opts...)

	typeText(m, "valid-token")
	_, cmd := m.Update(keyType(tea.KeyEnter))
	runBusy(t, m, cmd)

	gt.True(t, composer.State().LoggedIn)
	return m, composer
}

func TestLogin(t *testing.T) {
	t.Run("Success shows the dashboard", func(t *testing.T) {
		m, _ := loggedIn(t, newBridgeMock())
		view := m.View()
		gt.S(t, view).Contains("#announcements")
		gt.S(t, view).Contains("Message")
		gt.False(t, m.busy)
	})

	t.Run("Invalid token stays on the login screen", func(t *testing.T) {
		composer := usecase.NewComposer(newBridgeMock())
		m := New(newTestContext(), composer)

		typeText(m, "wrong")
		_, cmd := m.Update(keyType(tea.KeyEnter))
		runBusy(t, m, cmd)

		gt.False(t, composer.State().LoggedIn)
		gt.S(t, m.View()).Contains(usecase.MsgInvalidToken)
	})

	t.Run("Empty token is ignored", func(t *testing.T) {
		bridge := newBridgeMock()
		m := New(newTestContext(), usecase.NewComposer(bridge))

		_, cmd := m.Update(keyType(tea.KeyEnter))
		gt.True(t, cmd == nil)
		gt.Equal(t, 0, len(bridge.AuthenticateCalls()))
	})
}

func TestTypingUpdatesComposer(t *testing.T) {
	m, composer := loggedIn(t, newBridgeMock())

	typeText(m, "Hello team")
	gt.Equal(t, "Hello team", composer.State().Content)
	gt.S(t, m.View()).Contains("Hello team")
}

func TestSwitchTabAndVariant(t *testing.T) {
	m, composer := loggedIn(t, newBridgeMock())

	m.Update(keyType(tea.KeyCtrlK))
	gt.Equal(t, types.MessageVariantEmbed, composer.State().Variant)
	gt.S(t, m.View()).Contains("Title")

	typeText(m, "Notice")
	gt.Equal(t, "Notice", composer.State().EmbedTitle)

	m.Update(keyType(tea.KeyCtrlT))
	gt.Equal(t, types.TabProspect, composer.State().Tab)
	gt.S(t, m.View()).Contains("End date")

	typeText(m, "Alex")
	m.Update(keyType(tea.KeyTab))
	typeText(m, "2026-11-01")
	s := composer.State()
	gt.Equal(t, "Alex", s.ProspectName)
	gt.Equal(t, "2026-11-01", s.ProspectDate)

	m.Update(keyType(tea.KeyCtrlE))
	gt.Equal(t, "❌", composer.State().VetoEmoji)
}

func TestPollOptionKeys(t *testing.T) {
	m, composer := loggedIn(t, newBridgeMock())

	m.Update(keyType(tea.KeyCtrlK))
	m.Update(keyType(tea.KeyCtrlK))
	gt.Equal(t, types.MessageVariantPoll, composer.State().Variant)
	gt.Equal(t, 2, len(m.options))

	m.Update(keyType(tea.KeyCtrlN))
	gt.Equal(t, 3, len(composer.State().PollOptions))
	target, ok := m.focused()
	gt.True(t, ok)
	gt.Equal(t, fieldOption, target.kind)
	gt.Equal(t, 2, target.index)

	typeText(m, "Maybe")
	gt.Equal(t, "Maybe", composer.State().PollOptions[2].Text)

	m.Update(keyType(tea.KeyCtrlD))
	opts := composer.State().PollOptions
	gt.Equal(t, 2, len(opts))
	gt.Equal(t, "Yes", opts[0].Text)
	gt.Equal(t, 2, len(m.options))

	// the minimum is kept
	m.Update(keyType(tea.KeyCtrlD))
	gt.Equal(t, 2, len(composer.State().PollOptions))
}

func TestChannelKeys(t *testing.T) {
	m, composer := loggedIn(t, newBridgeMock())

	m.Update(keyType(tea.KeyPgDown))
	gt.Equal(t, types.ChannelID("C2"), composer.State().ChannelID)
	m.Update(keyType(tea.KeyPgUp))
	gt.Equal(t, types.ChannelID("C1"), composer.State().ChannelID)
}

func TestSubmit(t *testing.T) {
	bridge := newBridgeMock()
	m, composer := loggedIn(t, bridge)

	typeText(m, "Hello team")
	_, cmd := m.Update(keyType(tea.KeyCtrlS))
	runBusy(t, m, cmd)

	gt.Equal(t, 1, len(bridge.DispatchMessageCalls()))
	gt.Equal(t, "Hello team", bridge.DispatchMessageCalls()[0].Req.Content)
	gt.Equal(t, "", composer.State().Content)
	gt.Equal(t, "", m.content.Value())
	gt.S(t, m.View()).Contains(usecase.MsgMessageSent)
}

func TestModalPicker(t *testing.T) {
	t.Run("Selection flows back to the caller", func(t *testing.T) {
		picker := NewModalPicker()
		m, _ := loggedIn(t, newBridgeMock(), WithPicker(picker))

		type result struct {
			path *string
			err  error
		}
		done := make(chan result, 1)
		go func() {
			path, err := picker.PickImage(newTestContext())
			done <- result{path, err}
		}()

		m.Update(picker.listen()())
		gt.True(t, m.browsing)
		gt.S(t, m.View()).Contains("Select an image")

		selected := "/tmp/evidence.png"
		m.closeBrowser(&selected)
		gt.False(t, m.browsing)

		select {
		case r := <-done:
			gt.NoError(t, r.err)
			gt.V(t, r.path).NotNil()
			gt.Equal(t, selected, *r.path)
		case <-time.After(time.Second):
			t.Fatal("picker did not return")
		}
	})

	t.Run("Escape cancels", func(t *testing.T) {
		picker := NewModalPicker()
		m, _ := loggedIn(t, newBridgeMock(), WithPicker(picker))

		done := make(chan *string, 1)
		go func() {
			path, _ := picker.PickImage(newTestContext())
			done <- path
		}()

		m.Update(picker.listen()())
		m.Update(keyType(tea.KeyEsc))
		gt.False(t, m.browsing)

		select {
		case path := <-done:
			gt.True(t, path == nil)
		case <-time.After(time.Second):
			t.Fatal("picker did not return")
		}
	})

	t.Run("No running browser", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(newTestContext(), 10*time.Millisecond)
		defer cancel()

		_, err := NewModalPicker().PickImage(ctx)
		gt.Error(t, err)
	})
}

func TestAllowedTypes(t *testing.T) {
	exts := strings.Join(allowedTypes(), " ")
	gt.S(t, exts).Contains(".png")
	gt.S(t, exts).Contains(".PNG")
	gt.S(t, exts).Contains(".webp")
}
