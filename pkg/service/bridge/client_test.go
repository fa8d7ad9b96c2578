package bridge_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	controller "github.com/wildcards-gg/wcadmin/pkg/controller/http"
	"github.com/wildcards-gg/wcadmin/pkg/domain/interfaces/mocks"
	"github.com/wildcards-gg/wcadmin/pkg/domain/model"
	"github.com/wildcards-gg/wcadmin/pkg/domain/types"
	"github.com/wildcards-gg/wcadmin/pkg/service/bridge"
)

const secret = "bridge-secret"

func newTestContext() context.Context {
	return ctxlog.With(context.Background(), slog.New(slog.NewTextHandler(os.Stdout, nil)))
}

func setup(t *testing.T, mock *mocks.BridgeMock, clientOpts ...bridge.Option) *bridge.Client {
	t.Helper()
	server := controller.NewServer(newTestContext(), ":0", mock, controller.WithSecret(secret))
	ts := httptest.NewServer(server.Server.Handler)
	t.Cleanup(ts.Close)

	client, err := bridge.New(ts.URL, clientOpts...)
	gt.NoError(t, err).Required()
	return client
}

func TestClientRoundTrip(t *testing.T) {
	ctx := newTestContext()
	selected := "/home/mod/evidence.png"
	mock := &mocks.BridgeMock{
		AuthenticateFunc: func(ctx context.Context, token string) (bool, error) {
			return token == "valid-token", nil
		},
		ListGuildsFunc: func(ctx context.Context) ([]model.Guild, error) {
			return []model.Guild{{ID: "G1", Name: "WC"}}, nil
		},
		ListChannelsFunc: func(ctx context.Context, guildID types.GuildID) ([]model.Channel, error) {
			return []model.Channel{{ID: "C1", Name: "announcements"}, {ID: "C2", Name: "prospects"}}, nil
		},
		ListMembersFunc: func(ctx context.Context, guildID types.GuildID) ([]model.Member, error) {
			return []model.Member{{ID: "U1", Username: "amy", DisplayName: "Amy"}}, nil
		},
		PickImageFileFunc: func(ctx context.Context) (*string, error) {
			return &selected, nil
		},
		DispatchMessageFunc: func(ctx context.Context, req model.MessageRequest) (model.DispatchResult, error) {
			return model.DispatchSucceeded(), nil
		},
		DispatchProspectThreadFunc: func(ctx context.Context, req model.ThreadRequest) (model.DispatchResult, error) {
			return model.DispatchResult{Success: false, Error: "Unknown Channel"}, nil
		},
	}
	client := setup(t, mock, bridge.WithSecret(secret))

	ok, err := client.Authenticate(ctx, "valid-token")
	gt.NoError(t, err).Required()
	gt.True(t, ok)
	gt.Equal(t, "valid-token", mock.AuthenticateCalls()[0].Token)

	guilds, err := client.ListGuilds(ctx)
	gt.NoError(t, err).Required()
	gt.Equal(t, []model.Guild{{ID: "G1", Name: "WC"}}, guilds)

	channels, err := client.ListChannels(ctx, "G1")
	gt.NoError(t, err).Required()
	gt.Equal(t, 2, len(channels))
	gt.Equal(t, types.GuildID("G1"), mock.ListChannelsCalls()[0].GuildID)

	members, err := client.ListMembers(ctx, "G1")
	gt.NoError(t, err).Required()
	gt.Equal(t, "Amy", members[0].DisplayName)

	path, err := client.PickImageFile(ctx)
	gt.NoError(t, err).Required()
	gt.V(t, path).NotNil()
	gt.Equal(t, selected, *path)

	result, err := client.DispatchMessage(ctx, model.MessageRequest{
		ChannelID:  "C1",
		Variant:    types.MessageVariantEmbed,
		Content:    "body",
		EmbedTitle: "title",
		EmbedColor: "#DC2626",
	})
	gt.NoError(t, err).Required()
	gt.True(t, result.Success)
	sent := mock.DispatchMessageCalls()[0].Req
	gt.Equal(t, "title", sent.EmbedTitle)
	gt.Equal(t, "#DC2626", sent.EmbedColor)

	result, err = client.DispatchProspectThread(ctx, model.ThreadRequest{
		ChannelID: "C9",
		Name:      "Prospect Review: Alex",
		Content:   "text",
		VetoEmoji: "❌",
	})
	gt.NoError(t, err).Required()
	gt.False(t, result.Success)
	gt.Equal(t, "Unknown Channel", result.Error)
}

func TestClientCancelledPick(t *testing.T) {
	mock := &mocks.BridgeMock{
		PickImageFileFunc: func(ctx context.Context) (*string, error) { return nil, nil },
	}
	client := setup(t, mock, bridge.WithSecret(secret))

	path, err := client.PickImageFile(newTestContext())
	gt.NoError(t, err)
	gt.True(t, path == nil)
}

func TestClientWithoutSecretIsRejected(t *testing.T) {
	mock := &mocks.BridgeMock{}
	client := setup(t, mock)

	_, err := client.Authenticate(newTestContext(), "valid-token")
	gt.Error(t, err)
	gt.S(t, err.Error()).Contains("missing bearer token")
	gt.Equal(t, 0, len(mock.AuthenticateCalls()))
}

func TestNewInvalidURL(t *testing.T) {
	_, err := bridge.New("not a url")
	gt.Error(t, err)
}

func TestClientSendsRequestID(t *testing.T) {
	var got string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("X-Request-Id")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(ts.Close)

	client, err := bridge.New(ts.URL)
	gt.NoError(t, err).Required()

	ok, err := client.Authenticate(newTestContext(), "valid-token")
	gt.NoError(t, err)
	gt.True(t, ok)
	gt.NotEqual(t, got, "")
}
