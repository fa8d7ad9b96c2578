package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"
	"github.com/wildcards-gg/wcadmin/pkg/domain/interfaces"
	"github.com/wildcards-gg/wcadmin/pkg/domain/model"
	"github.com/wildcards-gg/wcadmin/pkg/domain/types"
	"github.com/wildcards-gg/wcadmin/pkg/utils/token"
)

// Client implements interfaces.Bridge against a remote `wcadmin serve` process
type Client struct {
	baseURL    string
	secret     string
	httpClient *http.Client
	now        func() time.Time
}

var _ interfaces.Bridge = (*Client)(nil)

// Option configures a Client
type Option func(*Client)

// WithSecret signs every request with a bearer token derived from secret
func WithSecret(secret string) Option {
	return func(c *Client) {
		c.secret = secret
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a Client for the bridge served at baseURL
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, goerr.New("invalid bridge URL", goerr.V("url", baseURL))
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return goerr.Wrap(err, "failed to encode bridge request", goerr.V("path", path))
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return goerr.Wrap(err, "failed to create bridge request", goerr.V("path", path))
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(middleware.RequestIDHeader, types.NewRequestID().String())
	if c.secret != "" {
		raw, err := token.Sign(c.secret, c.now())
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", token.Header(raw))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "bridge request failed", goerr.V("path", path))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var e model.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&e); err != nil || e.Error == "" {
			e.Error = resp.Status
		}
		return goerr.New(e.Error, goerr.V("path", path), goerr.V("status", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return goerr.Wrap(err, "failed to decode bridge response", goerr.V("path", path))
	}
	return nil
}

// Authenticate implements interfaces.Bridge
func (c *Client) Authenticate(ctx context.Context, botToken string) (bool, error) {
	var resp model.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth", model.AuthRequest{Token: botToken}, &resp); err != nil {
		return false, err
	}
	return resp.OK, nil
}

// ListGuilds implements interfaces.Bridge
func (c *Client) ListGuilds(ctx context.Context) ([]model.Guild, error) {
	guilds := []model.Guild{}
	if err := c.do(ctx, http.MethodGet, "/api/guilds", nil, &guilds); err != nil {
		return nil, err
	}
	return guilds, nil
}

// ListChannels implements interfaces.Bridge
func (c *Client) ListChannels(ctx context.Context, guildID types.GuildID) ([]model.Channel, error) {
	path := "/api/channels"
	if guildID != "" {
		path += "?" + url.Values{"guild_id": {guildID.String()}}.Encode()
	}

	channels := []model.Channel{}
	if err := c.do(ctx, http.MethodGet, path, nil, &channels); err != nil {
		return nil, err
	}
	return channels, nil
}

// ListMembers implements interfaces.Bridge
func (c *Client) ListMembers(ctx context.Context, guildID types.GuildID) ([]model.Member, error) {
	members := []model.Member{}
	path := "/api/guilds/" + url.PathEscape(guildID.String()) + "/members"
	if err := c.do(ctx, http.MethodGet, path, nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// PickImageFile implements interfaces.Bridge. The dialog opens on the serving host.
func (c *Client) PickImageFile(ctx context.Context) (*string, error) {
	var resp model.ImageResponse
	if err := c.do(ctx, http.MethodPost, "/api/image", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Path, nil
}

// DispatchMessage implements interfaces.Bridge
func (c *Client) DispatchMessage(ctx context.Context, req model.MessageRequest) (model.DispatchResult, error) {
	var result model.DispatchResult
	if err := c.do(ctx, http.MethodPost, "/api/messages", req, &result); err != nil {
		return model.DispatchResult{}, err
	}
	return result, nil
}

// DispatchProspectThread implements interfaces.Bridge
func (c *Client) DispatchProspectThread(ctx context.Context, req model.ThreadRequest) (model.DispatchResult, error) {
	var result model.DispatchResult
	if err := c.do(ctx, http.MethodPost, "/api/prospects", req, &result); err != nil {
		return model.DispatchResult{}, err
	}
	return result, nil
}
