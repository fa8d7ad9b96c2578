package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	controller "github.com/wildcards-gg/wcadmin/pkg/controller/http"
	"github.com/wildcards-gg/wcadmin/pkg/utils/token"
)

func TestRequireToken(t *testing.T) {
	const secret = "bridge-secret"
	bridge := newBridgeMock()
	server := controller.NewServer(newTestContext(), ":0", bridge, controller.WithSecret(secret))

	request := func(header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/channels", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		server.Server.Handler.ServeHTTP(w, req)
		return w
	}

	t.Run("Missing token", func(t *testing.T) {
		gt.Equal(t, http.StatusUnauthorized, request("").Code)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		raw, err := token.Sign("other", time.Now())
		gt.NoError(t, err).Required()
		gt.Equal(t, http.StatusUnauthorized, request(token.Header(raw)).Code)
	})

	t.Run("Expired token", func(t *testing.T) {
		raw, err := token.Sign(secret, time.Now().Add(-10*time.Minute))
		gt.NoError(t, err).Required()
		gt.Equal(t, http.StatusUnauthorized, request(token.Header(raw)).Code)
	})

	t.Run("Valid token", func(t *testing.T) {
		raw, err := token.Sign(secret, time.Now())
		gt.NoError(t, err).Required()
		gt.Equal(t, http.StatusOK, request(token.Header(raw)).Code)
	})

	t.Run("Health stays open", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()
		server.Server.Handler.ServeHTTP(w, req)
		gt.Equal(t, http.StatusOK, w.Code)
	})

	gt.Equal(t, 1, len(bridge.ListChannelsCalls()))
}
