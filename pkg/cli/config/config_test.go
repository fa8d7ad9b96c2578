package config_test

import (
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/wildcards-gg/wcadmin/pkg/cli/config"
)

func TestLoggerConfigure(t *testing.T) {
	t.Run("stderr by default", func(t *testing.T) {
		cfg := config.Logger{Level: "debug", Format: "json"}
		logger, closer, err := cfg.Configure()
		gt.NoError(t, err)
		gt.NoError(t, closer.Close())
		gt.True(t, logger != nil)
		gt.False(t, cfg.HasFile())
	})

	t.Run("file output", func(t *testing.T) {
		cfg := config.Logger{Level: "info", File: filepath.Join(t.TempDir(), "x.log")}
		_, closer, err := cfg.Configure()
		gt.NoError(t, err)
		gt.NoError(t, closer.Close())
		gt.True(t, cfg.HasFile())
	})

	t.Run("invalid level", func(t *testing.T) {
		cfg := config.Logger{Level: "loud"}
		_, _, err := cfg.Configure()
		gt.Error(t, err)
	})

	t.Run("invalid format", func(t *testing.T) {
		cfg := config.Logger{Format: "xml"}
		gt.Error(t, cfg.Validate())
	})
}

func TestServerValidate(t *testing.T) {
	gt.NoError(t, (&config.Server{Addr: "127.0.0.1:8080"}).Validate())
	gt.Error(t, (&config.Server{Addr: "nohost"}).Validate())
}

func TestBridgeConfigure(t *testing.T) {
	var local config.Bridge
	client, err := local.Configure()
	gt.NoError(t, err)
	gt.True(t, client == nil)
	gt.False(t, local.IsRemote())

	remote := config.Bridge{URL: "http://127.0.0.1:8080", Secret: "s"}
	client, err = remote.Configure()
	gt.NoError(t, err)
	gt.True(t, client != nil)
}

func TestDiscordConfigure(t *testing.T) {
	cfg := config.Discord{Token: "abc", JudgeImage: "judge.jpg"}
	d := cfg.Configure()
	gt.Equal(t, d.State().String(), "unauthenticated")

	token, err := cfg.ResolveToken(t.Context())
	gt.NoError(t, err)
	gt.Equal(t, token, "abc")
}
