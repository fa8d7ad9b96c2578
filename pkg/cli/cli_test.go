package cli

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/wildcards-gg/wcadmin/pkg/domain/model"
	"github.com/wildcards-gg/wcadmin/pkg/domain/types"
)

func TestSendInputRequest(t *testing.T) {
	in := sendInput{
		ChannelID:    "C1",
		Variant:      "poll",
		Content:      "Lunch?",
		Options:      []string{"Pizza", "Tacos"},
		PollDuration: 90 * time.Minute,
	}
	req, err := in.request()
	gt.NoError(t, err)
	gt.Equal(t, req.ChannelID, types.ChannelID("C1"))
	gt.Equal(t, req.Variant, types.MessageVariantPoll)
	gt.Equal(t, req.PollDuration, 1)

	msg, err := req.Outbound()
	gt.NoError(t, err)
	gt.Equal(t, msg.Variant(), types.MessageVariantPoll)
}

func TestSendInputRejectsSubHourPoll(t *testing.T) {
	in := sendInput{
		ChannelID:    "C1",
		Variant:      "poll",
		Content:      "Lunch?",
		Options:      []string{"Pizza", "Tacos"},
		PollDuration: 30 * time.Minute,
	}
	_, err := in.request()
	gt.Error(t, err)

	// Other variants ignore the poll duration.
	in.Variant = "simple"
	_, err = in.request()
	gt.NoError(t, err)
}

func TestRunServerReturnsListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	gt.NoError(t, err).Required()
	t.Cleanup(func() { _ = ln.Close() })

	server := &http.Server{Addr: ln.Addr().String()}

	done := make(chan error, 1)
	go func() { done <- runServer(context.Background(), server, make(chan os.Signal)) }()

	select {
	case err := <-done:
		gt.Error(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not report the bind failure")
	}
}

func TestRunServerStopsOnSignal(t *testing.T) {
	server := &http.Server{Addr: "127.0.0.1:0"}
	sigChan := make(chan os.Signal, 1)
	sigChan <- os.Interrupt

	gt.NoError(t, runServer(context.Background(), server, sigChan))
}

func TestPrintChannels(t *testing.T) {
	var buf bytes.Buffer
	gt.NoError(t, printChannels(&buf, []model.Channel{
		{ID: "1", Name: "general"},
		{ID: "22", Name: "mods"},
	}))
	gt.S(t, buf.String()).Contains("#general")
	gt.S(t, buf.String()).Contains("22  #mods")
}

func TestResultError(t *testing.T) {
	gt.NoError(t, resultError(model.DispatchSucceeded()))

	err := resultError(model.DispatchResult{Error: "Unknown Channel"})
	gt.Error(t, err)
	gt.Equal(t, err.Error(), "Unknown Channel")
}

func TestRunRejectsInvalidLogLevel(t *testing.T) {
	err := Run(context.Background(), []string{"wcadmin", "--log-level", "loud", "channels"})
	gt.Error(t, err)
}
