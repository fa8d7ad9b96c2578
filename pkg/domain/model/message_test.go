package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/wildcards-gg/wcadmin/pkg/domain/model"
	"github.com/wildcards-gg/wcadmin/pkg/domain/types"
)

func TestMessageRequest_Outbound(t *testing.T) {
	t.Run("Simple message", func(t *testing.T) {
		req := &model.MessageRequest{
			ChannelID: "C1",
			Variant:   types.MessageVariantSimple,
			Content:   "hello everyone",
		}
		msg, err := req.Outbound()
		gt.NoError(t, err).Required()
		gt.Equal(t, types.MessageVariantSimple, msg.Variant())
		gt.Equal(t, model.SimpleMessage{Text: "hello everyone"}, msg.(model.SimpleMessage))
	})

	t.Run("Simple message with only an image", func(t *testing.T) {
		req := &model.MessageRequest{ChannelID: "C1", Variant: types.MessageVariantSimple, ImagePath: "/tmp/a.png"}
		_, err := req.Outbound()
		gt.NoError(t, err)
	})

	t.Run("Empty variant falls back to simple", func(t *testing.T) {
		req := &model.MessageRequest{ChannelID: "C1", Content: "x"}
		msg, err := req.Outbound()
		gt.NoError(t, err).Required()
		gt.Equal(t, types.MessageVariantSimple, msg.Variant())
	})

	t.Run("Embed message", func(t *testing.T) {
		req := &model.MessageRequest{
			ChannelID:  "C1",
			Variant:    types.MessageVariantEmbed,
			Content:    "body text",
			EmbedTitle: "  Title  ",
			EmbedColor: "#DC2626",
		}
		msg, err := req.Outbound()
		gt.NoError(t, err).Required()
		embed := msg.(model.EmbedMessage)
		gt.Equal(t, "Title", embed.Title)
		gt.Equal(t, "body text", embed.Body)
		gt.Equal(t, model.Color(0xDC2626), embed.Color)
	})

	t.Run("Embed without color uses default", func(t *testing.T) {
		req := &model.MessageRequest{ChannelID: "C1", Variant: types.MessageVariantEmbed, Content: "body"}
		msg, err := req.Outbound()
		gt.NoError(t, err).Required()
		gt.Equal(t, model.DefaultEmbedColor, msg.(model.EmbedMessage).Color)
	})

	t.Run("Poll message", func(t *testing.T) {
		req := &model.MessageRequest{
			ChannelID:   "C1",
			Variant:     types.MessageVariantPoll,
			Content:     "Movie night?",
			PollOptions: []string{" Yes ", "No"},
		}
		msg, err := req.Outbound()
		gt.NoError(t, err).Required()
		poll := msg.(model.PollMessage)
		gt.Equal(t, "Movie night?", poll.Question)
		gt.Equal(t, []string{"Yes", "No"}, poll.Options)
		gt.Equal(t, model.DefaultPollDurationHours, poll.DurationHours)
	})

	errorCases := []struct {
		name string
		req  model.MessageRequest
	}{
		{"missing channel", model.MessageRequest{Variant: types.MessageVariantSimple, Content: "x"}},
		{"empty simple", model.MessageRequest{ChannelID: "C1", Variant: types.MessageVariantSimple, Content: "  "}},
		{"empty embed", model.MessageRequest{ChannelID: "C1", Variant: types.MessageVariantEmbed}},
		{"bad embed color", model.MessageRequest{ChannelID: "C1", Variant: types.MessageVariantEmbed, Content: "x", EmbedColor: "red"}},
		{"poll without question", model.MessageRequest{ChannelID: "C1", Variant: types.MessageVariantPoll, PollOptions: []string{"a", "b"}}},
		{"poll with one option", model.MessageRequest{ChannelID: "C1", Variant: types.MessageVariantPoll, Content: "q", PollOptions: []string{"a"}}},
		{"poll with eleven options", model.MessageRequest{ChannelID: "C1", Variant: types.MessageVariantPoll, Content: "q",
			PollOptions: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11"}}},
		{"poll with blank option", model.MessageRequest{ChannelID: "C1", Variant: types.MessageVariantPoll, Content: "q", PollOptions: []string{"a", " "}}},
		{"poll duration too long", model.MessageRequest{ChannelID: "C1", Variant: types.MessageVariantPoll, Content: "q",
			PollOptions: []string{"a", "b"}, PollDuration: 1000}},
		{"unknown variant", model.MessageRequest{ChannelID: "C1", Variant: "sticker", Content: "x"}},
	}

	for _, tc := range errorCases {
		t.Run("Rejects "+tc.name, func(t *testing.T) {
			_, err := tc.req.Outbound()
			gt.Error(t, err)
			gt.True(t, goerr.HasTag(err, model.ErrTagValidation))
		})
	}

	t.Run("Missing channel is the channel sentinel", func(t *testing.T) {
		req := &model.MessageRequest{Content: "x"}
		_, err := req.Outbound()
		gt.True(t, errors.Is(err, model.ErrChannelNotSelected))
	})
}

func TestParseColor(t *testing.T) {
	testCases := []struct {
		input    string
		expected model.Color
		wantErr  bool
	}{
		{"#5865F2", 0x5865F2, false},
		{"5865f2", 0x5865F2, false},
		{"", model.DefaultEmbedColor, false},
		{"#FFF", 0, true},
		{"#GGGGGG", 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			c, err := model.ParseColor(tc.input)
			if tc.wantErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
			gt.Equal(t, tc.expected, c)
		})
	}

	gt.Equal(t, "#DC2626", model.Color(0xDC2626).Hex())
}
