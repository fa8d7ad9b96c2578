package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/wildcards-gg/wcadmin/pkg/domain/types"
)

const (
	MinPollOptions = 2
	MaxPollOptions = 10

	// DefaultPollDurationHours applies when a poll request carries no duration
	DefaultPollDurationHours = 24
	// MaxPollDurationHours is the longest poll the platform accepts (32 days)
	MaxPollDurationHours = 768
)

// OutboundMessage is one of SimpleMessage, EmbedMessage or PollMessage
type OutboundMessage interface {
	Variant() types.MessageVariant
	isOutbound()
}

// SimpleMessage is plain text content
type SimpleMessage struct {
	Text string
}

// Variant implements OutboundMessage
func (SimpleMessage) Variant() types.MessageVariant { return types.MessageVariantSimple }
func (SimpleMessage) isOutbound()                   {}

// EmbedMessage is a styled embed. Title is optional.
type EmbedMessage struct {
	Title string
	Body  string
	Color Color
}

// Variant implements OutboundMessage
func (EmbedMessage) Variant() types.MessageVariant { return types.MessageVariantEmbed }
func (EmbedMessage) isOutbound()                   {}

// PollMessage is a question with 2 to 10 ordered answers
type PollMessage struct {
	Question      string
	Options       []string
	DurationHours int
}

// Variant implements OutboundMessage
func (PollMessage) Variant() types.MessageVariant { return types.MessageVariantPoll }
func (PollMessage) isOutbound()                   {}

// MessageRequest is the plain-data form of a dispatchMessage call
type MessageRequest struct {
	ChannelID    types.ChannelID      `json:"channelId"`
	Variant      types.MessageVariant `json:"variant"`
	Content      string               `json:"content"`
	EmbedTitle   string               `json:"embedTitle,omitempty"`
	EmbedColor   string               `json:"embedColor,omitempty"`
	PollOptions  []string             `json:"pollOptions,omitempty"`
	PollDuration int                  `json:"pollDuration,omitempty"`
	ImagePath    string               `json:"imagePath,omitempty"`
}

// HasImage reports whether an image should be attached
func (r *MessageRequest) HasImage() bool {
	return strings.TrimSpace(r.ImagePath) != ""
}

// Outbound validates the request and converts it into its typed variant
func (r *MessageRequest) Outbound() (OutboundMessage, error) {
	if r.ChannelID == "" {
		return nil, ErrChannelNotSelected
	}

	switch r.Variant {
	case types.MessageVariantSimple, "":
		if strings.TrimSpace(r.Content) == "" && !r.HasImage() {
			return nil, goerr.New("message content or image is required", goerr.T(ErrTagValidation))
		}
		return SimpleMessage{Text: r.Content}, nil

	case types.MessageVariantEmbed:
		if strings.TrimSpace(r.Content) == "" && strings.TrimSpace(r.EmbedTitle) == "" {
			return nil, goerr.New("embed title or body is required", goerr.T(ErrTagValidation))
		}
		color, err := ParseColor(r.EmbedColor)
		if err != nil {
			return nil, err
		}
		return EmbedMessage{
			Title: strings.TrimSpace(r.EmbedTitle),
			Body:  r.Content,
			Color: color,
		}, nil

	case types.MessageVariantPoll:
		return r.poll()

	default:
		return nil, goerr.New("unknown message variant",
			goerr.V("variant", r.Variant), goerr.T(ErrTagValidation))
	}
}

func (r *MessageRequest) poll() (OutboundMessage, error) {
	question := strings.TrimSpace(r.Content)
	if question == "" {
		return nil, goerr.New("poll question is required", goerr.T(ErrTagValidation))
	}

	if n := len(r.PollOptions); n < MinPollOptions || n > MaxPollOptions {
		return nil, goerr.New("poll must have between 2 and 10 options",
			goerr.V("count", n), goerr.T(ErrTagValidation))
	}

	options := make([]string, 0, len(r.PollOptions))
	for i, opt := range r.PollOptions {
		opt = strings.TrimSpace(opt)
		if opt == "" {
			return nil, goerr.New("poll option must not be empty",
				goerr.V("index", i), goerr.T(ErrTagValidation))
		}
		options = append(options, opt)
	}

	duration := r.PollDuration
	if duration == 0 {
		duration = DefaultPollDurationHours
	}
	if duration < 1 || duration > MaxPollDurationHours {
		return nil, goerr.New("poll duration must be between 1 and 768 hours",
			goerr.V("duration", r.PollDuration), goerr.T(ErrTagValidation))
	}

	return PollMessage{
		Question:      question,
		Options:       options,
		DurationHours: duration,
	}, nil
}
