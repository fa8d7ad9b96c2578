package model

import "github.com/m-mizutani/goerr/v2"

// Presets holds composer defaults an operator can override with a YAML file
type Presets struct {
	EmbedColor  string   `yaml:"embed_color"`
	PollOptions []string `yaml:"poll_options"`
	VetoEmojis  []string `yaml:"veto_emojis"`
}

// DefaultPresets returns the built-in composer defaults
func DefaultPresets() *Presets {
	return &Presets{
		EmbedColor:  "#DC2626",
		PollOptions: []string{"Yes", "No"},
		VetoEmojis:  []string{"⛔", "❌"},
	}
}

// Validate validates the presets
func (p *Presets) Validate() error {
	if _, err := ParseColor(p.EmbedColor); err != nil {
		return goerr.Wrap(err, "invalid embed_color")
	}

	if n := len(p.PollOptions); n < MinPollOptions || n > MaxPollOptions {
		return goerr.New("poll_options must have between 2 and 10 entries",
			goerr.V("count", n))
	}

	if len(p.VetoEmojis) == 0 {
		return goerr.New("at least one veto emoji is required")
	}
	for i, e := range p.VetoEmojis {
		if !IsEmoji(e) {
			return goerr.New("veto emoji must be a single emoji",
				goerr.V("index", i), goerr.V("emoji", e))
		}
	}

	return nil
}

// WithDefaults fills fields left empty in p from DefaultPresets
func (p *Presets) WithDefaults() *Presets {
	def := DefaultPresets()
	out := *p
	if out.EmbedColor == "" {
		out.EmbedColor = def.EmbedColor
	}
	if len(out.PollOptions) == 0 {
		out.PollOptions = def.PollOptions
	}
	if len(out.VetoEmojis) == 0 {
		out.VetoEmojis = def.VetoEmojis
	}
	return &out
}
