package model_test

import (
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/wildcards-gg/wcadmin/pkg/domain/model"
)

func TestProspect_Validate(t *testing.T) {
	testCases := []struct {
		name     string
		prospect model.Prospect
		missing  bool
	}{
		{"empty name", model.Prospect{EndDate: "2026-11-01"}, true},
		{"empty date", model.Prospect{Name: "Alice"}, true},
		{"blank name", model.Prospect{Name: "   ", EndDate: "2026-11-01"}, true},
		{"complete", model.Prospect{Name: "Alice", EndDate: "2026-11-01"}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.prospect.Validate()
			if tc.missing {
				gt.True(t, errors.Is(err, model.ErrProspectFieldsMissing))
			} else {
				gt.NoError(t, err)
			}
		})
	}

	t.Run("bad date", func(t *testing.T) {
		p := model.Prospect{Name: "Alice", EndDate: "11/01/2026"}
		err := p.Validate()
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagValidation))
	})
}

func TestProspect_EndTime(t *testing.T) {
	p := model.Prospect{Name: "Alice", EndDate: "2026-11-01"}
	end, err := p.EndTime()
	gt.NoError(t, err).Required()
	gt.Equal(t, int64(1793491200), end.Unix())
	gt.Equal(t, time.UTC, end.Location())
}

func TestProspect_ThreadRequest(t *testing.T) {
	p := model.Prospect{Name: " Alice ", EndDate: "2025-01-15", VetoEmoji: "⛔", ImagePath: "/tmp/alice.png"}

	req, err := p.ThreadRequest("C42")
	gt.NoError(t, err).Required()
	gt.Equal(t, "Prospect Review: Alice", req.Name)
	gt.Equal(t, "⛔", req.VetoEmoji)
	gt.Equal(t, "/tmp/alice.png", req.ImagePath)
	gt.S(t, req.Content).Contains("**Alice** prospect period will end in <t:1736899200:D>.")
	gt.S(t, req.Content).Contains("using the react below (⛔)")
	gt.NoError(t, req.Validate())

	_, err = p.ThreadRequest("")
	gt.True(t, errors.Is(err, model.ErrChannelNotSelected))
}

func TestThreadRequest_Validate(t *testing.T) {
	base := model.ThreadRequest{ChannelID: "C1", Name: "n", Content: "c", VetoEmoji: "❌"}
	gt.NoError(t, base.Validate())

	noEmoji := base
	noEmoji.VetoEmoji = ""
	gt.Error(t, noEmoji.Validate())

	twoEmoji := base
	twoEmoji.VetoEmoji = "⛔ ❌"
	gt.Error(t, twoEmoji.Validate())

	word := base
	word.VetoEmoji = "hello"
	gt.Error(t, word.Validate())

	custom := base
	custom.VetoEmoji = "veto:123456789012345678"
	gt.NoError(t, custom.Validate())

	noContent := base
	noContent.Content = ""
	gt.Error(t, noContent.Validate())
}

func TestTimestampMarker(t *testing.T) {
	ts := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	gt.Equal(t, "<t:1793491200:D>", model.TimestampMarker(ts))
}
