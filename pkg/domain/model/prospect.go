package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/wildcards-gg/wcadmin/pkg/domain/types"
)

// ProspectDateLayout is the date-picker format of a prospect end date
const ProspectDateLayout = "2006-01-02"

// Prospect is a candidate whose review window ends on EndDate
type Prospect struct {
	Name      string
	EndDate   string
	VetoEmoji string
	ImagePath string
}

// Validate checks that the required fields are present and the date parses
func (p *Prospect) Validate() error {
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.EndDate) == "" {
		return ErrProspectFieldsMissing
	}
	if _, err := p.EndTime(); err != nil {
		return err
	}
	return nil
}

// EndTime converts the end date to midnight UTC of that day
func (p *Prospect) EndTime() (time.Time, error) {
	t, err := time.Parse(ProspectDateLayout, strings.TrimSpace(p.EndDate))
	if err != nil {
		return time.Time{}, goerr.Wrap(err, "end date must be YYYY-MM-DD",
			goerr.V("date", p.EndDate), goerr.T(ErrTagValidation))
	}
	return t, nil
}

// ThreadName is the title of the review thread
func (p *Prospect) ThreadName() string {
	return "Prospect Review: " + strings.TrimSpace(p.Name)
}

// Content renders the review message posted in the thread
func (p *Prospect) Content() (string, error) {
	end, err := p.EndTime()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("**%s** prospect period will end in %s.\n\n"+
		"If you feel they should **NOT** become a WC member, you may exercise your veto "+
		"using the react below (%s), however please be prepared to explain your reasons for discussion.",
		strings.TrimSpace(p.Name), TimestampMarker(end), p.VetoEmoji), nil
}

// ThreadRequest builds the bridge request for this prospect
func (p *Prospect) ThreadRequest(channelID types.ChannelID) (*ThreadRequest, error) {
	if channelID == "" {
		return nil, ErrChannelNotSelected
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	content, err := p.Content()
	if err != nil {
		return nil, err
	}

	return &ThreadRequest{
		ChannelID: channelID,
		Name:      p.ThreadName(),
		Content:   content,
		VetoEmoji: p.VetoEmoji,
		ImagePath: p.ImagePath,
	}, nil
}

// TimestampMarker formats t as a long-date timestamp marker rendered in the reader's locale
func TimestampMarker(t time.Time) string {
	return fmt.Sprintf("<t:%d:D>", t.Unix())
}

// ThreadRequest is the plain-data form of a dispatchProspectThread call
type ThreadRequest struct {
	ChannelID types.ChannelID `json:"channelId"`
	Name      string          `json:"name"`
	Content   string          `json:"content"`
	VetoEmoji string          `json:"vetoEmoji"`
	ImagePath string          `json:"imagePath,omitempty"`
}

// HasImage reports whether an operator image should be attached
func (r *ThreadRequest) HasImage() bool {
	return strings.TrimSpace(r.ImagePath) != ""
}

// Validate checks the request before it reaches the dispatcher
func (r *ThreadRequest) Validate() error {
	if r.ChannelID == "" {
		return ErrChannelNotSelected
	}
	if strings.TrimSpace(r.Name) == "" {
		return goerr.New("thread name is required", goerr.T(ErrTagValidation))
	}
	if strings.TrimSpace(r.Content) == "" {
		return goerr.New("thread content is required", goerr.T(ErrTagValidation))
	}
	if !IsEmoji(r.VetoEmoji) {
		return goerr.New("veto emoji must be a single emoji",
			goerr.V("emoji", r.VetoEmoji), goerr.T(ErrTagValidation))
	}
	return nil
}
