package usecase

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/wildcards-gg/wcadmin/pkg/domain/interfaces"
	"github.com/wildcards-gg/wcadmin/pkg/domain/model"
	"github.com/wildcards-gg/wcadmin/pkg/domain/types"
	"github.com/wildcards-gg/wcadmin/pkg/utils/apperr"
)

// Bridge is the in-process implementation of interfaces.Bridge. It validates
// requests, forwards them to the Dispatcher and converts every failure into a
// DispatchResult.
type Bridge struct {
	dispatcher *Dispatcher
	picker     interfaces.FilePicker
}

var _ interfaces.Bridge = (*Bridge)(nil)

// NewBridge creates a Bridge. picker may be nil when no file dialog is available.
func NewBridge(dispatcher *Dispatcher, picker interfaces.FilePicker) *Bridge {
	return &Bridge{
		dispatcher: dispatcher,
		picker:     picker,
	}
}

// SetPicker replaces the file picker; used by front ends that own the dialog
func (b *Bridge) SetPicker(picker interfaces.FilePicker) {
	b.picker = picker
}

// Authenticate implements interfaces.Bridge
func (b *Bridge) Authenticate(ctx context.Context, token string) (bool, error) {
	return b.dispatcher.Authenticate(ctx, token), nil
}

// ListGuilds implements interfaces.Bridge
func (b *Bridge) ListGuilds(ctx context.Context) ([]model.Guild, error) {
	guilds, err := b.dispatcher.ListGuilds(ctx)
	if err != nil {
		ctxlog.From(ctx).Warn("Failed to list guilds", "error", err)
		return []model.Guild{}, nil
	}
	return guilds, nil
}

// ListChannels implements interfaces.Bridge
func (b *Bridge) ListChannels(ctx context.Context, guildID types.GuildID) ([]model.Channel, error) {
	channels, err := b.dispatcher.ListChannels(ctx, guildID)
	if err != nil {
		ctxlog.From(ctx).Warn("Failed to list channels", "error", err, "guildID", guildID)
		return []model.Channel{}, nil
	}
	return channels, nil
}

// ListMembers implements interfaces.Bridge
func (b *Bridge) ListMembers(ctx context.Context, guildID types.GuildID) ([]model.Member, error) {
	members, err := b.dispatcher.ListMembers(ctx, guildID)
	if err != nil {
		ctxlog.From(ctx).Warn("Failed to list members", "error", err, "guildID", guildID)
		return []model.Member{}, nil
	}
	return members, nil
}

// PickImageFile implements interfaces.Bridge. A cancelled dialog yields a nil path and no error.
func (b *Bridge) PickImageFile(ctx context.Context) (*string, error) {
	if b.picker == nil {
		return nil, goerr.New("no file picker is configured")
	}

	path, err := b.picker.PickImage(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to pick image file")
	}
	return path, nil
}

// DispatchMessage implements interfaces.Bridge
func (b *Bridge) DispatchMessage(ctx context.Context, req model.MessageRequest) (result model.DispatchResult, _ error) {
	defer recoverDispatch(ctx, &result)

	msg, err := req.Outbound()
	if err != nil {
		return model.DispatchFailed(err), nil
	}

	if err := b.dispatcher.DispatchMessage(ctx, req.ChannelID, msg, req.ImagePath); err != nil {
		apperr.Handle(ctx, err)
		return model.DispatchFailed(err), nil
	}
	return model.DispatchSucceeded(), nil
}

// DispatchProspectThread implements interfaces.Bridge
func (b *Bridge) DispatchProspectThread(ctx context.Context, req model.ThreadRequest) (result model.DispatchResult, _ error) {
	defer recoverDispatch(ctx, &result)

	if err := req.Validate(); err != nil {
		return model.DispatchFailed(err), nil
	}

	if err := b.dispatcher.DispatchProspectThread(ctx, &req); err != nil {
		apperr.Handle(ctx, err)
		return model.DispatchFailed(err), nil
	}
	return model.DispatchSucceeded(), nil
}

// recoverDispatch turns a panic below the bridge into a failed result
func recoverDispatch(ctx context.Context, result *model.DispatchResult) {
	if r := recover(); r != nil {
		ctxlog.From(ctx).Error("Panic in dispatch",
			"recover", r,
			"stack", string(debug.Stack()),
		)
		*result = model.DispatchResult{
			Success: false,
			Error:   fmt.Sprintf("internal error: %v", r),
		}
	}
}
