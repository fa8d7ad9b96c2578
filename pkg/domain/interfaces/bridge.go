package interfaces

//go:generate moq -out mocks/bridge_mock.go -pkg mocks . Bridge FilePicker

import (
	"context"

	"github.com/wildcards-gg/wcadmin/pkg/domain/model"
	"github.com/wildcards-gg/wcadmin/pkg/domain/types"
)

// Bridge is the fixed set of operations the composer may invoke on the
// privileged side. Dispatch failures come back as DispatchResult, never as error.
type Bridge interface {
	Authenticate(ctx context.Context, token string) (bool, error)
	ListGuilds(ctx context.Context) ([]model.Guild, error)
	ListChannels(ctx context.Context, guildID types.GuildID) ([]model.Channel, error)
	ListMembers(ctx context.Context, guildID types.GuildID) ([]model.Member, error)
	PickImageFile(ctx context.Context) (*string, error)
	DispatchMessage(ctx context.Context, req model.MessageRequest) (model.DispatchResult, error)
	DispatchProspectThread(ctx context.Context, req model.ThreadRequest) (model.DispatchResult, error)
}

// FilePicker asks the operator for an image file. A nil path means the
// operator cancelled, which is not an error.
type FilePicker interface {
	PickImage(ctx context.Context) (*string, error)
}
