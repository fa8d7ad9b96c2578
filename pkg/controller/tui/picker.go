package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/m-mizutani/goerr/v2"
	"github.com/wildcards-gg/wcadmin/pkg/domain/interfaces"
)

type pickRequest struct {
	reply chan *string
}

type pickRequestMsg struct {
	req pickRequest
}

// ModalPicker is a FilePicker served by the TUI's file browser
type ModalPicker struct {
	requests chan pickRequest
}

var _ interfaces.FilePicker = (*ModalPicker)(nil)

// NewModalPicker creates a picker; it only answers while a Model that owns it is running
func NewModalPicker() *ModalPicker {
	return &ModalPicker{requests: make(chan pickRequest)}
}

// PickImage implements interfaces.FilePicker. It blocks until the operator
// selects a file or closes the browser.
func (p *ModalPicker) PickImage(ctx context.Context) (*string, error) {
	req := pickRequest{reply: make(chan *string, 1)}

	select {
	case p.requests <- req:
	case <-ctx.Done():
		return nil, goerr.Wrap(ctx.Err(), "file browser is not available")
	}

	select {
	case path := <-req.reply:
		return path, nil
	case <-ctx.Done():
		return nil, goerr.Wrap(ctx.Err(), "file selection was interrupted")
	}
}

// listen waits for the next PickImage call
func (p *ModalPicker) listen() tea.Cmd {
	return func() tea.Msg {
		return pickRequestMsg{req: <-p.requests}
	}
}
