package tui

import (
	"github.com/runoshun/taskbot/internal/domain"
	"github.com/runoshun/taskbot/internal/usecase"
)

// Msg is the sealed interface for all TUI messages.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgResponse is sent when a command line has been handled.
// Tasks is a snapshot of the list taken after the command ran.
type MsgResponse struct {
	Output *usecase.HandleCommandOutput
	Line   string
	Tasks  []domain.Task
}

func (MsgResponse) sealed() {}

// MsgError is sent when a command fails with a store fault.
type MsgError struct {
	Err  error
	Line string
}

func (MsgError) sealed() {}
