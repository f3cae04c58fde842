package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/bytesum/internal/core/domain"
	"go.trai.ch/bytesum/internal/core/ports"
)

// Renderer runs the progress view as a Bubble Tea program and feeds it scan events.
type Renderer struct {
	program *tea.Program
	errCh   chan error
	final   Model
}

var _ ports.ProgressListener = (*Renderer)(nil)

// NewRenderer creates a new TUI renderer.
//
//nolint:gocritic // hugeParam ignored
func NewRenderer(model Model, opts ...tea.ProgramOption) *Renderer {
	return &Renderer{
		program: tea.NewProgram(model, opts...),
		errCh:   make(chan error, 1),
		final:   model,
	}
}

// Start launches the TUI in a background goroutine.
func (r *Renderer) Start() {
	go func() {
		m, err := r.program.Run()
		if fm, ok := m.(Model); ok {
			r.final = fm
		}
		r.errCh <- err
	}()
}

// OnEvent forwards ev to the TUI. It is a no-op once the TUI has exited.
func (r *Renderer) OnEvent(ev domain.Event) {
	r.program.Send(MsgEvent{Event: ev})
}

// Finish tells the TUI that the scan returned with err. The TUI exits after rendering it.
func (r *Renderer) Finish(err error) {
	r.program.Send(MsgScanDone{Err: err})
}

// Wait blocks until the TUI has terminated and returns the final model.
func (r *Renderer) Wait() (Model, error) {
	err := <-r.errCh
	return r.final, err
}
