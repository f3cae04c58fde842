// Package tui provides an interactive progress view for a running scan.
package tui

import (
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/bytesum/internal/core/domain"
)

const (
	maxRecent       = 10
	progressPadding = 4
	maxProgressBar  = 80
)

// MsgEvent carries a scan event into the program.
type MsgEvent struct {
	Event domain.Event
}

// MsgScanDone reports that the scan has returned.
type MsgScanDone struct {
	Err error
}

// Line is one processed file shown in the recent list.
type Line struct {
	Text   string
	Failed bool
}

// Model represents the progress view state.
type Model struct {
	Root      string
	Total     int64
	Processed int64
	Failed    int64
	Recent    []Line
	Canceled  bool
	Done      bool
	Err       error

	progress progress.Model
	cancel   func()
}

// NewModel creates a Model. cancel is called when the user stops the scan; it may be nil.
func NewModel(cancel func()) Model {
	if cancel == nil {
		cancel = func() {}
	}
	return Model{
		progress: progress.New(progress.WithDefaultGradient()),
		cancel:   cancel,
	}
}

// Init initializes the model.
//
//nolint:gocritic // hugeParam ignored
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
//
//nolint:gocritic // hugeParam ignored
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "c", "esc":
			if !m.Done && !m.Canceled {
				m.Canceled = true
				m.cancel()
			}
		case "q", "ctrl+c":
			if !m.Done && !m.Canceled {
				m.Canceled = true
				m.cancel()
			}
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.progress.Width = min(max(msg.Width-progressPadding, 1), maxProgressBar)

	case MsgEvent:
		m.apply(msg.Event)

	case MsgScanDone:
		m.Done = true
		m.Err = msg.Err
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) apply(ev domain.Event) {
	switch e := ev.(type) {
	case domain.TotalCountKnown:
		m.Root = e.Root
		m.Total = e.Count
	case domain.FileProcessed:
		m.Processed++
		line := Line{Text: e.Outcome.Result.String()}
		if !e.Outcome.Succeeded {
			m.Failed++
			line = Line{Text: e.Outcome.Path() + " : " + e.Outcome.Message, Failed: true}
		}
		m.Recent = append(m.Recent, line)
		if len(m.Recent) > maxRecent {
			m.Recent = m.Recent[len(m.Recent)-maxRecent:]
		}
	}
}

// Percent returns the processed share of the discovered files.
//
//nolint:gocritic // hugeParam ignored
func (m Model) Percent() float64 {
	if m.Total == 0 {
		return 0
	}
	return float64(m.Processed) / float64(m.Total)
}
