package ui

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/grovekit/grove/internal/ui/styles"
)

// Spinner shows progress while grove waits on a slow git operation,
// like the initial clone or merge checks across many worktrees.
type Spinner struct {
	program *tea.Program
	model   *spinnerModel
	mu      sync.Mutex
}

type spinnerModel struct {
	spinner spinner.Model
	message string
	done    bool
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m spinnerModel) View() string {
	if m.done || m.message == "" {
		return ""
	}
	return fmt.Sprintf("%s %s", m.spinner.View(), m.message)
}

// NewSpinner creates a spinner with the given message.
func NewSpinner(message string) *Spinner {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.PrimaryStyle

	return &Spinner{
		model: &spinnerModel{
			spinner: s,
			message: message,
		},
	}
}

// Start begins the animation in the background.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.program = tea.NewProgram(s.model)
	go s.program.Run()
}

// Stop ends the animation and clears the line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.model != nil {
		s.model.done = true
	}
	if s.program != nil {
		s.program.Quit()
	}
}
