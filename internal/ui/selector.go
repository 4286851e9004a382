package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/grovekit/grove/internal/git"
	"github.com/grovekit/grove/internal/ui/styles"
)

// SelectorResult contains the result of the selection
type SelectorResult struct {
	Worktree  git.Worktree
	Selected  bool
	Cancelled bool
}

// worktreeSource adapts worktrees for fuzzy matching. Matching runs
// against "dirname branch" so either identifies a worktree.
type worktreeSource []git.Worktree

func (s worktreeSource) String(i int) string {
	return filepath.Base(s[i].Path) + " " + s[i].Branch
}

func (s worktreeSource) Len() int { return len(s) }

// selectorModel is the bubbletea model for worktree selection
type selectorModel struct {
	worktrees []git.Worktree
	filtered  []git.Worktree
	textInput textinput.Model
	cursor    int
	selected  *git.Worktree
	cancelled bool
	maxHeight int
}

func newSelectorModel(worktrees []git.Worktree) selectorModel {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 40
	ti.PromptStyle = styles.PrimaryStyle

	return selectorModel{
		worktrees: worktrees,
		filtered:  worktrees,
		textInput: ti,
		cursor:    0,
		maxHeight: 10,
	}
}

func (m selectorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m selectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			if len(m.filtered) > 0 && m.cursor < len(m.filtered) {
				m.selected = &m.filtered[m.cursor]
			}
			return m, tea.Quit

		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)

	m.filtered = filterWorktrees(m.worktrees, m.textInput.Value())

	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}

	return m, cmd
}

// filterWorktrees ranks worktrees by fuzzy match quality.
func filterWorktrees(worktrees []git.Worktree, query string) []git.Worktree {
	if strings.TrimSpace(query) == "" {
		return worktrees
	}

	matches := fuzzy.FindFrom(query, worktreeSource(worktrees))
	filtered := make([]git.Worktree, 0, len(matches))
	for _, match := range matches {
		filtered = append(filtered, worktrees[match.Index])
	}
	return filtered
}

func (m selectorModel) View() string {
	var sb strings.Builder

	sb.WriteString("Select worktree:\n")
	sb.WriteString(m.textInput.View())
	sb.WriteString("\n\n")

	if len(m.filtered) == 0 {
		sb.WriteString(styles.MutedStyle.Render("  No matches found"))
		sb.WriteString("\n")
	} else {
		// Keep the cursor centered once the list overflows.
		start := 0
		end := len(m.filtered)
		if end > m.maxHeight {
			start = m.cursor - m.maxHeight/2
			if start < 0 {
				start = 0
			}
			end = start + m.maxHeight
			if end > len(m.filtered) {
				end = len(m.filtered)
				start = max(0, end-m.maxHeight)
			}
		}

		for i := start; i < end; i++ {
			wt := m.filtered[i]
			line := fmt.Sprintf("%s (%s)", filepath.Base(wt.Path), wt.Branch)
			if wt.IsDirty {
				line += " *"
			}

			if i == m.cursor {
				sb.WriteString(styles.AccentStyle.Render("> "))
				sb.WriteString(styles.AccentStyle.Render(line))
			} else {
				sb.WriteString("  ")
				sb.WriteString(styles.NormalStyle.Render(line))
			}
			sb.WriteString("\n")
		}

		if len(m.filtered) > m.maxHeight {
			sb.WriteString(styles.MutedStyle.Render(fmt.Sprintf("\n  %d/%d", m.cursor+1, len(m.filtered))))
		}
	}

	sb.WriteString("\n")
	sb.WriteString(styles.MutedStyle.Render("↑/↓ navigate • enter select • esc cancel"))

	return sb.String()
}

// RunSelector shows an interactive fuzzy search selector for worktrees
// Returns the selected worktree or nil if cancelled
func RunSelector(worktrees []git.Worktree) (*SelectorResult, error) {
	if len(worktrees) == 0 {
		return &SelectorResult{Cancelled: true}, nil
	}

	model := newSelectorModel(worktrees)
	p := tea.NewProgram(model)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m := finalModel.(selectorModel)
	if m.cancelled {
		return &SelectorResult{Cancelled: true}, nil
	}
	if m.selected != nil {
		return &SelectorResult{Worktree: *m.selected, Selected: true}, nil
	}
	return &SelectorResult{Cancelled: true}, nil
}
