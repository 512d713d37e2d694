package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"patternbook/pkg/demo"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// DemoListModel is the bubbletea model for interactive demo selection.
type DemoListModel struct {
	Demos    []demo.Demo
	Cursor   int
	Selected *demo.Demo
	Height   int
	Offset   int
}

// NewDemoListModel creates a new demo list model.
func NewDemoListModel(demos []demo.Demo) DemoListModel {
	return DemoListModel{
		Demos:  demos,
		Cursor: 0,
		Height: 15,
		Offset: 0,
	}
}

func (m DemoListModel) Init() tea.Cmd {
	return nil
}

func (m DemoListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Demos)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			d := m.Demos[m.Cursor]
			m.Selected = &d
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m DemoListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Demo"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ run  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Demos) {
		end = len(m.Demos)
	}

	for i := m.Offset; i < end; i++ {
		d := m.Demos[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		line := fmt.Sprintf("%s%-18s %-10s %s", cursor, d.Name,
			listDimStyle.Render(string(d.Topic)), d.Summary)

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Demos))))

	return b.String()
}

// tuiCommand creates the tui command for browsing demos interactively.
func (c *CLI) tuiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse and run demos interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			model := NewDemoListModel(c.Registry.All())

			p := tea.NewProgram(model, tea.WithContext(cmd.Context()))
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("run demo browser: %w", err)
			}

			m, ok := final.(DemoListModel)
			if !ok || m.Selected == nil {
				return nil
			}

			runner := demo.NewRunner(c.Registry, c.Logger)
			if _, err := runner.RunOne(cmd.Context(), m.Selected.Name, os.Stdout); err != nil {
				return err
			}
			printNextStep("run again", appName+" run "+m.Selected.Name)
			return nil
		},
	}
}
