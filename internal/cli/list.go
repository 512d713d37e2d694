package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"patternbook/pkg/demo"
)

// listCommand creates the list command showing the demo catalog.
func (c *CLI) listCommand() *cobra.Command {
	var topic string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available demos",
		RunE: func(cmd *cobra.Command, args []string) error {
			demos := c.Registry.All()
			if topic != "" {
				demos = c.Registry.ByTopic(demo.Topic(topic))
			}

			rows := make([][]string, 0, len(demos))
			for _, d := range demos {
				rows = append(rows, []string{d.Name, string(d.Topic), d.Summary})
			}

			headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("Demo", "Topic", "Summary").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == -1 {
						return headerStyle
					}
					switch col {
					case 0:
						return StyleHighlight
					case 1:
						return StyleDim
					}
					return StyleValue
				})

			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			printDetail("%d demo(s)", len(demos))
			printNextStep("run one", appName+" run "+firstName(demos))
			return nil
		},
	}

	cmd.Flags().StringVarP(&topic, "topic", "t", "", "only list demos with this topic")

	return cmd
}

func firstName(demos []demo.Demo) string {
	if len(demos) == 0 {
		return "<demo>"
	}
	return demos[0].Name
}
