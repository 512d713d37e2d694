package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"patternbook/pkg/demo"
)

// runCommand creates the run command for executing demos.
func (c *CLI) runCommand() *cobra.Command {
	var topic string

	cmd := &cobra.Command{
		Use:   "run [demo...]",
		Short: "Run one or more demos",
		Long: `Run one or more demos by name, or all of them when no names are given.

Each demo writes a short narrative to stdout showing the pattern or concept
in action. Use 'list' to see the available names, and --topic to restrict an
all-demos run to one group.`,
		ValidArgsFunction: c.demoNameCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := demo.NewRunner(c.Registry, c.Logger)
			out := cmd.OutOrStdout()
			ctx := cmd.Context()

			if len(args) == 0 {
				if topic != "" {
					printInfo("Running %s demos", topic)
				} else {
					printInfo("Running all demos")
				}
				results, err := runner.RunAll(ctx, demo.Topic(topic), out)
				if err != nil {
					return err
				}
				printSuccess("%d demo(s) completed", len(results))
				return nil
			}

			for _, name := range args {
				if _, err := runner.RunOne(ctx, name, out); err != nil {
					return err
				}
			}
			printSuccess("%d demo(s) completed", len(args))
			return nil
		},
	}

	cmd.Flags().StringVarP(&topic, "topic", "t", "", fmt.Sprintf("only run demos with this topic: %s, %s, %s",
		demo.TopicBasics, demo.TopicPatterns, demo.TopicConcepts))

	return cmd
}
