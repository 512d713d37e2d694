package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"patternbook/pkg/errors"
	"patternbook/pkg/graph"
	"patternbook/pkg/render"
)

// diagramBuilders maps pattern names to their structure graph builders.
var diagramBuilders = map[string]func() (*graph.Graph, error){
	"decorator": func() (*graph.Graph, error) {
		return graph.DecoratorChain("coffee decorator chain",
			[]string{"WhippedCream", "Milk", "Espresso"})
	},
	"shapes": func() (*graph.Graph, error) {
		return graph.Hierarchy("shape hierarchy", "Shape",
			[]string{"Circle", "Rectangle", "Triangle"})
	},
	"adapter": func() (*graph.Graph, error) {
		return graph.Hierarchy("payment gateways", "Gateway",
			[]string{"ModernGateway", "LegacyAdapter"})
	},
	"factory": func() (*graph.Graph, error) {
		return graph.Hierarchy("document factory", "Document",
			[]string{"Word", "PDF", "Text"})
	},
	"observer": func() (*graph.Graph, error) {
		return graph.Hierarchy("observers", "Observer",
			[]string{"NewsChannel", "StockDisplay"})
	},
	"strategy": func() (*graph.Graph, error) {
		return graph.Hierarchy("payment strategies", "Payment",
			[]string{"CreditCard", "PayPal", "BankTransfer"})
	},
}

// vizCommand creates the viz command for rendering pattern diagrams.
func (c *CLI) vizCommand() *cobra.Command {
	var (
		showDOT bool
		output  string
	)

	cmd := &cobra.Command{
		Use:   "viz <pattern>",
		Short: "Render a pattern structure diagram",
		Long: `Render a pattern structure diagram.

Builds a small graph of the pattern's participants (interfaces, wrappers,
implementations) and renders it with Graphviz. Use --dot to print the DOT
text instead of rendering.`,
		ValidArgs: diagramNames(),
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			build, ok := diagramBuilders[args[0]]
			if !ok {
				return errors.New(errors.ErrCodeInvalidInput,
					"no diagram for %q (available: %s)", args[0], strings.Join(diagramNames(), ", "))
			}
			g, err := build()
			if err != nil {
				return err
			}

			dot := render.ToDOT(g)
			if showDOT {
				fmt.Fprint(cmd.OutOrStdout(), dot)
				return nil
			}
			if output == "" {
				output = args[0] + ".svg"
			}

			ctx := cmd.Context()
			spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", args[0]))
			spinner.Start()
			data, err := renderDiagram(ctx, dot, output)
			if err != nil {
				spinner.StopWithError("Rendering failed")
				return err
			}
			spinner.Stop()

			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess("Rendered %s diagram", args[0])
			printFile(output)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showDOT, "dot", false, "print Graphviz DOT instead of rendering")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, .svg or .png (default <pattern>.svg)")

	return cmd
}

func diagramNames() []string {
	names := make([]string, 0, len(diagramBuilders))
	for name := range diagramBuilders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
