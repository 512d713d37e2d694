package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"patternbook/pkg/errors"
	"patternbook/pkg/graph"
	"patternbook/pkg/patterns/decorator"
	"patternbook/pkg/render"
)

// chainCommand creates the chain command for building decorator chains from
// YAML files.
func (c *CLI) chainCommand() *cobra.Command {
	var (
		showDOT bool
		output  string
	)

	cmd := &cobra.Command{
		Use:   "chain <file.yaml>",
		Short: "Build a decorator chain from a YAML file",
		Long: `Build a decorator chain from a YAML file and run it.

A chain file names a base and a list of wrapper steps, innermost first:

  kind: text
  input: "Hello World"
  steps:
    - uppercase
    - name: caesar
      shift: 5

Coffee chains (kind: coffee) print the accumulated order and preparation
steps; text chains print the transform chain and the processed input.
Use --dot to print the chain structure as Graphviz DOT, or -o to render it
to an SVG or PNG file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrap(errors.ErrCodeFileNotFound, err, "read chain file %s", args[0])
			}
			spec, err := decorator.ParseChain(data)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if showDOT || output != "" {
				name := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
				g, err := graph.DecoratorChain(name, spec.Layers())
				if err != nil {
					return err
				}
				dot := render.ToDOT(g)
				if showDOT {
					fmt.Fprint(out, dot)
					return nil
				}
				return writeDiagram(cmd, dot, output)
			}

			return runChain(cmd, spec)
		},
	}

	cmd.Flags().BoolVar(&showDOT, "dot", false, "print the chain structure as Graphviz DOT")
	cmd.Flags().StringVarP(&output, "output", "o", "", "render the chain structure to an .svg or .png file")

	return cmd
}

// runChain builds and executes the chain described by spec.
func runChain(cmd *cobra.Command, spec decorator.ChainSpec) error {
	out := cmd.OutOrStdout()

	switch spec.Kind {
	case "coffee":
		b, err := spec.BuildBeverage()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s ($%.2f)\n", b.Description(), b.Cost())
		b.Prepare(out)
		return nil
	case "text":
		p, err := spec.BuildProcessor()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, p.Info())
		fmt.Fprintln(out, p.Process(spec.Input))
		return nil
	}
	return errors.New(errors.ErrCodeInvalidChain, "unknown chain kind %q", spec.Kind)
}

// renderDiagram renders DOT to the format implied by the output extension.
func renderDiagram(ctx context.Context, dot, output string) ([]byte, error) {
	switch ext := strings.ToLower(filepath.Ext(output)); ext {
	case ".svg":
		return render.SVG(ctx, dot)
	case ".png":
		return render.PNG(ctx, dot)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported output format %q (use .svg or .png)", ext)
	}
}

// writeDiagram renders DOT and writes the result to output, logging timing.
func writeDiagram(cmd *cobra.Command, dot, output string) error {
	ctx := cmd.Context()
	prog := newProgress(loggerFromContext(ctx))

	data, err := renderDiagram(ctx, dot, output)
	if err != nil {
		return fmt.Errorf("render diagram: %w", err)
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	prog.done("Rendered diagram")
	printFile(output)
	return nil
}
