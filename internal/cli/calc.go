package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"patternbook/pkg/calc"
	"patternbook/pkg/errors"
)

// calcCommand creates the calc command with one subcommand per operation.
func (c *CLI) calcCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculator operations",
		Long: `Calculator operations with explicit error handling.

Division by zero and negative factorials report structured errors instead of
NaN or a panic.`,
	}

	binary := func(use, short string, fn func(a, b float64) float64) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <a> <b>",
			Short: short,
			Args:  cobra.ExactArgs(2),
			// Operands like -3 must not be mistaken for flags.
			DisableFlagParsing: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				a, b, err := parseOperands(args[0], args[1])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%g\n", fn(a, b))
				return nil
			},
		}
	}

	cmd.AddCommand(binary("add", "Add two numbers", calc.Add))
	cmd.AddCommand(binary("sub", "Subtract b from a", calc.Subtract))
	cmd.AddCommand(binary("mul", "Multiply two numbers", calc.Multiply))
	cmd.AddCommand(binary("pow", "Raise a to the power b", calc.Power))

	cmd.AddCommand(&cobra.Command{
		Use:                "div <a> <b>",
		Short:              "Divide a by b",
		Args:               cobra.ExactArgs(2),
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parseOperands(args[0], args[1])
			if err != nil {
				return err
			}
			q, err := calc.Divide(a, b)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%g\n", q)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:                "fact <n>",
		Short:              "Factorial of n",
		Args:               cobra.ExactArgs(1),
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt(args[0])
			if err != nil {
				return err
			}
			f, err := calc.Factorial(n)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%g\n", f)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:                "prime <n>",
		Short:              "Report whether n is prime",
		Args:               cobra.ExactArgs(1),
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%t\n", calc.IsPrime(n))
			return nil
		},
	})

	return cmd
}

func parseOperands(a, b string) (float64, float64, error) {
	x, err := parseFloat(a)
	if err != nil {
		return 0, 0, err
	}
	y, err := parseFloat(b)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "not a number: %s", s)
	}
	return v, nil
}

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "not an integer: %s", s)
	}
	return v, nil
}
