package cli

import (
	"io"
	"strings"
	"testing"

	"patternbook/pkg/errors"
)

// execute runs the root command with args and returns captured stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	var buf strings.Builder
	root.SetOut(&buf)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestCalcOperations(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"calc", "add", "2", "3"}, "5\n"},
		{[]string{"calc", "sub", "10", "4"}, "6\n"},
		{[]string{"calc", "mul", "6", "7"}, "42\n"},
		{[]string{"calc", "div", "9", "2"}, "4.5\n"},
		{[]string{"calc", "pow", "2", "10"}, "1024\n"},
		{[]string{"calc", "fact", "5"}, "120\n"},
		{[]string{"calc", "prime", "97"}, "true\n"},
		{[]string{"calc", "prime", "98"}, "false\n"},
		// Leading-dash operands are numbers, not flags.
		{[]string{"calc", "sub", "-5", "-3"}, "-2\n"},
		{[]string{"calc", "div", "-9", "3"}, "-3\n"},
		{[]string{"calc", "add", "-1.5", "0.5"}, "-1\n"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args[1:], " "), func(t *testing.T) {
			got, err := execute(t, tt.args...)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCalcDivideByZero(t *testing.T) {
	_, err := execute(t, "calc", "div", "1", "0")
	if !errors.Is(err, errors.ErrCodeDivisionByZero) {
		t.Errorf("div 1 0 error = %v, want DIVISION_BY_ZERO", err)
	}
}

func TestCalcNegativeFactorial(t *testing.T) {
	_, err := execute(t, "calc", "fact", "-3")
	if !errors.Is(err, errors.ErrCodeNegativeFactorial) {
		t.Errorf("fact -3 error = %v, want NEGATIVE_FACTORIAL", err)
	}
}

func TestCalcRejectsNonNumbers(t *testing.T) {
	_, err := execute(t, "calc", "add", "two", "3")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("add two 3 error = %v, want INVALID_INPUT", err)
	}
}
