// Command bigcalc demonstrates exact arithmetic on fixed-capacity decimal
// integers. Without arguments it prints a few showcase computations; the
// eval and factorial subcommands expose the four operations directly.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/govalues/bigint"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "bigcalc",
		Short:        "bigcalc performs exact arithmetic on large decimal integers.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showcase(cmd)
		},
	}
	root.AddCommand(evalCmd(), factorialCmd())
	return root
}

// showcase mirrors the operations a first-time reader is most likely to
// reach for: a factorial far beyond native integer range and the four
// operations on a pair of 13-digit numbers.
func showcase(cmd *cobra.Command) error {
	f, err := factorial(100)
	if err != nil {
		return err
	}

	a := bigint.MustParse("1234567890001")
	b := bigint.MustParse("9876543210001")
	q, r, err := f.QuoRem(a)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "100! = %v\n", f)
	fmt.Fprintf(out, "%v + %v = %v\n", a, b, a.MustAdd(b))
	fmt.Fprintf(out, "%v - %v = %v\n", a, b, a.MustSub(b))
	fmt.Fprintf(out, "%v * %v = %v\n", a, b, a.MustMul(b))
	fmt.Fprintf(out, "100! / %v = %v\n", a, q)
	fmt.Fprintf(out, "100! %% %v = %v\n", a, r)
	return nil
}

func evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate an integer expression in prefix (Polish) notation.",
		Long: "Evaluate an integer expression written in prefix notation, " +
			"for example: bigcalc eval '* 10 + 1 4'.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := evaluate(strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), d)
			return nil
		},
	}
}

func factorialCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "factorial <n>",
		Short: "Compute the exact factorial of n.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return fmt.Errorf("n must be a non-negative integer, got %q", args[0])
			}
			f, err := factorial(n)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), f)
			return nil
		},
	}
}

func factorial(n int) (bigint.Int, error) {
	z := bigint.One
	for i := 2; i <= n; i++ {
		var err error
		z, err = z.Mul(bigint.NewFromInt64(int64(i)))
		if err != nil {
			return bigint.Int{}, fmt.Errorf("computing %v!: %w", n, err)
		}
	}
	return z, nil
}

func evaluate(input string) (bigint.Int, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return bigint.Int{}, fmt.Errorf("no tokens")
	}
	stack := make([]bigint.Int, 0, len(tokens))
	var err error
	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		switch token {
		case "+", "-", "*", "/", "%":
			stack, err = applyOperator(stack, token)
		default:
			stack, err = pushOperand(stack, token)
		}
		if err != nil {
			return bigint.Int{}, fmt.Errorf("processing token %q: %w", token, err)
		}
	}
	if len(stack) != 1 {
		return bigint.Int{}, fmt.Errorf("post-processed stack contains %v item(s), expected exactly one", len(stack))
	}
	return stack[0], nil
}

func applyOperator(stack []bigint.Int, token string) ([]bigint.Int, error) {
	if len(stack) < 2 {
		return nil, fmt.Errorf("not enough operands")
	}
	right := stack[len(stack)-2]
	left := stack[len(stack)-1]
	stack = stack[:len(stack)-2]
	var result bigint.Int
	var err error
	switch token {
	case "+":
		result, err = left.Add(right)
	case "-":
		result, err = left.Sub(right)
	case "*":
		result, err = left.Mul(right)
	case "/":
		result, err = left.Quo(right)
	case "%":
		result, err = left.Rem(right)
	}
	if err != nil {
		return nil, fmt.Errorf("evaluating \"%v %v %v\": %w", left, token, right, err)
	}
	return append(stack, result), nil
}

func pushOperand(stack []bigint.Int, token string) ([]bigint.Int, error) {
	d, err := bigint.Parse(token)
	if err != nil {
		return nil, err
	}
	return append(stack, d), nil
}
