// Package cli implements the rnumpy command line.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/born-ml/rnumpy/ndarray"
)

// Version is the CLI version string.
const Version = "v0.1.0"

// NewCLI builds the root command with all subcommands attached.
func NewCLI() *cobra.Command {
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "rnumpy",
		Short:         "Build and combine small N-dimensional arrays",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			verbose, err := cmd.Flags().GetBool("verbose")
			if err != nil {
				return err
			}
			if verbose {
				l, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				SetLogger(l)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringP("output", "o", FormatText, "Output format: text, json or table")
	rootCmd.PersistentFlags().Bool("verbose", false, "Log each step to stderr")

	rootCmd.AddCommand(
		newArangeCmd(),
		newLinspaceCmd(),
		newReshapeCmd(),
		newIndexCmd(),
		newCalcCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func newArangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "arange STOP | START STOP [STEP]",
		Short: "Print evenly stepped values in [START, STOP)",
		Long: "Print evenly stepped values in [START, STOP).\n" +
			"The result is an integer array unless any bound has a fraction or exponent.",
		Args: cobra.RangeArgs(1, 3),
		RunE: ArangeHandler,
	}
}

// ArangeHandler prints the result of Arange over the positional bounds.
func ArangeHandler(cmd *cobra.Command, args []string) error {
	var (
		a   *ndarray.Array
		err error
	)
	if isFloatLiteral(args...) {
		bounds := make([]float64, len(args))
		for i, s := range args {
			if bounds[i], err = strconv.ParseFloat(s, 64); err != nil {
				return fmt.Errorf("invalid bound %q: %w", s, err)
			}
		}
		a, err = ndarray.Arange(bounds...)
	} else {
		bounds := make([]int64, len(args))
		for i, s := range args {
			if bounds[i], err = strconv.ParseInt(s, 10, 64); err != nil {
				return fmt.Errorf("invalid bound %q: %w", s, err)
			}
		}
		a, err = ndarray.Arange(bounds...)
	}
	if err != nil {
		return err
	}

	Logger().Debug("arange", zap.Strings("bounds", args), zap.Int("len", a.Len()), zap.Stringer("dtype", a.DType()))
	return write(cmd, a)
}

func newLinspaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "linspace START STOP NUM",
		Short: "Print NUM evenly spaced samples between START and STOP",
		Args:  cobra.ExactArgs(3),
		RunE:  LinspaceHandler,
	}
	cmd.Flags().Bool("endpoint", true, "Include STOP as the last sample")
	return cmd
}

// LinspaceHandler prints the result of Linspace.
func LinspaceHandler(cmd *cobra.Command, args []string) error {
	start, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid start %q: %w", args[0], err)
	}
	stop, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid stop %q: %w", args[1], err)
	}
	num, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid count %q: %w", args[2], err)
	}
	endpoint, err := cmd.Flags().GetBool("endpoint")
	if err != nil {
		return err
	}

	a, err := ndarray.Linspace(start, stop, num, ndarray.WithEndpoint(endpoint))
	if err != nil {
		return err
	}

	Logger().Debug("linspace", zap.Float64("start", start), zap.Float64("stop", stop),
		zap.Int("num", num), zap.Bool("endpoint", endpoint))
	return write(cmd, a)
}

func newReshapeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "reshape ARRAY DIM...",
		Short:   "Reshape a JSON array literal",
		Example: `  rnumpy reshape '[1, 2, 3, 4]' 2 2`,
		Args:    cobra.MinimumNArgs(2),
		RunE:    ReshapeHandler,
	}
}

// ReshapeHandler parses the array literal and prints it with the new shape.
func ReshapeHandler(cmd *cobra.Command, args []string) error {
	a, err := ndarray.Parse([]byte(args[0]))
	if err != nil {
		return err
	}
	dims, err := parseInts(args[1:])
	if err != nil {
		return err
	}

	r, err := a.Reshape(dims...)
	if err != nil {
		return err
	}

	Logger().Debug("reshape", zap.Ints("from", a.Shape()), zap.Ints("to", r.Shape()))
	return write(cmd, r)
}

func newIndexCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "index ARRAY IDX...",
		Short:   "Print the element or sub-array at a multi-index",
		Example: `  rnumpy index '[[1, 2], [3, 4]]' 1 0`,
		Args:    cobra.MinimumNArgs(1),
		RunE:    IndexHandler,
	}
}

// IndexHandler parses the array literal and prints the selection.
func IndexHandler(cmd *cobra.Command, args []string) error {
	a, err := ndarray.Parse([]byte(args[0]))
	if err != nil {
		return err
	}
	idx, err := parseInts(args[1:])
	if err != nil {
		return err
	}

	sel, err := a.Index(idx)
	if err != nil {
		return err
	}

	Logger().Debug("index", zap.Ints("shape", a.Shape()), zap.Ints("index", idx))
	return write(cmd, sel)
}

func newCalcCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "calc add|sub|mul|div LEFT RIGHT",
		Short:     "Combine two JSON array literals element by element",
		Example:   `  rnumpy calc div '[[1, 2], [3, 4]]' '[[2, 1], [3, 4]]'`,
		Args:      cobra.ExactArgs(3),
		ValidArgs: []string{"add", "sub", "mul", "div"},
		RunE:      CalcHandler,
	}
}

// CalcHandler applies the named element-wise operation.
func CalcHandler(cmd *cobra.Command, args []string) error {
	lhs, err := ndarray.Parse([]byte(args[1]))
	if err != nil {
		return fmt.Errorf("left operand: %w", err)
	}
	rhs, err := ndarray.Parse([]byte(args[2]))
	if err != nil {
		return fmt.Errorf("right operand: %w", err)
	}

	var res *ndarray.Array
	switch strings.ToLower(args[0]) {
	case "add":
		res, err = lhs.Add(rhs)
	case "sub":
		res, err = lhs.Sub(rhs)
	case "mul":
		res, err = lhs.Mul(rhs)
	case "div":
		res, err = lhs.Div(rhs)
	default:
		return fmt.Errorf("unknown operation %q (want add, sub, mul or div)", args[0])
	}
	if err != nil {
		return err
	}

	Logger().Debug("calc", zap.String("op", args[0]), zap.Ints("shape", res.Shape()), zap.Stringer("dtype", res.DType()))
	return write(cmd, res)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "rnumpy %s\n", Version)
			return err
		},
	}
}

func write(cmd *cobra.Command, a *ndarray.Array) error {
	format, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), a, format)
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, s := range args {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", s, err)
		}
		out[i] = v
	}
	return out, nil
}

func isFloatLiteral(args ...string) bool {
	for _, s := range args {
		if strings.ContainsAny(s, ".eE") || strings.EqualFold(s, "inf") || strings.EqualFold(s, "nan") {
			return true
		}
	}
	return false
}
