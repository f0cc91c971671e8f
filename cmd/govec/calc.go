package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var calcT float64

var calcCmd = &cobra.Command{
	Use:   "calc <op> <a> [b]",
	Short: "Evaluate a vector operation",
	Long: `Evaluate a vector operation on one or two vectors.

Binary operations: add, sub, dot, cross (3D only), project, lerp.
Unary operations: normalize, negate.
scale takes a vector and a scalar factor: govec calc scale 1,2,3 2.5`,
	Args: cobra.RangeArgs(2, 3),
	Run:  runCalc,
}

func init() {
	calcCmd.Flags().Float64Var(&calcT, "t", 0.5, "interpolation parameter for lerp, clamped to [0, 1]")
	rootCmd.AddCommand(calcCmd)
}

func runCalc(cmd *cobra.Command, args []string) {
	op := args[0]

	switch op {
	case "add", "sub", "dot", "cross", "project", "lerp", "scale":
		if len(args) != 3 {
			fmt.Fprintf(os.Stderr, "Error: %s needs a second operand\n", op)
			os.Exit(1)
		}
	}

	a, err := parseVector(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var b []float64
	var scalar float64
	if len(args) == 3 {
		if op == "scale" {
			scalar, err = strconv.ParseFloat(args[2], 64)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: scale factor %q: %v\n", args[2], err)
				os.Exit(1)
			}
		} else {
			b, err = parseVector(args[2])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}
	}

	if op == "dot" {
		d, err := evalDot(a, b)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%g\n", d)
		return
	}

	result, err := evalVectorOp(op, a, b, scalar, calcT)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(formatComponents(result))
}
