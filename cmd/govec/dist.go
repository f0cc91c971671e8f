package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	distMetric string
	distP      float64
)

var distCmd = &cobra.Command{
	Use:   "dist <a> <b>",
	Short: "Compute the distance between two vectors",
	Long: `Compute the distance between two vectors of the same dimensionality.

Metrics: euclidean (default), sq (squared Euclidean), manhattan,
chebyshev, minkowski (order set with --p, must be positive).`,
	Args: cobra.ExactArgs(2),
	Run:  runDist,
}

func init() {
	distCmd.Flags().StringVar(&distMetric, "metric", "euclidean", "distance metric")
	distCmd.Flags().Float64Var(&distP, "p", 2, "Minkowski order")
	rootCmd.AddCommand(distCmd)
}

func runDist(cmd *cobra.Command, args []string) {
	a, err := parseVector(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	b, err := parseVector(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	d, err := evalDistance(distMetric, a, b, distP)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%g\n", d)
}
