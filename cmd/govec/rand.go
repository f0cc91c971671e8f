package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/philipparndt/govec/pkg/vec"
	"github.com/spf13/cobra"
)

var (
	randDim       int
	randCount     int
	randSeed      int64
	randMagnitude float64
)

var randCmd = &cobra.Command{
	Use:   "rand",
	Short: "Generate uniformly distributed random vectors",
	Long: `Generate vectors with uniformly random direction on the unit
(hyper)sphere of the chosen dimensionality, scaled to the chosen magnitude.
3D and 4D directions are drawn with Marsaglia's rejection method.`,
	Args: cobra.NoArgs,
	Run:  runRand,
}

func init() {
	randCmd.Flags().IntVar(&randDim, "dim", 3, "dimensionality (2, 3 or 4)")
	randCmd.Flags().IntVar(&randCount, "count", 1, "number of vectors")
	randCmd.Flags().Int64Var(&randSeed, "seed", 0, "random seed (0 means time-based)")
	randCmd.Flags().Float64Var(&randMagnitude, "magnitude", 1, "magnitude of each vector")
	rootCmd.AddCommand(randCmd)
}

func runRand(cmd *cobra.Command, args []string) {
	if randSeed != 0 {
		vec.SetRandSource(rand.NewSource(randSeed))
	}

	for i := 0; i < randCount; i++ {
		switch randDim {
		case 2:
			fmt.Println(vec.Random2().Scale(randMagnitude))
		case 3:
			fmt.Println(vec.Random3().Scale(randMagnitude))
		case 4:
			fmt.Println(vec.Random4().Scale(randMagnitude))
		default:
			fmt.Fprintf(os.Stderr, "Error: unsupported dimensionality %d\n", randDim)
			os.Exit(1)
		}
	}
}
