package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var angleCmd = &cobra.Command{
	Use:   "angle <a> [b]",
	Short: "Compute vector angles in radians",
	Long: `With one vector, print its angle relative to each axis: [0, 2π)
signed convention in 2D, [0, π] unsigned convention in 3D and 4D.

With two vectors, print the angle between them: signed in (-π, π] for 2D,
unsigned in [0, π] for 3D and 4D.`,
	Args: cobra.RangeArgs(1, 2),
	Run:  runAngle,
}

func init() {
	rootCmd.AddCommand(angleCmd)
}

func runAngle(cmd *cobra.Command, args []string) {
	a, err := parseVector(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(args) == 2 {
		b, err := parseVector(args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		angle, err := evalAngleBetween(a, b)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%g\n", angle)
		return
	}

	axes, angles, err := evalAxisAngles(a)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for i, axis := range axes {
		fmt.Printf("angle%s: %g\n", axis, angles[i])
	}
}
