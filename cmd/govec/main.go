package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/govec/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "govec",
	Short: "A command-line calculator for 2D, 3D and 4D vector math",
	Long: `govec evaluates vector operations from the command line.
Vectors are written as comma-separated components ("1,2,3"); the number of
components (2, 3 or 4) selects the dimensionality. Angles are in radians.`,
	Version: version.GetVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
