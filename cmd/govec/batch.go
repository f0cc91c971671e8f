package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// batchFile is the YAML layout consumed by the batch command:
//
//	operations:
//	  - op: add
//	    a: [1, 2, 3]
//	    b: [4, 5, 6]
//	  - op: distance
//	    metric: manhattan
//	    a: [0, 0]
//	    b: [3, 4]
//	  - op: minkowski
//	    p: 3
//	    a: [0, 0, 1, 1]
//	    b: [0, 0, 0, 0]
type batchFile struct {
	Operations []batchOp `yaml:"operations"`
}

type batchOp struct {
	Op     string    `yaml:"op"`
	A      []float64 `yaml:"a"`
	B      []float64 `yaml:"b"`
	Scalar float64   `yaml:"scalar"`
	T      float64   `yaml:"t"`
	P      float64   `yaml:"p"`
	Metric string    `yaml:"metric"`
}

var batchCmd = &cobra.Command{
	Use:   "batch <file.yaml>",
	Short: "Run a YAML-described list of vector operations",
	Long: `Read operations from a YAML file and print one result per line.

Vector-valued ops: add, sub, cross, scale, normalize, negate, lerp, project.
Scalar-valued ops: dot, angle, distance (with metric: euclidean, sq,
manhattan, chebyshev) and minkowski (with p).`,
	Args: cobra.ExactArgs(1),
	Run:  runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

func loadBatch(path string) (*batchFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f batchFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &f, nil
}

func runBatch(cmd *cobra.Command, args []string) {
	file, err := loadBatch(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for i, op := range file.Operations {
		result, err := evalBatchOp(op)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: operation %d (%s): %v\n", i+1, op.Op, err)
			os.Exit(1)
		}
		fmt.Printf("%s: %s\n", op.Op, result)
	}
}

func evalBatchOp(op batchOp) (string, error) {
	switch op.Op {
	case "dot":
		d, err := evalDot(op.A, op.B)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%g", d), nil

	case "angle":
		angle, err := evalAngleBetween(op.A, op.B)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%g", angle), nil

	case "distance":
		metric := op.Metric
		if metric == "" {
			metric = "euclidean"
		}
		d, err := evalDistance(metric, op.A, op.B, op.P)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%g", d), nil

	case "minkowski":
		d, err := evalDistance("minkowski", op.A, op.B, op.P)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%g", d), nil

	default:
		result, err := evalVectorOp(op.Op, op.A, op.B, op.Scalar, op.T)
		if err != nil {
			return "", err
		}
		return formatComponents(result), nil
	}
}
