package main

import (
	"fmt"
	"strconv"
	"strings"
)

// parseVector reads comma-separated components ("1,2.5,-3") into a slice.
// Two to four components are accepted.
func parseVector(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) < 2 || len(parts) > 4 {
		return nil, fmt.Errorf("vector %q: want 2 to 4 components, got %d", s, len(parts))
	}

	comps := make([]float64, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("vector %q: component %d: %w", s, i+1, err)
		}
		comps[i] = f
	}
	return comps, nil
}

// formatComponents renders components the way the vec types print
// themselves: "(x, y, z)".
func formatComponents(c []float64) string {
	strs := make([]string, len(c))
	for i, f := range c {
		strs[i] = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return "(" + strings.Join(strs, ", ") + ")"
}
