// Package testutil provides common utility functions for testing.
package testutil

// FindAxisIndex finds the position of a value on a grid axis.
// Returns the index of the first match, -1 otherwise.
func FindAxisIndex(values []float64, target float64) int {
	for i := range values {
		if values[i] == target {
			return i
		}
	}
	return -1
}
