package utils

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// JoinSeatNumbers renders a seat list the way error messages and logs
// show it: sorted, comma separated ("2, 5, 8").
func JoinSeatNumbers(seats []int) string {
	sorted := make([]int, len(seats))
	copy(sorted, seats)
	sort.Ints(sorted)

	parts := make([]string, len(sorted))
	for i, seat := range sorted {
		parts[i] = fmt.Sprintf("%d", seat)
	}
	return strings.Join(parts, ", ")
}
