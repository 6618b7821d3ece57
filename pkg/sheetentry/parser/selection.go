package parser

import (
	"strconv"
	"strings"
)

// ParseIndexList parses a comma separated list of 1-based indices such as
// "1, 3,4". Empty parts are ignored. Any part that is not an integer makes
// the whole list invalid.
func ParseIndexList(s string) ([]int, error) {
	var indices []int

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		indices = append(indices, n)
	}

	return indices, nil
}

// SelectByIndex picks items by 1-based index. Out-of-range indices are
// dropped and repeated indices only count once, so the result is a
// duplicate-free ordered subset of items.
func SelectByIndex(items []string, indices []int) []string {
	var selected []string
	seen := make(map[int]bool, len(indices))

	for _, idx := range indices {
		if idx < 1 || idx > len(items) || seen[idx] {
			continue
		}
		seen[idx] = true
		selected = append(selected, items[idx-1])
	}

	return selected
}
