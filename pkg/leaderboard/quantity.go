package leaderboard

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseQuantity reads the leading number of a free-text quantity such as
// "10 kg" or "2.5kg". Text without a leading number counts as zero, and so
// does a negative or non-finite value.
func ParseQuantity(quantity string) float64 {
	match := leadingNumber.FindString(strings.TrimSpace(quantity))
	if match == "" {
		return 0
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0
	}
	return value
}
