package textparse

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var countRE = regexp.MustCompile(`[\d,.]+[KkMm]?`)

// ParseCount turns an audience size as people type it ("1.2K", "3,400",
// "2.5M followers") into a number. Unparseable input yields 0.
func ParseCount(text string) int64 {
	text = strings.ReplaceAll(text, " ", "")
	text = strings.ReplaceAll(text, ",", "")

	match := countRE.FindString(text)
	if match == "" {
		return 0
	}

	multiplier := 1.0
	switch {
	case strings.HasSuffix(match, "K"), strings.HasSuffix(match, "k"):
		multiplier = 1e3
		match = match[:len(match)-1]
	case strings.HasSuffix(match, "M"), strings.HasSuffix(match, "m"):
		multiplier = 1e6
		match = match[:len(match)-1]
	}

	f, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return int64(math.Round(f * multiplier))
}
