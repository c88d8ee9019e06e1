package filter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseSize converts a human size expression ("512", "650K", "2MB",
// "1g") into a byte count. The suffix is case-insensitive; K/KB, M/MB
// and G/GB are binary multiples. Malformed input is rejected with a
// descriptive error, never silently truncated or defaulted.
func ParseSize(input string) (int64, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, fmt.Errorf("invalid size expression: empty string")
	}

	// Split the numeric prefix from the unit suffix.
	cut := len(s)
	for i, r := range s {
		if r < '0' || r > '9' {
			cut = i
			break
		}
	}
	if cut == 0 {
		return 0, fmt.Errorf("invalid size expression %q: must start with an unsigned number", input)
	}

	num, err := strconv.ParseInt(s[:cut], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size expression %q: %w", input, err)
	}

	var multiplier int64
	switch strings.ToUpper(s[cut:]) {
	case "":
		multiplier = 1
	case "K", "KB":
		multiplier = 1024
	case "M", "MB":
		multiplier = 1024 * 1024
	case "G", "GB":
		multiplier = 1024 * 1024 * 1024
	default:
		return 0, fmt.Errorf("invalid size expression %q: unknown unit %q", input, s[cut:])
	}

	if num > math.MaxInt64/multiplier {
		return 0, fmt.Errorf("invalid size expression %q: exceeds the representable byte range", input)
	}
	return num * multiplier, nil
}
