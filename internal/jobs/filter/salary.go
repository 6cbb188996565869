package filter

import (
	"errors"
	"math"
	"regexp"
	"strconv"
)

var salaryPattern = regexp.MustCompile(`\$(\d+)k\s*-\s*\$(\d+)k`)

// ParseSalaryRange extracts the bounds, in thousands, from text such as
// "$90k - $130k". ok is false when the text does not follow that shape.
func ParseSalaryRange(text string) (min, max int, ok bool) {
	m := salaryPattern.FindStringSubmatch(text)
	if len(m) < 3 {
		return 0, 0, false
	}

	var err error
	if min, err = parseBound(m[1]); err != nil {
		return 0, 0, false
	}
	if max, err = parseBound(m[2]); err != nil {
		return 0, 0, false
	}

	return min, max, true
}

// parseBound converts a run of digits. Values too large for int clamp to
// math.MaxInt so an absurd salary still takes part in the overlap check.
func parseBound(digits string) (int, error) {
	n, err := strconv.Atoi(digits)
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt, nil
	}
	return n, err
}
