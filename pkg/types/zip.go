package types

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var zip5 = regexp.MustCompile(`^[0-9]{5}$`)

// ZipQuery is an inclusive numeric zip range. A single zip has Start == End.
type ZipQuery struct {
	Start int
	End   int
}

func IsZip5(s string) bool {
	return zip5.MatchString(s)
}

// ParseZipQuery accepts "75001" or "75001-75099".
func ParseZipQuery(s string) (ZipQuery, error) {
	s = strings.TrimSpace(s)
	start, end, isRange := strings.Cut(s, "-")
	if !isRange {
		end = start
	}
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if !IsZip5(start) || !IsZip5(end) {
		return ZipQuery{}, fmt.Errorf("zip %q must be a 5-digit zip or a start-end range", s)
	}

	a, _ := strconv.Atoi(start)
	b, _ := strconv.Atoi(end)
	if a > b {
		return ZipQuery{}, fmt.Errorf("zip range %q starts after it ends", s)
	}
	return ZipQuery{Start: a, End: b}, nil
}
