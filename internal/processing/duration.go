package processing

import "regexp"

// isoDurationPattern matches ISO-8601 durations of the form
// P[nD]T[nH][nM][nS]. The T marker is mandatory; every group is optional.
var isoDurationPattern = regexp.MustCompile(`^P(?:(\d+)D)?T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// ParseISODuration converts an ISO-8601 duration string into total
// seconds. Returns nil when the string does not fully match the grammar,
// including the empty string. Partial matches are rejected, not truncated.
func ParseISODuration(durationISO string) *int64 {
	if durationISO == "" {
		return nil
	}

	groups := isoDurationPattern.FindStringSubmatch(durationISO)
	if groups == nil {
		return nil
	}

	var parts [4]int64
	for i, g := range groups[1:] {
		if g == "" {
			continue
		}
		n, ok := coerceInt64(g)
		if !ok {
			return nil
		}
		parts[i] = n
	}

	total := parts[0]*86400 + parts[1]*3600 + parts[2]*60 + parts[3]
	return &total
}
