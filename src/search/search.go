package search

import (
	"strconv"
	"strings"

	"algoexam/src/record"
)

// DefaultLimit keeps result lists short enough to pick from by number.
const DefaultLimit = 5

// FindMatches returns, in dataset order, the first limit records whose ID
// starts with query or whose first name contains it. Matching ignores case
// and surrounding spaces. A limit <= 0 means DefaultLimit.
func FindMatches(dataset []record.Record, query string, limit int) []record.Record {
	if limit <= 0 {
		limit = DefaultLimit
	}
	q := strings.ToLower(strings.TrimSpace(query))

	var matches []record.Record
	for _, r := range dataset {
		if strings.HasPrefix(strconv.FormatInt(r.ID, 10), q) ||
			strings.Contains(strings.ToLower(r.FirstName), q) {
			matches = append(matches, r)
			if len(matches) >= limit {
				break
			}
		}
	}
	return matches
}
