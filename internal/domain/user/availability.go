package user

import (
	"fmt"
	"strings"
)

// Availability tags are a fixed vocabulary; anything else is rejected at
// write time and duplicates are collapsed silently.
var availabilityTags = map[string]struct{}{
	"weekdays":   {},
	"weekends":   {},
	"mornings":   {},
	"afternoons": {},
	"evenings":   {},
	"nights":     {},
	"monday":     {},
	"tuesday":    {},
	"wednesday":  {},
	"thursday":   {},
	"friday":     {},
	"saturday":   {},
	"sunday":     {},
}

func NormalizeAvailability(tags []string) ([]string, error) {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		tag := strings.ToLower(strings.TrimSpace(t))
		if tag == "" {
			continue
		}
		if _, ok := availabilityTags[tag]; !ok {
			return nil, fmt.Errorf("invalid availability tag: %q", t)
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out, nil
}
