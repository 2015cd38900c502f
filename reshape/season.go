package reshape

import (
	"strings"

	"github.com/samber/lo"

	"github.com/rallysight/wrc-results-go/wrc"
)

// EventIDs returns the event IDs of a season's calendar in calendar order.
func EventIDs(events []wrc.Event) []int64 {
	return lo.Map(events, func(e wrc.Event, _ int) int64 { return e.ID })
}

// FindEventID resolves an event ID by case-insensitive substring match
// against event names. The first match wins; false means no event matched.
func FindEventID(events []wrc.Event, name string) (int64, bool) {
	needle := strings.ToLower(name)
	for _, e := range events {
		if strings.Contains(strings.ToLower(e.Name), needle) {
			return e.ID, true
		}
	}
	return 0, false
}
