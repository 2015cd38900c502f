package main

import (
	"context"
	"fmt"

	"github.com/rallysight/wrc-results-go/reshape"
	"github.com/rallysight/wrc-results-go/wrc"
)

// selectEvents fetches the season calendar and narrows it to the --event
// name filter when one was given. An empty filter means every event.
func selectEvents(ctx context.Context, client *wrc.Client, nameFilter string) ([]wrc.Event, error) {
	events, err := client.ActiveSeasonEvents(ctx)
	if err != nil {
		return nil, err
	}
	if nameFilter == "" {
		return events, nil
	}
	id, ok := reshape.FindEventID(events, nameFilter)
	if !ok {
		return nil, fmt.Errorf("no event matching %q in the active season", nameFilter)
	}
	for _, e := range events {
		if e.ID == id {
			return []wrc.Event{e}, nil
		}
	}
	return nil, fmt.Errorf("no event matching %q in the active season", nameFilter)
}
