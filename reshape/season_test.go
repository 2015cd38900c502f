package reshape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rallysight/wrc-results-go/reshape"
	"github.com/rallysight/wrc-results-go/wrc"
)

func testEvents() []wrc.Event {
	return []wrc.Event{
		{ID: 1, Name: "Rallye Automobile Monte-Carlo"},
		{ID: 2, Name: "Rally Sweden"},
		{ID: 3, Name: "Safari Rally Kenya"},
	}
}

func TestEventIDsPreserveOrder(t *testing.T) {
	events := testEvents()
	ids := reshape.EventIDs(events)
	require.Len(t, ids, len(events))
	assert.Equal(t, []int64{1, 2, 3}, ids)
}

func TestFindEventID(t *testing.T) {
	events := testEvents()

	tests := []struct {
		name   string
		query  string
		wantID int64
		wantOK bool
	}{
		{name: "lowercase substring", query: "monte-carlo", wantID: 1, wantOK: true},
		{name: "mixed case", query: "SWEDEN", wantID: 2, wantOK: true},
		{name: "first match wins", query: "rally", wantID: 1, wantOK: true},
		{name: "no match is not an error", query: "finland", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := reshape.FindEventID(events, tt.query)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestFindEventIDEmptySeason(t *testing.T) {
	_, ok := reshape.FindEventID(nil, "monte-carlo")
	assert.False(t, ok)
}
