package export_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rallysight/wrc-results-go/export"
	"github.com/rallysight/wrc-results-go/wrc"
)

func TestSeasonCalendar(t *testing.T) {
	events := []wrc.Event{
		{ID: 1, Name: "Rallye Automobile Monte-Carlo", StartDate: "2026-01-22", FinishDate: "2026-01-25", Location: "Monaco"},
		{ID: 2, Name: "Rally Sweden", StartDate: "2026-02-12", FinishDate: "2026-02-15"},
	}

	cal, err := export.SeasonCalendar(events)
	require.NoError(t, err)

	out := cal.Serialize()
	assert.Equal(t, 2, strings.Count(out, "BEGIN:VEVENT"))
	assert.Contains(t, out, "SUMMARY:Rallye Automobile Monte-Carlo")
	assert.Contains(t, out, "SUMMARY:Rally Sweden")
	assert.Contains(t, out, "LOCATION:Monaco")
}

func TestSeasonCalendarRejectsBadDates(t *testing.T) {
	events := []wrc.Event{
		{ID: 1, Name: "Rally Nowhere", StartDate: "22/01/2026", FinishDate: "2026-01-25"},
	}

	_, err := export.SeasonCalendar(events)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse start date")
}

func TestWriteSeasonICS(t *testing.T) {
	events := []wrc.Event{
		{ID: 1, Name: "Rally Finland", StartDate: "2026-07-30", FinishDate: "2026-08-02"},
	}
	path := filepath.Join(t.TempDir(), "season.ics")

	require.NoError(t, export.WriteSeasonICS(path, events))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "BEGIN:VCALENDAR")
	assert.Contains(t, string(data), "Rally Finland")
}
