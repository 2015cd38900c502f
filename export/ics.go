package export

import (
	"fmt"
	"os"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/rallysight/wrc-results-go/wrc"
)

const calendarDateLayout = "2006-01-02"

// SeasonCalendar renders a season's events as an iCalendar. Events whose
// dates fail to parse are an error rather than being silently dropped.
func SeasonCalendar(events []wrc.Event) (*ics.Calendar, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	for _, e := range events {
		start, err := time.Parse(calendarDateLayout, e.StartDate)
		if err != nil {
			return nil, fmt.Errorf("event %d: parse start date %q: %w", e.ID, e.StartDate, err)
		}
		finish, err := time.Parse(calendarDateLayout, e.FinishDate)
		if err != nil {
			return nil, fmt.Errorf("event %d: parse finish date %q: %w", e.ID, e.FinishDate, err)
		}
		ev := cal.AddEvent(fmt.Sprintf("%d@wrc", e.ID))
		ev.SetCreatedTime(time.Now())
		ev.SetStartAt(start)
		// DTEND is exclusive; a rally finishing Sunday spans through Sunday.
		ev.SetEndAt(finish.AddDate(0, 0, 1))
		ev.SetSummary(e.Name)
		if e.Location != "" {
			ev.SetLocation(e.Location)
		}
	}
	return cal, nil
}

// WriteSeasonICS writes the season calendar to an .ics file.
func WriteSeasonICS(path string, events []wrc.Event) error {
	cal, err := SeasonCalendar(events)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(cal.Serialize()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
