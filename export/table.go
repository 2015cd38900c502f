package export

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/rallysight/wrc-results-go/reshape"
	"github.com/rallysight/wrc-results-go/wrc"
)

// WriteEventsTable prints a season's events as an aligned table.
func WriteEventsTable(w io.Writer, events []wrc.Event) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSTART\tFINISH")
	for _, e := range events {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", e.ID, e.Name, e.StartDate, e.FinishDate)
	}
	return tw.Flush()
}

// WriteWinnersTable prints stage winners joined with their car data. Stages
// whose winner has no matching entry are printed with the entry ID alone.
func WriteWinnersTable(w io.Writer, winners []wrc.StageWinner, cars map[int64]reshape.CarData) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STAGE\tENTRY\tDRIVER\tMANUFACTURER\tTIME")
	for _, win := range winners {
		car, ok := cars[win.EntryID]
		if !ok {
			fmt.Fprintf(tw, "%s\t%d\t\t\t%s\n", win.StageName, win.EntryID, win.ElapsedDuration)
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n",
			win.StageName, win.EntryID, car.DriverFullName, car.Manufacturer, win.ElapsedDuration)
	}
	return tw.Flush()
}

// WriteWideTable prints wide pivot rows as an aligned table with one column
// per given column ID, in order. Empty cells mean no value for that pair.
func WriteWideTable[V any](w io.Writer, columns []int64, rows []reshape.WideRow[V]) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprint(tw, "ENTRY")
	for _, col := range columns {
		fmt.Fprintf(tw, "\t%s", strconv.FormatInt(col, 10))
	}
	fmt.Fprintln(tw)
	for _, row := range rows {
		fmt.Fprintf(tw, "%d", row.EntryID)
		for _, col := range columns {
			if v, ok := row.Columns[col]; ok {
				fmt.Fprintf(tw, "\t%s", formatCell(v))
			} else {
				fmt.Fprint(tw, "\t")
			}
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
