package reshape

import "github.com/rallysight/wrc-results-go/wrc"

// SplitTime is one entry's time at one split point, flattened out of the
// nested split-times payload with the duration converted to seconds.
type SplitTime struct {
	SplitPointTimeID int64   `json:"splitPointTimeId,omitempty"`
	SplitPointID     int64   `json:"splitPointId"`
	EntryID          int64   `json:"entryId"`
	ElapsedDurationS float64 `json:"elapsedDurationS"`
	SplitDateTime    string  `json:"splitDateTime,omitempty"`
}

// DriverSplits flattens a split-times payload into one record per
// (entry, split point), in payload order.
func DriverSplits(splits *wrc.SplitTimes) []SplitTime {
	var out []SplitTime
	for _, entry := range splits.EntrySplitPointTimes {
		for _, sp := range entry.SplitPointTimes {
			out = append(out, SplitTime{
				SplitPointTimeID: sp.SplitPointTimeID,
				SplitPointID:     sp.SplitPointID,
				EntryID:          sp.EntryID,
				ElapsedDurationS: sp.ElapsedDurationMs / 1000,
				SplitDateTime:    sp.SplitDateTime,
			})
		}
	}
	return out
}

// DriverSplitsAll flattens a batch of split-times payloads (one per stage)
// into a single record list, preserving batch order.
func DriverSplitsAll(batch []*wrc.SplitTimes) []SplitTime {
	var out []SplitTime
	for _, splits := range batch {
		out = append(out, DriverSplits(splits)...)
	}
	return out
}

// DriverSplitsWide pivots a split-times payload to one row per entry with
// one column per split point holding the elapsed time in seconds.
func DriverSplitsWide(splits *wrc.SplitTimes) []WideRow[float64] {
	rows := make([]WideRow[float64], 0, len(splits.EntrySplitPointTimes))
	for _, entry := range splits.EntrySplitPointTimes {
		row := WideRow[float64]{EntryID: entry.EntryID, Columns: make(map[int64]float64)}
		for _, sp := range entry.SplitPointTimes {
			row.Columns[sp.SplitPointID] = sp.ElapsedDurationMs / 1000
		}
		rows = append(rows, row)
	}
	return rows
}
