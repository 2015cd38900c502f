package reshape

import (
	"encoding/json"

	"github.com/tidwall/gjson"

	"github.com/rallysight/wrc-results-go/wrc"
)

// WideRow is one row of a wide-format pivot: an entry plus one column per
// secondary key (stage or split point) seen for that entry.
type WideRow[V any] struct {
	EntryID int64
	Columns map[int64]V
}

// Pivot groups records by entry, then builds one column per secondary key
// holding the selected value. Row order follows first-encountered entry
// order in the input; a later record for the same (entry, column) pair
// overwrites the earlier one. A column exists only where the input had a
// record; missing pairs stay missing.
func Pivot[T, V any](records []T, entryID, column func(T) int64, value func(T) V) []WideRow[V] {
	var order []int64
	rows := make(map[int64]WideRow[V])
	for _, rec := range records {
		id := entryID(rec)
		row, ok := rows[id]
		if !ok {
			row = WideRow[V]{EntryID: id, Columns: make(map[int64]V)}
			order = append(order, id)
		}
		row.Columns[column(rec)] = value(rec)
		rows[id] = row
	}
	out := make([]WideRow[V], 0, len(order))
	for _, id := range order {
		out = append(out, rows[id])
	}
	return out
}

// StageTimesWide pivots stage times to one row per entry with one column
// per stage holding the elapsed time in seconds. A null elapsed duration
// becomes 0, never a missing column.
func StageTimesWide(times []wrc.StageTime) []WideRow[float64] {
	return Pivot(times,
		func(t wrc.StageTime) int64 { return t.EntryID },
		func(t wrc.StageTime) int64 { return t.StageID },
		func(t wrc.StageTime) float64 { return elapsedSeconds(t.ElapsedDurationMs) })
}

// StagePositionsWide pivots stage times to one row per entry with one
// column per stage holding the stage position.
func StagePositionsWide(times []wrc.StageTime) []WideRow[int] {
	return Pivot(times,
		func(t wrc.StageTime) int64 { return t.EntryID },
		func(t wrc.StageTime) int64 { return t.StageID },
		func(t wrc.StageTime) int { return t.Position })
}

// OverallPositionsWide pivots per-stage overall classifications to one row
// per entry with one column per stage holding the overall position.
func OverallPositionsWide(positions []wrc.Position) []WideRow[int] {
	return Pivot(positions,
		func(p wrc.Position) int64 { return p.EntryID },
		func(p wrc.Position) int64 { return p.StageID },
		func(p wrc.Position) int { return p.Position })
}

// StageTimesWideByKey pivots stage times on an arbitrary field of the raw
// per-stage record, named by its JSON key. The elapsedDurationMs key gets
// the same seconds/zero treatment as StageTimesWide; any other key is
// carried through as decoded by gjson.
func StageTimesWideByKey(times []wrc.StageTime, key string) []WideRow[any] {
	return Pivot(times,
		func(t wrc.StageTime) int64 { return t.EntryID },
		func(t wrc.StageTime) int64 { return t.StageID },
		func(t wrc.StageTime) any {
			if key == "elapsedDurationMs" {
				return elapsedSeconds(t.ElapsedDurationMs)
			}
			raw := t.Raw
			if raw == nil {
				raw, _ = json.Marshal(t)
			}
			return gjson.GetBytes(raw, key).Value()
		})
}

func elapsedSeconds(ms *int64) float64 {
	if ms == nil {
		return 0
	}
	return float64(*ms) / 1000
}
