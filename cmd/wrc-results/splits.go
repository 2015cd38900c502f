package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rallysight/wrc-results-go/export"
	"github.com/rallysight/wrc-results-go/reshape"
	"github.com/rallysight/wrc-results-go/wrc"
)

var (
	splitsEventName string
	splitsStageCode string
	splitsOutPath   string
)

var splitsCmd = &cobra.Command{
	Use:   "splits",
	Short: "Print or export a stage's split times (wide, seconds)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if splitsEventName == "" || splitsStageCode == "" {
			return fmt.Errorf("--event and --stage are required")
		}
		ctx := cmd.Context()
		client := newClient()
		events, err := selectEvents(ctx, client, splitsEventName)
		if err != nil {
			return err
		}
		event := events[0]
		legs, err := client.Itinerary(ctx, event.ID)
		if err != nil {
			return err
		}
		stages := reshape.Stages(reshape.Sections(legs))
		stageID, ok := reshape.StageIDByCode(stages, splitsStageCode)
		if !ok {
			// Fall back to a name match so "--stage Ouninpohja" works too.
			stageID, ok = reshape.StageIDByName(stages, splitsStageCode)
		}
		if !ok {
			return fmt.Errorf("no stage matching %q at event %d", splitsStageCode, event.ID)
		}
		splits, err := client.SplitTimes(ctx, event.ID, stageID)
		if err != nil {
			return err
		}
		rows := reshape.DriverSplitsWide(splits)
		cols := splitPointColumns(splits)
		if splitsOutPath != "" {
			if err := export.WriteWideCSV(splitsOutPath, cols, rows); err != nil {
				return err
			}
			logg.Info("wrote splits",
				zap.Int64("eventId", event.ID),
				zap.Int64("stageId", stageID),
				zap.String("path", splitsOutPath))
			return nil
		}
		return export.WriteWideTable(os.Stdout, cols, rows)
	},
}

// splitPointColumns orders the wide columns by split-point number, falling
// back to the IDs seen in the times when the payload lists no split points.
func splitPointColumns(splits *wrc.SplitTimes) []int64 {
	if len(splits.SplitPoints) > 0 {
		points := append([]wrc.SplitPoint(nil), splits.SplitPoints...)
		sort.SliceStable(points, func(i, j int) bool { return points[i].Number < points[j].Number })
		cols := make([]int64, 0, len(points))
		for _, p := range points {
			cols = append(cols, p.SplitPointID)
		}
		return cols
	}
	seen := make(map[int64]bool)
	var cols []int64
	for _, entry := range splits.EntrySplitPointTimes {
		for _, sp := range entry.SplitPointTimes {
			if !seen[sp.SplitPointID] {
				seen[sp.SplitPointID] = true
				cols = append(cols, sp.SplitPointID)
			}
		}
	}
	return cols
}

func init() {
	splitsCmd.Flags().StringVar(&splitsEventName, "event", "", "event whose name contains this (case-insensitive)")
	splitsCmd.Flags().StringVar(&splitsStageCode, "stage", "", "stage code (exact) or stage name (substring)")
	splitsCmd.Flags().StringVar(&splitsOutPath, "out", "", "write CSV to this path instead of printing a table")
	rootCmd.AddCommand(splitsCmd)
}
