package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rallysight/wrc-results-go/export"
	"github.com/rallysight/wrc-results-go/reshape"
	"github.com/rallysight/wrc-results-go/wrc"
)

var (
	stageTimesEventName string
	positionsEventName  string
)

var stageTimesCmd = &cobra.Command{
	Use:   "stagetimes",
	Short: "Export each event's per-stage elapsed times (wide, seconds) as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		return exportStageWide(cmd.Context(), stageTimesEventName, "stage-times",
			reshape.StageTimesWide)
	},
}

var positionsCmd = &cobra.Command{
	Use:   "positions",
	Short: "Export each event's per-stage positions (wide) as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		return exportStageWide(cmd.Context(), positionsEventName, "stage-positions",
			reshape.StagePositionsWide)
	},
}

// exportStageWide walks the selected events: itinerary, flattened stages,
// all stage times, then one wide CSV per event under the events output dir.
func exportStageWide[V any](
	ctx context.Context,
	nameFilter, suffix string,
	pivot func([]wrc.StageTime) []reshape.WideRow[V],
) error {
	client := newClient()
	events, err := selectEvents(ctx, client, nameFilter)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.Output.EventsDir, 0o755); err != nil {
		return err
	}
	for _, event := range events {
		legs, err := client.Itinerary(ctx, event.ID)
		if err != nil {
			return err
		}
		stages := reshape.Stages(reshape.Sections(legs))
		stageIDs := reshape.StageIDs(stages)
		times, err := client.MultiStageTimes(ctx, event.ID, stageIDs)
		if err != nil {
			return err
		}
		rows := pivot(times)
		path := filepath.Join(cfg.Output.EventsDir, fmt.Sprintf("%d-%s.csv", event.ID, suffix))
		if err := export.WriteWideCSV(path, stageIDs, rows); err != nil {
			return err
		}
		logg.Info("wrote stage export",
			zap.Int64("eventId", event.ID),
			zap.String("event", event.Name),
			zap.Int("stages", len(stageIDs)),
			zap.Int("rows", len(rows)),
			zap.String("path", path))
	}
	return nil
}

func init() {
	stageTimesCmd.Flags().StringVar(&stageTimesEventName, "event", "", "only the event whose name contains this (case-insensitive)")
	positionsCmd.Flags().StringVar(&positionsEventName, "event", "", "only the event whose name contains this (case-insensitive)")
	rootCmd.AddCommand(stageTimesCmd)
	rootCmd.AddCommand(positionsCmd)
}
