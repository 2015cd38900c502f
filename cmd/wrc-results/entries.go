package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rallysight/wrc-results-go/export"
	"github.com/rallysight/wrc-results-go/reshape"
)

var entriesEventName string

var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "Export each event's entry list as a CSV file",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		client := newClient()
		events, err := selectEvents(ctx, client, entriesEventName)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(cfg.Output.EntriesDir, 0o755); err != nil {
			return err
		}
		for _, event := range events {
			entries, err := client.Entries(ctx, event.ID)
			if err != nil {
				return err
			}
			cars, err := reshape.CarDataAll(entries)
			if err != nil {
				return err
			}
			path := filepath.Join(cfg.Output.EntriesDir, fmt.Sprintf("%d-entries.csv", event.ID))
			if err := export.WriteCarDataCSV(path, cars); err != nil {
				return err
			}
			logg.Info("wrote entries",
				zap.Int64("eventId", event.ID),
				zap.String("event", event.Name),
				zap.Int("entries", len(cars)),
				zap.String("path", path))
		}
		return nil
	},
}

func init() {
	entriesCmd.Flags().StringVar(&entriesEventName, "event", "", "only the event whose name contains this (case-insensitive)")
	rootCmd.AddCommand(entriesCmd)
}
