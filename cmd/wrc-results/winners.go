package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rallysight/wrc-results-go/export"
	"github.com/rallysight/wrc-results-go/reshape"
)

var winnersEventName string

var winnersCmd = &cobra.Command{
	Use:   "winners",
	Short: "Print an event's stage winners with driver and manufacturer",
	RunE: func(cmd *cobra.Command, args []string) error {
		if winnersEventName == "" {
			return fmt.Errorf("--event is required")
		}
		ctx := cmd.Context()
		client := newClient()
		events, err := selectEvents(ctx, client, winnersEventName)
		if err != nil {
			return err
		}
		event := events[0]
		winners, err := client.StageWinners(ctx, event.ID)
		if err != nil {
			return err
		}
		entries, err := client.Entries(ctx, event.ID)
		if err != nil {
			return err
		}
		cars := make(map[int64]reshape.CarData, len(winners))
		for _, win := range winners {
			entry := reshape.EntryByID(entries, win.EntryID)
			if entry == nil {
				continue
			}
			car, err := reshape.CarDataFromEntry(*entry)
			if err != nil {
				return err
			}
			cars[win.EntryID] = car
		}
		return export.WriteWinnersTable(os.Stdout, winners, cars)
	},
}

func init() {
	winnersCmd.Flags().StringVar(&winnersEventName, "event", "", "event whose name contains this (case-insensitive)")
	rootCmd.AddCommand(winnersCmd)
}
