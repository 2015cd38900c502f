package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rallysight/wrc-results-go/export"
)

var icsPath string

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Print the active season's events, optionally exporting an iCalendar",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		events, err := client.ActiveSeasonEvents(cmd.Context())
		if err != nil {
			return err
		}
		if icsPath != "" {
			if err := export.WriteSeasonICS(icsPath, events); err != nil {
				return err
			}
			logg.Info("wrote season calendar",
				zap.String("path", icsPath), zap.Int("events", len(events)))
		}
		return export.WriteEventsTable(os.Stdout, events)
	},
}

func init() {
	calendarCmd.Flags().StringVar(&icsPath, "ics", "", "write the season as an iCalendar to this path")
	rootCmd.AddCommand(calendarCmd)
}
