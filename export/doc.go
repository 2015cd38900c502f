// Package export serializes reshaped WRC records for external consumers:
// CSV files, aligned terminal tables, and an iCalendar rendering of the
// season.
package export
