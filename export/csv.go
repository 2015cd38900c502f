package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/rallysight/wrc-results-go/reshape"
)

// WriteWideCSV writes wide pivot rows to a CSV file. The header is
// "entryId" followed by the given column IDs in order; cells with no value
// for an (entry, column) pair are left empty.
func WriteWideCSV[V any](path string, columns []int64, rows []reshape.WideRow[V]) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	header := make([]string, 0, len(columns)+1)
	header = append(header, "entryId")
	for _, col := range columns {
		header = append(header, strconv.FormatInt(col, 10))
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		rec := make([]string, 0, len(columns)+1)
		rec = append(rec, strconv.FormatInt(row.EntryID, 10))
		for _, col := range columns {
			v, ok := row.Columns[col]
			if !ok {
				rec = append(rec, "")
				continue
			}
			rec = append(rec, formatCell(v))
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}

// WriteCarDataCSV writes the per-entry car-data projection to a CSV file,
// one row per entry in input order.
func WriteCarDataCSV(path string, cars []reshape.CarData) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	header := []string{
		"entryId", "driverId", "codriverId", "manufacturerId",
		"vehicleModel", "eligibility", "classname", "manufacturer",
		"entrantname", "groupname", "drivername", "driverfullname",
		"codrivername", "codriverfullname", "code",
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, c := range cars {
		rec := []string{
			strconv.FormatInt(c.EntryID, 10),
			strconv.FormatInt(c.DriverID, 10),
			strconv.FormatInt(c.CodriverID, 10),
			strconv.FormatInt(c.ManufacturerID, 10),
			c.VehicleModel, c.Eligibility, c.ClassName, c.Manufacturer,
			c.EntrantName, c.GroupName, c.DriverName, c.DriverFullName,
			c.CodriverName, c.CodriverFullName, c.Code,
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}

func formatCell(v any) string {
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case string:
		return x
	case nil:
		return ""
	default:
		return fmt.Sprint(x)
	}
}
