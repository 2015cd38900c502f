package reshape

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/rallysight/wrc-results-go/wrc"
)

// EntryByID returns the entry with the given ID, or nil when absent.
func EntryByID(entries []wrc.Entry, entryID int64) *wrc.Entry {
	for i := range entries {
		if entries[i].EntryID == entryID {
			return &entries[i]
		}
	}
	return nil
}

// Drivers projects the driver record out of every entry.
func Drivers(entries []wrc.Entry) []*wrc.Person {
	return lo.Map(entries, func(e wrc.Entry, _ int) *wrc.Person { return e.Driver })
}

// CoDrivers projects the co-driver record out of every entry.
func CoDrivers(entries []wrc.Entry) []*wrc.Person {
	return lo.Map(entries, func(e wrc.Entry, _ int) *wrc.Person { return e.Codriver })
}

// PersonIDByName resolves a person ID by case-insensitive substring match
// against full names. The first match wins.
func PersonIDByName(persons []*wrc.Person, name string) (int64, bool) {
	needle := strings.ToLower(name)
	for _, p := range persons {
		if p == nil {
			continue
		}
		if strings.Contains(strings.ToLower(p.FullName), needle) {
			return p.PersonID, true
		}
	}
	return 0, false
}

// PersonIDByCode resolves a person ID by exact code match.
func PersonIDByCode(persons []*wrc.Person, code string) (int64, bool) {
	for _, p := range persons {
		if p == nil {
			continue
		}
		if p.Code == code {
			return p.PersonID, true
		}
	}
	return 0, false
}

// CarData is the denormalized per-entry projection used for CSV export:
// the core entry identifiers plus the display fields pulled up from the
// nested sub-records.
type CarData struct {
	EntryID          int64  `json:"entryId"`
	DriverID         int64  `json:"driverId"`
	CodriverID       int64  `json:"codriverId"`
	ManufacturerID   int64  `json:"manufacturerId"`
	VehicleModel     string `json:"vehicleModel"`
	Eligibility      string `json:"eligibility"`
	ClassName        string `json:"classname"`
	Manufacturer     string `json:"manufacturer"`
	EntrantName      string `json:"entrantname"`
	GroupName        string `json:"groupname"`
	DriverName       string `json:"drivername"`
	DriverFullName   string `json:"driverfullname"`
	CodriverName     string `json:"codrivername"`
	CodriverFullName string `json:"codriverfullname"`
	Code             string `json:"code"`
}

// CarDataFromEntry extracts the car-data projection from one entry.
//
// Entries are assumed complete: a missing nested record (driver, codriver,
// manufacturer, entrant, group, or event class) is an error, never silently
// zeroed.
func CarDataFromEntry(entry wrc.Entry) (CarData, error) {
	switch {
	case entry.Driver == nil:
		return CarData{}, fmt.Errorf("entry %d: missing driver", entry.EntryID)
	case entry.Codriver == nil:
		return CarData{}, fmt.Errorf("entry %d: missing codriver", entry.EntryID)
	case entry.Manufacturer == nil:
		return CarData{}, fmt.Errorf("entry %d: missing manufacturer", entry.EntryID)
	case entry.Entrant == nil:
		return CarData{}, fmt.Errorf("entry %d: missing entrant", entry.EntryID)
	case entry.Group == nil:
		return CarData{}, fmt.Errorf("entry %d: missing group", entry.EntryID)
	case len(entry.EventClasses) == 0:
		return CarData{}, fmt.Errorf("entry %d: missing event classes", entry.EntryID)
	}
	return CarData{
		EntryID:          entry.EntryID,
		DriverID:         entry.DriverID,
		CodriverID:       entry.CodriverID,
		ManufacturerID:   entry.ManufacturerID,
		VehicleModel:     entry.VehicleModel,
		Eligibility:      entry.Eligibility,
		ClassName:        entry.EventClasses[0].Name,
		Manufacturer:     entry.Manufacturer.Name,
		EntrantName:      entry.Entrant.Name,
		GroupName:        entry.Group.Name,
		DriverName:       entry.Driver.AbbvName,
		DriverFullName:   entry.Driver.FullName,
		CodriverName:     entry.Codriver.AbbvName,
		CodriverFullName: entry.Codriver.FullName,
		Code:             entry.Driver.Code,
	}, nil
}

// CarDataAll extracts the car-data projection from every entry, aborting on
// the first incomplete one.
func CarDataAll(entries []wrc.Entry) ([]CarData, error) {
	out := make([]CarData, 0, len(entries))
	for _, entry := range entries {
		cd, err := CarDataFromEntry(entry)
		if err != nil {
			return nil, err
		}
		out = append(out, cd)
	}
	return out, nil
}
