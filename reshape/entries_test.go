package reshape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rallysight/wrc-results-go/reshape"
	"github.com/rallysight/wrc-results-go/wrc"
)

func testEntry() wrc.Entry {
	return wrc.Entry{
		EntryID:        500,
		DriverID:       60,
		CodriverID:     61,
		ManufacturerID: 7,
		VehicleModel:   "Yaris Rally1",
		Eligibility:    "M",
		Driver: &wrc.Person{
			PersonID: 60, FullName: "Kalle Rovanperä", AbbvName: "K. ROVANPERÄ", Code: "ROV",
		},
		Codriver: &wrc.Person{
			PersonID: 61, FullName: "Jonne Halttunen", AbbvName: "J. HALTTUNEN", Code: "HAL",
		},
		Manufacturer: &wrc.Manufacturer{ManufacturerID: 7, Name: "Toyota Gazoo Racing WRT"},
		Entrant:      &wrc.Entrant{EntrantID: 70, Name: "Toyota Gazoo Racing WRT"},
		Group:        &wrc.Group{GroupID: 80, Name: "Rally1"},
		EventClasses: []wrc.EventClass{{EventClassID: 90, Name: "RC1"}},
	}
}

func TestEntryByID(t *testing.T) {
	entries := []wrc.Entry{testEntry(), {EntryID: 501}}

	entry := reshape.EntryByID(entries, 500)
	require.NotNil(t, entry)
	assert.Equal(t, int64(500), entry.EntryID)

	// An unknown ID is the absent-value result, not an error.
	assert.Nil(t, reshape.EntryByID(entries, 999))
}

func TestCarDataFromEntry(t *testing.T) {
	car, err := reshape.CarDataFromEntry(testEntry())
	require.NoError(t, err)

	assert.Equal(t, int64(500), car.EntryID)
	assert.Equal(t, int64(60), car.DriverID)
	assert.Equal(t, int64(61), car.CodriverID)
	assert.Equal(t, "Yaris Rally1", car.VehicleModel)
	assert.Equal(t, "RC1", car.ClassName)
	assert.Equal(t, "Toyota Gazoo Racing WRT", car.Manufacturer)
	assert.Equal(t, "Rally1", car.GroupName)
	assert.Equal(t, "K. ROVANPERÄ", car.DriverName)
	assert.Equal(t, "Kalle Rovanperä", car.DriverFullName)
	assert.Equal(t, "J. HALTTUNEN", car.CodriverName)
	assert.Equal(t, "ROV", car.Code)
}

func TestCarDataFromEntryFailsFast(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*wrc.Entry)
		wantErr string
	}{
		{name: "no driver", mutate: func(e *wrc.Entry) { e.Driver = nil }, wantErr: "missing driver"},
		{name: "no codriver", mutate: func(e *wrc.Entry) { e.Codriver = nil }, wantErr: "missing codriver"},
		{name: "no manufacturer", mutate: func(e *wrc.Entry) { e.Manufacturer = nil }, wantErr: "missing manufacturer"},
		{name: "no entrant", mutate: func(e *wrc.Entry) { e.Entrant = nil }, wantErr: "missing entrant"},
		{name: "no group", mutate: func(e *wrc.Entry) { e.Group = nil }, wantErr: "missing group"},
		{name: "no classes", mutate: func(e *wrc.Entry) { e.EventClasses = nil }, wantErr: "missing event classes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := testEntry()
			tt.mutate(&entry)
			_, err := reshape.CarDataFromEntry(entry)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCarDataAllAbortsOnIncompleteEntry(t *testing.T) {
	broken := testEntry()
	broken.EntryID = 501
	broken.Group = nil
	entries := []wrc.Entry{testEntry(), broken}

	_, err := reshape.CarDataAll(entries)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry 501")

	cars, err := reshape.CarDataAll(entries[:1])
	require.NoError(t, err)
	assert.Len(t, cars, 1)
}

func TestDriversAndCoDrivers(t *testing.T) {
	entries := []wrc.Entry{testEntry()}

	drivers := reshape.Drivers(entries)
	require.Len(t, drivers, 1)
	assert.Equal(t, "Kalle Rovanperä", drivers[0].FullName)

	codrivers := reshape.CoDrivers(entries)
	require.Len(t, codrivers, 1)
	assert.Equal(t, "Jonne Halttunen", codrivers[0].FullName)
}

func TestPersonLookups(t *testing.T) {
	persons := reshape.Drivers([]wrc.Entry{testEntry()})

	id, ok := reshape.PersonIDByName(persons, "rovanperä")
	require.True(t, ok)
	assert.Equal(t, int64(60), id)

	_, ok = reshape.PersonIDByName(persons, "ogier")
	assert.False(t, ok)

	id, ok = reshape.PersonIDByCode(persons, "ROV")
	require.True(t, ok)
	assert.Equal(t, int64(60), id)

	// Code lookup is exact.
	_, ok = reshape.PersonIDByCode(persons, "rov")
	assert.False(t, ok)
}
