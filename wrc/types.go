package wrc

import "encoding/json"

// Season is the full active-season calendar payload.
type Season struct {
	SeasonID    int64     `json:"seasonId"`
	Year        int       `json:"year"`
	Name        string    `json:"name"`
	RallyEvents EventList `json:"rallyEvents"`
}

// EventList wraps the calendar's event collection.
type EventList struct {
	Items []Event `json:"items"`
	Total int     `json:"total"`
}

// Event is one rally in a season's calendar.
type Event struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	StartDate  string   `json:"startDate"`
	FinishDate string   `json:"finishDate"`
	Location   string   `json:"location,omitempty"`
	Surface    string   `json:"surface,omitempty"`
	Country    *Country `json:"country,omitempty"`
}

// Country identifies a nation as referenced by events and persons.
type Country struct {
	CountryID int64  `json:"countryId"`
	Name      string `json:"name"`
	ISO2      string `json:"iso2,omitempty"`
	ISO3      string `json:"iso3,omitempty"`
}

// ItineraryLeg is one day (or part-day) of an event's route.
type ItineraryLeg struct {
	ItineraryLegID int64              `json:"itineraryLegId"`
	ItineraryID    int64              `json:"itineraryId"`
	StartListID    int64              `json:"startListId"`
	Name           string             `json:"name"`
	LegDate        string             `json:"legDate"`
	Order          int                `json:"order"`
	Status         string             `json:"status"`
	Sections       []ItinerarySection `json:"itinerarySections"`
}

// ItinerarySection groups the stages and controls run between two
// regroups/services within a leg.
type ItinerarySection struct {
	ItinerarySectionID int64     `json:"itinerarySectionId"`
	ItineraryLegID     int64     `json:"itineraryLegId"`
	Name               string    `json:"name"`
	Order              int       `json:"order"`
	Controls           []Control `json:"controls"`
	Stages             []Stage   `json:"stages"`
}

// Control is a time-control checkpoint on the itinerary.
//
// ItinerarySectionID is absent in the nested payload; reshape.Controls
// stamps it when flattening.
type Control struct {
	ControlID           int64   `json:"controlId"`
	EventID             int64   `json:"eventId"`
	StageID             *int64  `json:"stageId,omitempty"`
	Type                string  `json:"type"`
	Code                string  `json:"code"`
	Location            string  `json:"location"`
	Distance            float64 `json:"distance"`
	TargetDuration      string  `json:"targetDuration,omitempty"`
	TargetDurationMs    *int64  `json:"targetDurationMs,omitempty"`
	FirstCarDueDateTime string  `json:"firstCarDueDateTime,omitempty"`
	Status              string  `json:"status"`
	ItinerarySectionID  int64   `json:"itinerarySectionId,omitempty"`
}

// Stage is one timed competitive stage.
//
// ItinerarySectionID is absent in the nested payload; reshape.Stages stamps
// it when flattening.
type Stage struct {
	StageID            int64   `json:"stageId"`
	EventID            int64   `json:"eventId"`
	Number             int     `json:"number"`
	Name               string  `json:"name"`
	Code               string  `json:"code"`
	Distance           float64 `json:"distance"`
	Status             string  `json:"status"`
	StageType          string  `json:"stageType,omitempty"`
	TimingPrecision    string  `json:"timingPrecision,omitempty"`
	ItinerarySectionID int64   `json:"itinerarySectionId,omitempty"`
}

// Entry is one car/crew registration for an event. The nested sub-records
// are pointers so an incomplete payload is detectable (see reshape.CarData).
type Entry struct {
	EntryID          int64         `json:"entryId"`
	EventID          int64         `json:"eventId"`
	DriverID         int64         `json:"driverId"`
	CodriverID       int64         `json:"codriverId"`
	ManufacturerID   int64         `json:"manufacturerId"`
	EntrantID        int64         `json:"entrantId"`
	GroupID          int64         `json:"groupId"`
	Identifier       string        `json:"identifier"`
	VehicleModel     string        `json:"vehicleModel"`
	Eligibility      string        `json:"eligibility"`
	Priority         string        `json:"priority,omitempty"`
	Status           string        `json:"status,omitempty"`
	TyreManufacturer string        `json:"tyreManufacturer,omitempty"`
	Driver           *Person       `json:"driver"`
	Codriver         *Person       `json:"codriver"`
	Manufacturer     *Manufacturer `json:"manufacturer"`
	Entrant          *Entrant      `json:"entrant"`
	Group            *Group        `json:"group"`
	EventClasses     []EventClass  `json:"eventClasses"`
}

// Person is a driver or co-driver.
type Person struct {
	PersonID     int64    `json:"personId"`
	CountryID    int64    `json:"countryId"`
	Country      *Country `json:"country,omitempty"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	FullName     string   `json:"fullName"`
	AbbvName     string   `json:"abbvName"`
	Abbreviation string   `json:"abbreviation,omitempty"`
	Code         string   `json:"code"`
}

// Manufacturer is a car manufacturer record.
type Manufacturer struct {
	ManufacturerID int64  `json:"manufacturerId"`
	Name           string `json:"name"`
	LogoFilename   string `json:"logoFilename,omitempty"`
}

// Entrant is the entering team.
type Entrant struct {
	EntrantID int64  `json:"entrantId"`
	Name      string `json:"name"`
}

// Group is the competition group of an entry.
type Group struct {
	GroupID int64  `json:"groupId"`
	Name    string `json:"name"`
}

// EventClass is a vehicle class as run at a specific event.
type EventClass struct {
	EventClassID int64  `json:"eventClassId"`
	EventID      int64  `json:"eventId"`
	Name         string `json:"name"`
}

// StartListItem is one car's slot in a start list.
type StartListItem struct {
	StartListItemID int64  `json:"startListItemId"`
	StartListID     int64  `json:"startListId"`
	EntryID         int64  `json:"entryId"`
	Order           int    `json:"order"`
	StartDateTime   string `json:"startDateTime"`
}

// Position is one row of a classification: the event result, or a per-stage
// overall. Per-stage payloads omit the stage ID; the client stamps it.
type Position struct {
	EntryID       int64  `json:"entryId"`
	Position      int    `json:"position"`
	TotalTime     string `json:"totalTime"`
	TotalTimeMs   int64  `json:"totalTimeMs"`
	PenaltyTime   string `json:"penaltyTime,omitempty"`
	PenaltyTimeMs int64  `json:"penaltyTimeMs"`
	DiffFirst     string `json:"diffFirst,omitempty"`
	DiffFirstMs   int64  `json:"diffFirstMs"`
	DiffPrev      string `json:"diffPrev,omitempty"`
	DiffPrevMs    int64  `json:"diffPrevMs"`
	StageID       int64  `json:"stageId,omitempty"`
}

// StageWinner names the fastest entry on one stage.
type StageWinner struct {
	StageID           int64  `json:"stageId"`
	EntryID           int64  `json:"entryId"`
	StageName         string `json:"stageName"`
	ElapsedDuration   string `json:"elapsedDuration"`
	ElapsedDurationMs *int64 `json:"elapsedDurationMs"`
}

// Penalty is a time penalty applied at a control.
type Penalty struct {
	PenaltyID         int64  `json:"penaltyId"`
	ControlID         int64  `json:"controlId"`
	EntryID           int64  `json:"entryId"`
	PenaltyDuration   string `json:"penaltyDuration"`
	PenaltyDurationMs int64  `json:"penaltyDurationMs"`
	Reason            string `json:"reason"`
}

// Retirement records a car withdrawing from the event.
type Retirement struct {
	RetirementID       int64  `json:"retirementId"`
	ControlID          int64  `json:"controlId"`
	EntryID            int64  `json:"entryId"`
	Reason             string `json:"reason"`
	RetirementDateTime string `json:"retirementDateTime"`
	Status             string `json:"status,omitempty"`
}

// StageTime is one entry's time on one stage. ElapsedDurationMs is null
// upstream when no time was set.
//
// Raw keeps the undecoded record so callers can pivot on fields this struct
// does not model (reshape.StageTimesWideByKey).
type StageTime struct {
	StageTimeID       int64  `json:"stageTimeId,omitempty"`
	StageID           int64  `json:"stageId"`
	EntryID           int64  `json:"entryId"`
	ElapsedDuration   string `json:"elapsedDuration"`
	ElapsedDurationMs *int64 `json:"elapsedDurationMs"`
	Status            string `json:"status,omitempty"`
	Source            string `json:"source,omitempty"`
	Position          int    `json:"position"`
	PositionChange    int    `json:"positionChange,omitempty"`

	Raw json.RawMessage `json:"-"`
}

// SplitTimes is the split-times payload for one stage: the split points on
// the stage plus per-entry times at each point.
type SplitTimes struct {
	StageID              int64                  `json:"stageId,omitempty"`
	SplitPoints          []SplitPoint           `json:"splitPoints"`
	EntrySplitPointTimes []EntrySplitPointTimes `json:"entrySplitPointTimes"`
}

// SplitPoint is an intermediate timing point within a stage.
type SplitPoint struct {
	SplitPointID int64   `json:"splitPointId"`
	StageID      int64   `json:"stageId"`
	Number       int     `json:"number"`
	Distance     float64 `json:"distance"`
}

// EntrySplitPointTimes nests one entry's times at every split point.
type EntrySplitPointTimes struct {
	EntryID         int64            `json:"entryId"`
	StartDateTime   string           `json:"startDateTime,omitempty"`
	SplitPointTimes []SplitPointTime `json:"splitPointTimes"`
}

// SplitPointTime is one entry's elapsed time at one split point.
type SplitPointTime struct {
	SplitPointTimeID  int64   `json:"splitPointTimeId,omitempty"`
	SplitPointID      int64   `json:"splitPointId"`
	EntryID           int64   `json:"entryId"`
	ElapsedDurationMs float64 `json:"elapsedDurationMs"`
	SplitDateTime     string  `json:"splitDateTime,omitempty"`
}
