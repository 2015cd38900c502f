package reshape

import (
	"strings"

	"github.com/samber/lo"

	"github.com/rallysight/wrc-results-go/wrc"
)

// Sections flattens itinerary legs into one list of sections, in leg order.
func Sections(legs []wrc.ItineraryLeg) []wrc.ItinerarySection {
	var sections []wrc.ItinerarySection
	for _, leg := range legs {
		sections = append(sections, leg.Sections...)
	}
	return sections
}

// Controls flattens sections into one list of controls, stamping each with
// its owning section's ID.
func Controls(sections []wrc.ItinerarySection) []wrc.Control {
	var controls []wrc.Control
	for _, section := range sections {
		for _, control := range section.Controls {
			control.ItinerarySectionID = section.ItinerarySectionID
			controls = append(controls, control)
		}
	}
	return controls
}

// Stages flattens sections into one list of stages, stamping each with its
// owning section's ID.
func Stages(sections []wrc.ItinerarySection) []wrc.Stage {
	var stages []wrc.Stage
	for _, section := range sections {
		for _, stage := range section.Stages {
			stage.ItinerarySectionID = section.ItinerarySectionID
			stages = append(stages, stage)
		}
	}
	return stages
}

// StageIDs returns the stage IDs of a flattened stage list, in input order.
func StageIDs(stages []wrc.Stage) []int64 {
	return lo.Map(stages, func(s wrc.Stage, _ int) int64 { return s.StageID })
}

// StageRef pairs a stage's code with its ID.
type StageRef struct {
	Code    string `json:"code"`
	StageID int64  `json:"stageId"`
}

// StageRefs reduces a stage list to code/ID pairs.
func StageRefs(stages []wrc.Stage) []StageRef {
	return lo.Map(stages, func(s wrc.Stage, _ int) StageRef {
		return StageRef{Code: s.Code, StageID: s.StageID}
	})
}

// StageIDByCode resolves a stage ID by exact (case-sensitive) code match.
func StageIDByCode(stages []wrc.Stage, code string) (int64, bool) {
	for _, s := range stages {
		if s.Code == code {
			return s.StageID, true
		}
	}
	return 0, false
}

// StageIDByName resolves a stage ID by case-insensitive substring match
// against stage names. The first match wins.
func StageIDByName(stages []wrc.Stage, name string) (int64, bool) {
	needle := strings.ToLower(name)
	for _, s := range stages {
		if strings.Contains(strings.ToLower(s.Name), needle) {
			return s.StageID, true
		}
	}
	return 0, false
}

// StageSummary is the display name and distance of a stage.
type StageSummary struct {
	Name     string  `json:"name"`
	Distance float64 `json:"distance"`
}

// StageInfo returns a stage's name and distance, with the broadcast
// " (Live TV)" suffix stripped from the name.
func StageInfo(stages []wrc.Stage, stageID int64) (StageSummary, bool) {
	for _, s := range stages {
		if s.StageID == stageID {
			name := strings.ReplaceAll(s.Name, " (Live TV)", "")
			return StageSummary{Name: name, Distance: s.Distance}, true
		}
	}
	return StageSummary{}, false
}

// StartListID resolves the start list covering a section: find the
// section's owning leg, then take that leg's start list ID.
func StartListID(legs []wrc.ItineraryLeg, sectionID int64) (int64, bool) {
	var legID int64
	found := false
	for _, section := range Sections(legs) {
		if section.ItinerarySectionID == sectionID {
			legID = section.ItineraryLegID
			found = true
		}
	}
	if !found {
		return 0, false
	}
	for _, leg := range legs {
		if leg.ItineraryLegID == legID {
			return leg.StartListID, true
		}
	}
	return 0, false
}
