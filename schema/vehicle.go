package schema

import (
	"encoding/json"
	"strconv"
	"strings"
)

// VehicleResult is a single vehicle as returned by search
type VehicleResult struct {
	VehicleID        int64   `json:"vehicleId"`
	ParkIt           bool    `json:"parkIt"`
	ParkOutSide      bool    `json:"parkOutSide"`
	OverTheAirUpdate bool    `json:"overTheAirUpdate"`
	ArtemisID        int64   `json:"artemisId"`
	Active           bool    `json:"active"`
	NcapID           *int64  `json:"ncapId"`
	ModelYear        int     `json:"modelYear"`
	Make             string  `json:"make"`
	VehicleModel     string  `json:"vehicleModel"`
	Trim             *string `json:"trim"`
	Series           *string `json:"series"`
	Class            *string `json:"class"`
	Manufacturer     string  `json:"manufacturer"`
	VehiclePicture   *string `json:"vehiclePicture"`
	NcapRated        bool    `json:"ncapRated"`

	ComplaintsCount                 int `json:"complaintsCount"`
	RecallsCount                    int `json:"recallsCount"`
	InvestigationsCount             int `json:"investigationsCount"`
	ManufacturerCommunicationsCount int `json:"manufacturerCommunicationsCount"`
}

// DisplayName returns a human label such as "2021 TOYOTA CAMRY LE"
func (v *VehicleResult) DisplayName() string {
	parts := make([]string, 0, 5)
	if v.ModelYear > 0 {
		parts = append(parts, strconv.Itoa(v.ModelYear))
	}
	parts = append(parts, v.Make, v.VehicleModel)
	if s := deref(v.Trim); s != "" {
		parts = append(parts, s)
	}
	if s := deref(v.Series); s != "" {
		parts = append(parts, s)
	}
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

// Validate checks the value invariants the API documents for a vehicle
func (v *VehicleResult) Validate() error {
	if v.ModelYear <= 0 {
		return &ValidationError{Field: "modelYear", Reason: "must be positive"}
	}
	if strings.TrimSpace(v.Make) == "" {
		return &ValidationError{Field: "make", Reason: "is required"}
	}
	if strings.TrimSpace(v.VehicleModel) == "" {
		return &ValidationError{Field: "vehicleModel", Reason: "is required"}
	}

	counts := []struct {
		field string
		value int
	}{
		{"complaintsCount", v.ComplaintsCount},
		{"recallsCount", v.RecallsCount},
		{"investigationsCount", v.InvestigationsCount},
		{"manufacturerCommunicationsCount", v.ManufacturerCommunicationsCount},
	}
	for _, c := range counts {
		if c.value < 0 {
			return &ValidationError{Field: c.field, Reason: "must not be negative"}
		}
	}
	return nil
}

// DetailedVehicleResult extends VehicleResult with ratings and safety issues
type DetailedVehicleResult struct {
	VehicleResult
	SafetyRatings *SafetyRatings `json:"safetyRatings"`
	SafetyIssues  *SafetyIssues  `json:"safetyIssues"`
}

// Validate checks the embedded vehicle
func (d *DetailedVehicleResult) Validate() error {
	return d.VehicleResult.Validate()
}

// SafetyRatings groups NCAP crash tests and safety technology
type SafetyRatings struct {
	CrashTestRatings    []CrashTestRating       `json:"crashTestRatings"`
	SafetyFeatures      []SafetyFeatureCategory `json:"safetyFeatures"`
	RecommendedFeatures []RecommendedFeature    `json:"recommendedFeatures"`
}

// CrashTestRating is one crash test family (frontal, side, rollover, ...)
type CrashTestRating struct {
	Type          string                  `json:"type"`
	Display       string                  `json:"display"`
	MMY           string                  `json:"mmy"`
	NcapVehicleID int64                   `json:"ncapVehicleId"`
	Ratings       []CrashTestRatingDetail `json:"ratings"`
}

// CrashTestRatingDetail is the rating for a single seating position or test
type CrashTestRatingDetail struct {
	Position       string   `json:"position"`
	Display        string   `json:"display"`
	Rating         string   `json:"rating"`
	Notes          *string  `json:"notes"`
	SafetyConcerns *string  `json:"safetyConcerns"`
	Ratings        []string `json:"ratings"`
	Possibility    *string  `json:"possibility"`
}

// SafetyFeatureCategory groups features under a heading
type SafetyFeatureCategory struct {
	Category string          `json:"category"`
	Notes    *string         `json:"notes"`
	Features []SafetyFeature `json:"features"`
}

// SafetyFeature is a label/value pair such as "Backup Camera: Standard"
type SafetyFeature struct {
	Label string  `json:"label"`
	Value string  `json:"value"`
	Notes *string `json:"notes"`
}

// RecommendedFeature is an NHTSA recommended safety technology
type RecommendedFeature struct {
	Key             string  `json:"key"`
	Label           string  `json:"label"`
	Video           *string `json:"video"`
	Icon            *string `json:"icon"`
	Type            string  `json:"type"`
	NhtsaEvaluation *string `json:"nhtsaEvaluation"`
	NhtsaComments   *string `json:"nhtsaComments"`
	Description     string  `json:"description"`
	Note            *string `json:"note"`
}

// SafetyIssues collects complaints, recalls, investigations and communications
type SafetyIssues struct {
	Complaints                 []Complaint                 `json:"complaints"`
	Recalls                    []Recall                    `json:"recalls"`
	Investigations             []json.RawMessage           `json:"investigations"`
	ManufacturerCommunications []ManufacturerCommunication `json:"manufacturerCommunications"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
