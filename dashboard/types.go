package dashboard

import "github.com/s0up4200/safetydash/schema"

// AnalyticsParams sizes the lists the analytics endpoint returns
type AnalyticsParams struct {
	RecentRecallsCount        int
	TopManufacturersCount     int
	MostRecalledVehiclesCount int
}

// DefaultAnalyticsParams returns 10 recent recalls, 10 manufacturers and 5 vehicles
func DefaultAnalyticsParams() AnalyticsParams {
	return AnalyticsParams{
		RecentRecallsCount:        10,
		TopManufacturersCount:     10,
		MostRecalledVehiclesCount: 5,
	}
}

// RecentRecall is a recall campaign as listed on the dashboard
type RecentRecall struct {
	ReportReceivedDate  string `json:"reportReceivedDate"`
	NhtsaID             string `json:"nhtsaId"`
	Manufacturer        string `json:"manufacturer"`
	Subject             string `json:"subject"`
	Component           string `json:"component"`
	CampaignNumber      string `json:"campaignNumber"`
	RecallType          string `json:"recallType"`
	PotentiallyAffected string `json:"potentiallyAffected"`
	RecallDescription   string `json:"recallDescription"`
	ConsequenceSummary  string `json:"consequenceSummary"`
	CorrectiveAction    string `json:"correctiveAction"`
	ParkOutsideAdvisory string `json:"parkOutsideAdvisory"`
	DoNotDriveAdvisory  string `json:"doNotDriveAdvisory"`
	CompletionRate      string `json:"completionRate"`
}

// RecallsByManufacturer is the recall count of one manufacturer
type RecallsByManufacturer struct {
	Manufacturer string `json:"manufacturer"`
	RecallCount  int    `json:"recallCount"`
}

// MostRecalledVehicle is a manufacturer with its most common recall issue
type MostRecalledVehicle struct {
	Manufacturer     string `json:"manufacturer"`
	RecallCount      int    `json:"recallCount"`
	IssueDescription string `json:"issueDescription"`
}

// RecallsByYear is the recall count of one calendar year
type RecallsByYear struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// CrashTestPerformance summarises crash test outcomes for a manufacturer
type CrashTestPerformance struct {
	Manufacturer string  `json:"manufacturer"`
	TotalTests   int     `json:"totalTests"`
	PassedTests  int     `json:"passedTests"`
	FailedTests  int     `json:"failedTests"`
	PassRate     float64 `json:"passRate"`
}

// RolloverResistance relates vehicle weight to rollover resistance
type RolloverResistance struct {
	Manufacturer       string  `json:"manufacturer"`
	Model              string  `json:"model"`
	Weight             float64 `json:"weight"`
	RolloverResistance float64 `json:"rolloverResistance"`
}

// Analytics is the dashboard payload. Every list except RecentRecalls may be absent.
type Analytics struct {
	Meta                   *schema.Meta            `json:"meta,omitempty"`
	RecentRecalls          []RecentRecall          `json:"recentRecalls"`
	RecallsByManufacturer  []RecallsByManufacturer `json:"recallsByManufacturer,omitempty"`
	MostRecalledVehicles   []MostRecalledVehicle   `json:"mostRecalledVehicles,omitempty"`
	RecallsByYear          []RecallsByYear         `json:"recallsByYear,omitempty"`
	CrashTestPerformance   []CrashTestPerformance  `json:"crashTestPerformance,omitempty"`
	RolloverResistanceData []RolloverResistance    `json:"rolloverResistanceData,omitempty"`
}

// AnalyticsResponse is the envelope returned by the analytics endpoint
type AnalyticsResponse = schema.Envelope[Analytics]
