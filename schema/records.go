package schema

import "encoding/json"

// Component is a vehicle system referenced by a complaint, recall or communication
type Component struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Complaint is a consumer complaint filed with NHTSA
type Complaint struct {
	DateFiled                string      `json:"dateFiled"`
	DateOfIncident           *string     `json:"dateOfIncident"`
	NhtsaIDNumber            int64       `json:"nhtsaIdNumber"`
	ID                       int64       `json:"id"`
	NumberOfInjuries         int         `json:"numberOfInjuries"`
	NumberOfDeaths           int         `json:"numberOfDeaths"`
	Fire                     bool        `json:"fire"`
	Crash                    bool        `json:"crash"`
	VIN                      *string     `json:"vin"`
	ConsumerLocation         *string     `json:"consumerLocation"`
	Description              string      `json:"description"`
	Components               []Component `json:"components"`
	AssociatedDocumentsCount int         `json:"associatedDocumentsCount"`
	AssociatedDocuments      *string     `json:"associatedDocuments"`
	AssociatedProductsCount  int         `json:"associatedProductsCount"`
	AssociatedProducts       *string     `json:"associatedProducts"`
}

// Recall is a safety recall campaign
type Recall struct {
	ID                             int64             `json:"id"`
	ParkIt                         bool              `json:"parkIt"`
	ParkOutSide                    bool              `json:"parkOutSide"`
	OverTheAirUpdate               bool              `json:"overTheAirUpdate"`
	Manufacturer                   string            `json:"manufacturer"`
	MfrCampaignNumber              string            `json:"mfrCampaignNumber"`
	NhtsaCampaignNumber            string            `json:"nhtsaCampaignNumber"`
	ReportReceivedDate             string            `json:"reportReceivedDate"`
	Subject                        string            `json:"subject"`
	Summary                        string            `json:"summary"`
	Consequence                    string            `json:"consequence"`
	CorrectiveAction               string            `json:"correctiveAction"`
	PotentialNumberOfUnitsAffected int64             `json:"potentialNumberOfUnitsAffected"`
	Notes                          *string           `json:"notes"`
	AssociatedDocumentsCount       int               `json:"associatedDocumentsCount"`
	AssociatedDocuments            *string           `json:"associatedDocuments"`
	AssociatedProductsCount        int               `json:"associatedProductsCount"`
	AssociatedProducts             *string           `json:"associatedProducts"`
	Components                     []Component       `json:"components"`
	Investigations                 []json.RawMessage `json:"investigations"`
}

// ManufacturerCommunication is a technical service bulletin or similar notice
type ManufacturerCommunication struct {
	ManufacturerCommunicationNumber string      `json:"manufacturerCommunicationNumber"`
	NhtsaIDNumber                   int64       `json:"nhtsaIdNumber"`
	Subject                         string      `json:"subject"`
	Summary                         string      `json:"summary"`
	CommunicationDate               string      `json:"communicationDate"`
	Components                      []Component `json:"components"`
	AssociatedDocumentsCount        int         `json:"associatedDocumentsCount"`
	AssociatedDocuments             *string     `json:"associatedDocuments"`
	AssociatedProductsCount         int         `json:"associatedProductsCount"`
	AssociatedProducts              *string     `json:"associatedProducts"`
}
