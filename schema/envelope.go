package schema

import (
	"encoding/json"
	"fmt"
)

// Envelope is the {isSuccess, data, error} wrapper returned by every endpoint
type Envelope[T any] struct {
	IsSuccess bool    `json:"isSuccess"`
	Data      T       `json:"data"`
	Error     *string `json:"error"`
}

// Err returns an UpstreamError when the service reported a failure inside a 2xx response
func (e *Envelope[T]) Err() error {
	if e.IsSuccess {
		return nil
	}
	msg := ""
	if e.Error != nil {
		msg = *e.Error
	}
	return &UpstreamError{Message: msg}
}

// SearchData is the payload of the initial-search endpoint
type SearchData struct {
	Meta    *Meta           `json:"meta"`
	Results []VehicleResult `json:"results"`
}

// SearchResponse is the envelope returned by the initial-search endpoint
type SearchResponse = Envelope[SearchData]

// DetailedVehicleData is the payload of the YMMT endpoint. Its meta block is passed through
// untouched because the service does not document it.
type DetailedVehicleData struct {
	Meta    json.RawMessage         `json:"meta"`
	Results []DetailedVehicleResult `json:"results"`
}

// DetailedVehicleResponse is the envelope returned by the YMMT endpoint
type DetailedVehicleResponse = Envelope[DetailedVehicleData]

// RawResponse is an envelope whose payload has not been decoded
type RawResponse = Envelope[json.RawMessage]

// DecodeRaw decodes the payload of a raw envelope into v
func DecodeRaw(r *RawResponse, v any) error {
	if len(r.Data) == 0 || string(r.Data) == "null" {
		return fmt.Errorf("envelope has no data")
	}
	if err := json.Unmarshal(r.Data, v); err != nil {
		return fmt.Errorf("failed to decode envelope data: %w", err)
	}
	return nil
}
