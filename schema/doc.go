// Package schema defines the record shapes returned by the vehicle-safety API.
//
// Every endpoint answers with the same envelope:
//
//	{ "isSuccess": true, "data": { ... }, "error": null }
//
// The types in this package mirror the upstream JSON exactly. Fields the API may send as
// null are pointers; arrays the API may omit are slices that decode to nil. Nothing in this
// package performs I/O; the dashboard and vehicles client packages decode into these types.
//
// # Validation
//
// Decoding only checks structure. Callers that want the documented value invariants
// (non-negative counts, a model year, make and model) can call Validate on a result, or
// construct the vehicles client with WithStrictValidation.
package schema
