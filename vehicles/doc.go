// Package vehicles provides a client for the vehicle search and detail endpoints.
//
// Three operations are available, each a single GET against the configured service:
//
//   - SearchVehicles: keyword search with offset/max pagination
//   - GetVehicleByID: a vehicle by its opaque identifier
//   - GetVehicleByYMMT: detailed vehicles by year, make, model and optional trim/series
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := vehicles.NewClient("http://localhost:5276", logger,
//		vehicles.WithTimeout(10*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	resp, err := client.SearchVehicles(ctx, "toyota camry", 0, 20)
//
// # Pagination
//
// The search service embeds its own navigation links in data.meta.pagination. Those links
// point at the upstream provider, so SearchVehicles replaces them with links back to this
// client's search endpoint before returning. See RewritePagination.
//
// # Error Handling
//
// A non-2xx response yields a *schema.APIError carrying the status code. Transport and
// decoding failures are wrapped with %w. Every failure is logged at error level and then
// returned to the caller; nothing is retried.
package vehicles
