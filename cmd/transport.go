package cmd

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"

	"github.com/s0up4200/safetydash/config"
)

// newHTTPClient builds the HTTP client shared by both API clients. With telemetry enabled
// and a tracer provider given, every request gets a client span named
// "<service> <method> <path>".
func newHTTPClient(api config.APIConfig, telemetry config.TelemetryConfig, tp trace.TracerProvider) *http.Client {
	transport := http.DefaultTransport

	if telemetry.Enabled && tp != nil {
		serviceName := telemetry.ServiceName
		transport = otelhttp.NewTransport(transport,
			otelhttp.WithTracerProvider(tp),
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return serviceName + " " + r.Method + " " + r.URL.Path
			}),
		)
	}

	return &http.Client{
		Transport: transport,
		Timeout:   api.Timeout,
	}
}
