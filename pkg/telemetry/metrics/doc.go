// Package metrics provides Prometheus metrics collection for Vesta.
//
// The Collector owns a private prometheus.Registry and registers three
// metric groups under the configured namespace (default "vesta"):
//
//   - HTTP: vesta_http_requests_total{method,path,status} and
//     vesta_http_request_duration_seconds{method,path}
//   - Quiz: vesta_quiz_served_total{source}
//   - Provider: vesta_provider_latency_seconds{model} and
//     vesta_provider_errors_total{kind}
//
// A CardinalityLimiter caps the number of unique path label sets so
// client-controlled URLs cannot grow the registry without bound; overflow
// paths are recorded as "other".
//
// Collector.Handler exposes the registry via promhttp for the /metrics
// endpoint.
package metrics
