// Package handlers provides the HTTP endpoint handlers for the Vesta
// backend.
//
// Four public endpoints exist, all GET-only:
//
//   - GET /          - root greeting
//   - GET /api/hello - API greeting
//   - GET /test      - database connectivity probe
//   - GET /quiz      - trivia item
//
// # Fail-open design
//
// The probe and quiz endpoints never surface failures to clients. /test
// always answers 200 with all six status keys, folding database problems
// into the status strings. /quiz always answers 200 with a non-empty item:
// when the generative provider is unconfigured, unreachable, or returns
// something unusable, the handler serves the deterministic fallback item
// for this deployment instead.
//
// The only non-200 responses are 405 for method violations, in the shared
// error envelope of pkg/api.
//
// # Handler pattern
//
// Each handler is a struct with its collaborators as fields and a ServeHTTP
// method: method check first, then the endpoint logic, then a JSON write
// via api.WriteJSON.
package handlers
