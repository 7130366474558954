// Package api provides the low-level HTTP transport for the startuppong client.
//
// # Overview
//
// [Client] wraps a standard *http.Client with the two request shapes the
// remote service uses: JSON-over-GET and form-urlencoded POST. Response
// bodies are buffered in full before decoding; there is no retry, caching,
// pagination, or streaming.
//
// # Error Mapping
//
// Each failure mode maps to exactly one code from the errors package:
//
//   - NETWORK_ERROR: the request could not be completed (connection, DNS, TLS)
//   - UNEXPECTED_STATUS: the remote answered with a non-2xx status
//   - IO_ERROR: the response body could not be fully read
//   - DECODE_ERROR: the body was not valid JSON or did not match the target shape
//
// # Observability
//
// Every request carries a generated X-Request-Id header and emits
// observability HTTP hook events, so consumers can correlate client-side
// telemetry with remote logs without this package depending on any
// metrics backend.
package api
