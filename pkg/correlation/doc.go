// Package correlation generates and propagates per-request correlation
// identifiers for backend-side log tracing.
//
// A correlation ID is a short opaque string attached to every outgoing
// API call via the "X-Correlation-ID" header. The same ID is carried in
// the request context and injected into structured logs, which makes it
// possible to line up client-side log records with the backend's.
//
// The package offers:
//
//   - NewID, producing unique IDs from a millisecond timestamp plus a
//     random suffix.
//
//   - Context helpers WithContext and FromContext for storing and
//     extracting IDs from a context.Context.
//
//   - Transport, an http.RoundTripper decorator that stamps outgoing
//     requests, reusing an ID already present in the request context.
//
//   - LoggerExtractor, which integrates with the logger package so the
//     ID appears on every log record emitted with the request context.
//
// The package does not return errors. An invalid ID found in a context
// is silently replaced by a freshly generated one.
package correlation
