package correlation

import "net/http"

// Transport is an http.RoundTripper that stamps every outgoing request
// with a correlation ID header. An ID already present in the request
// context is reused; otherwise a fresh one is generated per request.
type Transport struct {
	// Base is the underlying round tripper. http.DefaultTransport is
	// used when nil.
	Base http.RoundTripper
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	id := FromContext(req.Context())
	if !IsValid(id) {
		id = NewID()
	}

	// RoundTrippers must not mutate the caller's request.
	clone := req.Clone(WithContext(req.Context(), id))
	clone.Header.Set(Header, id)

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(clone)
}
