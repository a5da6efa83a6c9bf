package correlation

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
)

const (
	// Header is the canonical header carrying the correlation ID on
	// outgoing requests.
	Header = "X-Correlation-ID"

	maxIDLength = 128
	idPattern   = "^[a-zA-Z0-9_-]+$"

	suffixBytes = 6
)

var validIDRegex = regexp.MustCompile(idPattern)

// NewID generates a fresh correlation ID. IDs combine a millisecond
// timestamp with a random suffix so consecutive calls within the same
// millisecond still produce distinct values, and sorting IDs roughly
// orders them by creation time.
func NewID() string {
	buf := make([]byte, suffixBytes)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing is effectively unrecoverable; fall back
		// to a UUID rather than returning a colliding ID.
		return uuid.New().String()
	}
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), hex.EncodeToString(buf))
}

// IsValid reports whether id is acceptable as a correlation ID: non-empty,
// bounded length and limited to URL-safe characters.
func IsValid(id string) bool {
	if len(id) == 0 || len(id) > maxIDLength {
		return false
	}
	return validIDRegex.MatchString(id)
}
