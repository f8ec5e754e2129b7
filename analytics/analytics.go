// Package analytics provides privacy-first page view counting.
// Visitors are identified by a salted hash of IP and user agent that
// rotates daily, so no raw address is ever stored.
package analytics

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// PageCount is the aggregated view/visitor tally for one path.
type PageCount struct {
	Path     string
	Views    int64
	Visitors int64
}

// visitorID derives the anonymous visitor identifier for a request.
// The day component makes the identifier unlinkable across days.
func visitorID(salt, ip, userAgent string, day time.Time) string {
	h := sha256.Sum256([]byte(salt + day.UTC().Format("2006-01-02") + ip + userAgent))
	return hex.EncodeToString(h[:16])
}
