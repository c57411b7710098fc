package probe

import (
	"net"
	"time"

	"github.com/rs/zerolog/log"
)

// Prober performs a single reachability check against a fixed endpoint.
type Prober interface {
	Check(addr string) bool
}

// TCP judges reachability by completing a TCP handshake within Timeout.
type TCP struct {
	Timeout time.Duration
}

// Check dials addr and reports whether the handshake completed in time.
// Every failure mode (refused, timeout, unreachable, resolution failure)
// collapses to false; retrying is the caller's cadence, not the probe's.
func (p TCP) Check(addr string) bool {
	start := time.Now()

	conn, err := net.DialTimeout("tcp", addr, p.Timeout)
	if err != nil {
		log.Warn().
			Str("addr", addr).
			Dur("elapsed", time.Since(start)).
			Err(err).
			Msg("Connectivity check failed")
		return false
	}
	conn.Close()

	return true
}
