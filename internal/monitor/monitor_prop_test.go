package monitor

import (
	"testing"
	"time"

	"github.com/cozyGalvinism/webgone/internal/storage"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// For any sequence of probe results the monitor persists exactly one record
// per completed loss→restoration pair, and never while already connected.
func TestPropertyOneAppendPerOutage(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	props := gopter.NewProperties(params)

	props.Property("appends equal completed loss/restore pairs", prop.ForAll(
		func(results []bool) bool {
			db, err := storage.InitializeTestDatabase()
			if err != nil {
				return false
			}

			base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
			tick := 0
			m := New(db, nil, "192.0.2.1:53", time.Second)
			m.now = func() time.Time {
				tick++
				return base.Add(time.Duration(tick) * time.Second)
			}

			// Model: count disconnected→connected transitions starting
			// from the optimistic connected state.
			connected := true
			var expected int64
			for _, reachable := range results {
				if connected && !reachable {
					connected = false
				} else if !connected && reachable {
					connected = true
					expected++
				}
			}

			for _, reachable := range results {
				if err := m.observe(reachable); err != nil {
					return false
				}
			}

			// The invariant holds at every point, so checking it at the
			// end together with the count is enough.
			if m.outageStart.IsZero() != m.isConnected {
				return false
			}

			stats, err := db.Stats()
			if err != nil {
				return false
			}
			return stats.TotalOutages == expected
		},
		gen.SliceOf(gen.Bool()),
	))

	props.TestingRun(t)
}
