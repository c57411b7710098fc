package monitor

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/cozyGalvinism/webgone/internal/models"
	"github.com/cozyGalvinism/webgone/internal/probe"
	"github.com/cozyGalvinism/webgone/internal/storage"

	"github.com/rs/zerolog/log"
)

// Monitor watches a single endpoint and turns connectivity transitions into
// ledger records. It assumes connectivity at start; a loss is only detected
// on the first failed probe.
type Monitor struct {
	db       *storage.Database
	prober   probe.Prober
	addr     string
	interval time.Duration
	stopChan chan struct{}
	stopOnce sync.Once
	now      func() time.Time

	// outageStart is nonzero if and only if isConnected is false. It is
	// cleared only after the record's write commits, so a failed append
	// surfaces the interval instead of dropping it.
	isConnected bool
	outageStart time.Time
}

// New builds a monitor over an open ledger. addr is host:port.
func New(db *storage.Database, prober probe.Prober, addr string, interval time.Duration) *Monitor {
	return &Monitor{
		db:       db,
		prober:   prober,
		addr:     addr,
		interval: interval,
		stopChan: make(chan struct{}),
		now: func() time.Time {
			return time.Now().Truncate(time.Second)
		},
		isConnected: true,
	}
}

// Start runs the probe loop until Stop is called, a SIGINT/SIGTERM
// arrives, or a ledger write fails. An outage still open at shutdown is
// not flushed.
func (m *Monitor) Start() error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			log.Info().Msg("Shutting down gracefully...")
			m.Stop()
		case <-m.stopChan:
		}
	}()

	log.Info().
		Str("addr", m.addr).
		Dur("interval", m.interval).
		Msg("Starting internet connectivity monitoring, press Ctrl+C to stop")

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	// First check runs immediately, the ticker paces the rest.
	if err := m.tick(); err != nil {
		return err
	}

	for {
		select {
		case <-ticker.C:
			if err := m.tick(); err != nil {
				return err
			}
		case <-m.stopChan:
			log.Info().Msg("Monitoring stopped")
			return nil
		}
	}
}

// Stop ends the probe loop. Safe to call more than once.
func (m *Monitor) Stop() {
	m.stopOnce.Do(func() {
		close(m.stopChan)
	})
}

func (m *Monitor) tick() error {
	return m.observe(m.prober.Check(m.addr))
}

// observe applies one probe result to the state machine. Only the two
// transitions act; repeated results in either state are no-ops.
func (m *Monitor) observe(reachable bool) error {
	switch {
	case m.isConnected && !reachable:
		m.outageStart = m.now()
		m.isConnected = false
		log.Warn().Time("start", m.outageStart).Msg("Internet connection lost")

	case !m.isConnected && reachable:
		end := m.now()
		duration := int64(end.Sub(m.outageStart) / time.Second)
		if duration < 0 {
			log.Warn().
				Time("start", m.outageStart).
				Time("end", end).
				Msg("Clock moved backwards during outage, clamping duration to zero")
			duration = 0
		}

		outage := models.NewOutage(m.outageStart, end, duration)
		if err := m.db.Append(&outage); err != nil {
			return fmt.Errorf("failed to record outage from %s to %s: %w",
				outage.StartTime, outage.EndTime, err)
		}

		m.outageStart = time.Time{}
		m.isConnected = true
		log.Info().
			Time("end", end).
			Int64("duration_seconds", duration).
			Msg("Internet connection restored")
	}

	return nil
}
