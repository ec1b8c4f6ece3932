/*
reminders.go - Periodic overdue-payment scan

PURPOSE:
  Every CheckInterval, lists tenants, computes hostel.Reminders as of
  today, caches the result for GET /api/reminders and publishes the count
  on the overdue gauge.

DESIGN:
  - One background goroutine driven by a ticker
  - Runs once immediately on Start
  - A failed scan keeps the previous result

USAGE:
  scanner := NewReminderScanner(store, metrics, log)
  scanner.Start()
  // ... later
  scanner.Stop()

SEE ALSO:
  - hostel/dashboard.go: Reminders
  - handlers.go: ListReminders
*/
package api

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/warp/hostelr/hostel"
)

// ReminderScanner keeps the overdue tenant list fresh.
type ReminderScanner struct {
	Store         hostel.TenantStore
	Metrics       *Metrics
	Clock         hostel.Clock
	CheckInterval time.Duration
	Enabled       bool

	log    *zap.Logger
	ticker *time.Ticker
	stop   chan struct{}
	wg     sync.WaitGroup
	mu     sync.Mutex

	resultMu  sync.RWMutex
	reminders []hostel.Reminder
	scannedAt time.Time
}

// NewReminderScanner creates a scanner with a one hour interval.
// metrics may be nil.
func NewReminderScanner(store hostel.TenantStore, metrics *Metrics, log *zap.Logger) *ReminderScanner {
	if log == nil {
		log = zap.NewNop()
	}
	return &ReminderScanner{
		Store:         store,
		Metrics:       metrics,
		CheckInterval: time.Hour,
		Enabled:       true,
		log:           log.Named("reminders"),
	}
}

// Start begins periodic scanning.
func (s *ReminderScanner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.Enabled {
		s.log.Info("reminder scanner disabled")
		return
	}
	if s.ticker != nil {
		return
	}

	s.ticker = time.NewTicker(s.CheckInterval)
	s.stop = make(chan struct{})
	s.wg.Add(1)
	go s.run()

	s.log.Info("reminder scanner started", zap.Duration("interval", s.CheckInterval))
}

// Stop halts scanning and waits for an in-flight scan to finish.
func (s *ReminderScanner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ticker == nil {
		return
	}
	s.ticker.Stop()
	close(s.stop)
	s.wg.Wait()
	s.ticker = nil
	s.log.Info("reminder scanner stopped")
}

func (s *ReminderScanner) run() {
	defer s.wg.Done()

	s.scan()
	for {
		select {
		case <-s.ticker.C:
			s.scan()
		case <-s.stop:
			return
		}
	}
}

func (s *ReminderScanner) scan() {
	if _, err := s.RunNow(context.Background()); err != nil {
		s.log.Error("reminder scan failed", zap.Error(err))
	}
}

// RunNow scans immediately and returns the fresh result.
func (s *ReminderScanner) RunNow(ctx context.Context) ([]hostel.Reminder, error) {
	tenants, err := s.Store.ListTenants(ctx)
	if err != nil {
		return nil, err
	}

	now := s.Clock.Now()
	reminders := hostel.Reminders(tenants, hostel.DateOf(now))

	s.resultMu.Lock()
	s.reminders = reminders
	s.scannedAt = now
	s.resultMu.Unlock()

	if s.Metrics != nil {
		s.Metrics.SetOverdueTenants(len(reminders))
	}
	if len(reminders) > 0 {
		s.log.Info("overdue tenants found", zap.Int("count", len(reminders)))
	}
	return reminders, nil
}

// Latest returns the last scan result. ok is false before the first scan.
func (s *ReminderScanner) Latest() (reminders []hostel.Reminder, scannedAt time.Time, ok bool) {
	s.resultMu.RLock()
	defer s.resultMu.RUnlock()
	return s.reminders, s.scannedAt, !s.scannedAt.IsZero()
}
