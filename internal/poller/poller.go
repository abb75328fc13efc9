package poller

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/canchalibre/match-engine/internal/domain"
	"github.com/canchalibre/match-engine/internal/logging"
	"github.com/canchalibre/match-engine/internal/metrics"
	"github.com/canchalibre/match-engine/internal/providers"
)

const defaultInterval = 5 * time.Minute

// BookingSink receives refreshed booking snapshots.
type BookingSink interface {
	ReplaceBookings(bookings []domain.BookingRecord)
}

// ForecastSink receives refreshed forecast snapshots.
type ForecastSink interface {
	ReplaceForecast(bundle domain.ForecastBundle)
}

// Poller refreshes bookings and the hourly forecast on an interval.
type Poller struct {
	bookings providers.BookingProvider
	forecast providers.ForecastProvider
	origin   domain.GeoPoint

	bookingSink  BookingSink
	forecastSink ForecastSink

	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(bookings providers.BookingProvider, forecast providers.ForecastProvider, origin domain.GeoPoint, bookingSink BookingSink, forecastSink ForecastSink, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		bookings:     bookings,
		forecast:     forecast,
		origin:       origin,
		bookingSink:  bookingSink,
		forecastSink: forecastSink,
		logger:       logger,
		metrics:      recorder,
		interval:     interval,
		now:          time.Now,
		done:         make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		logging.Info(p.logger, "poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Initial fetch to warm data on boot.
		p.fetchOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.ticker.C:
				p.fetchOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

// Status returns a copy of the current loop health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

func (p *Poller) fetchOnce(ctx context.Context) {
	start := time.Now()
	p.recordAttempt(start)

	var errs []error
	if err := p.refreshBookings(ctx); err != nil {
		errs = append(errs, err)
	}
	if err := p.refreshForecast(ctx); err != nil {
		errs = append(errs, err)
	}

	err := errors.Join(errs...)
	p.metrics.RecordPollerCycle(time.Since(start), err)
	if err != nil {
		logging.Error(p.logger, "poller refresh failed", err,
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
		)
		p.recordFailure(err, start)
		return
	}

	p.recordSuccess(start)
	logging.Info(p.logger, "poller refreshed data",
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
}

func (p *Poller) refreshBookings(ctx context.Context) error {
	if p.bookings == nil || p.bookingSink == nil {
		return nil
	}
	start := time.Now()
	records, err := p.bookings.FetchBookings(ctx)
	p.metrics.RecordProviderAttempt(providers.NameOf(p.bookings, "bookings"), time.Since(start), err)
	if err != nil {
		return err
	}
	p.bookingSink.ReplaceBookings(records)
	logging.Info(p.logger, "bookings refreshed", slog.Int(logging.FieldCount, len(records)))
	return nil
}

func (p *Poller) refreshForecast(ctx context.Context) error {
	if p.forecast == nil || p.forecastSink == nil {
		return nil
	}
	start := time.Now()
	bundle, err := p.forecast.FetchHourlyForecast(ctx, p.origin)
	p.metrics.RecordProviderAttempt(providers.NameOf(p.forecast, "forecast"), time.Since(start), err)
	if err != nil {
		return err
	}
	p.forecastSink.ReplaceForecast(bundle)
	logging.Info(p.logger, "forecast refreshed",
		slog.Int(logging.FieldCount, len(bundle.Hours)),
		slog.String(logging.FieldTimezone, bundle.TimeZone),
	)
	return nil
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	p.status.LastError = err.Error()
	p.status.LastAttempt = at
}
