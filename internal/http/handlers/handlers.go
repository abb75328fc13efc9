package handlers

import (
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/canchalibre/match-engine/internal/app/matches"
	appweather "github.com/canchalibre/match-engine/internal/app/weather"
	"github.com/canchalibre/match-engine/internal/domain"
	"github.com/canchalibre/match-engine/internal/logging"
	"github.com/canchalibre/match-engine/internal/match"
	"github.com/canchalibre/match-engine/internal/nearby"
	"github.com/canchalibre/match-engine/internal/poller"
	"github.com/canchalibre/match-engine/internal/timeutil"
)

type nowFunc func() time.Time

// Handler wires HTTP routes to the domain services.
type Handler struct {
	matches   *matches.Service
	weather   *appweather.Service
	ranker    *nearby.Aggregator
	logger    *slog.Logger
	now       nowFunc
	statusFn  func() poller.Status
	defaultTZ string
	origin    domain.GeoPoint
}

// NewHandler constructs a Handler with defaults.
func NewHandler(matchSvc *matches.Service, weatherSvc *appweather.Service, ranker *nearby.Aggregator, logger *slog.Logger, statusFn func() poller.Status, defaultTZ string, origin domain.GeoPoint) *Handler {
	return &Handler{
		matches:   matchSvc,
		weather:   weatherSvc,
		ranker:    ranker,
		logger:    logger,
		now:       time.Now,
		statusFn:  statusFn,
		defaultTZ: defaultTZ,
		origin:    origin,
	}
}

func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	if h.statusFn().IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := h.statusFn().LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// MatchesToday returns today's nearby matches ranked by state and kickoff.
// The viewer position defaults to the configured origin; lat/lon query
// parameters override it, and tz selects the civil day used for "today".
func (h *Handler) MatchesToday(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	tz := r.URL.Query().Get("tz")
	if tz == "" {
		tz = h.defaultTZ
	}

	viewer, ok := h.viewerPosition(w, r)
	if !ok {
		return
	}

	now := h.now()
	ranked, err := h.ranker.Rank(h.matches.Bookings(), viewer, tz, now)
	if err != nil {
		if _, isConfig := match.AsConfigurationError(err); isConfig {
			writeError(w, r, nethttp.StatusBadRequest, "unknown timezone", h.logger)
			return
		}
		writeError(w, r, nethttp.StatusInternalServerError, "could not rank matches", h.logger)
		return
	}

	loc := match.ResolveTimezone(tz)
	date := timeutil.FormatDate(now.In(loc))

	summaries := make([]domain.MatchSummary, 0, len(ranked))
	for _, rm := range ranked {
		summaries = append(summaries, domain.MatchSummary{
			ID:        rm.Booking.ID,
			StartTime: rm.Window.Start.Format(time.RFC3339),
			Status:    rm.Status,
			ScoreA:    rm.Booking.ScoreA,
			ScoreB:    rm.Booking.ScoreB,
		})
	}

	if logger := loggerFromContext(r, h.logger); logger != nil {
		logger.Info("served today's matches",
			slog.String(logging.FieldDate, date),
			slog.String(logging.FieldTimezone, tz),
			slog.Int(logging.FieldCount, len(summaries)),
		)
	}

	writeJSON(w, nethttp.StatusOK, domain.TodayResponse{Date: date, Matches: summaries}, h.logger)
}

// MatchStatusByID resolves the live status of a single booking.
func (h *Handler) MatchStatusByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	// Expect path: /matches/{id}/status
	path := strings.TrimPrefix(r.URL.Path, "/matches/")
	if !strings.HasSuffix(path, "/status") {
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
		return
	}
	idRaw := strings.TrimSuffix(path, "/status")
	id, err := url.PathUnescape(idRaw)
	if err != nil || id == "" || strings.ContainsAny(id, " \t/") {
		writeError(w, r, nethttp.StatusBadRequest, "invalid match id", h.logger)
		return
	}

	booking, found := h.matches.BookingByID(id)
	if !found {
		writeError(w, r, nethttp.StatusNotFound, "match not found", h.logger)
		return
	}

	window, status, err := h.matches.StatusOf(booking, h.now())
	if err != nil {
		if logger := loggerFromContext(r, h.logger); logger != nil {
			logger.Warn("could not resolve match window",
				slog.String(logging.FieldBookingID, booking.ID),
				slog.String("err", err.Error()),
			)
		}
		writeError(w, r, nethttp.StatusUnprocessableEntity, "booking has invalid schedule data", h.logger)
		return
	}

	payload := struct {
		ID     string             `json:"id"`
		Status domain.MatchStatus `json:"status"`
		Window domain.MatchWindow `json:"window"`
	}{booking.ID, status, window}
	writeJSON(w, nethttp.StatusOK, payload, h.logger)
}

// BestWindows returns the merged favorable play windows for the next 24 hours.
func (h *Handler) BestWindows(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	windows := h.weather.BestWindows(h.now())
	if windows == nil {
		windows = []string{}
	}
	payload := struct {
		TimeZone string   `json:"timezone"`
		Windows  []string `json:"windows"`
	}{h.weather.Forecast().TimeZone, windows}
	writeJSON(w, nethttp.StatusOK, payload, h.logger)
}

// Favorability returns the per-hour favorability ratings for the next 24 hours.
func (h *Handler) Favorability(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	hours := h.weather.HourlyFavorability(h.now())
	if hours == nil {
		hours = []appweather.RatedHour{}
	}
	payload := struct {
		Hours []appweather.RatedHour `json:"hours"`
	}{hours}
	writeJSON(w, nethttp.StatusOK, payload, h.logger)
}

// viewerPosition parses the optional lat/lon query pair. Writes the error
// response itself and returns ok=false when the pair is malformed.
func (h *Handler) viewerPosition(w nethttp.ResponseWriter, r *nethttp.Request) (domain.GeoPoint, bool) {
	latRaw := r.URL.Query().Get("lat")
	lonRaw := r.URL.Query().Get("lon")
	if latRaw == "" && lonRaw == "" {
		return h.origin, true
	}
	if latRaw == "" || lonRaw == "" {
		writeError(w, r, nethttp.StatusBadRequest, "lat and lon must be provided together", h.logger)
		return domain.GeoPoint{}, false
	}

	lat, errLat := strconv.ParseFloat(latRaw, 64)
	lon, errLon := strconv.ParseFloat(lonRaw, 64)
	if errLat != nil || errLon != nil || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		writeError(w, r, nethttp.StatusBadRequest, "invalid coordinates", h.logger)
		return domain.GeoPoint{}, false
	}
	return domain.GeoPoint{Latitude: lat, Longitude: lon}, true
}
