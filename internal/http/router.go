package http

import (
	nethttp "net/http"

	"github.com/canchalibre/match-engine/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/matches/today", handler.MatchesToday)
	mux.HandleFunc("/matches/", handler.MatchStatusByID)
	mux.HandleFunc("/weather/best-windows", handler.BestWindows)
	mux.HandleFunc("/weather/favorability", handler.Favorability)
	return mux
}
