package http

import (
	nethttp "net/http"

	"masters-league-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/api/league", handler.League)
	mux.HandleFunc("/api/week/", handler.Week)
	mux.HandleFunc("/api/schedule", handler.Schedule)
	mux.HandleFunc("/api/schedule/generate", handler.GenerateSchedule)
	mux.HandleFunc("/api/refresh", handler.Refresh)
	return mux
}
