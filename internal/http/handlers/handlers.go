package handlers

import (
	"encoding/json"
	"log/slog"
	nethttp "net/http"
	"strconv"
	"strings"

	"masters-league-service/internal/app/league"
	"masters-league-service/internal/domain"
	"masters-league-service/internal/logging"
)

// Handler wires HTTP routes to the league service. Provider failures surface
// their message verbatim as a 502; the dashboard displays it to the admin.
type Handler struct {
	svc    *league.Service
	logger *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(svc *league.Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
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

// Ready reports readiness for traffic (e.g., for Kubernetes probes). The
// service has no warm-up phase, so ready mirrors health.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// League returns the full dashboard payload.
func (h *Handler) League(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	resp, err := h.svc.Overview(r.Context())
	if err != nil {
		writeError(w, r, nethttp.StatusBadGateway, err.Error(), h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	logging.Info(logger, "served league overview",
		logging.FieldCount, len(resp.Teams),
		logging.FieldWeek, resp.CurrentWeek,
	)
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

// Week returns a single week's aggregated result. Expects /api/week/{week}.
func (h *Handler) Week(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	raw := strings.TrimPrefix(r.URL.Path, "/api/week/")
	week, err := strconv.Atoi(raw)
	if err != nil || week < 1 {
		writeError(w, r, nethttp.StatusBadRequest, "invalid week number", h.logger)
		return
	}

	resp, err := h.svc.Week(r.Context(), week)
	if err != nil {
		writeError(w, r, nethttp.StatusBadGateway, err.Error(), h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

// Schedule serves the stored schedule on GET and replaces it on POST.
func (h *Handler) Schedule(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch r.Method {
	case nethttp.MethodGet:
		writeJSON(w, nethttp.StatusOK, h.svc.StoredSchedule(), h.logger)
	case nethttp.MethodPost:
		h.saveSchedule(w, r)
	default:
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

func (h *Handler) saveSchedule(w nethttp.ResponseWriter, r *nethttp.Request) {
	var sched domain.Schedule
	if err := json.NewDecoder(r.Body).Decode(&sched); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid schedule payload", h.logger)
		return
	}

	if err := h.svc.SaveSchedule(sched); err != nil {
		writeError(w, r, nethttp.StatusInternalServerError, err.Error(), h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	logging.Info(logger, "schedule saved", logging.FieldCount, len(sched))
	writeJSON(w, nethttp.StatusOK, domain.ScheduleSaved{Status: "saved", Schedule: sched}, h.logger)
}

// GenerateSchedule returns a fresh round-robin schedule from the current
// team list without persisting it.
func (h *Handler) GenerateSchedule(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	sched, err := h.svc.GenerateSchedule(r.Context())
	if err != nil {
		writeError(w, r, nethttp.StatusBadGateway, err.Error(), h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, sched, h.logger)
}

// Refresh probes provider connectivity.
func (h *Handler) Refresh(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	resp, err := h.svc.Refresh(r.Context())
	if err != nil {
		writeError(w, r, nethttp.StatusBadGateway, err.Error(), h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}
