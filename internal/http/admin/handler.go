package admin

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/tally/internal/report"
)

// TODO: gate these routes behind an administrator credential once the data
// model grows an admin profile type.
type Handler struct {
	reports *report.Service
}

func NewHandler(reports *report.Service) *Handler {
	return &Handler{reports: reports}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/best-profession", h.bestProfession)
	r.Get("/best-clients", h.bestClients)
}

type professionResponse struct {
	Profession string `json:"profession"`
	Earned     int64  `json:"earned"`
}

type clientResponse struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Paid     int64  `json:"paid"`
}

func (h *Handler) bestProfession(w http.ResponseWriter, r *http.Request) {
	rng, err := parseRange(r)
	if err != nil {
		http.Error(w, "invalid date range", http.StatusBadRequest)
		return
	}

	earnings, err := h.reports.BestProfession(r.Context(), rng)
	if err != nil {
		writeReportError(w, err)
		return
	}

	resp := make([]professionResponse, len(earnings))
	for i, e := range earnings {
		resp[i] = professionResponse{Profession: e.Profession, Earned: e.Earned}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) bestClients(w http.ResponseWriter, r *http.Request) {
	rng, err := parseRange(r)
	if err != nil {
		http.Error(w, "invalid date range", http.StatusBadRequest)
		return
	}

	limit := 0

	if s := r.URL.Query().Get("limit"); s != "" {
		limit, err = strconv.Atoi(s)
		if err != nil || limit < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
	}

	clients, err := h.reports.BestClients(r.Context(), rng, limit)
	if err != nil {
		writeReportError(w, err)
		return
	}

	resp := make([]clientResponse, len(clients))
	for i, c := range clients {
		resp[i] = clientResponse{ID: c.ID, FullName: c.FullName, Paid: c.Paid}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeReportError(w http.ResponseWriter, err error) {
	if errors.Is(err, report.ErrInvalidRange) {
		http.Error(w, "invalid date range", http.StatusBadRequest)
		return
	}

	http.Error(w, "internal error", http.StatusInternalServerError)
}

// parseRange reads the inclusive start/end query parameters. Missing start
// means the epoch, missing end means now. Date-only end values are widened
// to the end of that day so the range stays inclusive.
func parseRange(r *http.Request) (report.Range, error) {
	rng := report.Range{
		Start: time.Unix(0, 0).UTC(),
		End:   time.Now().UTC(),
	}

	if s := r.URL.Query().Get("start"); s != "" {
		t, _, err := parseDate(s)
		if err != nil {
			return report.Range{}, err
		}

		rng.Start = t
	}

	if s := r.URL.Query().Get("end"); s != "" {
		t, dateOnly, err := parseDate(s)
		if err != nil {
			return report.Range{}, err
		}

		if dateOnly {
			t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}

		rng.End = t
	}

	return rng, nil
}

func parseDate(s string) (t time.Time, dateOnly bool, err error) {
	if t, err = time.Parse(time.RFC3339, s); err == nil {
		return t, false, nil
	}

	t, err = time.Parse(time.DateOnly, s)

	return t, true, err
}
