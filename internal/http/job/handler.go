package job

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/tally/internal/contract"
	"github.com/MrJamesThe3rd/tally/internal/http/auth"
	"github.com/MrJamesThe3rd/tally/internal/payment"
)

type Handler struct {
	contracts *contract.Service
	payments  *payment.Service
}

func NewHandler(contracts *contract.Service, payments *payment.Service) *Handler {
	return &Handler{contracts: contracts, payments: payments}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/unpaid", h.listUnpaid)
	r.Post("/{job_id}/pay", h.pay)
}

func (h *Handler) listUnpaid(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.contracts.ListUnpaidJobs(r.Context(), auth.ProfileID(r.Context()))
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(jobs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) pay(w http.ResponseWriter, r *http.Request) {
	jobID, err := strconv.ParseInt(chi.URLParam(r, "job_id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid job id", http.StatusBadRequest)
		return
	}

	paid, err := h.payments.Pay(r.Context(), auth.ProfileID(r.Context()), jobID)
	if err != nil {
		writePayError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(paid)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writePayError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, payment.ErrJobNotFound), errors.Is(err, payment.ErrProfileNotFound):
		http.Error(w, "job not found", http.StatusNotFound)
	case errors.Is(err, payment.ErrNotClient),
		errors.Is(err, payment.ErrNotOwner),
		errors.Is(err, payment.ErrInsufficientFunds):
		http.Error(w, "payment not allowed", http.StatusForbidden)
	case errors.Is(err, payment.ErrTransientConflict):
		http.Error(w, "conflicting settlement in progress, retry", http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
