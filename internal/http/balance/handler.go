package balance

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/tally/internal/http/auth"
	"github.com/MrJamesThe3rd/tally/internal/payment"
	"github.com/MrJamesThe3rd/tally/internal/profile"
)

type Handler struct {
	payments *payment.Service
}

func NewHandler(payments *payment.Service) *Handler {
	return &Handler{payments: payments}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/deposit/{userId}", h.deposit)
}

type depositRequest struct {
	Amount int64 `json:"amount"` // cents
}

type profileResponse struct {
	ID         int64        `json:"id"`
	Type       profile.Type `json:"type"`
	FirstName  string       `json:"first_name"`
	LastName   string       `json:"last_name"`
	Profession string       `json:"profession,omitempty"`
	Balance    int64        `json:"balance"`
}

func (h *Handler) deposit(w http.ResponseWriter, r *http.Request) {
	targetID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	var req depositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.payments.Deposit(r.Context(), auth.ProfileID(r.Context()), targetID, req.Amount)
	if err != nil {
		writeDepositError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	resp := profileResponse{
		ID:         p.ID,
		Type:       p.Type,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Profession: p.Profession,
		Balance:    p.Balance,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeDepositError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, payment.ErrInvalidAmount):
		http.Error(w, "amount must be positive", http.StatusBadRequest)
	case errors.Is(err, payment.ErrProfileNotFound):
		http.Error(w, "profile not found", http.StatusNotFound)
	case errors.Is(err, payment.ErrNotClient), errors.Is(err, payment.ErrDepositLimitExceeded):
		http.Error(w, "deposit not allowed", http.StatusForbidden)
	case errors.Is(err, payment.ErrTransientConflict):
		http.Error(w, "conflicting settlement in progress, retry", http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
