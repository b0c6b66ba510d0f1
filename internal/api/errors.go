package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dev-isidore/hhplus-tdd/internal/api/httpx"
	"github.com/dev-isidore/hhplus-tdd/internal/models"
)

// userID parses the {id} path segment; on failure it writes a 400 and returns
// ok=false.
func userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "id must be an integer", nil)
		return 0, false
	}
	return id, true
}

// amountBody reads the request body as a bare JSON number.
func amountBody(w http.ResponseWriter, r *http.Request) (int64, bool) {
	var amount int64
	if err := httpx.Decode(r, &amount); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "amount must be an integer", nil)
		return 0, false
	}
	return amount, true
}

// writeDomainError maps point service failures onto response codes:
// unknown user -> 404, rejected amounts -> 400, anything else -> 500.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrUserNotFound):
		httpx.WriteError(w, http.StatusNotFound, "user_not_found", err.Error(), nil)
	case errors.Is(err, models.ErrNegativeAmount):
		httpx.WriteError(w, http.StatusBadRequest, "negative_amount", err.Error(), nil)
	case errors.Is(err, models.ErrInsufficientPoint):
		httpx.WriteError(w, http.StatusBadRequest, "insufficient_point", err.Error(), nil)
	default:
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error", nil)
	}
}

func failReason(err error) string {
	switch {
	case errors.Is(err, models.ErrUserNotFound):
		return "user_not_found"
	case errors.Is(err, models.ErrNegativeAmount):
		return "negative_amount"
	case errors.Is(err, models.ErrInsufficientPoint):
		return "insufficient_point"
	default:
		return "internal"
	}
}
