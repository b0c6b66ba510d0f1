package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/dev-isidore/hhplus-tdd/internal/api/httpx"
	"github.com/dev-isidore/hhplus-tdd/internal/api/validate"
	"github.com/dev-isidore/hhplus-tdd/internal/config"
	"github.com/dev-isidore/hhplus-tdd/internal/metrics"
	"github.com/dev-isidore/hhplus-tdd/internal/middleware"
	"github.com/dev-isidore/hhplus-tdd/internal/services"
)

func NewRouter(cfg config.Config, us *services.UserService, ps *services.PointService) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.RateLimit(cfg.RateRPS), middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	// ---------- users ----------
	r.Post("/users", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name string `json:"name"`
		}
		if err := httpx.Decode(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "bad_request", "bad request", nil)
			return
		}
		if ef := validate.Required("name", req.Name); ef != nil {
			httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid user", validate.Errs{*ef})
			return
		}
		u, err := us.Create(req.Name)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "bad_request", err.Error(), nil)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, u)
	})

	// ---------- points ----------
	r.Route("/point", func(r chi.Router) {
		r.Get("/{id}", func(w http.ResponseWriter, r *http.Request) {
			id, ok := userID(w, r)
			if !ok {
				return
			}
			up, err := ps.GetPoint(id)
			if err != nil {
				writeDomainError(w, err)
				return
			}
			httpx.WriteJSON(w, http.StatusOK, up)
		})

		r.Get("/{id}/histories", func(w http.ResponseWriter, r *http.Request) {
			id, ok := userID(w, r)
			if !ok {
				return
			}
			hs, err := ps.GetHistories(id)
			if err != nil {
				writeDomainError(w, err)
				return
			}
			httpx.WriteJSON(w, http.StatusOK, hs)
		})

		r.Patch("/{id}/charge", func(w http.ResponseWriter, r *http.Request) {
			id, ok := userID(w, r)
			if !ok {
				return
			}
			amount, ok := amountBody(w, r)
			if !ok {
				return
			}
			up, err := ps.Charge(id, amount)
			if err != nil {
				metrics.PointOperationsFailed.WithLabelValues(failReason(err)).Inc()
				writeDomainError(w, err)
				return
			}
			metrics.PointOperationsTotal.WithLabelValues("charge").Inc()
			httpx.WriteJSON(w, http.StatusOK, up)
		})

		r.Patch("/{id}/use", func(w http.ResponseWriter, r *http.Request) {
			id, ok := userID(w, r)
			if !ok {
				return
			}
			amount, ok := amountBody(w, r)
			if !ok {
				return
			}
			up, err := ps.Use(id, amount)
			if err != nil {
				metrics.PointOperationsFailed.WithLabelValues(failReason(err)).Inc()
				writeDomainError(w, err)
				return
			}
			metrics.PointOperationsTotal.WithLabelValues("use").Inc()
			httpx.WriteJSON(w, http.StatusOK, up)
		})
	})

	return r
}
