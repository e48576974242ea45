package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/tally/internal/http/admin"
	"github.com/MrJamesThe3rd/tally/internal/http/auth"
	"github.com/MrJamesThe3rd/tally/internal/http/balance"
	"github.com/MrJamesThe3rd/tally/internal/http/contract"
	"github.com/MrJamesThe3rd/tally/internal/http/job"
)

func New(
	contractsV1 *contract.Handler,
	jobsV1 *job.Handler,
	balancesV1 *balance.Handler,
	adminV1 *admin.Handler,
	resolver *auth.Resolver,
) http.Handler {
	router := chi.NewRouter()

	router.Use(requestLogger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "profile_id"},
	}))
	router.Use(resolver.Middleware)

	router.Route("/contracts", contractsV1.Routes)
	router.Route("/jobs", jobsV1.Routes)

	router.Route("/balances", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		balancesV1.Routes(r)
	})

	router.Route("/admin", adminV1.Routes)

	return router
}
