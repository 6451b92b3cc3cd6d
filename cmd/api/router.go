package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/hostel-desk/internal/app"
	"github.com/pkordes/hostel-desk/internal/handler"
	"github.com/pkordes/hostel-desk/internal/middleware"
)

// newRouter applies the middleware chain, outermost first: request ID, real
// IP, request log, panic recovery, CORS and the body size limit.
func newRouter(a *app.App) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(a.Logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(a.Config.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(a.Config.MaxBodyBytes))

	server := handler.NewServer(a.Board, a.Contracts, a.Logger)
	r.Mount("/", server.Routes())
	return r
}
