// Package handler implements the HTTP handlers for the hostel desk API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, room.go, contract.go, export.go) but all share the same
// Server struct so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/hostel-desk/internal/board"
	"github.com/pkordes/hostel-desk/internal/domain"
	"github.com/pkordes/hostel-desk/internal/service"
	"github.com/pkordes/hostel-desk/spec"
)

// BoardServicer defines the room board operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type BoardServicer interface {
	LoadAll(ctx context.Context) (board.Board, error)
	Room(ctx context.Context, number int) (domain.RoomDetail, error)
	Classifier() board.Classifier
}

// ContractServicer defines the contract operations the handlers depend on.
type ContractServicer interface {
	ForStay(ctx context.Context, stayID int64, extra domain.Placeholders) (service.Contract, error)
}

// Server holds the dependencies shared by every handler.
type Server struct {
	board     BoardServicer
	contracts ContractServicer
	logger    *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil logger uses slog.Default().
func NewServer(b BoardServicer, contracts ContractServicer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{board: b, contracts: contracts, logger: logger}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil)
}

// Routes returns a chi router with every API endpoint registered.
// Middleware is left to the caller (see cmd/api).
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", serveSpec)

	r.Route("/rooms", func(r chi.Router) {
		r.Get("/", s.ListRooms)
		r.Get("/export", s.ExportRooms)
		r.Get("/{number}", s.GetRoom)
	})

	r.Post("/stays/{id}/contract", s.GenerateContract)

	return r
}

// serveSpec handles GET /openapi.yaml.
func serveSpec(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(spec.OpenAPI)
}
