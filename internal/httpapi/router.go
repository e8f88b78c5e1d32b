// Package httpapi wires the HTTP surface of the bookkeeping service.
// Handlers stay thin and delegate the accounting rules to the service layer.
package httpapi

import (
    "context"
    "log/slog"
    "net/http"

    chi "github.com/go-chi/chi/v5"
    chimw "github.com/go-chi/chi/v5/middleware"
    "github.com/google/uuid"

    "github.com/daftar/books/internal/books"
    "github.com/daftar/books/internal/service/arap"
    "github.com/daftar/books/internal/service/statement"
)

// Store is the persistence surface the API composes its services over. Both
// the memory and postgres stores satisfy it.
type Store interface {
    statement.Repo
    arap.Store

    CreateClient(ctx context.Context, c books.Client) (books.Client, error)
    ListClients(ctx context.Context) ([]books.Client, error)

    CreateEntry(ctx context.Context, e books.LedgerEntry) (books.LedgerEntry, error)

    CreatePayment(ctx context.Context, p books.Payment) (books.Payment, error)
    PaymentByID(ctx context.Context, id uuid.UUID) (books.Payment, error)
    DeletePayment(ctx context.Context, id uuid.UUID) (books.Payment, error)

    CreateCheque(ctx context.Context, c books.Cheque) (books.Cheque, error)
    UpdateChequeStatus(ctx context.Context, id uuid.UUID, status books.ChequeStatus) (books.Cheque, error)
}

// Server wires handlers and middleware using chi.
type Server struct {
    store Store
    stmt  statement.Service
    arap  *arap.Service
    log   *slog.Logger
    rt    *chi.Mux
}

// New constructs the HTTP server with routes and middleware. AR/AP retry
// behavior is tuned through opts.
func New(store Store, logger *slog.Logger, opts ...arap.Option) *Server {
    r := chi.NewRouter()
    r.Use(chimw.RequestID)
    r.Use(requestLogger(logger))
    r.Use(recoverer(logger))
    r.Use(metricsMiddleware)

    s := &Server{
        store: store,
        stmt:  statement.New(store),
        arap:  arap.New(store, opts...),
        log:   logger,
        rt:    r,
    }
    s.routes()
    return s
}

// Handler exposes the configured http.Handler.
func (s *Server) Handler() http.Handler { return s.rt }

// routes declares the public HTTP API endpoints.
func (s *Server) routes() {
    // Clients
    s.rt.With(requireJSON).Post("/v1/clients", s.postClient)
    s.rt.Get("/v1/clients", s.listClients)
    s.rt.Get("/v1/clients/{id}", s.getClient)
    // Statements
    s.rt.Get("/v1/clients/{id}/statement", s.getStatement)
    s.rt.Get("/v1/clients/{id}/statement/projection", s.getProjection)
    // Entries
    s.rt.With(requireJSON).Post("/v1/entries", s.postEntry)
    s.rt.Get("/v1/entries", s.listEntries)
    s.rt.Get("/v1/entries/{id}", s.getEntry)
    s.rt.With(requireJSON).Post("/v1/entries/{id}/arap", s.postEntryARAP)
    // Payments
    s.rt.With(requireJSON).Post("/v1/payments", s.postPayment)
    s.rt.Get("/v1/payments", s.listPayments)
    s.rt.Delete("/v1/payments/{id}", s.deletePayment)
    // Cheques
    s.rt.With(requireJSON).Post("/v1/cheques", s.postCheque)
    s.rt.Get("/v1/cheques", s.listCheques)
    s.rt.With(requireJSON).Patch("/v1/cheques/{id}/status", s.patchChequeStatus)
    // Dictionary
    s.rt.Get("/v1/categories", s.listCategories)
    // Health and metrics (unversioned)
    s.rt.Get("/healthz", s.healthz)
    s.rt.Get("/readyz", s.readyz)
    s.rt.Method(http.MethodGet, "/metrics", metricsHandler())
}
