package httpapi

import (
    "context"
    "net/http"

    "github.com/daftar/books/internal/dictionary"
)

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

// readyz reports readiness. Stores with external connections expose Ready;
// the in-memory store is always ready.
func (s *Server) readyz(w http.ResponseWriter, r *http.Request) {
    type readier interface {
        Ready(ctx context.Context) error
    }
    if rd, ok := s.store.(readier); ok {
        if err := rd.Ready(r.Context()); err != nil {
            toJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "store not ready"})
            return
        }
    }
    w.WriteHeader(http.StatusOK)
}

// listCategories serves the curated category dictionary, optionally filtered
// by ?role=.
func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
    roles := []dictionary.Role{
        dictionary.RoleIncome, dictionary.RoleExpense,
        dictionary.RoleLoan, dictionary.RoleAdvance, dictionary.RoleEquity,
    }
    if raw := r.URL.Query().Get("role"); raw != "" {
        role := dictionary.Role(raw)
        found := false
        for _, k := range roles {
            if k == role {
                found = true
                break
            }
        }
        if !found {
            toJSON(w, http.StatusBadRequest, errorResponse{Error: "unknown role"})
            return
        }
        roles = []dictionary.Role{role}
    }

    out := make([]categoryResponse, 0)
    for _, role := range roles {
        for _, def := range dictionary.CategoriesFor(&role) {
            out = append(out, categoryResponse{
                Code:     string(def.Code),
                Label:    def.Label,
                LabelAr:  def.LabelAr,
                Role:     string(role),
                Reserved: def.Reserved,
            })
        }
    }
    toJSON(w, http.StatusOK, out)
}
