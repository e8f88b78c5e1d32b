package httpapi

import (
    "net/http"
    "strings"

    "github.com/google/uuid"

    "github.com/daftar/books/internal/books"
)

func (s *Server) postClient(w http.ResponseWriter, r *http.Request) {
    var req postClientRequest
    if err := decodeJSON(r, &req); err != nil {
        toJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
        return
    }
    name := strings.TrimSpace(req.Name)
    if name == "" {
        toJSON(w, http.StatusBadRequest, errorResponse{Error: "name is required"})
        return
    }
    active := true
    if req.Active != nil {
        active = *req.Active
    }
    c := books.Client{
        ID:             uuid.New(),
        Name:           name,
        OpeningBalance: req.OpeningBalance,
        Active:         active,
    }
    created, err := s.store.CreateClient(r.Context(), c)
    if err != nil {
        s.writeServiceError(w, err)
        return
    }
    toJSON(w, http.StatusCreated, toClientResponse(created))
}

func (s *Server) listClients(w http.ResponseWriter, r *http.Request) {
    clients, err := s.store.ListClients(r.Context())
    if err != nil {
        s.writeServiceError(w, err)
        return
    }
    out := make([]clientResponse, 0, len(clients))
    for _, c := range clients {
        out = append(out, toClientResponse(c))
    }
    toJSON(w, http.StatusOK, out)
}

func (s *Server) getClient(w http.ResponseWriter, r *http.Request) {
    id, ok := pathID(w, r)
    if !ok {
        return
    }
    c, err := s.store.ClientByID(r.Context(), id)
    if err != nil {
        s.writeServiceError(w, err)
        return
    }
    toJSON(w, http.StatusOK, toClientResponse(c))
}
