package httpapi

import (
    "net/http"
    "strings"

    "github.com/google/uuid"

    "github.com/daftar/books/internal/books"
    "github.com/daftar/books/internal/money"
)

func validChequeType(t string) bool {
    switch books.ChequeType(t) {
    case books.ChequeTypeIncoming, books.ChequeTypeOutgoing:
        return true
    }
    return false
}

func (s *Server) postCheque(w http.ResponseWriter, r *http.Request) {
    var req postChequeRequest
    if err := decodeJSON(r, &req); err != nil {
        toJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
        return
    }
    if !validChequeType(req.Type) {
        toJSON(w, http.StatusBadRequest, errorResponse{Error: "unknown cheque type"})
        return
    }
    if !req.Amount.IsPositive() {
        toJSON(w, http.StatusBadRequest, errorResponse{Error: "amount must be positive"})
        return
    }
    if strings.TrimSpace(req.Client) == "" {
        toJSON(w, http.StatusBadRequest, errorResponse{Error: "client is required"})
        return
    }
    issue, err := parseDate(req.IssueDate)
    if err != nil {
        toJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid issue_date"})
        return
    }
    due, err := parseDate(req.DueDate)
    if err != nil {
        toJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid due_date"})
        return
    }

    c := books.Cheque{
        ID:        uuid.New(),
        Number:    strings.TrimSpace(req.Number),
        Amount:    money.Round(req.Amount),
        IssueDate: issue,
        DueDate:   due,
        Type:      books.ChequeType(req.Type),
        Status:    books.ChequeStatusPending,
        Client:    strings.TrimSpace(req.Client),
    }
    created, err := s.store.CreateCheque(r.Context(), c)
    if err != nil {
        s.writeServiceError(w, err)
        return
    }
    toJSON(w, http.StatusCreated, toChequeResponse(created))
}

func (s *Server) listCheques(w http.ResponseWriter, r *http.Request) {
    client := strings.TrimSpace(r.URL.Query().Get("client"))
    if client == "" {
        toJSON(w, http.StatusBadRequest, errorResponse{Error: "client query parameter is required"})
        return
    }
    cheques, err := s.store.ChequesByClient(r.Context(), client)
    if err != nil {
        s.writeServiceError(w, err)
        return
    }
    out := make([]chequeResponse, 0, len(cheques))
    for _, c := range cheques {
        out = append(out, toChequeResponse(c))
    }
    toJSON(w, http.StatusOK, out)
}

func (s *Server) patchChequeStatus(w http.ResponseWriter, r *http.Request) {
    id, ok := pathID(w, r)
    if !ok {
        return
    }
    var req patchChequeStatusRequest
    if err := decodeJSON(r, &req); err != nil {
        toJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
        return
    }
    status := books.ChequeStatus(req.Status)
    if !status.IsValid() {
        toJSON(w, http.StatusBadRequest, errorResponse{Error: "unknown cheque status"})
        return
    }
    updated, err := s.store.UpdateChequeStatus(r.Context(), id, status)
    if err != nil {
        s.writeServiceError(w, err)
        return
    }
    toJSON(w, http.StatusOK, toChequeResponse(updated))
}
