package httpapi

import (
    "net/http"

    "github.com/daftar/books/internal/service/arap"
)

// postEntryARAP applies or reverses a manual payment against an AR/AP entry.
func (s *Server) postEntryARAP(w http.ResponseWriter, r *http.Request) {
    id, ok := pathID(w, r)
    if !ok {
        return
    }
    var req arapRequest
    if err := decodeJSON(r, &req); err != nil {
        toJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
        return
    }
    dir := arap.Direction(req.Direction)
    if !dir.IsValid() {
        toJSON(w, http.StatusBadRequest, errorResponse{Error: "direction must be add or subtract"})
        return
    }
    if !req.Amount.IsPositive() {
        toJSON(w, http.StatusBadRequest, errorResponse{Error: "amount must be positive"})
        return
    }
    res, err := s.arap.Apply(r.Context(), id, req.Amount, dir)
    if err != nil {
        s.writeServiceError(w, err)
        return
    }
    toJSON(w, http.StatusOK, arapResponse{
        TotalPaid:        res.TotalPaid,
        RemainingBalance: res.RemainingBalance,
        PaymentStatus:    res.PaymentStatus,
    })
}
