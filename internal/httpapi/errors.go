package httpapi

import (
    "errors"
    "net/http"

    "github.com/daftar/books/internal/errs"
)

type errorResponse struct {
    Error string `json:"error"`
}

// writeServiceError maps service-layer sentinels onto HTTP status codes.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
    switch {
    case errors.Is(err, errs.ErrEntryNotFound), errors.Is(err, errs.ErrNotFound):
        toJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
    case errors.Is(err, errs.ErrARAPNotEnabled), errors.Is(err, errs.ErrUnprocessable):
        toJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
    case errors.Is(err, errs.ErrConflict):
        toJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
    case errors.Is(err, errs.ErrInvalid):
        toJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
    default:
        s.log.Error("internal error", "err", err)
        toJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
    }
}
