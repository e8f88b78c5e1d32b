package httpapi

import (
    "net/http"
    "time"

    chi "github.com/go-chi/chi/v5"
    "github.com/google/uuid"
)

// pathID parses the {id} route parameter as a UUID. On failure it writes a
// 400 and returns false.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
    id, err := uuid.Parse(chi.URLParam(r, "id"))
    if err != nil {
        toJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
        return uuid.Nil, false
    }
    return id, true
}

// parseDate accepts RFC3339 timestamps and plain yyyy-mm-dd dates.
func parseDate(s string) (time.Time, error) {
    if t, err := time.Parse(time.RFC3339, s); err == nil {
        return t, nil
    }
    return time.Parse("2006-01-02", s)
}

// queryDate parses an optional date query parameter. A missing parameter
// yields a nil pointer.
func queryDate(r *http.Request, key string) (*time.Time, error) {
    raw := r.URL.Query().Get(key)
    if raw == "" {
        return nil, nil
    }
    t, err := parseDate(raw)
    if err != nil {
        return nil, err
    }
    return &t, nil
}
