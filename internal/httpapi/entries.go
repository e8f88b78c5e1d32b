package httpapi

import (
    "net/http"
    "strings"

    "github.com/google/uuid"

    "github.com/daftar/books/internal/books"
    "github.com/daftar/books/internal/dictionary"
    "github.com/daftar/books/internal/money"
    "github.com/daftar/books/internal/slug"
)

func validEntryType(t string) bool {
    switch books.EntryType(t) {
    case books.EntryTypeIncome, books.EntryTypeExpense, books.EntryTypeEquity, books.EntryTypeLoan:
        return true
    }
    return false
}

func (s *Server) postEntry(w http.ResponseWriter, r *http.Request) {
    var req postEntryRequest
    if err := decodeJSON(r, &req); err != nil {
        toJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
        return
    }
    if !validEntryType(req.Type) {
        toJSON(w, http.StatusBadRequest, errorResponse{Error: "unknown entry type"})
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
    date, err := parseDate(req.Date)
    if err != nil {
        toJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid date"})
        return
    }
    category := slug.Slugify(req.Category)
    if !slug.IsSlug(category) {
        toJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid category"})
        return
    }
    subCategory := slug.Slugify(req.SubCategory)
    if req.SubCategory != "" && !slug.IsSlug(subCategory) {
        toJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid sub_category"})
        return
    }
    // Reserved codes carry classification meaning as categories; reusing one
    // as a sub-category would never be read back as such.
    if dictionary.IsReserved(books.Category(subCategory)) {
        toJSON(w, http.StatusBadRequest, errorResponse{Error: "sub_category cannot be a reserved category code"})
        return
    }
    if err := req.Metadata.Validate(); err != nil {
        toJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
        return
    }

    e := books.LedgerEntry{
        ID:               uuid.New(),
        TransactionID:    strings.TrimSpace(req.TransactionID),
        Type:             books.EntryType(req.Type),
        Amount:           money.Round(req.Amount),
        Date:             date,
        Category:         books.Category(category),
        SubCategory:      books.Category(subCategory),
        Client:           strings.TrimSpace(req.Client),
        TotalDiscount:    money.Round(req.TotalDiscount),
        WriteoffAmount:   money.Round(req.WriteoffAmount),
        PaidFromAdvances: money.Round(req.PaidFromAdvances),
        LinkedPaymentID:  req.LinkedPaymentID,
        ARAP:             req.ARAP,
        Metadata:         req.Metadata,
    }
    if e.ARAP {
        e.RemainingBalance = e.Amount
        e.PaymentStatus = books.PaymentStatusUnpaid
    }
    created, err := s.store.CreateEntry(r.Context(), e)
    if err != nil {
        s.writeServiceError(w, err)
        return
    }
    toJSON(w, http.StatusCreated, toEntryResponse(created))
}

func (s *Server) listEntries(w http.ResponseWriter, r *http.Request) {
    client := strings.TrimSpace(r.URL.Query().Get("client"))
    if client == "" {
        toJSON(w, http.StatusBadRequest, errorResponse{Error: "client query parameter is required"})
        return
    }
    entries, err := s.store.EntriesByClient(r.Context(), client)
    if err != nil {
        s.writeServiceError(w, err)
        return
    }
    out := make([]entryResponse, 0, len(entries))
    for _, e := range entries {
        out = append(out, toEntryResponse(e))
    }
    toJSON(w, http.StatusOK, out)
}

func (s *Server) getEntry(w http.ResponseWriter, r *http.Request) {
    id, ok := pathID(w, r)
    if !ok {
        return
    }
    e, err := s.store.EntryByID(r.Context(), id)
    if err != nil {
        s.writeServiceError(w, err)
        return
    }
    toJSON(w, http.StatusOK, toEntryResponse(e))
}
