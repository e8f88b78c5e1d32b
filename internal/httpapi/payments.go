package httpapi

import (
    "net/http"
    "strings"

    "github.com/google/uuid"

    "github.com/daftar/books/internal/books"
    "github.com/daftar/books/internal/money"
    "github.com/daftar/books/internal/service/arap"
)

func validPaymentType(t string) bool {
    switch books.PaymentType(t) {
    case books.PaymentTypeReceipt, books.PaymentTypeDisbursement:
        return true
    }
    return false
}

func (s *Server) postPayment(w http.ResponseWriter, r *http.Request) {
    var req postPaymentRequest
    if err := decodeJSON(r, &req); err != nil {
        toJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
        return
    }
    if !validPaymentType(req.Type) {
        toJSON(w, http.StatusBadRequest, errorResponse{Error: "unknown payment type"})
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

    p := books.Payment{
        ID:                  uuid.New(),
        Type:                books.PaymentType(req.Type),
        Amount:              money.Round(req.Amount),
        Date:                date,
        Description:         strings.TrimSpace(req.Description),
        Client:              strings.TrimSpace(req.Client),
        LinkedTransactionID: strings.TrimSpace(req.LinkedTransactionID),
        Endorsement:         req.Endorsement,
        DiscountAmount:      money.Round(req.DiscountAmount),
        ARAPEntryID:         req.ARAPEntryID,
    }

    // Apply to the AR/AP entry before persisting the payment so a failed
    // application leaves no orphan payment behind.
    var applied *arap.Result
    if p.ARAPEntryID != uuid.Nil {
        res, err := s.arap.Apply(r.Context(), p.ARAPEntryID, p.Amount, arap.DirectionAdd)
        if err != nil {
            s.writeServiceError(w, err)
            return
        }
        applied = &res
    }

    created, err := s.store.CreatePayment(r.Context(), p)
    if err != nil {
        s.writeServiceError(w, err)
        return
    }
    resp := toPaymentResponse(created)
    if applied != nil {
        resp.Entry = &arapResponse{
            TotalPaid:        applied.TotalPaid,
            RemainingBalance: applied.RemainingBalance,
            PaymentStatus:    applied.PaymentStatus,
        }
    }
    toJSON(w, http.StatusCreated, resp)
}

func (s *Server) listPayments(w http.ResponseWriter, r *http.Request) {
    client := strings.TrimSpace(r.URL.Query().Get("client"))
    if client == "" {
        toJSON(w, http.StatusBadRequest, errorResponse{Error: "client query parameter is required"})
        return
    }
    payments, err := s.store.PaymentsByClient(r.Context(), client)
    if err != nil {
        s.writeServiceError(w, err)
        return
    }
    out := make([]paymentResponse, 0, len(payments))
    for _, p := range payments {
        out = append(out, toPaymentResponse(p))
    }
    toJSON(w, http.StatusOK, out)
}

// deletePayment reverses a payment's AR/AP application and then removes the
// row. Reversal runs first so a failure leaves both the payment and the
// entry untouched, mirroring the apply-before-create order on POST.
func (s *Server) deletePayment(w http.ResponseWriter, r *http.Request) {
    id, ok := pathID(w, r)
    if !ok {
        return
    }
    p, err := s.store.PaymentByID(r.Context(), id)
    if err != nil {
        s.writeServiceError(w, err)
        return
    }
    var reversed *arap.Result
    if p.ARAPEntryID != uuid.Nil {
        res, err := s.arap.Apply(r.Context(), p.ARAPEntryID, p.Amount, arap.DirectionSubtract)
        if err != nil {
            s.writeServiceError(w, err)
            return
        }
        reversed = &res
    }
    removed, err := s.store.DeletePayment(r.Context(), id)
    if err != nil {
        s.writeServiceError(w, err)
        return
    }
    resp := toPaymentResponse(removed)
    if reversed != nil {
        resp.Entry = &arapResponse{
            TotalPaid:        reversed.TotalPaid,
            RemainingBalance: reversed.RemainingBalance,
            PaymentStatus:    reversed.PaymentStatus,
        }
    }
    toJSON(w, http.StatusOK, resp)
}
