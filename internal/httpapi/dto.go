package httpapi

import (
    "time"

    "github.com/google/uuid"
    "github.com/shopspring/decimal"

    "github.com/daftar/books/internal/books"
    "github.com/daftar/books/internal/meta"
    "github.com/daftar/books/internal/service/statement"
)

type postClientRequest struct {
    Name           string          `json:"name"`
    OpeningBalance decimal.Decimal `json:"opening_balance"`
    Active         *bool           `json:"active,omitempty"`
}

type clientResponse struct {
    ID             uuid.UUID       `json:"id"`
    Name           string          `json:"name"`
    OpeningBalance decimal.Decimal `json:"opening_balance"`
    Active         bool            `json:"active"`
}

func toClientResponse(c books.Client) clientResponse {
    return clientResponse{ID: c.ID, Name: c.Name, OpeningBalance: c.OpeningBalance, Active: c.Active}
}

type postEntryRequest struct {
    TransactionID    string          `json:"transaction_id,omitempty"`
    Type             string          `json:"type"`
    Amount           decimal.Decimal `json:"amount"`
    Date             string          `json:"date"`
    Category         string          `json:"category"`
    SubCategory      string          `json:"sub_category,omitempty"`
    Client           string          `json:"client"`
    TotalDiscount    decimal.Decimal `json:"total_discount,omitempty"`
    WriteoffAmount   decimal.Decimal `json:"writeoff_amount,omitempty"`
    PaidFromAdvances decimal.Decimal `json:"paid_from_advances,omitempty"`
    LinkedPaymentID  uuid.UUID       `json:"linked_payment_id,omitempty"`
    ARAP             bool            `json:"arap,omitempty"`
    Metadata         meta.Metadata   `json:"metadata,omitempty"`
}

type entryResponse struct {
    ID               uuid.UUID           `json:"id"`
    TransactionID    string              `json:"transaction_id,omitempty"`
    Type             books.EntryType     `json:"type"`
    Amount           decimal.Decimal     `json:"amount"`
    Date             time.Time           `json:"date"`
    Category         books.Category      `json:"category"`
    SubCategory      books.Category      `json:"sub_category,omitempty"`
    Client           string              `json:"client"`
    TotalDiscount    decimal.Decimal     `json:"total_discount"`
    WriteoffAmount   decimal.Decimal     `json:"writeoff_amount"`
    PaidFromAdvances decimal.Decimal     `json:"paid_from_advances"`
    LinkedPaymentID  *uuid.UUID          `json:"linked_payment_id,omitempty"`
    ARAP             bool                `json:"arap"`
    TotalPaid        decimal.Decimal     `json:"total_paid"`
    RemainingBalance decimal.Decimal     `json:"remaining_balance"`
    PaymentStatus    books.PaymentStatus `json:"payment_status,omitempty"`
    Metadata         meta.Metadata       `json:"metadata,omitempty"`
    Version          int64               `json:"version"`
}

func toEntryResponse(e books.LedgerEntry) entryResponse {
    resp := entryResponse{
        ID:               e.ID,
        TransactionID:    e.TransactionID,
        Type:             e.Type,
        Amount:           e.Amount,
        Date:             e.Date,
        Category:         e.Category,
        SubCategory:      e.SubCategory,
        Client:           e.Client,
        TotalDiscount:    e.TotalDiscount,
        WriteoffAmount:   e.WriteoffAmount,
        PaidFromAdvances: e.PaidFromAdvances,
        ARAP:             e.ARAP,
        TotalPaid:        e.TotalPaid,
        RemainingBalance: e.RemainingBalance,
        PaymentStatus:    e.PaymentStatus,
        Metadata:         e.Metadata,
        Version:          e.Version,
    }
    if e.HasLinkedPayment() {
        id := e.LinkedPaymentID
        resp.LinkedPaymentID = &id
    }
    return resp
}

type postPaymentRequest struct {
    Type                string          `json:"type"`
    Amount              decimal.Decimal `json:"amount"`
    Date                string          `json:"date"`
    Description         string          `json:"description,omitempty"`
    Client              string          `json:"client"`
    LinkedTransactionID string          `json:"linked_transaction_id,omitempty"`
    Endorsement         bool            `json:"endorsement,omitempty"`
    DiscountAmount      decimal.Decimal `json:"discount_amount,omitempty"`
    ARAPEntryID         uuid.UUID       `json:"arap_entry_id,omitempty"`
}

type paymentResponse struct {
    ID                  uuid.UUID         `json:"id"`
    Type                books.PaymentType `json:"type"`
    Amount              decimal.Decimal   `json:"amount"`
    Date                time.Time         `json:"date"`
    Description         string            `json:"description,omitempty"`
    Client              string            `json:"client"`
    LinkedTransactionID string            `json:"linked_transaction_id,omitempty"`
    Endorsement         bool              `json:"endorsement"`
    DiscountAmount      decimal.Decimal   `json:"discount_amount"`
    ARAPEntryID         *uuid.UUID        `json:"arap_entry_id,omitempty"`
    // Entry reports the AR/AP state after applying or reversing this payment.
    Entry *arapResponse `json:"entry,omitempty"`
}

func toPaymentResponse(p books.Payment) paymentResponse {
    resp := paymentResponse{
        ID:                  p.ID,
        Type:                p.Type,
        Amount:              p.Amount,
        Date:                p.Date,
        Description:         p.Description,
        Client:              p.Client,
        LinkedTransactionID: p.LinkedTransactionID,
        Endorsement:         p.Endorsement,
        DiscountAmount:      p.DiscountAmount,
    }
    if p.ARAPEntryID != uuid.Nil {
        id := p.ARAPEntryID
        resp.ARAPEntryID = &id
    }
    return resp
}

type postChequeRequest struct {
    Number    string          `json:"number"`
    Amount    decimal.Decimal `json:"amount"`
    IssueDate string          `json:"issue_date"`
    DueDate   string          `json:"due_date"`
    Type      string          `json:"type"`
    Client    string          `json:"client"`
}

type patchChequeStatusRequest struct {
    Status string `json:"status"`
}

type chequeResponse struct {
    ID       uuid.UUID          `json:"id"`
    Number   string             `json:"number"`
    Amount   decimal.Decimal    `json:"amount"`
    IssueDate time.Time         `json:"issue_date"`
    DueDate  time.Time          `json:"due_date"`
    Type     books.ChequeType   `json:"type"`
    Status   books.ChequeStatus `json:"status"`
    Client   string             `json:"client"`
    Endorsed bool               `json:"endorsed"`
}

func toChequeResponse(c books.Cheque) chequeResponse {
    return chequeResponse{
        ID:        c.ID,
        Number:    c.Number,
        Amount:    c.Amount,
        IssueDate: c.IssueDate,
        DueDate:   c.DueDate,
        Type:      c.Type,
        Status:    c.Status,
        Client:    c.Client,
        Endorsed:  c.Endorsed,
    }
}

type arapRequest struct {
    Amount    decimal.Decimal `json:"amount"`
    Direction string          `json:"direction"`
}

type arapResponse struct {
    TotalPaid        decimal.Decimal     `json:"total_paid"`
    RemainingBalance decimal.Decimal     `json:"remaining_balance"`
    PaymentStatus    books.PaymentStatus `json:"payment_status"`
}

type statementRowResponse struct {
    Date        time.Time       `json:"date"`
    IsPayment   bool            `json:"is_payment"`
    Kind        books.RowKind   `json:"kind"`
    Description string          `json:"description"`
    Debit       decimal.Decimal `json:"debit"`
    Credit      decimal.Decimal `json:"credit"`
    Balance     decimal.Decimal `json:"balance"`
}

type statementResponse struct {
    ClientID       uuid.UUID              `json:"client_id"`
    OpeningBalance decimal.Decimal        `json:"opening_balance"`
    Rows           []statementRowResponse `json:"rows"`
    TotalDebit     decimal.Decimal        `json:"total_debit"`
    TotalCredit    decimal.Decimal        `json:"total_credit"`
    FinalBalance   decimal.Decimal        `json:"final_balance"`
}

func toStatementResponse(clientID uuid.UUID, st statement.Statement) statementResponse {
    rows := make([]statementRowResponse, 0, len(st.Rows))
    for _, r := range st.Rows {
        rows = append(rows, statementRowResponse{
            Date:        r.Date,
            IsPayment:   r.IsPayment,
            Kind:        r.Kind,
            Description: r.Description,
            Debit:       r.Debit,
            Credit:      r.Credit,
            Balance:     r.Balance,
        })
    }
    return statementResponse{
        ClientID:       clientID,
        OpeningBalance: st.OpeningBalance,
        Rows:           rows,
        TotalDebit:     st.TotalDebit,
        TotalCredit:    st.TotalCredit,
        FinalBalance:   st.FinalBalance,
    }
}

type projectionResponse struct {
    statementResponse
    BalanceAfterCheques decimal.Decimal `json:"balance_after_cheques"`
    IncomingPending     decimal.Decimal `json:"incoming_pending"`
    OutgoingPending     decimal.Decimal `json:"outgoing_pending"`
}

type categoryResponse struct {
    Code     string `json:"code"`
    Label    string `json:"label"`
    LabelAr  string `json:"label_ar,omitempty"`
    Role     string `json:"role"`
    Reserved bool   `json:"reserved"`
}
