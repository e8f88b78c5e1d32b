package books

import (
    "time"

    "github.com/google/uuid"
    "github.com/shopspring/decimal"

    "github.com/daftar/books/internal/meta"
)

// EntryType enumerates the broad kind of a ledger entry.
type EntryType string

const (
    // EntryTypeIncome records a sale or other inflow.
    EntryTypeIncome EntryType = "income"
    // EntryTypeExpense records a purchase or other outflow.
    EntryTypeExpense EntryType = "expense"
    // EntryTypeEquity records an owner equity movement (capital, drawings).
    EntryTypeEquity EntryType = "equity"
    // EntryTypeLoan records a loan-related movement; the category decides the side.
    EntryTypeLoan EntryType = "loan"
)

// Category identifies how an entry is classified. Values are slug codes.
type Category string

// PaymentStatus tracks how much of an AR/AP entry has been settled.
type PaymentStatus string

const (
    PaymentStatusUnpaid  PaymentStatus = "unpaid"
    PaymentStatusPartial PaymentStatus = "partial"
    PaymentStatusPaid    PaymentStatus = "paid"
)

// StatusFor derives the payment status from the paid total and entry amount.
// It is the single source of truth for the unpaid -> partial -> paid machine,
// in both directions.
func StatusFor(totalPaid, amount decimal.Decimal) PaymentStatus {
    switch {
    case totalPaid.GreaterThanOrEqual(amount):
        return PaymentStatusPaid
    case totalPaid.IsPositive():
        return PaymentStatusPartial
    default:
        return PaymentStatusUnpaid
    }
}

// LedgerEntry is one bookkeeping record for a client.
type LedgerEntry struct {
    ID uuid.UUID
    // TransactionID is an external correlation key; payments reference it
    // through LinkedTransactionID.
    TransactionID string
    Type          EntryType
    Amount        decimal.Decimal
    Date          time.Time
    Category      Category
    SubCategory   Category
    // Client is the associated party's name.
    Client string
    // TotalDiscount and WriteoffAmount spawn sub-rows on the statement.
    TotalDiscount  decimal.Decimal
    WriteoffAmount decimal.Decimal
    // PaidFromAdvances is informational only; it never changes the balance.
    PaidFromAdvances decimal.Decimal
    // LinkedPaymentID is set when the entry was auto-created by a
    // multi-allocation payment. Advance entries carrying it are dropped from
    // statements because the originating payment already covers the cash.
    LinkedPaymentID uuid.UUID
    // ARAP opts the entry into receivable/payable tracking.
    ARAP             bool
    TotalPaid        decimal.Decimal
    RemainingBalance decimal.Decimal
    PaymentStatus    PaymentStatus
    // Metadata holds additional key-value attributes for the entry.
    Metadata meta.Metadata `json:"metadata,omitempty"`
    // Version is the optimistic-concurrency token maintained by storage.
    Version int64
}

// HasLinkedPayment reports whether the entry was spawned by a payment.
func (e LedgerEntry) HasLinkedPayment() bool { return e.LinkedPaymentID != uuid.Nil }

// PaymentType enumerates the direction of a cash/cheque movement.
type PaymentType string

const (
    // PaymentTypeReceipt is money received from the client.
    PaymentTypeReceipt PaymentType = "receipt"
    // PaymentTypeDisbursement is money paid out to the client.
    PaymentTypeDisbursement PaymentType = "disbursement"
)

// Payment is a cash or cheque movement. Immutable once created; deleting one
// reverses its AR/AP application.
type Payment struct {
    ID          uuid.UUID
    Type        PaymentType
    Amount      decimal.Decimal
    Date        time.Time
    Description string
    Client      string
    // LinkedTransactionID ties back to a LedgerEntry's TransactionID and
    // suppresses the payment row when that entry is an advance.
    LinkedTransactionID string
    // Endorsement marks a cheque being reassigned rather than cash moving.
    Endorsement    bool
    DiscountAmount decimal.Decimal
    // ARAPEntryID records which AR/AP entry this payment was applied to,
    // so deletion can reverse the application.
    ARAPEntryID uuid.UUID
}

// ChequeType enumerates the direction of a cheque.
type ChequeType string

const (
    ChequeTypeIncoming ChequeType = "incoming"
    ChequeTypeOutgoing ChequeType = "outgoing"
)

// ChequeStatus enumerates the lifecycle of a cheque.
type ChequeStatus string

const (
    ChequeStatusPending  ChequeStatus = "pending"
    ChequeStatusCleared  ChequeStatus = "cleared"
    ChequeStatusBounced  ChequeStatus = "bounced"
    ChequeStatusEndorsed ChequeStatus = "endorsed"
    ChequeStatusReturned ChequeStatus = "returned"
)

// IsValid reports whether s is a known cheque status.
func (s ChequeStatus) IsValid() bool {
    switch s {
    case ChequeStatusPending, ChequeStatusCleared, ChequeStatusBounced,
        ChequeStatusEndorsed, ChequeStatusReturned:
        return true
    }
    return false
}

// Cheque is a deferred payment instrument.
type Cheque struct {
    ID        uuid.UUID
    Number    string
    Amount    decimal.Decimal
    IssueDate time.Time
    DueDate   time.Time
    Type      ChequeType
    Status    ChequeStatus
    Client    string
    // Endorsed excludes the cheque from pending projections because its value
    // already appears as an endorsement payment.
    Endorsed bool
}

// Client is a party whose ledger is tracked, with the stored balance that
// seeds statement computation.
type Client struct {
    ID             uuid.UUID
    Name           string
    OpeningBalance decimal.Decimal
    Active         bool
}

// RowKind labels a statement row for display and export collaborators.
type RowKind string

const (
    RowKindInvoice  RowKind = "invoice"
    RowKindAdvance  RowKind = "advance"
    RowKindLoan     RowKind = "loan"
    RowKindDiscount RowKind = "discount"
    RowKindWriteoff RowKind = "writeoff"
    RowKindPayment  RowKind = "payment"
)

// StatementRow is one derived statement line. At most one of Debit/Credit is
// non-zero; both are zero only for informational rows.
type StatementRow struct {
    Date        time.Time
    IsPayment   bool
    Kind        RowKind
    Description string
    Debit       decimal.Decimal
    Credit      decimal.Decimal
    // Balance is the running total, filled in by the assembler.
    Balance decimal.Decimal
}
