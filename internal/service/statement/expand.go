package statement

import (
    "github.com/shopspring/decimal"

    "github.com/daftar/books/internal/books"
    "github.com/daftar/books/internal/dictionary"
    "github.com/daftar/books/internal/money"
)

// ExpandEntry turns one ledger entry into its signed statement rows: the
// movement itself, then discount and write-off sub-rows, then an
// informational paid-from-advance row. The input is never mutated.
//
// Sign convention (debit = client owes more, credit = client owes less):
//
//	income/sale                 debit
//	expense/purchase            credit
//	loan given (origination)    debit
//	loan taken (origination)    credit
//	loan collected              credit
//	loan repaid                 debit
//	customer advance received   credit
//	supplier advance paid       debit
func ExpandEntry(e books.LedgerEntry) []books.StatementRow {
    // An advance spawned by a multi-allocation payment is already represented
    // by that payment's own row; expanding it too would double-count the cash.
    if books.IsAdvance(e) && e.HasLinkedPayment() {
        return nil
    }

    k := books.Classify(e)
    amt := money.Round(e.Amount)
    var debit, credit decimal.Decimal
    kind := books.RowKindInvoice
    switch k.Kind {
    case books.KindLoanOrigination:
        kind = books.RowKindLoan
        if k.LoanSide == books.LoanSideReceivable {
            debit = amt
        } else {
            credit = amt
        }
    case books.KindLoanSettlement:
        kind = books.RowKindLoan
        if k.LoanSide == books.LoanSideReceivable {
            credit = amt
        } else {
            debit = amt
        }
    case books.KindCustomerAdvance:
        kind = books.RowKindAdvance
        credit = amt
    case books.KindSupplierAdvance:
        kind = books.RowKindAdvance
        debit = amt
    case books.KindExpense:
        credit = amt
    default:
        debit = amt
    }

    rows := []books.StatementRow{{
        Date:        e.Date,
        Kind:        kind,
        Description: describeEntry(e),
        Debit:       debit,
        Credit:      credit,
    }}

    // Discount and write-off reduce what the entry left outstanding, so they
    // land on the settlement side: credit against income entries, debit
    // against expense entries.
    if e.TotalDiscount.IsPositive() {
        rows = append(rows, reliefRow(e, books.RowKindDiscount, e.TotalDiscount))
    }
    if e.WriteoffAmount.IsPositive() {
        rows = append(rows, reliefRow(e, books.RowKindWriteoff, e.WriteoffAmount))
    }
    if e.PaidFromAdvances.IsPositive() {
        // Informational only: the cash left the books when the advance was
        // received, so both sides stay zero.
        rows = append(rows, books.StatementRow{
            Date:        e.Date,
            Kind:        books.RowKindPayment,
            Description: "paid from advance: " + money.Round(e.PaidFromAdvances).StringFixed(money.Scale),
        })
    }
    return rows
}

func reliefRow(e books.LedgerEntry, kind books.RowKind, amount decimal.Decimal) books.StatementRow {
    r := books.StatementRow{Date: e.Date, Kind: kind, Description: string(kind) + " on " + describeEntry(e)}
    if e.Type == books.EntryTypeExpense {
        r.Debit = money.Round(amount)
    } else {
        r.Credit = money.Round(amount)
    }
    return r
}

func describeEntry(e books.LedgerEntry) string {
    desc := dictionary.LabelFor(e.Category)
    if e.TransactionID != "" {
        desc += " #" + e.TransactionID
    }
    return desc
}

// expandPayment turns one payment into its statement rows. Receipts reduce
// what the client owes (credit); disbursements increase it (debit). A
// settlement discount granted with the payment gets its own row on the same
// side.
func expandPayment(p books.Payment) []books.StatementRow {
    amt := money.Round(p.Amount)
    r := books.StatementRow{
        Date:        p.Date,
        IsPayment:   true,
        Kind:        books.RowKindPayment,
        Description: describePayment(p),
    }
    if p.Type == books.PaymentTypeDisbursement {
        r.Debit = amt
    } else {
        r.Credit = amt
    }
    rows := []books.StatementRow{r}
    if p.DiscountAmount.IsPositive() {
        d := books.StatementRow{
            Date:        p.Date,
            IsPayment:   true,
            Kind:        books.RowKindDiscount,
            Description: "discount on " + describePayment(p),
        }
        if p.Type == books.PaymentTypeDisbursement {
            d.Debit = money.Round(p.DiscountAmount)
        } else {
            d.Credit = money.Round(p.DiscountAmount)
        }
        rows = append(rows, d)
    }
    return rows
}

func describePayment(p books.Payment) string {
    if p.Description != "" {
        return p.Description
    }
    if p.Endorsement {
        return "cheque endorsement"
    }
    if p.Type == books.PaymentTypeDisbursement {
        return "payment issued"
    }
    return "payment received"
}
