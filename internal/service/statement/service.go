package statement

import (
    "context"
    "sort"
    "time"

    "github.com/google/uuid"
    "github.com/shopspring/decimal"

    "github.com/daftar/books/internal/books"
    "github.com/daftar/books/internal/errs"
    "github.com/daftar/books/internal/money"
)

// Repo defines the read operations the statement service needs.
type Repo interface {
    ClientByID(ctx context.Context, id uuid.UUID) (books.Client, error)
    EntriesByClient(ctx context.Context, client string) ([]books.LedgerEntry, error)
    PaymentsByClient(ctx context.Context, client string) ([]books.Payment, error)
    ChequesByClient(ctx context.Context, client string) ([]books.Cheque, error)
}

// Service builds client statements and pending-cheque projections.
type Service interface {
    ClientStatement(ctx context.Context, clientID uuid.UUID, from, to *time.Time) (Statement, error)
    ClientProjection(ctx context.Context, clientID uuid.UUID, from, to *time.Time) (Statement, ChequeProjection, error)
}

// Statement is the assembled, windowed view of one client's ledger.
type Statement struct {
    OpeningBalance decimal.Decimal
    Rows           []books.StatementRow
    TotalDebit     decimal.Decimal
    TotalCredit    decimal.Decimal
    FinalBalance   decimal.Decimal
}

type service struct {
    repo Repo
}

// New constructs the statement service.
func New(repo Repo) Service { return &service{repo: repo} }

func (s *service) ClientStatement(ctx context.Context, clientID uuid.UUID, from, to *time.Time) (Statement, error) {
    cl, err := s.client(ctx, clientID)
    if err != nil {
        return Statement{}, err
    }
    return s.statementFor(ctx, cl, from, to)
}

func (s *service) ClientProjection(ctx context.Context, clientID uuid.UUID, from, to *time.Time) (Statement, ChequeProjection, error) {
    cl, err := s.client(ctx, clientID)
    if err != nil {
        return Statement{}, ChequeProjection{}, err
    }
    st, err := s.statementFor(ctx, cl, from, to)
    if err != nil {
        return Statement{}, ChequeProjection{}, err
    }
    cheques, err := s.repo.ChequesByClient(ctx, cl.Name)
    if err != nil {
        return Statement{}, ChequeProjection{}, err
    }
    return st, ProjectAfterCheques(st.FinalBalance, cheques), nil
}

func (s *service) client(ctx context.Context, clientID uuid.UUID) (books.Client, error) {
    if clientID == uuid.Nil {
        return books.Client{}, errs.ErrInvalid
    }
    return s.repo.ClientByID(ctx, clientID)
}

func (s *service) statementFor(ctx context.Context, cl books.Client, from, to *time.Time) (Statement, error) {
    entries, err := s.repo.EntriesByClient(ctx, cl.Name)
    if err != nil {
        return Statement{}, err
    }
    payments, err := s.repo.PaymentsByClient(ctx, cl.Name)
    if err != nil {
        return Statement{}, err
    }
    return BuildStatement(entries, payments, cl.OpeningBalance, from, to), nil
}

// BuildStatement merges expanded ledger rows with payment rows, sorts them
// chronologically, folds everything before the window start into the opening
// balance and computes the running balance and totals over the window.
//
// Invariant: OpeningBalance + TotalDebit - TotalCredit == FinalBalance,
// exactly, at 2 decimals.
func BuildStatement(entries []books.LedgerEntry, payments []books.Payment, openingSeed decimal.Decimal, from, to *time.Time) Statement {
    // Payments that funded an advance entry are suppressed: the advance row
    // (or the payment row, when the advance carries LinkedPaymentID) already
    // accounts for the cash.
    advanceTx := make(map[string]struct{})
    for _, e := range entries {
        if books.IsAdvance(e) && e.TransactionID != "" {
            advanceTx[e.TransactionID] = struct{}{}
        }
    }

    rows := make([]books.StatementRow, 0, len(entries)+len(payments))
    for _, e := range entries {
        rows = append(rows, ExpandEntry(e)...)
    }
    for _, p := range payments {
        if !p.Amount.IsPositive() {
            continue
        }
        if p.LinkedTransactionID != "" {
            if _, ok := advanceTx[p.LinkedTransactionID]; ok {
                continue
            }
        }
        rows = append(rows, expandPayment(p)...)
    }

    // Ties on the same date keep input order: entries before payments, each
    // in the order the caller supplied them.
    sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })

    opening := money.Round(openingSeed)
    var start, end time.Time
    if from != nil {
        start = dayStart(*from)
    }
    if to != nil {
        end = dayEnd(*to)
    }

    filtered := make([]books.StatementRow, 0, len(rows))
    for _, r := range rows {
        if from != nil && r.Date.Before(start) {
            opening = money.Add(opening, money.Sub(r.Debit, r.Credit))
            continue
        }
        if to != nil && r.Date.After(end) {
            continue
        }
        filtered = append(filtered, r)
    }

    bal := opening
    totalDebit, totalCredit := money.Zero, money.Zero
    for i := range filtered {
        bal = money.Add(bal, money.Sub(filtered[i].Debit, filtered[i].Credit))
        filtered[i].Balance = bal
        totalDebit = money.Add(totalDebit, filtered[i].Debit)
        totalCredit = money.Add(totalCredit, filtered[i].Credit)
    }

    return Statement{
        OpeningBalance: opening,
        Rows:           filtered,
        TotalDebit:     totalDebit,
        TotalCredit:    totalCredit,
        FinalBalance:   bal,
    }
}

// dayStart clamps t to 00:00:00 in its own location.
func dayStart(t time.Time) time.Time {
    y, m, d := t.Date()
    return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// dayEnd clamps t to the last instant of its day.
func dayEnd(t time.Time) time.Time {
    y, m, d := t.Date()
    return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
