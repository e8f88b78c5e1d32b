package arap

// Receivable/payable tracking on ledger entries. Apply runs a read-compute-
// conditional-write loop against the versioned store: concurrent postings to
// the same entry surface as version conflicts and are retried, never
// overwritten.

import (
    "context"
    "errors"
    "fmt"
    "time"

    "github.com/google/uuid"
    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/promauto"
    "github.com/shopspring/decimal"

    "github.com/daftar/books/internal/books"
    "github.com/daftar/books/internal/errs"
    "github.com/daftar/books/internal/money"
)

var conflictRetries = promauto.NewCounter(prometheus.CounterOpts{
    Namespace: "daftar",
    Name:      "arap_conflict_retries_total",
    Help:      "Number of AR/AP updates retried after a version conflict",
})

// Direction selects whether a payment is applied or reversed.
type Direction string

const (
    DirectionAdd      Direction = "add"
    DirectionSubtract Direction = "subtract"
)

// IsValid reports whether d is a known direction.
func (d Direction) IsValid() bool { return d == DirectionAdd || d == DirectionSubtract }

// Store is the versioned persistence the updater runs against.
type Store interface {
    // EntryByID returns the entry including its current Version.
    EntryByID(ctx context.Context, id uuid.UUID) (books.LedgerEntry, error)
    // UpdateEntryPayment conditionally writes the paid fields. It returns
    // errs.ErrConflict when version no longer matches and errs.ErrNotFound
    // when the row is gone.
    UpdateEntryPayment(ctx context.Context, id uuid.UUID, version int64, totalPaid, remaining decimal.Decimal, status books.PaymentStatus) error
}

// Result reports the entry's paid state after an application.
type Result struct {
    TotalPaid        decimal.Decimal
    RemainingBalance decimal.Decimal
    PaymentStatus    books.PaymentStatus
}

// Service applies and reverses payments against AR/AP entries.
type Service struct {
    store   Store
    retries int
    backoff time.Duration
}

// Option tunes the retry behavior.
type Option func(*Service)

// WithRetries sets how many conflict retries Apply attempts before giving up.
func WithRetries(n int) Option {
    return func(s *Service) {
        if n >= 0 {
            s.retries = n
        }
    }
}

// WithBackoff sets the pause between conflict retries.
func WithBackoff(d time.Duration) Option {
    return func(s *Service) {
        if d >= 0 {
            s.backoff = d
        }
    }
}

// New constructs the updater with default retry settings.
func New(store Store, opts ...Option) *Service {
    s := &Service{store: store, retries: 5, backoff: 10 * time.Millisecond}
    for _, o := range opts {
        o(s)
    }
    return s
}

// Apply posts (add) or reverses (subtract) a payment of amount against the
// entry. Subtract after add with the same amount restores the prior state
// exactly. The new total is clamped at zero on subtract; overpayment leaves
// the remaining balance at zero with status paid.
func (s *Service) Apply(ctx context.Context, entryID uuid.UUID, amount decimal.Decimal, dir Direction) (Result, error) {
    if entryID == uuid.Nil || !amount.IsPositive() || !dir.IsValid() {
        return Result{}, errs.ErrInvalid
    }
    amount = money.Round(amount)

    for attempt := 0; ; attempt++ {
        e, err := s.store.EntryByID(ctx, entryID)
        if errors.Is(err, errs.ErrNotFound) {
            return Result{}, errs.ErrEntryNotFound
        }
        if err != nil {
            return Result{}, fmt.Errorf("read entry: %w", err)
        }
        if !e.ARAP {
            return Result{}, errs.ErrARAPNotEnabled
        }
        // A negative paid total or a non-positive tracked amount cannot come
        // from this code path; refusing to touch it keeps the upstream bug
        // visible.
        if e.TotalPaid.IsNegative() || !e.Amount.IsPositive() {
            return Result{}, fmt.Errorf("entry %s: totalPaid=%s amount=%s: %w",
                entryID, e.TotalPaid, e.Amount, errs.ErrDataIntegrity)
        }

        var totalPaid decimal.Decimal
        if dir == DirectionAdd {
            totalPaid = money.Add(e.TotalPaid, amount)
        } else {
            totalPaid = money.ClampZero(money.Sub(e.TotalPaid, amount))
        }
        remaining := money.ClampZero(money.Sub(e.Amount, totalPaid))
        status := books.StatusFor(totalPaid, e.Amount)

        err = s.store.UpdateEntryPayment(ctx, entryID, e.Version, totalPaid, remaining, status)
        if err == nil {
            return Result{TotalPaid: totalPaid, RemainingBalance: remaining, PaymentStatus: status}, nil
        }
        if errors.Is(err, errs.ErrNotFound) {
            return Result{}, errs.ErrEntryNotFound
        }
        if !errors.Is(err, errs.ErrConflict) {
            return Result{}, fmt.Errorf("write entry: %w", err)
        }
        if attempt >= s.retries {
            return Result{}, fmt.Errorf("apply payment to %s: retries exhausted: %w", entryID, errs.ErrConflict)
        }
        conflictRetries.Inc()
        select {
        case <-ctx.Done():
            return Result{}, ctx.Err()
        case <-time.After(s.backoff):
        }
    }
}
