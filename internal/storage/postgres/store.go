package postgres

// Package postgres provides the pgx-backed store behind the statement and
// AR/AP services. It maps domain entities to SQL rows and keeps the
// version-checked conditional write that the AR/AP retry loop depends on.
// The expected schema lives under db/migrations.

import (
    "context"
    "errors"

    "github.com/google/uuid"
    "github.com/jackc/pgx/v5"
    "github.com/jackc/pgx/v5/pgxpool"
    "github.com/shopspring/decimal"

    "github.com/daftar/books/internal/books"
    "github.com/daftar/books/internal/errs"
    "github.com/daftar/books/internal/meta"
)

// Store holds a pgx connection pool. All methods are safe for concurrent use.
type Store struct {
    pool *pgxpool.Pool
}

// Open establishes a pgx pool using the provided connection string and
// verifies connectivity.
func Open(ctx context.Context, dsn string) (*Store, error) {
    cfg, err := pgxpool.ParseConfig(dsn)
    if err != nil {
        return nil, err
    }
    pool, err := pgxpool.NewWithConfig(ctx, cfg)
    if err != nil {
        return nil, err
    }
    if err := pool.Ping(ctx); err != nil {
        pool.Close()
        return nil, err
    }
    return &Store{pool: pool}, nil
}

// Close releases the underlying pool.
func (s *Store) Close() {
    if s.pool != nil {
        s.pool.Close()
    }
}

// Ready pings the pool to verify connectivity.
func (s *Store) Ready(ctx context.Context) error { return s.pool.Ping(ctx) }

// --- Clients ---

// CreateClient inserts a client row.
func (s *Store) CreateClient(ctx context.Context, c books.Client) (books.Client, error) {
    _, err := s.pool.Exec(ctx, `
        insert into clients (id, name, opening_balance, active)
        values ($1,$2,$3,$4)
    `, c.ID, c.Name, c.OpeningBalance, c.Active)
    if err != nil {
        return books.Client{}, err
    }
    return c, nil
}

// ClientByID fetches a single client.
func (s *Store) ClientByID(ctx context.Context, id uuid.UUID) (books.Client, error) {
    var c books.Client
    err := s.pool.QueryRow(ctx, `
        select id, name, opening_balance, active from clients where id = $1
    `, id).Scan(&c.ID, &c.Name, &c.OpeningBalance, &c.Active)
    if errors.Is(err, pgx.ErrNoRows) {
        return books.Client{}, errs.ErrNotFound
    }
    if err != nil {
        return books.Client{}, err
    }
    return c, nil
}

// ListClients returns all clients ordered by name.
func (s *Store) ListClients(ctx context.Context) ([]books.Client, error) {
    rows, err := s.pool.Query(ctx, `
        select id, name, opening_balance, active from clients order by name
    `)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]books.Client, 0)
    for rows.Next() {
        var c books.Client
        if err := rows.Scan(&c.ID, &c.Name, &c.OpeningBalance, &c.Active); err != nil {
            return nil, err
        }
        out = append(out, c)
    }
    return out, rows.Err()
}

// --- Entries ---

const entryColumns = `
    id, transaction_id, type, amount, date, category, sub_category, client,
    total_discount, writeoff_amount, paid_from_advances, linked_payment_id,
    arap, total_paid, remaining_balance, payment_status, metadata, version`

func scanEntry(row pgx.Row) (books.LedgerEntry, error) {
    var e books.LedgerEntry
    var linked uuid.NullUUID
    var mdBytes []byte
    err := row.Scan(&e.ID, &e.TransactionID, &e.Type, &e.Amount, &e.Date,
        &e.Category, &e.SubCategory, &e.Client, &e.TotalDiscount,
        &e.WriteoffAmount, &e.PaidFromAdvances, &linked, &e.ARAP,
        &e.TotalPaid, &e.RemainingBalance, &e.PaymentStatus, &mdBytes, &e.Version)
    if err != nil {
        return books.LedgerEntry{}, err
    }
    if linked.Valid {
        e.LinkedPaymentID = linked.UUID
    }
    if len(mdBytes) > 0 {
        var m meta.Metadata
        if err := m.UnmarshalJSON(mdBytes); err == nil {
            e.Metadata = m
        }
    }
    return e, nil
}

// CreateEntry inserts a ledger entry at version 1.
func (s *Store) CreateEntry(ctx context.Context, e books.LedgerEntry) (books.LedgerEntry, error) {
    if err := e.Metadata.Validate(); err != nil {
        return books.LedgerEntry{}, err
    }
    md, _ := e.Metadata.MarshalStableJSON()
    linked := uuid.NullUUID{UUID: e.LinkedPaymentID, Valid: e.LinkedPaymentID != uuid.Nil}
    e.Version = 1
    _, err := s.pool.Exec(ctx, `
        insert into ledger_entries (`+entryColumns+`)
        values ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
    `, e.ID, e.TransactionID, e.Type, e.Amount, e.Date, e.Category, e.SubCategory,
        e.Client, e.TotalDiscount, e.WriteoffAmount, e.PaidFromAdvances, linked,
        e.ARAP, e.TotalPaid, e.RemainingBalance, e.PaymentStatus, md, e.Version)
    if err != nil {
        return books.LedgerEntry{}, err
    }
    return e, nil
}

// EntryByID returns one entry including its version.
func (s *Store) EntryByID(ctx context.Context, id uuid.UUID) (books.LedgerEntry, error) {
    e, err := scanEntry(s.pool.QueryRow(ctx, `
        select `+entryColumns+` from ledger_entries where id = $1
    `, id))
    if errors.Is(err, pgx.ErrNoRows) {
        return books.LedgerEntry{}, errs.ErrNotFound
    }
    return e, err
}

// EntriesByClient returns a client's entries date-ascending; same-date rows
// keep insertion order via the sequence column.
func (s *Store) EntriesByClient(ctx context.Context, client string) ([]books.LedgerEntry, error) {
    rows, err := s.pool.Query(ctx, `
        select `+entryColumns+` from ledger_entries
        where client = $1
        order by date asc, seq asc
    `, client)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]books.LedgerEntry, 0)
    for rows.Next() {
        e, err := scanEntry(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, e)
    }
    return out, rows.Err()
}

// UpdateEntryPayment conditionally writes the paid fields; the update only
// lands when version still matches. A miss is re-read to distinguish a stale
// version from a deleted row.
func (s *Store) UpdateEntryPayment(ctx context.Context, id uuid.UUID, version int64, totalPaid, remaining decimal.Decimal, status books.PaymentStatus) error {
    ct, err := s.pool.Exec(ctx, `
        update ledger_entries
        set total_paid=$1, remaining_balance=$2, payment_status=$3, version=version+1
        where id=$4 and version=$5
    `, totalPaid, remaining, status, id, version)
    if err != nil {
        return err
    }
    if ct.RowsAffected() == 0 {
        var exists bool
        if err := s.pool.QueryRow(ctx, `select exists(select 1 from ledger_entries where id=$1)`, id).Scan(&exists); err != nil {
            return err
        }
        if !exists {
            return errs.ErrNotFound
        }
        return errs.ErrConflict
    }
    return nil
}

// --- Payments ---

const paymentColumns = `
    id, type, amount, date, description, client, linked_transaction_id,
    endorsement, discount_amount, arap_entry_id`

func scanPayment(row pgx.Row) (books.Payment, error) {
    var p books.Payment
    var arapEntry uuid.NullUUID
    err := row.Scan(&p.ID, &p.Type, &p.Amount, &p.Date, &p.Description,
        &p.Client, &p.LinkedTransactionID, &p.Endorsement, &p.DiscountAmount, &arapEntry)
    if err != nil {
        return books.Payment{}, err
    }
    if arapEntry.Valid {
        p.ARAPEntryID = arapEntry.UUID
    }
    return p, nil
}

// CreatePayment inserts a payment row.
func (s *Store) CreatePayment(ctx context.Context, p books.Payment) (books.Payment, error) {
    arapEntry := uuid.NullUUID{UUID: p.ARAPEntryID, Valid: p.ARAPEntryID != uuid.Nil}
    _, err := s.pool.Exec(ctx, `
        insert into payments (`+paymentColumns+`)
        values ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
    `, p.ID, p.Type, p.Amount, p.Date, p.Description, p.Client,
        p.LinkedTransactionID, p.Endorsement, p.DiscountAmount, arapEntry)
    if err != nil {
        return books.Payment{}, err
    }
    return p, nil
}

// PaymentByID fetches one payment.
func (s *Store) PaymentByID(ctx context.Context, id uuid.UUID) (books.Payment, error) {
    p, err := scanPayment(s.pool.QueryRow(ctx, `
        select `+paymentColumns+` from payments where id = $1
    `, id))
    if errors.Is(err, pgx.ErrNoRows) {
        return books.Payment{}, errs.ErrNotFound
    }
    return p, err
}

// DeletePayment removes a payment and returns the removed row so the caller
// can reverse its AR/AP application.
func (s *Store) DeletePayment(ctx context.Context, id uuid.UUID) (books.Payment, error) {
    p, err := scanPayment(s.pool.QueryRow(ctx, `
        delete from payments where id = $1
        returning `+paymentColumns+`
    `, id))
    if errors.Is(err, pgx.ErrNoRows) {
        return books.Payment{}, errs.ErrNotFound
    }
    return p, err
}

// PaymentsByClient returns a client's payments date-ascending.
func (s *Store) PaymentsByClient(ctx context.Context, client string) ([]books.Payment, error) {
    rows, err := s.pool.Query(ctx, `
        select `+paymentColumns+` from payments
        where client = $1
        order by date asc, seq asc
    `, client)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]books.Payment, 0)
    for rows.Next() {
        p, err := scanPayment(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, p)
    }
    return out, rows.Err()
}

// --- Cheques ---

const chequeColumns = `
    id, number, amount, issue_date, due_date, type, status, client, endorsed`

func scanCheque(row pgx.Row) (books.Cheque, error) {
    var c books.Cheque
    err := row.Scan(&c.ID, &c.Number, &c.Amount, &c.IssueDate, &c.DueDate,
        &c.Type, &c.Status, &c.Client, &c.Endorsed)
    if err != nil {
        return books.Cheque{}, err
    }
    return c, nil
}

// CreateCheque inserts a cheque row.
func (s *Store) CreateCheque(ctx context.Context, c books.Cheque) (books.Cheque, error) {
    _, err := s.pool.Exec(ctx, `
        insert into cheques (`+chequeColumns+`)
        values ($1,$2,$3,$4,$5,$6,$7,$8,$9)
    `, c.ID, c.Number, c.Amount, c.IssueDate, c.DueDate, c.Type, c.Status, c.Client, c.Endorsed)
    if err != nil {
        return books.Cheque{}, err
    }
    return c, nil
}

// ChequesByClient returns a client's cheques due-date-ascending.
func (s *Store) ChequesByClient(ctx context.Context, client string) ([]books.Cheque, error) {
    rows, err := s.pool.Query(ctx, `
        select `+chequeColumns+` from cheques
        where client = $1
        order by due_date asc, seq asc
    `, client)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]books.Cheque, 0)
    for rows.Next() {
        c, err := scanCheque(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, c)
    }
    return out, rows.Err()
}

// UpdateChequeStatus sets a cheque's status, marking it endorsed when the
// status is endorsed.
func (s *Store) UpdateChequeStatus(ctx context.Context, id uuid.UUID, status books.ChequeStatus) (books.Cheque, error) {
    c, err := scanCheque(s.pool.QueryRow(ctx, `
        update cheques
        set status = $1, endorsed = endorsed or $1 = 'endorsed'
        where id = $2
        returning `+chequeColumns+`
    `, status, id))
    if errors.Is(err, pgx.ErrNoRows) {
        return books.Cheque{}, errs.ErrNotFound
    }
    return c, err
}
