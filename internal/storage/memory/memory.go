package memory

// Package memory provides the in-memory store used for development and
// tests. It implements the same read/write/versioned interfaces as the
// postgres store, including version-checked conditional writes, so the AR/AP
// retry path is exercised identically against both backends.

import (
    "context"
    "sync"

    "github.com/google/uuid"
    "github.com/shopspring/decimal"

    "github.com/daftar/books/internal/books"
    "github.com/daftar/books/internal/errs"
)

// Store keeps all records behind an RWMutex. Per-client indexes hold entry,
// payment and cheque IDs sorted by date ascending with arrival order kept
// within a date, which is the tie-break contract statement assembly relies on.
type Store struct {
    mu sync.RWMutex

    clients map[uuid.UUID]books.Client
    entries map[uuid.UUID]*books.LedgerEntry
    payments map[uuid.UUID]books.Payment
    cheques map[uuid.UUID]books.Cheque

    entryIdx   map[string][]uuid.UUID
    paymentIdx map[string][]uuid.UUID
    chequeIdx  map[string][]uuid.UUID
}

// New constructs an empty store.
func New() *Store {
    s := &Store{}
    s.reset()
    return s
}

func (s *Store) reset() {
    s.clients = make(map[uuid.UUID]books.Client)
    s.entries = make(map[uuid.UUID]*books.LedgerEntry)
    s.payments = make(map[uuid.UUID]books.Payment)
    s.cheques = make(map[uuid.UUID]books.Cheque)
    s.entryIdx = make(map[string][]uuid.UUID)
    s.paymentIdx = make(map[string][]uuid.UUID)
    s.chequeIdx = make(map[string][]uuid.UUID)
}

// Reset clears everything; test helper.
func (s *Store) Reset() {
    s.mu.Lock()
    s.reset()
    s.mu.Unlock()
}

// --- Clients ---

// CreateClient inserts a client.
func (s *Store) CreateClient(_ context.Context, c books.Client) (books.Client, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.clients[c.ID] = c
    return c, nil
}

// ClientByID returns one client.
func (s *Store) ClientByID(_ context.Context, id uuid.UUID) (books.Client, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    c, ok := s.clients[id]
    if !ok {
        return books.Client{}, errs.ErrNotFound
    }
    return c, nil
}

// ListClients returns all clients.
func (s *Store) ListClients(_ context.Context) ([]books.Client, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    out := make([]books.Client, 0, len(s.clients))
    for _, c := range s.clients {
        out = append(out, c)
    }
    return out, nil
}

// --- Entries ---

// CreateEntry inserts a ledger entry at version 1.
func (s *Store) CreateEntry(_ context.Context, e books.LedgerEntry) (books.LedgerEntry, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    e.Version = 1
    cp := e
    s.entries[e.ID] = &cp
    s.entryIdx[e.Client] = insertByDate(s.entryIdx[e.Client], e.ID, func(id uuid.UUID) int64 {
        return s.entries[id].Date.UnixNano()
    }, e.Date.UnixNano())
    return e, nil
}

// EntryByID returns a copy of one entry, version included.
func (s *Store) EntryByID(_ context.Context, id uuid.UUID) (books.LedgerEntry, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    e, ok := s.entries[id]
    if !ok {
        return books.LedgerEntry{}, errs.ErrNotFound
    }
    return *e, nil
}

// EntriesByClient returns the client's entries date-ascending.
func (s *Store) EntriesByClient(_ context.Context, client string) ([]books.LedgerEntry, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    ids := s.entryIdx[client]
    out := make([]books.LedgerEntry, 0, len(ids))
    for _, id := range ids {
        if e, ok := s.entries[id]; ok {
            out = append(out, *e)
        }
    }
    return out, nil
}

// UpdateEntryPayment conditionally writes the paid fields. The write only
// lands when version still matches; otherwise the caller retries.
func (s *Store) UpdateEntryPayment(_ context.Context, id uuid.UUID, version int64, totalPaid, remaining decimal.Decimal, status books.PaymentStatus) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    e, ok := s.entries[id]
    if !ok {
        return errs.ErrNotFound
    }
    if e.Version != version {
        return errs.ErrConflict
    }
    e.TotalPaid = totalPaid
    e.RemainingBalance = remaining
    e.PaymentStatus = status
    e.Version++
    return nil
}

// --- Payments ---

// CreatePayment inserts a payment.
func (s *Store) CreatePayment(_ context.Context, p books.Payment) (books.Payment, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.payments[p.ID] = p
    s.paymentIdx[p.Client] = insertByDate(s.paymentIdx[p.Client], p.ID, func(id uuid.UUID) int64 {
        return s.payments[id].Date.UnixNano()
    }, p.Date.UnixNano())
    return p, nil
}

// PaymentByID returns one payment.
func (s *Store) PaymentByID(_ context.Context, id uuid.UUID) (books.Payment, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    p, ok := s.payments[id]
    if !ok {
        return books.Payment{}, errs.ErrNotFound
    }
    return p, nil
}

// DeletePayment removes a payment and returns it so the caller can reverse
// its AR/AP application.
func (s *Store) DeletePayment(_ context.Context, id uuid.UUID) (books.Payment, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    p, ok := s.payments[id]
    if !ok {
        return books.Payment{}, errs.ErrNotFound
    }
    delete(s.payments, id)
    idx := s.paymentIdx[p.Client]
    for i, pid := range idx {
        if pid == id {
            s.paymentIdx[p.Client] = append(idx[:i], idx[i+1:]...)
            break
        }
    }
    return p, nil
}

// PaymentsByClient returns the client's payments date-ascending.
func (s *Store) PaymentsByClient(_ context.Context, client string) ([]books.Payment, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    ids := s.paymentIdx[client]
    out := make([]books.Payment, 0, len(ids))
    for _, id := range ids {
        if p, ok := s.payments[id]; ok {
            out = append(out, p)
        }
    }
    return out, nil
}

// --- Cheques ---

// CreateCheque inserts a cheque.
func (s *Store) CreateCheque(_ context.Context, c books.Cheque) (books.Cheque, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.cheques[c.ID] = c
    s.chequeIdx[c.Client] = insertByDate(s.chequeIdx[c.Client], c.ID, func(id uuid.UUID) int64 {
        return s.cheques[id].DueDate.UnixNano()
    }, c.DueDate.UnixNano())
    return c, nil
}

// ChequesByClient returns the client's cheques due-date-ascending.
func (s *Store) ChequesByClient(_ context.Context, client string) ([]books.Cheque, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    ids := s.chequeIdx[client]
    out := make([]books.Cheque, 0, len(ids))
    for _, id := range ids {
        if c, ok := s.cheques[id]; ok {
            out = append(out, c)
        }
    }
    return out, nil
}

// UpdateChequeStatus sets a cheque's status, marking it endorsed when the
// status is endorsed.
func (s *Store) UpdateChequeStatus(_ context.Context, id uuid.UUID, status books.ChequeStatus) (books.Cheque, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    c, ok := s.cheques[id]
    if !ok {
        return books.Cheque{}, errs.ErrNotFound
    }
    c.Status = status
    if status == books.ChequeStatusEndorsed {
        c.Endorsed = true
    }
    s.cheques[id] = c
    return c, nil
}

// insertByDate inserts id into idx keeping date order, after any existing
// element with the same date so same-date records keep arrival order.
func insertByDate(idx []uuid.UUID, id uuid.UUID, dateOf func(uuid.UUID) int64, date int64) []uuid.UUID {
    pos := len(idx)
    for i, existing := range idx {
        if dateOf(existing) > date {
            pos = i
            break
        }
    }
    idx = append(idx, uuid.Nil)
    copy(idx[pos+1:], idx[pos:])
    idx[pos] = id
    return idx
}
