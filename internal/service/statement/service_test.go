package statement

import (
    "context"
    "errors"
    "testing"
    "time"

    "github.com/google/uuid"

    "github.com/daftar/books/internal/books"
    "github.com/daftar/books/internal/errs"
    "github.com/daftar/books/internal/money"
)

func day(d int) time.Time {
    return time.Date(2025, 3, d, 10, 0, 0, 0, time.UTC)
}

func fixtureEntries() []books.LedgerEntry {
    return []books.LedgerEntry{
        {Type: books.EntryTypeIncome, Category: "sales", Amount: dec("1000"), Date: day(1)},
        {Type: books.EntryTypeExpense, Category: "raw_materials", Amount: dec("300"), Date: day(2)},
        {Type: books.EntryTypeIncome, Category: "sales", Amount: dec("500"), TotalDiscount: dec("20"), Date: day(5)},
    }
}

func fixturePayments() []books.Payment {
    return []books.Payment{
        {Type: books.PaymentTypeReceipt, Amount: dec("400"), Date: day(3)},
        {Type: books.PaymentTypeDisbursement, Amount: dec("150"), Date: day(6)},
    }
}

func TestBuildStatementBalanceIdentity(t *testing.T) {
    st := BuildStatement(fixtureEntries(), fixturePayments(), dec("100"), nil, nil)
    want := money.Add(st.OpeningBalance, money.Sub(st.TotalDebit, st.TotalCredit))
    if !st.FinalBalance.Equal(want) {
        t.Errorf("final = %s, opening + debit - credit = %s", st.FinalBalance, want)
    }
    // opening seed untouched without a from bound
    if !st.OpeningBalance.Equal(dec("100")) {
        t.Errorf("opening = %s, want 100", st.OpeningBalance)
    }
    // 1000 - 300 - 400 - 20 + 500 + 150 + 100 = 1030
    if !st.FinalBalance.Equal(dec("1030")) {
        t.Errorf("final = %s, want 1030", st.FinalBalance)
    }
    if last := st.Rows[len(st.Rows)-1]; !last.Balance.Equal(st.FinalBalance) {
        t.Errorf("last row balance = %s, want %s", last.Balance, st.FinalBalance)
    }
}

func TestBuildStatementRunningBalance(t *testing.T) {
    st := BuildStatement(fixtureEntries(), fixturePayments(), money.Zero, nil, nil)
    // day1 sale, day2 purchase, day3 receipt, day5 sale, day5 discount, day6 disbursement
    wantBalances := []string{"1000", "700", "300", "800", "780", "930"}
    if len(st.Rows) != len(wantBalances) {
        t.Fatalf("got %d rows, want %d", len(st.Rows), len(wantBalances))
    }
    for i, w := range wantBalances {
        if !st.Rows[i].Balance.Equal(dec(w)) {
            t.Errorf("row %d balance = %s, want %s", i, st.Rows[i].Balance, w)
        }
    }
}

func TestBuildStatementDateWindow(t *testing.T) {
    from, to := day(3), day(5)
    st := BuildStatement(fixtureEntries(), fixturePayments(), dec("100"), &from, &to)
    // opening = 100 + day1 sale - day2 purchase = 800
    if !st.OpeningBalance.Equal(dec("800")) {
        t.Errorf("opening = %s, want 800", st.OpeningBalance)
    }
    // windowed rows: day3 receipt, day5 sale, day5 discount
    if len(st.Rows) != 3 {
        t.Fatalf("got %d windowed rows, want 3", len(st.Rows))
    }
    // day6 disbursement excluded
    if !st.FinalBalance.Equal(dec("880")) {
        t.Errorf("final = %s, want 880", st.FinalBalance)
    }
    want := money.Add(st.OpeningBalance, money.Sub(st.TotalDebit, st.TotalCredit))
    if !st.FinalBalance.Equal(want) {
        t.Errorf("identity broken: final %s vs %s", st.FinalBalance, want)
    }
}

func TestBuildStatementWindowIsInclusive(t *testing.T) {
    entries := []books.LedgerEntry{
        // 08:00 on the from day: before the raw from instant, inside the window
        {Type: books.EntryTypeIncome, Category: "sales", Amount: dec("10"), Date: time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)},
        // 23:30 on the to day: after the raw to instant, inside the window
        {Type: books.EntryTypeIncome, Category: "sales", Amount: dec("20"), Date: time.Date(2025, 3, 5, 23, 30, 0, 0, time.UTC)},
    }
    from, to := day(3), day(5)
    st := BuildStatement(entries, nil, money.Zero, &from, &to)
    if len(st.Rows) != 2 {
        t.Fatalf("got %d rows, want 2 (window bounds are whole days)", len(st.Rows))
    }
    if !st.OpeningBalance.IsZero() {
        t.Errorf("opening = %s, want 0", st.OpeningBalance)
    }
}

func TestBuildStatementNoFilterEquivalence(t *testing.T) {
    entries, payments := fixtureEntries(), fixturePayments()
    unbounded := BuildStatement(entries, payments, dec("50"), nil, nil)
    earliest, latest := day(1), day(6)
    bounded := BuildStatement(entries, payments, dec("50"), &earliest, &latest)
    if !unbounded.FinalBalance.Equal(bounded.FinalBalance) {
        t.Errorf("final: unbounded %s vs full-range %s", unbounded.FinalBalance, bounded.FinalBalance)
    }
    if len(unbounded.Rows) != len(bounded.Rows) {
        t.Errorf("rows: unbounded %d vs full-range %d", len(unbounded.Rows), len(bounded.Rows))
    }
}

func TestBuildStatementAdvanceDeDup(t *testing.T) {
    // advance entry spawned by a multi-allocation payment: entry contributes
    // zero rows, the payment appears exactly once
    entries := []books.LedgerEntry{
        {
            Type: books.EntryTypeIncome, Category: books.CategoryCustomerAdvance,
            Amount: dec("300"), TransactionID: "tx-9", LinkedPaymentID: uuid.New(), Date: day(2),
        },
    }
    payments := []books.Payment{
        {Type: books.PaymentTypeReceipt, Amount: dec("300"), Date: day(2)},
    }
    st := BuildStatement(entries, payments, money.Zero, nil, nil)
    if len(st.Rows) != 1 {
        t.Fatalf("got %d rows, want 1", len(st.Rows))
    }
    if !st.TotalCredit.Equal(dec("300")) || !st.TotalDebit.IsZero() {
        t.Errorf("totals = %s/%s, want 0/300", st.TotalDebit, st.TotalCredit)
    }

    // advance entry without a linked payment: its row stands in for the cash,
    // and the payment that references it by transaction id is suppressed
    entries[0].LinkedPaymentID = uuid.Nil
    payments[0].LinkedTransactionID = "tx-9"
    st = BuildStatement(entries, payments, money.Zero, nil, nil)
    if len(st.Rows) != 1 {
        t.Fatalf("got %d rows, want 1 (payment suppressed)", len(st.Rows))
    }
    if st.Rows[0].Kind != books.RowKindAdvance {
        t.Errorf("surviving row kind = %s, want advance", st.Rows[0].Kind)
    }
    if !st.FinalBalance.Equal(dec("-300")) {
        t.Errorf("final = %s, want -300", st.FinalBalance)
    }
}

func TestBuildStatementSkipsNonPositivePayments(t *testing.T) {
    payments := []books.Payment{
        {Type: books.PaymentTypeReceipt, Amount: money.Zero, Date: day(1)},
        {Type: books.PaymentTypeReceipt, Amount: dec("-5"), Date: day(1)},
    }
    st := BuildStatement(nil, payments, money.Zero, nil, nil)
    if len(st.Rows) != 0 {
        t.Fatalf("non-positive payments must not produce rows, got %d", len(st.Rows))
    }
}

func TestBuildStatementStableTieOrder(t *testing.T) {
    entries := []books.LedgerEntry{
        {Type: books.EntryTypeIncome, Category: "sales", TransactionID: "a", Amount: dec("1"), Date: day(4)},
        {Type: books.EntryTypeIncome, Category: "sales", TransactionID: "b", Amount: dec("2"), Date: day(4)},
    }
    payments := []books.Payment{
        {Type: books.PaymentTypeReceipt, Amount: dec("3"), Date: day(4)},
    }
    st := BuildStatement(entries, payments, money.Zero, nil, nil)
    if len(st.Rows) != 3 {
        t.Fatalf("got %d rows, want 3", len(st.Rows))
    }
    if st.Rows[0].Description != "sales #a" || st.Rows[1].Description != "sales #b" || !st.Rows[2].IsPayment {
        t.Errorf("tie order not stable: %+v", st.Rows)
    }
}

func TestProjectAfterCheques(t *testing.T) {
    cheques := []books.Cheque{
        {Type: books.ChequeTypeIncoming, Amount: dec("100"), Status: books.ChequeStatusPending},
        {Type: books.ChequeTypeOutgoing, Amount: dec("40"), Status: books.ChequeStatusPending},
        {Type: books.ChequeTypeIncoming, Amount: dec("30"), Status: books.ChequeStatusEndorsed},
        {Type: books.ChequeTypeIncoming, Amount: dec("25"), Status: books.ChequeStatusPending, Endorsed: true},
        {Type: books.ChequeTypeIncoming, Amount: dec("60"), Status: books.ChequeStatusCleared},
    }
    p := ProjectAfterCheques(dec("1000"), cheques)
    if !p.BalanceAfterCheques.Equal(dec("940")) {
        t.Errorf("balance after cheques = %s, want 940", p.BalanceAfterCheques)
    }
    if !p.IncomingPending.Equal(dec("100")) || !p.OutgoingPending.Equal(dec("40")) {
        t.Errorf("pending totals = %s/%s, want 100/40", p.IncomingPending, p.OutgoingPending)
    }
}

type stubRepo struct {
    client        books.Client
    entries       []books.LedgerEntry
    payments      []books.Payment
    cheques       []books.Cheque
    clientLookups int
}

func (r *stubRepo) ClientByID(_ context.Context, id uuid.UUID) (books.Client, error) {
    r.clientLookups++
    if id != r.client.ID {
        return books.Client{}, errs.ErrNotFound
    }
    return r.client, nil
}

func (r *stubRepo) EntriesByClient(_ context.Context, _ string) ([]books.LedgerEntry, error) {
    return r.entries, nil
}

func (r *stubRepo) PaymentsByClient(_ context.Context, _ string) ([]books.Payment, error) {
    return r.payments, nil
}

func (r *stubRepo) ChequesByClient(_ context.Context, _ string) ([]books.Cheque, error) {
    return r.cheques, nil
}

func TestClientProjectionResolvesClientOnce(t *testing.T) {
    repo := &stubRepo{
        client:  books.Client{ID: uuid.New(), Name: "c", OpeningBalance: dec("100")},
        entries: fixtureEntries(),
        cheques: []books.Cheque{
            {Type: books.ChequeTypeIncoming, Amount: dec("40"), Status: books.ChequeStatusPending},
        },
    }
    svc := New(repo)

    st, proj, err := svc.ClientProjection(context.Background(), repo.client.ID, nil, nil)
    if err != nil {
        t.Fatalf("ClientProjection: %v", err)
    }
    if repo.clientLookups != 1 {
        t.Errorf("client resolved %d times, want 1", repo.clientLookups)
    }
    if !proj.BalanceAfterCheques.Equal(money.Sub(st.FinalBalance, dec("40"))) {
        t.Errorf("projection balance = %s, want final %s minus 40", proj.BalanceAfterCheques, st.FinalBalance)
    }

    if _, err := svc.ClientStatement(context.Background(), uuid.New(), nil, nil); !errors.Is(err, errs.ErrNotFound) {
        t.Errorf("unknown client err = %v, want ErrNotFound", err)
    }
}
