package statement

import (
    "github.com/shopspring/decimal"

    "github.com/daftar/books/internal/books"
    "github.com/daftar/books/internal/money"
)

// ChequeProjection is the balance assuming every non-endorsed pending cheque
// clears: incoming cheques reduce what the client owes, outgoing ones
// increase it.
type ChequeProjection struct {
    BalanceAfterCheques decimal.Decimal
    IncomingPending     decimal.Decimal
    OutgoingPending     decimal.Decimal
}

// ProjectAfterCheques folds pending cheques into the final balance. Endorsed
// cheques are skipped; their value is already on the statement as an
// endorsement payment.
func ProjectAfterCheques(finalBalance decimal.Decimal, cheques []books.Cheque) ChequeProjection {
    incoming, outgoing := money.Zero, money.Zero
    for _, c := range cheques {
        if c.Status != books.ChequeStatusPending || c.Endorsed {
            continue
        }
        if c.Type == books.ChequeTypeIncoming {
            incoming = money.Add(incoming, c.Amount)
        } else {
            outgoing = money.Add(outgoing, c.Amount)
        }
    }
    return ChequeProjection{
        BalanceAfterCheques: money.Add(money.Sub(money.Round(finalBalance), incoming), outgoing),
        IncomingPending:     incoming,
        OutgoingPending:     outgoing,
    }
}
