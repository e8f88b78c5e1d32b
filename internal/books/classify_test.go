package books

import (
    "testing"

    "github.com/shopspring/decimal"
)

func TestClassifyPriority(t *testing.T) {
    cases := []struct {
        name string
        e    LedgerEntry
        want EntryKind
    }{
        {
            name: "plain income",
            e:    LedgerEntry{Type: EntryTypeIncome, Category: "sales"},
            want: EntryKind{Kind: KindIncome},
        },
        {
            name: "plain expense",
            e:    LedgerEntry{Type: EntryTypeExpense, Category: "raw_materials"},
            want: EntryKind{Kind: KindExpense},
        },
        {
            name: "loan given origination",
            e:    LedgerEntry{Type: EntryTypeLoan, Category: CategoryLoansGiven, SubCategory: SubCategoryOrigination},
            want: EntryKind{Kind: KindLoanOrigination, LoanSide: LoanSideReceivable},
        },
        {
            name: "loan taken repayment",
            e:    LedgerEntry{Type: EntryTypeLoan, Category: CategoryLoansTaken, SubCategory: SubCategoryRepayment},
            want: EntryKind{Kind: KindLoanSettlement, LoanSide: LoanSidePayable},
        },
        {
            name: "loan given collection",
            e:    LedgerEntry{Type: EntryTypeLoan, Category: CategoryLoansGiven, SubCategory: SubCategoryCollection},
            want: EntryKind{Kind: KindLoanSettlement, LoanSide: LoanSideReceivable},
        },
        {
            name: "customer advance",
            e:    LedgerEntry{Type: EntryTypeIncome, Category: CategoryCustomerAdvance},
            want: EntryKind{Kind: KindCustomerAdvance},
        },
        {
            name: "supplier advance",
            e:    LedgerEntry{Type: EntryTypeExpense, Category: CategorySupplierAdvance},
            want: EntryKind{Kind: KindSupplierAdvance},
        },
        {
            // A loan category on an entry that would otherwise look like an
            // advance must classify as a loan: loan wins.
            name: "loan beats advance-looking type",
            e:    LedgerEntry{Type: EntryTypeIncome, Category: CategoryLoansTaken, SubCategory: SubCategoryOrigination},
            want: EntryKind{Kind: KindLoanOrigination, LoanSide: LoanSidePayable},
        },
        {
            // Unknown categories never break statement generation.
            name: "unrecognized category falls through",
            e:    LedgerEntry{Type: EntryTypeIncome, Category: "mystery_code"},
            want: EntryKind{Kind: KindIncome},
        },
        {
            name: "equity movement expands as income side",
            e:    LedgerEntry{Type: EntryTypeEquity, Category: CategoryCapitalContribution},
            want: EntryKind{Kind: KindIncome},
        },
        {
            // Legacy records carry the side on the type: income means the
            // loan was taken.
            name: "legacy loan typed income is payable",
            e:    LedgerEntry{Type: EntryTypeIncome, Category: CategoryLegacyLoan, SubCategory: SubCategoryOrigination},
            want: EntryKind{Kind: KindLoanOrigination, LoanSide: LoanSidePayable},
        },
        {
            name: "legacy loan typed expense is receivable",
            e:    LedgerEntry{Type: EntryTypeExpense, Category: CategoryLegacyLoan, SubCategory: SubCategoryOrigination},
            want: EntryKind{Kind: KindLoanOrigination, LoanSide: LoanSideReceivable},
        },
        {
            name: "legacy loan repayment typed income stays payable",
            e:    LedgerEntry{Type: EntryTypeIncome, Category: CategoryLegacyLoan, SubCategory: SubCategoryRepayment},
            want: EntryKind{Kind: KindLoanSettlement, LoanSide: LoanSidePayable},
        },
    }
    for _, c := range cases {
        t.Run(c.name, func(t *testing.T) {
            if got := Classify(c.e); got != c.want {
                t.Errorf("Classify = %+v, want %+v", got, c.want)
            }
        })
    }
}

func TestClassificationRules(t *testing.T) {
    if !IsAdvance(LedgerEntry{Category: CategoryCustomerAdvance}) {
        t.Error("customer_advance should be an advance")
    }
    if IsAdvance(LedgerEntry{Category: "sales"}) {
        t.Error("sales should not be an advance")
    }
    if !IsLoan(EntryTypeLoan, CategoryLoansGiven) || !IsLoan(EntryTypeIncome, CategoryLegacyLoan) {
        t.Error("loan categories should classify as loans regardless of type")
    }
    if IsLoan(EntryTypeLoan, CategoryCustomerAdvance) {
        t.Error("advance category is not a loan")
    }
    if !IsInitialLoan(SubCategoryOrigination) || IsInitialLoan(SubCategoryRepayment) {
        t.Error("only origination marks an initial loan")
    }
    if side, ok := LoanSideOf(EntryTypeLoan, CategoryLoansTaken); !ok || side != LoanSidePayable {
        t.Errorf("loans_taken side = %s, %v", side, ok)
    }
    if side, ok := LoanSideOf(EntryTypeIncome, CategoryLegacyLoan); !ok || side != LoanSidePayable {
        t.Errorf("legacy loan typed income side = %s, %v, want payable", side, ok)
    }
    if side, ok := LoanSideOf(EntryTypeExpense, CategoryLegacyLoan); !ok || side != LoanSideReceivable {
        t.Errorf("legacy loan typed expense side = %s, %v, want receivable", side, ok)
    }
    if _, ok := LoanSideOf(EntryTypeIncome, "sales"); ok {
        t.Error("sales has no loan side")
    }
}

func TestExcludedFromPnL(t *testing.T) {
    cases := []struct {
        e    LedgerEntry
        want bool
    }{
        {LedgerEntry{Type: EntryTypeEquity, Category: "anything"}, true},
        {LedgerEntry{Type: EntryTypeIncome, Category: CategoryCapitalContribution}, true},
        {LedgerEntry{Type: EntryTypeExpense, Category: CategoryDrawings}, true},
        {LedgerEntry{Type: EntryTypeIncome, Category: CategoryLegacyAdvance}, true},
        {LedgerEntry{Type: EntryTypeIncome, Category: CategoryLegacyLoan}, true},
        {LedgerEntry{Type: EntryTypeIncome, Category: "sales"}, false},
        {LedgerEntry{Type: EntryTypeExpense, Category: "wages"}, false},
    }
    for _, c := range cases {
        if got := ExcludedFromPnL(c.e); got != c.want {
            t.Errorf("ExcludedFromPnL(%s/%s) = %v, want %v", c.e.Type, c.e.Category, got, c.want)
        }
    }
}

func TestStatusFor(t *testing.T) {
    amount := decimal.NewFromInt(500)
    cases := []struct {
        paid int64
        want PaymentStatus
    }{
        {0, PaymentStatusUnpaid},
        {200, PaymentStatusPartial},
        {500, PaymentStatusPaid},
        {600, PaymentStatusPaid},
    }
    for _, c := range cases {
        if got := StatusFor(decimal.NewFromInt(c.paid), amount); got != c.want {
            t.Errorf("StatusFor(%d, 500) = %s, want %s", c.paid, got, c.want)
        }
    }
}
