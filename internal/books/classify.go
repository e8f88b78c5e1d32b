package books

// Classification of ledger entries into their movement kind. Decided once,
// here, and carried through row expansion instead of re-checking category
// strings downstream. Priority when a record matches more than one rule
// (possible only through bad data): loan, then advance, then plain
// income/expense. Unrecognized categories fall through to plain
// income/expense so a statement always renders.

// LoanSide distinguishes money lent out from money borrowed.
type LoanSide string

const (
    // LoanSideReceivable: we lent money; the loan is owed to us.
    LoanSideReceivable LoanSide = "receivable"
    // LoanSidePayable: we borrowed money; we owe the loan.
    LoanSidePayable LoanSide = "payable"
)

// Category codes with classification meaning. Everything else is a plain
// income/expense category.
const (
    CategoryCustomerAdvance Category = "customer_advance"
    CategorySupplierAdvance Category = "supplier_advance"
    CategoryLoansGiven      Category = "loans_given"
    CategoryLoansTaken      Category = "loans_taken"
    // Legacy codes kept for backward compatibility with older records.
    CategoryLegacyLoan    Category = "loan"
    CategoryLegacyAdvance Category = "advance"
    // Equity-side categories excluded from profit/loss.
    CategoryCapitalContribution Category = "capital_contribution"
    CategoryDrawings            Category = "drawings"
)

// Loan subcategory codes marking origination versus settlement.
const (
    SubCategoryOrigination Category = "origination"
    SubCategoryRepayment   Category = "repayment"
    SubCategoryCollection  Category = "collection"
)

var loanSides = map[Category]LoanSide{
    CategoryLoansGiven: LoanSideReceivable,
    CategoryLoansTaken: LoanSidePayable,
    // Default for legacy records; LoanSideOf refines it from the entry type.
    CategoryLegacyLoan: LoanSideReceivable,
}

var excludedCategories = map[Category]struct{}{
    CategoryCapitalContribution: {},
    CategoryDrawings:            {},
    CategoryLegacyAdvance:       {},
    CategoryLegacyLoan:          {},
}

// IsAdvance reports whether the entry is a customer or supplier advance.
func IsAdvance(e LedgerEntry) bool {
    return e.Category == CategoryCustomerAdvance || e.Category == CategorySupplierAdvance
}

// IsLoan reports whether the category is a configured loan category.
func IsLoan(_ EntryType, c Category) bool {
    _, ok := loanSides[c]
    return ok
}

// IsInitialLoan reports whether the subcategory marks loan origination
// rather than a repayment or collection.
func IsInitialLoan(sub Category) bool { return sub == SubCategoryOrigination }

// LoanSideOf maps a loan category to its side. Legacy "loan" records carried
// the side on the entry type: recorded as income the loan was taken
// (payable), as expense given (receivable). The second return is false for
// non-loan categories.
func LoanSideOf(t EntryType, c Category) (LoanSide, bool) {
    s, ok := loanSides[c]
    if !ok {
        return "", false
    }
    if c == CategoryLegacyLoan && t == EntryTypeIncome {
        s = LoanSidePayable
    }
    return s, true
}

// ExcludedFromPnL reports whether the entry stays out of profit/loss:
// equity movements and the excluded-category allow-list.
func ExcludedFromPnL(e LedgerEntry) bool {
    if e.Type == EntryTypeEquity {
        return true
    }
    _, ok := excludedCategories[e.Category]
    return ok
}

// Kind is the movement kind decided at classification time.
type Kind string

const (
    KindIncome          Kind = "income"
    KindExpense         Kind = "expense"
    KindLoanOrigination Kind = "loan_origination"
    KindLoanSettlement  Kind = "loan_settlement"
    KindCustomerAdvance Kind = "customer_advance"
    KindSupplierAdvance Kind = "supplier_advance"
)

// EntryKind is the tagged classification of a ledger entry. LoanSide is set
// only for the loan kinds.
type EntryKind struct {
    Kind     Kind
    LoanSide LoanSide
}

// Classify decides the movement kind of an entry. Loan categories win over
// advance categories, which win over the plain income/expense fallback.
func Classify(e LedgerEntry) EntryKind {
    if side, ok := LoanSideOf(e.Type, e.Category); ok {
        k := KindLoanSettlement
        if IsInitialLoan(e.SubCategory) {
            k = KindLoanOrigination
        }
        return EntryKind{Kind: k, LoanSide: side}
    }
    switch e.Category {
    case CategoryCustomerAdvance:
        return EntryKind{Kind: KindCustomerAdvance}
    case CategorySupplierAdvance:
        return EntryKind{Kind: KindSupplierAdvance}
    }
    if e.Type == EntryTypeExpense {
        return EntryKind{Kind: KindExpense}
    }
    return EntryKind{Kind: KindIncome}
}
