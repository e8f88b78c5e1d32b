package dictionary

// Curated category dictionary for the bookkeeping API. Codes are the slugs
// carried on ledger entries; labels are what the display collaborators show.
// The Arabic labels come from the legacy books and are plain data here, not
// a localization layer.

import "github.com/daftar/books/internal/books"

// Role groups categories by their classification meaning.
type Role string

const (
    RoleIncome  Role = "income"
    RoleExpense Role = "expense"
    RoleLoan    Role = "loan"
    RoleAdvance Role = "advance"
    RoleEquity  Role = "equity"
)

// CategoryDef describes one selectable category.
type CategoryDef struct {
    Code     books.Category `json:"code"`
    Label    string         `json:"label"`
    LabelAr  string         `json:"label_ar,omitempty"`
    Reserved bool           `json:"reserved"`
}

var curated = map[Role][]CategoryDef{
    RoleIncome: {
        {Code: "sales", Label: "Sales"},
        {Code: "services", Label: "Services"},
        {Code: "scrap_sales", Label: "Scrap Sales"},
        {Code: "other_income", Label: "Other Income"},
    },
    RoleExpense: {
        {Code: "raw_materials", Label: "Raw Materials"},
        {Code: "wages", Label: "Wages"},
        {Code: "rent", Label: "Rent"},
        {Code: "utilities", Label: "Utilities"},
        {Code: "maintenance", Label: "Maintenance"},
        {Code: "transport", Label: "Transport"},
        {Code: "general", Label: "General"},
    },
    RoleLoan: {
        {Code: books.CategoryLoansGiven, Label: "Loans Given", LabelAr: "قرض", Reserved: true},
        {Code: books.CategoryLoansTaken, Label: "Loans Taken", LabelAr: "قرض", Reserved: true},
        {Code: books.CategoryLegacyLoan, Label: "Loan (legacy)", LabelAr: "قرض", Reserved: true},
    },
    RoleAdvance: {
        {Code: books.CategoryCustomerAdvance, Label: "Customer Advance", LabelAr: "سلفة", Reserved: true},
        {Code: books.CategorySupplierAdvance, Label: "Supplier Advance", LabelAr: "سلفة", Reserved: true},
        {Code: books.CategoryLegacyAdvance, Label: "Advance (legacy)", LabelAr: "سلفة", Reserved: true},
    },
    RoleEquity: {
        {Code: books.CategoryCapitalContribution, Label: "Capital Contribution", Reserved: true},
        {Code: books.CategoryDrawings, Label: "Drawings", Reserved: true},
    },
}

// IsReserved reports whether code carries classification meaning and must not
// be repurposed as a plain income/expense category.
func IsReserved(code books.Category) bool {
    for _, list := range curated {
        for _, d := range list {
            if d.Code == code && d.Reserved {
                return true
            }
        }
    }
    return false
}

// CategoriesFor returns the curated categories for one role, or all of them
// when role is nil.
func CategoriesFor(role *Role) []CategoryDef {
    if role == nil {
        out := make([]CategoryDef, 0)
        for _, r := range []Role{RoleIncome, RoleExpense, RoleLoan, RoleAdvance, RoleEquity} {
            out = append(out, curated[r]...)
        }
        return out
    }
    list := curated[*role]
    out := make([]CategoryDef, len(list))
    copy(out, list)
    return out
}

// LabelFor returns the display label for a code, falling back to the code
// itself for unknown categories.
func LabelFor(code books.Category) string {
    for _, list := range curated {
        for _, d := range list {
            if d.Code == code {
                if d.LabelAr != "" {
                    return d.LabelAr
                }
                return d.Label
            }
        }
    }
    return string(code)
}
