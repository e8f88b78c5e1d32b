package money

// Package money centralizes decimal arithmetic for monetary values. Every
// operation returns an exact value at 2-decimal granularity; no float64
// arithmetic touches amounts anywhere else in the codebase.

import "github.com/shopspring/decimal"

// Scale is the number of decimal places every monetary value is held at.
const Scale = 2

// Zero is the canonical zero amount.
var Zero = decimal.Zero

// Round rounds half-up to 2 decimal places.
func Round(a decimal.Decimal) decimal.Decimal {
    return a.Round(Scale)
}

// Add returns a+b at 2 decimal places.
func Add(a, b decimal.Decimal) decimal.Decimal {
    return a.Add(b).Round(Scale)
}

// Sub returns a-b at 2 decimal places.
func Sub(a, b decimal.Decimal) decimal.Decimal {
    return a.Sub(b).Round(Scale)
}

// Mul returns a*b at 2 decimal places.
func Mul(a, b decimal.Decimal) decimal.Decimal {
    return a.Mul(b).Round(Scale)
}

// Div returns a/b at 2 decimal places, or zero when b is zero.
func Div(a, b decimal.Decimal) decimal.Decimal {
    if b.IsZero() {
        return decimal.Zero
    }
    return a.DivRound(b, Scale)
}

// Sum folds vals with Add, starting from zero.
func Sum(vals ...decimal.Decimal) decimal.Decimal {
    out := decimal.Zero
    for _, v := range vals {
        out = Add(out, v)
    }
    return out
}

// ClampZero returns a, or zero when a is negative.
func ClampZero(a decimal.Decimal) decimal.Decimal {
    if a.IsNegative() {
        return decimal.Zero
    }
    return a
}
