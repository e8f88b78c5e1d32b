package money

import (
    "testing"

    "github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
    d, err := decimal.NewFromString(s)
    if err != nil {
        panic(err)
    }
    return d
}

func TestRoundHalfUp(t *testing.T) {
    cases := []struct{ in, want string }{
        {"1.005", "1.01"},
        {"1.004", "1"},
        {"2.675", "2.68"}, // breaks under float64
        {"0.125", "0.13"},
        {"-1.005", "-1.01"},
        {"10", "10"},
    }
    for _, c := range cases {
        if got := Round(dec(c.in)); !got.Equal(dec(c.want)) {
            t.Errorf("Round(%s) = %s, want %s", c.in, got, c.want)
        }
    }
}

func TestAddSubMul(t *testing.T) {
    if got := Add(dec("0.1"), dec("0.2")); !got.Equal(dec("0.3")) {
        t.Errorf("Add(0.1, 0.2) = %s, want 0.3", got)
    }
    if got := Sub(dec("1"), dec("0.9")); !got.Equal(dec("0.1")) {
        t.Errorf("Sub(1, 0.9) = %s, want 0.1", got)
    }
    if got := Mul(dec("3.333"), dec("3")); !got.Equal(dec("10")) {
        t.Errorf("Mul(3.333, 3) = %s, want 10", got)
    }
}

func TestDiv(t *testing.T) {
    if got := Div(dec("10"), dec("3")); !got.Equal(dec("3.33")) {
        t.Errorf("Div(10, 3) = %s, want 3.33", got)
    }
    if got := Div(dec("100"), decimal.Zero); !got.IsZero() {
        t.Errorf("Div by zero = %s, want 0", got)
    }
}

func TestSum(t *testing.T) {
    got := Sum(dec("0.1"), dec("0.2"), dec("0.3"), dec("-0.6"))
    if !got.IsZero() {
        t.Errorf("Sum = %s, want 0", got)
    }
    if !Sum().IsZero() {
        t.Errorf("empty Sum should be zero")
    }
}

// Rounded parts must agree with the rounded whole at 2-decimal granularity.
func TestRoundedPartsCoincide(t *testing.T) {
    a, b := dec("1.11"), dec("2.22")
    lhs := Add(Round(a), Round(b))
    rhs := Round(a.Add(b))
    if !lhs.Equal(rhs) {
        t.Errorf("round(a)+round(b) = %s, round(a+b) = %s", lhs, rhs)
    }
}

func TestClampZero(t *testing.T) {
    if got := ClampZero(dec("-5")); !got.IsZero() {
        t.Errorf("ClampZero(-5) = %s, want 0", got)
    }
    if got := ClampZero(dec("5")); !got.Equal(dec("5")) {
        t.Errorf("ClampZero(5) = %s, want 5", got)
    }
}
