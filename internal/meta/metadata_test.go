package meta

import (
    "encoding/json"
    "strings"
    "testing"
)

func TestValidationLimits(t *testing.T) {
    pairs := make(map[string]string)
    for i := 0; i <= MaxPairs; i++ {
        pairs["key_"+strings.Repeat("x", i+1)] = "v"
    }
    if err := New(pairs).Validate(); err == nil {
        t.Fatalf("expected too many pairs")
    }
    if err := New(map[string]string{strings.Repeat("k", MaxKeyLen+1): "v"}).Validate(); err == nil {
        t.Fatalf("expected key too long")
    }
    if err := New(map[string]string{"k": strings.Repeat("v", MaxValLen+1)}).Validate(); err == nil {
        t.Fatalf("expected value too long")
    }
    if err := New(map[string]string{"invoice_no": "INV-104"}).Validate(); err != nil {
        t.Fatalf("valid metadata rejected: %v", err)
    }
}

func TestStableJSONAndRoundtrip(t *testing.T) {
    m := New(map[string]string{"b": "2", "a": "1"})
    b1, _ := m.MarshalStableJSON()
    if string(b1) != `{"a":"1","b":"2"}` {
        t.Fatalf("unexpected stable json: %s", string(b1))
    }
    var back Metadata
    if err := json.Unmarshal(b1, &back); err != nil {
        t.Fatalf("unmarshal: %v", err)
    }
    if back["a"] != "1" || back["b"] != "2" {
        t.Fatalf("roundtrip mismatch: %+v", back)
    }
    var fromNull Metadata
    if err := json.Unmarshal([]byte("null"), &fromNull); err != nil || fromNull == nil {
        t.Fatalf("null should decode to empty metadata")
    }
}

func TestClone(t *testing.T) {
    m := New(map[string]string{"a": "1"})
    c := m.Clone()
    c["a"] = "2"
    if m["a"] != "1" {
        t.Fatalf("clone is not independent")
    }
}
