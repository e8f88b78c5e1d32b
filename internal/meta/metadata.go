package meta

import (
    "bytes"
    "encoding/json"
    "errors"
    "sort"
)

// Metadata is a small string map carried on ledger entries for attributes the
// core does not interpret (invoice numbers, operator notes, import tags). It
// validates bounds and encodes to deterministic JSON so stored rows diff
// cleanly.
type Metadata map[string]string

const (
    MaxPairs     = 16
    MaxKeyLen    = 64
    MaxValLen    = 256
    MaxTotalJSON = 4096
)

// New copies m into a Metadata, never returning nil.
func New(m map[string]string) Metadata {
    if m == nil {
        return Metadata{}
    }
    out := make(Metadata, len(m))
    for k, v := range m {
        out[k] = v
    }
    return out
}

// Clone returns an independent copy.
func (m Metadata) Clone() Metadata {
    if m == nil {
        return Metadata{}
    }
    out := make(Metadata, len(m))
    for k, v := range m {
        out[k] = v
    }
    return out
}

// Validate checks the pair, key, value and total-size bounds.
func (m Metadata) Validate() error {
    if len(m) > MaxPairs {
        return errors.New("metadata: too many pairs")
    }
    for k, v := range m {
        if len(k) == 0 || len(k) > MaxKeyLen {
            return errors.New("metadata: key empty or too long")
        }
        if len(v) > MaxValLen {
            return errors.New("metadata: value too long")
        }
    }
    b, err := m.MarshalStableJSON()
    if err != nil {
        return err
    }
    if len(b) > MaxTotalJSON {
        return errors.New("metadata: exceeds max encoded size")
    }
    return nil
}

// MarshalStableJSON returns a deterministic encoding with keys sorted.
func (m Metadata) MarshalStableJSON() ([]byte, error) {
    if len(m) == 0 {
        return []byte("{}"), nil
    }
    keys := make([]string, 0, len(m))
    for k := range m {
        keys = append(keys, k)
    }
    sort.Strings(keys)
    buf := &bytes.Buffer{}
    buf.WriteByte('{')
    for i, k := range keys {
        kb, _ := json.Marshal(k)
        vb, _ := json.Marshal(m[k])
        buf.Write(kb)
        buf.WriteByte(':')
        buf.Write(vb)
        if i < len(keys)-1 {
            buf.WriteByte(',')
        }
    }
    buf.WriteByte('}')
    return buf.Bytes(), nil
}

func (m Metadata) MarshalJSON() ([]byte, error) { return m.MarshalStableJSON() }

func (m *Metadata) UnmarshalJSON(b []byte) error {
    if len(b) == 0 || bytes.Equal(b, []byte("null")) {
        *m = Metadata{}
        return nil
    }
    var tmp map[string]string
    if err := json.Unmarshal(b, &tmp); err != nil {
        return err
    }
    *m = New(tmp)
    return nil
}
