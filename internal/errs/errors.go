package errs

import "errors"

// Common sentinel errors for cross-layer signaling.
var (
    ErrNotFound = errors.New("not_found")
    ErrConflict = errors.New("conflict")
    ErrInvalid  = errors.New("invalid")
    // ErrUnprocessable is used for semantic validation failures (HTTP 422)
    ErrUnprocessable = errors.New("unprocessable")
    // ErrEntryNotFound indicates the referenced ledger entry is absent
    ErrEntryNotFound = errors.New("entry_not_found")
    // ErrARAPNotEnabled indicates the entry is not opted into AR/AP tracking
    ErrARAPNotEnabled = errors.New("arap_not_enabled")
    // ErrDataIntegrity flags stored state that should be impossible
    // (negative paid total, non-positive tracked amount). Never clamped away.
    ErrDataIntegrity = errors.New("data_integrity")
)
