package value

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash returns a stable content digest of v, used to name persisted
// values (explore -o writes each surviving variant as "<hash>.json").
// It is not a cryptographic commitment: MarshalJSON's
// field order is fixed by struct declaration order, which is what makes
// this deterministic across runs.
func (v Value) Hash() string {
	raw, err := v.MarshalJSON()
	if err != nil {
		// MarshalJSON only fails if a nested Value fails, which cannot
		// happen for a well-formed tree; treat as a programming error.
		panic(Wrap(ErrKindNoValueAtEval, err, "value: hash: marshal failed"))
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
