package ledger

import (
	"encoding/json"
	"errors"
	"fmt"

	"petledger/internal/core"
)

// ErrMalformedState reports a persisted blob that does not decode. Callers
// treat it like an absent blob: the ledger starts fresh instead of failing.
var ErrMalformedState = errors.New("malformed persisted state")

// encodeState serializes the full ledger as the persisted blob. Nil
// sequences are written as empty arrays so the blob always carries all four
// top-level keys.
func encodeState(l core.Ledger) ([]byte, error) {
	normalize(&l)
	blob, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("encode ledger state: %w", err)
	}
	return blob, nil
}

// decodeState parses a persisted blob. Top-level keys missing from an old
// or partial blob decode as empty sequences (forward-compatible read).
func decodeState(blob []byte) (core.Ledger, error) {
	var l core.Ledger
	if err := json.Unmarshal(blob, &l); err != nil {
		return core.Ledger{}, fmt.Errorf("%w: %v", ErrMalformedState, err)
	}
	normalize(&l)
	return l, nil
}

func normalize(l *core.Ledger) {
	if l.LivingExpenses == nil {
		l.LivingExpenses = []core.LivingExpense{}
	}
	if l.MedicalExpenses == nil {
		l.MedicalExpenses = []core.MedicalExpense{}
	}
	if l.InitialCosts == nil {
		l.InitialCosts = []core.InitialCost{}
	}
	if l.Incomes == nil {
		l.Incomes = []core.Income{}
	}
}
