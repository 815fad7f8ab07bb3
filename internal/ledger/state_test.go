package ledger

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"petledger/internal/core"
)

func TestEncodeStateAlwaysCarriesAllKeys(t *testing.T) {
	blob, err := encodeState(core.Ledger{})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	for _, key := range []string{`"livingExpenses":[]`, `"medicalExpenses":[]`, `"initialCosts":[]`, `"incomes":[]`} {
		if !strings.Contains(string(blob), key) {
			t.Fatalf("blob missing %s: %s", key, blob)
		}
	}
}

func TestStateRoundTrip(t *testing.T) {
	state := core.Ledger{
		LivingExpenses: []core.LivingExpense{
			{ID: "1", Date: core.NewDate(2026, 3, 1), Vendor: "Mart", Category: core.CategoryFood, ItemName: "Food A", Quantity: 2, UnitPrice: 1000, ShippingFee: 500, TotalPrice: 2500},
		},
		MedicalExpenses: []core.MedicalExpense{
			{ID: "2", Date: core.NewDate(2026, 3, 15), ClinicName: "C", DiagnosisName: "Checkup", Price: 30000},
			{ID: "3", Date: core.NewDate(2026, 4, 1), ClinicName: "C", DiagnosisName: "Vaccine", Price: 25000, ReceiptImage: "data:image/png;base64,AAAA"},
		},
		Incomes: []core.Income{{ID: "4", Date: core.NewDate(2026, 2, 1), Source: "Gift", Amount: 1000}},
	}

	blob, err := encodeState(state)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := decodeState(blob)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	assertLedgersEqual(t, got, state)

	// receiptImage is omitted entirely when unset.
	var raw map[string][]map[string]any
	if err := json.Unmarshal(blob, &raw); err != nil {
		t.Fatalf("unmarshal raw: %v", err)
	}
	if _, present := raw["medicalExpenses"][0]["receiptImage"]; present {
		t.Fatal("unset receiptImage must be omitted from the blob")
	}
	if _, present := raw["medicalExpenses"][1]["receiptImage"]; !present {
		t.Fatal("set receiptImage must survive serialization")
	}
}

func TestDecodeStateMalformed(t *testing.T) {
	for _, blob := range []string{"", "{", "[1,2,3]", `"just a string"`} {
		if _, err := decodeState([]byte(blob)); !errors.Is(err, ErrMalformedState) {
			t.Fatalf("%q: expected ErrMalformedState, got %v", blob, err)
		}
	}
}

func TestDecodeStateMissingKeys(t *testing.T) {
	got, err := decodeState([]byte(`{"livingExpenses":[]}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.MedicalExpenses == nil || got.InitialCosts == nil || got.Incomes == nil {
		t.Fatalf("missing keys must decode as empty sequences: %+v", got)
	}
}
