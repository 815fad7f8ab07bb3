package core

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestTotalPrice(t *testing.T) {
	cases := []struct {
		quantity, unitPrice, shippingFee int64
		want                             int64
	}{
		{2, 1000, 500, 2500},
		{1, 0, 300, 300},
		{3, 2500, 0, 7500},
		{1, 0, 0, 0},
	}
	for i, tc := range cases {
		if got := TotalPrice(tc.quantity, tc.unitPrice, tc.shippingFee); got != tc.want {
			t.Fatalf("case %d: got %d, want %d", i, got, tc.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Year() != 2026 || d.Month() != 3 {
		t.Fatalf("got year=%d month=%d", d.Year(), d.Month())
	}
	if d.String() != "2026-03-01" {
		t.Fatalf("round-trip mismatch: %q", d.String())
	}

	for _, bad := range []string{"", "03/01/2026", "2026-13-01", "yesterday"} {
		if _, err := ParseDate(bad); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("%q: expected ErrInvalidDate, got %v", bad, err)
		}
	}
}

func TestDateJSON(t *testing.T) {
	b, err := json.Marshal(NewDate(2026, 3, 15))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2026-03-15"` {
		t.Fatalf("got %s", b)
	}

	var d Date
	if err := json.Unmarshal([]byte(`"2026-03-15"`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !d.Equal(NewDate(2026, 3, 15).Time) {
		t.Fatalf("got %v", d)
	}
}

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories() {
		if !c.Valid() {
			t.Fatalf("%s should be valid", c)
		}
	}
	if Category("TREAT").Valid() {
		t.Fatal("unknown category accepted")
	}
	if Category("").Valid() {
		t.Fatal("empty category accepted")
	}
}

func TestLivingExpenseValidate(t *testing.T) {
	good := LivingExpense{
		ID:          "a",
		Date:        NewDate(2026, 3, 1),
		Vendor:      "Mart",
		Category:    CategoryFood,
		ItemName:    "Food A",
		Quantity:    2,
		UnitPrice:   1000,
		ShippingFee: 500,
		TotalPrice:  2500,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*LivingExpense)
		want   error
	}{
		{"zero date", func(e *LivingExpense) { e.Date = Date{} }, ErrInvalidDate},
		{"empty vendor", func(e *LivingExpense) { e.Vendor = " " }, ErrEmptyField},
		{"empty item", func(e *LivingExpense) { e.ItemName = "" }, ErrEmptyField},
		{"bad category", func(e *LivingExpense) { e.Category = "SNACKS" }, ErrInvalidCategory},
		{"zero quantity", func(e *LivingExpense) { e.Quantity = 0 }, ErrInvalidQuantity},
		{"negative quantity", func(e *LivingExpense) { e.Quantity = -1 }, ErrInvalidQuantity},
		{"negative price", func(e *LivingExpense) { e.UnitPrice = -100; e.TotalPrice = TotalPrice(e.Quantity, -100, e.ShippingFee) }, ErrNegativeAmount},
		{"negative shipping", func(e *LivingExpense) { e.ShippingFee = -1; e.TotalPrice = TotalPrice(e.Quantity, e.UnitPrice, -1) }, ErrNegativeAmount},
		{"stale total", func(e *LivingExpense) { e.TotalPrice = 9999 }, ErrTotalMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := good
			tc.mutate(&e)
			err := e.Validate()
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
			if !errors.Is(err, ErrInvalidRecord) {
				t.Fatalf("%v should wrap ErrInvalidRecord", err)
			}
		})
	}
}

func TestMedicalExpenseValidate(t *testing.T) {
	good := MedicalExpense{
		ID:            "m",
		Date:          NewDate(2026, 3, 15),
		ClinicName:    "C",
		DiagnosisName: "Checkup",
		Price:         30000,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	// Receipt image is optional, no constraint on its content.
	good.ReceiptImage = "data:image/png;base64,AAAA"
	if err := good.Validate(); err != nil {
		t.Fatalf("with receipt: %v", err)
	}

	bad := good
	bad.Price = -1
	if err := bad.Validate(); !errors.Is(err, ErrNegativeAmount) {
		t.Fatalf("got %v", err)
	}
	bad = good
	bad.ClinicName = ""
	if err := bad.Validate(); !errors.Is(err, ErrEmptyField) {
		t.Fatalf("got %v", err)
	}
}

func TestInitialCostValidate(t *testing.T) {
	good := InitialCost{
		ID:         "c",
		Date:       NewDate(2026, 1, 2),
		Vendor:     "Shop",
		ItemName:   "Carrier",
		Quantity:   1,
		UnitPrice:  45000,
		TotalPrice: 45000,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	bad := good
	bad.TotalPrice = 1
	if err := bad.Validate(); !errors.Is(err, ErrTotalMismatch) {
		t.Fatalf("got %v", err)
	}
}

func TestIncomeValidate(t *testing.T) {
	good := Income{ID: "i", Date: NewDate(2026, 2, 1), Source: "Allowance", Amount: 50000}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	bad := good
	bad.Source = "  "
	if err := bad.Validate(); !errors.Is(err, ErrEmptyField) {
		t.Fatalf("got %v", err)
	}
	bad = good
	bad.Amount = -5
	if err := bad.Validate(); !errors.Is(err, ErrNegativeAmount) {
		t.Fatalf("got %v", err)
	}
	// Zero amount is allowed, only negatives are out of domain.
	bad = good
	bad.Amount = 0
	if err := bad.Validate(); err != nil {
		t.Fatalf("zero amount: %v", err)
	}
}
