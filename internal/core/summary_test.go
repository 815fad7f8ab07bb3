package core

import "testing"

func livingFixture() []LivingExpense {
	return []LivingExpense{
		{ID: "1", Date: NewDate(2026, 3, 1), Vendor: "Mart", Category: CategoryFood, ItemName: "Food A", Quantity: 2, UnitPrice: 1000, ShippingFee: 500, TotalPrice: 2500},
		{ID: "2", Date: NewDate(2026, 3, 20), Vendor: "Web", Category: CategorySupply, ItemName: "Litter", Quantity: 1, UnitPrice: 12000, ShippingFee: 3000, TotalPrice: 15000},
		{ID: "3", Date: NewDate(2026, 7, 5), Vendor: "Web", Category: CategoryFood, ItemName: "Treats", Quantity: 3, UnitPrice: 2000, ShippingFee: 0, TotalPrice: 6000},
		{ID: "4", Date: NewDate(2025, 12, 31), Vendor: "Mart", Category: CategoryToy, ItemName: "Ball", Quantity: 1, UnitPrice: 4000, ShippingFee: 0, TotalPrice: 4000},
	}
}

func medicalFixture() []MedicalExpense {
	return []MedicalExpense{
		{ID: "m1", Date: NewDate(2026, 3, 15), ClinicName: "C", DiagnosisName: "Checkup", Price: 30000},
		{ID: "m2", Date: NewDate(2026, 11, 2), ClinicName: "C", DiagnosisName: "Vaccine", Price: 25000},
		{ID: "m3", Date: NewDate(2027, 1, 9), ClinicName: "Other", DiagnosisName: "Teeth", Price: 80000},
	}
}

func TestTotals(t *testing.T) {
	if got := LivingTotal(livingFixture()); got != 27500 {
		t.Fatalf("LivingTotal = %d, want 27500", got)
	}
	if got := MedicalTotal(medicalFixture()); got != 135000 {
		t.Fatalf("MedicalTotal = %d, want 135000", got)
	}
	if got := LivingTotal(nil); got != 0 {
		t.Fatalf("empty LivingTotal = %d", got)
	}
	if got := IncomeTotal([]Income{{Amount: 100}, {Amount: 250}}); got != 350 {
		t.Fatalf("IncomeTotal = %d", got)
	}
	if got := InitialTotal([]InitialCost{{TotalPrice: 45000}}); got != 45000 {
		t.Fatalf("InitialTotal = %d", got)
	}
}

func TestCategoryBreakdown(t *testing.T) {
	items := livingFixture()
	b := CategoryBreakdown(items)
	if len(b) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(b))
	}
	if b[CategoryFood] != 8500 || b[CategoryToy] != 4000 || b[CategorySupply] != 15000 {
		t.Fatalf("unexpected breakdown: %v", b)
	}

	// The breakdown always sums to the living total.
	var sum int64
	for _, v := range b {
		sum += v
	}
	if sum != LivingTotal(items) {
		t.Fatalf("breakdown sum %d != total %d", sum, LivingTotal(items))
	}

	// Zero-spend categories are retained as explicit zeros.
	b = CategoryBreakdown(nil)
	if len(b) != 3 {
		t.Fatalf("empty input: expected 3 categories, got %d", len(b))
	}
	for c, v := range b {
		if v != 0 {
			t.Fatalf("category %s: expected 0, got %d", c, v)
		}
	}
}

func TestMonthlySeries(t *testing.T) {
	series := MonthlySeries(livingFixture(), medicalFixture(), 2026)
	if len(series) != 12 {
		t.Fatalf("expected 12 entries, got %d", len(series))
	}
	for i, m := range series {
		if m.Month != i+1 {
			t.Fatalf("entry %d has month %d", i, m.Month)
		}
		if m.Total != m.Living+m.Medical {
			t.Fatalf("month %d: total %d != living %d + medical %d", m.Month, m.Total, m.Living, m.Medical)
		}
	}

	march := series[2]
	if march.Living != 17500 {
		t.Fatalf("march living = %d, want 17500", march.Living)
	}
	if march.Medical != 30000 {
		t.Fatalf("march medical = %d, want 30000", march.Medical)
	}
	if march.Total != 47500 {
		t.Fatalf("march total = %d, want 47500", march.Total)
	}
	july := series[6]
	if july.Living != 6000 || july.Medical != 0 {
		t.Fatalf("july = %+v", july)
	}
	if series[11].Total != 0 {
		// The 2025-12-31 record must not leak into December 2026.
		t.Fatalf("december 2026 = %+v", series[11])
	}
}

func TestMonthlySeriesEmptyYear(t *testing.T) {
	series := MonthlySeries(livingFixture(), medicalFixture(), 1999)
	if len(series) != 12 {
		t.Fatalf("expected 12 entries, got %d", len(series))
	}
	for _, m := range series {
		if m.Living != 0 || m.Medical != 0 || m.Total != 0 {
			t.Fatalf("expected zero month, got %+v", m)
		}
	}
}

func TestAnnual(t *testing.T) {
	series := MonthlySeries(livingFixture(), medicalFixture(), 2026)
	totals := Annual(series)
	if totals.Living != 23500 {
		t.Fatalf("annual living = %d, want 23500", totals.Living)
	}
	if totals.Medical != 55000 {
		t.Fatalf("annual medical = %d, want 55000", totals.Medical)
	}
	if totals.Total != totals.Living+totals.Medical {
		t.Fatalf("annual total = %d", totals.Total)
	}
}
