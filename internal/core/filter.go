package core

import "strings"

// Predicate filtering over record sequences. A free-text query matches a
// record when any of the kind's text fields contains it case-insensitively;
// structured constraints are each optional and combine with AND. Filtering
// always preserves relative order, and an all-empty filter returns the
// input as-is.

type (
	LivingFilter struct {
		Query    string
		ItemName string
		Vendor   string
		Category Category // empty means any
		Date     string   // exact "YYYY-MM-DD" match
	}

	MedicalFilter struct {
		Query         string
		ClinicName    string
		DiagnosisName string
		Date          string
	}

	InitialFilter struct {
		Query    string
		ItemName string
		Vendor   string
		Date     string
	}

	IncomeFilter struct {
		Query  string
		Source string
		Date   string
	}
)

func (f LivingFilter) empty() bool {
	return f.Query == "" && f.ItemName == "" && f.Vendor == "" && f.Category == "" && f.Date == ""
}

func (f LivingFilter) matches(e LivingExpense) bool {
	if f.Query != "" && !containsFold(e.ItemName, f.Query) && !containsFold(e.Vendor, f.Query) {
		return false
	}
	if f.ItemName != "" && !containsFold(e.ItemName, f.ItemName) {
		return false
	}
	if f.Vendor != "" && !containsFold(e.Vendor, f.Vendor) {
		return false
	}
	if f.Category != "" && e.Category != f.Category {
		return false
	}
	if f.Date != "" && e.Date.String() != f.Date {
		return false
	}
	return true
}

// FilterLiving narrows living expenses to those matching f.
func FilterLiving(items []LivingExpense, f LivingFilter) []LivingExpense {
	if f.empty() {
		return items
	}
	out := make([]LivingExpense, 0, len(items))
	for _, e := range items {
		if f.matches(e) {
			out = append(out, e)
		}
	}
	return out
}

func (f MedicalFilter) empty() bool {
	return f.Query == "" && f.ClinicName == "" && f.DiagnosisName == "" && f.Date == ""
}

func (f MedicalFilter) matches(e MedicalExpense) bool {
	if f.Query != "" && !containsFold(e.ClinicName, f.Query) && !containsFold(e.DiagnosisName, f.Query) {
		return false
	}
	if f.ClinicName != "" && !containsFold(e.ClinicName, f.ClinicName) {
		return false
	}
	if f.DiagnosisName != "" && !containsFold(e.DiagnosisName, f.DiagnosisName) {
		return false
	}
	if f.Date != "" && e.Date.String() != f.Date {
		return false
	}
	return true
}

// FilterMedical narrows medical expenses to those matching f.
func FilterMedical(items []MedicalExpense, f MedicalFilter) []MedicalExpense {
	if f.empty() {
		return items
	}
	out := make([]MedicalExpense, 0, len(items))
	for _, e := range items {
		if f.matches(e) {
			out = append(out, e)
		}
	}
	return out
}

func (f InitialFilter) empty() bool {
	return f.Query == "" && f.ItemName == "" && f.Vendor == "" && f.Date == ""
}

func (f InitialFilter) matches(c InitialCost) bool {
	if f.Query != "" && !containsFold(c.ItemName, f.Query) && !containsFold(c.Vendor, f.Query) {
		return false
	}
	if f.ItemName != "" && !containsFold(c.ItemName, f.ItemName) {
		return false
	}
	if f.Vendor != "" && !containsFold(c.Vendor, f.Vendor) {
		return false
	}
	if f.Date != "" && c.Date.String() != f.Date {
		return false
	}
	return true
}

// FilterInitial narrows initial costs to those matching f.
func FilterInitial(items []InitialCost, f InitialFilter) []InitialCost {
	if f.empty() {
		return items
	}
	out := make([]InitialCost, 0, len(items))
	for _, c := range items {
		if f.matches(c) {
			out = append(out, c)
		}
	}
	return out
}

func (f IncomeFilter) empty() bool {
	return f.Query == "" && f.Source == "" && f.Date == ""
}

func (f IncomeFilter) matches(i Income) bool {
	if f.Query != "" && !containsFold(i.Source, f.Query) {
		return false
	}
	if f.Source != "" && !containsFold(i.Source, f.Source) {
		return false
	}
	if f.Date != "" && i.Date.String() != f.Date {
		return false
	}
	return true
}

// FilterIncome narrows income records to those matching f.
func FilterIncome(items []Income, f IncomeFilter) []Income {
	if f.empty() {
		return items
	}
	out := make([]Income, 0, len(items))
	for _, i := range items {
		if f.matches(i) {
			out = append(out, i)
		}
	}
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
