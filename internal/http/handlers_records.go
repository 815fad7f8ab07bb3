package http

import (
	"net/http"

	"petledger/internal/core"
	"petledger/internal/ledger"
)

// Request bodies mirror the record JSON contract minus the server-assigned
// fields: no id, no stored total, date as a "YYYY-MM-DD" string.

type livingExpenseRequest struct {
	Date        string `json:"date"`
	Vendor      string `json:"vendor"`
	Category    string `json:"category"`
	ItemName    string `json:"itemName"`
	Quantity    int64  `json:"quantity"`
	UnitPrice   int64  `json:"unitPrice"`
	ShippingFee int64  `json:"shippingFee"`
}

type medicalExpenseRequest struct {
	Date          string `json:"date"`
	ClinicName    string `json:"clinicName"`
	DiagnosisName string `json:"diagnosisName"`
	Price         int64  `json:"price"`
	ReceiptImage  string `json:"receiptImage"`
}

type initialCostRequest struct {
	Date        string `json:"date"`
	Vendor      string `json:"vendor"`
	ItemName    string `json:"itemName"`
	Quantity    int64  `json:"quantity"`
	UnitPrice   int64  `json:"unitPrice"`
	ShippingFee int64  `json:"shippingFee"`
}

type incomeRequest struct {
	Date   string `json:"date"`
	Source string `json:"source"`
	Amount int64  `json:"amount"`
}

func (s *Server) handleCreateLivingExpense(w http.ResponseWriter, r *http.Request) {
	var req livingExpenseRequest
	if !decodeBody(w, r, &req) {
		return
	}
	date, err := core.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	record, err := s.store.AddLivingExpense(r.Context(), ledger.LivingExpenseParams{
		Date:        date,
		Vendor:      req.Vendor,
		Category:    core.Category(req.Category),
		ItemName:    req.ItemName,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
		ShippingFee: req.ShippingFee,
	})
	writeMutation(w, r, http.StatusCreated, map[string]any{"record": record}, err)
}

func (s *Server) handleCreateMedicalExpense(w http.ResponseWriter, r *http.Request) {
	var req medicalExpenseRequest
	if !decodeBody(w, r, &req) {
		return
	}
	date, err := core.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	record, err := s.store.AddMedicalExpense(r.Context(), ledger.MedicalExpenseParams{
		Date:          date,
		ClinicName:    req.ClinicName,
		DiagnosisName: req.DiagnosisName,
		Price:         req.Price,
		ReceiptImage:  req.ReceiptImage,
	})
	writeMutation(w, r, http.StatusCreated, map[string]any{"record": record}, err)
}

func (s *Server) handleCreateInitialCost(w http.ResponseWriter, r *http.Request) {
	var req initialCostRequest
	if !decodeBody(w, r, &req) {
		return
	}
	date, err := core.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	record, err := s.store.AddInitialCost(r.Context(), ledger.InitialCostParams{
		Date:        date,
		Vendor:      req.Vendor,
		ItemName:    req.ItemName,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
		ShippingFee: req.ShippingFee,
	})
	writeMutation(w, r, http.StatusCreated, map[string]any{"record": record}, err)
}

func (s *Server) handleCreateIncome(w http.ResponseWriter, r *http.Request) {
	var req incomeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	date, err := core.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	record, err := s.store.AddIncome(r.Context(), ledger.IncomeParams{
		Date:   date,
		Source: req.Source,
		Amount: req.Amount,
	})
	writeMutation(w, r, http.StatusCreated, map[string]any{"record": record}, err)
}

// removeHandler builds the DELETE handler for one record kind. Removing an
// id that does not exist succeeds quietly, matching the store.
func (s *Server) removeHandler(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			writeError(w, http.StatusBadRequest, "missing record id")
			return
		}
		err := s.store.Remove(r.Context(), kind, id)
		writeMutation(w, r, http.StatusOK, map[string]any{"removed": id}, err)
	}
}

func (s *Server) handleListLivingExpenses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := core.LivingFilter{
		Query:    q.Get("q"),
		ItemName: q.Get("itemName"),
		Vendor:   q.Get("vendor"),
		Category: core.Category(q.Get("category")),
		Date:     q.Get("date"),
	}
	if filter.Category != "" && !filter.Category.Valid() {
		writeError(w, http.StatusBadRequest, "unknown category: "+string(filter.Category))
		return
	}
	items := core.FilterLiving(s.store.Snapshot().LivingExpenses, filter)
	writeJSON(w, http.StatusOK, map[string]any{"records": items, "count": len(items)})
}

func (s *Server) handleListMedicalExpenses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := core.MedicalFilter{
		Query:         q.Get("q"),
		ClinicName:    q.Get("clinicName"),
		DiagnosisName: q.Get("diagnosisName"),
		Date:          q.Get("date"),
	}
	items := core.FilterMedical(s.store.Snapshot().MedicalExpenses, filter)
	writeJSON(w, http.StatusOK, map[string]any{"records": items, "count": len(items)})
}

func (s *Server) handleListInitialCosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := core.InitialFilter{
		Query:    q.Get("q"),
		ItemName: q.Get("itemName"),
		Vendor:   q.Get("vendor"),
		Date:     q.Get("date"),
	}
	items := core.FilterInitial(s.store.Snapshot().InitialCosts, filter)
	writeJSON(w, http.StatusOK, map[string]any{"records": items, "count": len(items)})
}

func (s *Server) handleListIncomes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := core.IncomeFilter{
		Query:  q.Get("q"),
		Source: q.Get("source"),
		Date:   q.Get("date"),
	}
	items := core.FilterIncome(s.store.Snapshot().Incomes, filter)
	writeJSON(w, http.StatusOK, map[string]any{"records": items, "count": len(items)})
}
