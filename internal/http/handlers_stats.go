package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"petledger/internal/charts"
	"petledger/internal/core"
)

type summaryResponse struct {
	LivingTotal  int64                   `json:"livingTotal"`
	MedicalTotal int64                   `json:"medicalTotal"`
	InitialTotal int64                   `json:"initialTotal"`
	IncomeTotal  int64                   `json:"incomeTotal"`
	GrandTotal   int64                   `json:"grandTotal"`
	Breakdown    map[core.Category]int64 `json:"breakdown"`
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	snapshot := s.store.Snapshot()

	living := core.LivingTotal(snapshot.LivingExpenses)
	medical := core.MedicalTotal(snapshot.MedicalExpenses)

	writeJSON(w, http.StatusOK, summaryResponse{
		LivingTotal:  living,
		MedicalTotal: medical,
		InitialTotal: core.InitialTotal(snapshot.InitialCosts),
		IncomeTotal:  core.IncomeTotal(snapshot.Incomes),
		GrandTotal:   living + medical,
		Breakdown:    core.CategoryBreakdown(snapshot.LivingExpenses),
	})
}

type monthlyResponse struct {
	Year   int                `json:"year"`
	Months []core.MonthTotals `json:"months"`
	Annual core.AnnualTotals  `json:"annual"`
}

func (s *Server) handleMonthly(w http.ResponseWriter, r *http.Request) {
	year, ok := s.yearParam(w, r)
	if !ok {
		return
	}

	snapshot := s.store.Snapshot()
	series := core.MonthlySeries(snapshot.LivingExpenses, snapshot.MedicalExpenses, year)

	writeJSON(w, http.StatusOK, monthlyResponse{
		Year:   year,
		Months: series,
		Annual: core.Annual(series),
	})
}

// handleYears reports the selectable year window for the statistics views.
func (s *Server) handleYears(w http.ResponseWriter, r *http.Request) {
	years := make([]int, 0, s.yearTo-s.yearFrom+1)
	for y := s.yearFrom; y <= s.yearTo; y++ {
		years = append(years, y)
	}
	writeJSON(w, http.StatusOK, map[string]any{"years": years})
}

func (s *Server) handleMonthlyChart(w http.ResponseWriter, r *http.Request) {
	year, ok := s.yearParam(w, r)
	if !ok {
		return
	}

	snapshot := s.store.Snapshot()
	series := core.MonthlySeries(snapshot.LivingExpenses, snapshot.MedicalExpenses, year)

	png, err := charts.RenderMonthlyBars(series, year, r.URL.Query().Get("series"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if png == nil {
		writeError(w, http.StatusNotFound, fmt.Sprintf("no spending recorded in %d", year))
		return
	}
	writePNG(w, png)
}

func (s *Server) handleCategoryChart(w http.ResponseWriter, r *http.Request) {
	breakdown := core.CategoryBreakdown(s.store.Snapshot().LivingExpenses)

	png, err := charts.RenderCategoryPie(breakdown)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to render chart")
		return
	}
	if png == nil {
		writeError(w, http.StatusNotFound, "no living expenses recorded")
		return
	}
	writePNG(w, png)
}

// yearParam reads the year query parameter, defaulting to the current
// year, and rejects values outside the configured window.
func (s *Server) yearParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return time.Now().Year(), true
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid year: "+raw)
		return 0, false
	}
	if year < s.yearFrom || year > s.yearTo {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("year %d outside supported range %d-%d", year, s.yearFrom, s.yearTo))
		return 0, false
	}
	return year, true
}

func writePNG(w http.ResponseWriter, png []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
