package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	CategoryFood   Category = "FOOD"
	CategoryToy    Category = "TOY"
	CategorySupply Category = "SUPPLY"
)

type (
	// Category is the closed set of living-expense categories.
	Category string

	// Date is a calendar date. It serializes as "YYYY-MM-DD" and compares
	// by calendar components, never by elapsed time.
	Date struct {
		time.Time
	}

	// LivingExpense is a recurring purchase for the pet (food, toys,
	// household supplies). TotalPrice is derived once at creation and
	// stored with the record.
	LivingExpense struct {
		ID          string   `json:"id"`
		Date        Date     `json:"date"`
		Vendor      string   `json:"vendor"`
		Category    Category `json:"category"`
		ItemName    string   `json:"itemName"`
		Quantity    int64    `json:"quantity"`
		UnitPrice   int64    `json:"unitPrice"`
		ShippingFee int64    `json:"shippingFee"`
		TotalPrice  int64    `json:"totalPrice"`
	}

	// MedicalExpense is a single clinic visit. ReceiptImage holds an
	// opaque encoded payload and is empty when no receipt was attached.
	MedicalExpense struct {
		ID            string `json:"id"`
		Date          Date   `json:"date"`
		ClinicName    string `json:"clinicName"`
		DiagnosisName string `json:"diagnosisName"`
		Price         int64  `json:"price"`
		ReceiptImage  string `json:"receiptImage,omitempty"`
	}

	// InitialCost is a one-time setup purchase. Structurally a
	// LivingExpense without a category, with the same total derivation.
	InitialCost struct {
		ID          string `json:"id"`
		Date        Date   `json:"date"`
		Vendor      string `json:"vendor"`
		ItemName    string `json:"itemName"`
		Quantity    int64  `json:"quantity"`
		UnitPrice   int64  `json:"unitPrice"`
		ShippingFee int64  `json:"shippingFee"`
		TotalPrice  int64  `json:"totalPrice"`
	}

	// Income is money received toward the pet (support, gifts, refunds).
	Income struct {
		ID     string `json:"id"`
		Date   Date   `json:"date"`
		Source string `json:"source"`
		Amount int64  `json:"amount"`
	}

	// Ledger is the full in-memory state: four sequences ordered
	// most-recently-added first.
	Ledger struct {
		LivingExpenses  []LivingExpense  `json:"livingExpenses"`
		MedicalExpenses []MedicalExpense `json:"medicalExpenses"`
		InitialCosts    []InitialCost    `json:"initialCosts"`
		Incomes         []Income         `json:"incomes"`
	}
)

// ErrInvalidRecord is the root of all record validation failures; the
// field-specific sentinels below wrap it so callers can match either.
var (
	ErrInvalidRecord   = errors.New("invalid record")
	ErrInvalidDate     = fmt.Errorf("%w: invalid date", ErrInvalidRecord)
	ErrInvalidCategory = fmt.Errorf("%w: invalid category", ErrInvalidRecord)
	ErrInvalidQuantity = fmt.Errorf("%w: quantity must be at least 1", ErrInvalidRecord)
	ErrNegativeAmount  = fmt.Errorf("%w: amount cannot be negative", ErrInvalidRecord)
	ErrEmptyField      = fmt.Errorf("%w: required field is empty", ErrInvalidRecord)
	ErrTotalMismatch   = fmt.Errorf("%w: stored total disagrees with line items", ErrInvalidRecord)
)

// TotalPrice derives the stored total for purchase records.
// All integer arithmetic; amounts are in the smallest currency unit.
func TotalPrice(quantity, unitPrice, shippingFee int64) int64 {
	return quantity*unitPrice + shippingFee
}

const dateLayout = "2006-01-02"

// NewDate creates a Date from calendar components.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

// Year returns the calendar year.
func (d Date) Year() int {
	return d.Time.Year()
}

// Month returns the calendar month, 1-12.
func (d Date) Month() int {
	return int(d.Time.Month())
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryToy, CategorySupply:
		return true
	default:
		return false
	}
}

// Categories lists the closed category set in display order.
func Categories() []Category {
	return []Category{CategoryFood, CategoryToy, CategorySupply}
}

func (e LivingExpense) Validate() error {
	if err := e.Date.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(e.Vendor) == "" || strings.TrimSpace(e.ItemName) == "" {
		return ErrEmptyField
	}
	if !e.Category.Valid() {
		return ErrInvalidCategory
	}
	if e.Quantity < 1 {
		return ErrInvalidQuantity
	}
	if e.UnitPrice < 0 || e.ShippingFee < 0 {
		return ErrNegativeAmount
	}
	if e.TotalPrice != TotalPrice(e.Quantity, e.UnitPrice, e.ShippingFee) {
		return ErrTotalMismatch
	}
	return nil
}

func (e MedicalExpense) Validate() error {
	if err := e.Date.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(e.ClinicName) == "" || strings.TrimSpace(e.DiagnosisName) == "" {
		return ErrEmptyField
	}
	if e.Price < 0 {
		return ErrNegativeAmount
	}
	return nil
}

func (c InitialCost) Validate() error {
	if err := c.Date.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(c.Vendor) == "" || strings.TrimSpace(c.ItemName) == "" {
		return ErrEmptyField
	}
	if c.Quantity < 1 {
		return ErrInvalidQuantity
	}
	if c.UnitPrice < 0 || c.ShippingFee < 0 {
		return ErrNegativeAmount
	}
	if c.TotalPrice != TotalPrice(c.Quantity, c.UnitPrice, c.ShippingFee) {
		return ErrTotalMismatch
	}
	return nil
}

func (i Income) Validate() error {
	if err := i.Date.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(i.Source) == "" {
		return ErrEmptyField
	}
	if i.Amount < 0 {
		return ErrNegativeAmount
	}
	return nil
}
