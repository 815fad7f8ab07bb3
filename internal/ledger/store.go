// Package ledger owns the in-memory ledger state and keeps it synchronized
// with a BlobStore: every mutation re-serializes the full state. The store
// is the single source of truth while the process runs; the blob is only
// read once, at open.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"petledger/internal/core"
	"petledger/internal/storage"
)

// Record kinds, used for removal routing and mutation events.
const (
	KindLivingExpense  = "living_expense"
	KindMedicalExpense = "medical_expense"
	KindInitialCost    = "initial_cost"
	KindIncome         = "income"
)

type (
	// EventPublisher receives mutation notifications after a record is
	// applied. Publish failures never fail the mutation.
	EventPublisher interface {
		RecordCreated(ctx context.Context, kind, id string) error
		RecordRemoved(ctx context.Context, kind, id string) error
	}

	// Options configures a Store. Zero values select defaults: UUID ids
	// and no event publishing.
	Options struct {
		NewID  func() string
		Events EventPublisher
	}

	// Store guards the four record sequences with a mutex so concurrent
	// HTTP handlers can mutate and snapshot safely.
	Store struct {
		mu     sync.Mutex
		state  core.Ledger
		blobs  storage.BlobStore
		newID  func() string
		events EventPublisher
	}

	// LivingExpenseParams are the caller-supplied fields of a living
	// expense; id and total are assigned by the store.
	LivingExpenseParams struct {
		Date        core.Date
		Vendor      string
		Category    core.Category
		ItemName    string
		Quantity    int64
		UnitPrice   int64
		ShippingFee int64
	}

	MedicalExpenseParams struct {
		Date          core.Date
		ClinicName    string
		DiagnosisName string
		Price         int64
		ReceiptImage  string
	}

	InitialCostParams struct {
		Date        core.Date
		Vendor      string
		ItemName    string
		Quantity    int64
		UnitPrice   int64
		ShippingFee int64
	}

	IncomeParams struct {
		Date   core.Date
		Source string
		Amount int64
	}
)

// Open loads persisted state from blobs and returns a ready store. An
// absent blob starts a fresh ledger; so does a malformed one, after a
// warning. Only a store that cannot be read at all is an error.
func Open(ctx context.Context, blobs storage.BlobStore, opts Options) (*Store, error) {
	s := &Store{
		blobs:  blobs,
		newID:  opts.NewID,
		events: opts.Events,
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}

	blob, err := blobs.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load ledger state: %w", err)
	}
	switch {
	case blob == nil:
		s.state = emptyLedger()
		slog.InfoContext(ctx, "No persisted ledger found, starting fresh")
	default:
		state, err := decodeState(blob)
		if err != nil {
			slog.WarnContext(ctx, "Persisted ledger is malformed, starting fresh",
				"error", err, "blob_bytes", len(blob))
			state = emptyLedger()
		}
		s.state = state
		slog.InfoContext(ctx, "Loaded persisted ledger",
			"living_expenses", len(state.LivingExpenses),
			"medical_expenses", len(state.MedicalExpenses),
			"initial_costs", len(state.InitialCosts),
			"incomes", len(state.Incomes))
	}
	return s, nil
}

func emptyLedger() core.Ledger {
	return core.Ledger{
		LivingExpenses:  []core.LivingExpense{},
		MedicalExpenses: []core.MedicalExpense{},
		InitialCosts:    []core.InitialCost{},
		Incomes:         []core.Income{},
	}
}

// AddLivingExpense validates, derives the stored total, prepends and
// persists. On a validation failure nothing changes. If persisting fails
// the record is still applied in memory and the returned error wraps
// storage.ErrUnavailable alongside the record.
func (s *Store) AddLivingExpense(ctx context.Context, p LivingExpenseParams) (core.LivingExpense, error) {
	record := core.LivingExpense{
		ID:          s.newID(),
		Date:        p.Date,
		Vendor:      p.Vendor,
		Category:    p.Category,
		ItemName:    p.ItemName,
		Quantity:    p.Quantity,
		UnitPrice:   p.UnitPrice,
		ShippingFee: p.ShippingFee,
		TotalPrice:  core.TotalPrice(p.Quantity, p.UnitPrice, p.ShippingFee),
	}
	if err := record.Validate(); err != nil {
		return core.LivingExpense{}, err
	}

	s.mu.Lock()
	s.state.LivingExpenses = append([]core.LivingExpense{record}, s.state.LivingExpenses...)
	err := s.persist(ctx)
	s.mu.Unlock()

	s.published(ctx, KindLivingExpense, record.ID, true)
	return record, err
}

// AddMedicalExpense validates, prepends and persists.
func (s *Store) AddMedicalExpense(ctx context.Context, p MedicalExpenseParams) (core.MedicalExpense, error) {
	record := core.MedicalExpense{
		ID:            s.newID(),
		Date:          p.Date,
		ClinicName:    p.ClinicName,
		DiagnosisName: p.DiagnosisName,
		Price:         p.Price,
		ReceiptImage:  p.ReceiptImage,
	}
	if err := record.Validate(); err != nil {
		return core.MedicalExpense{}, err
	}

	s.mu.Lock()
	s.state.MedicalExpenses = append([]core.MedicalExpense{record}, s.state.MedicalExpenses...)
	err := s.persist(ctx)
	s.mu.Unlock()

	s.published(ctx, KindMedicalExpense, record.ID, true)
	return record, err
}

// AddInitialCost validates, derives the stored total, prepends and persists.
func (s *Store) AddInitialCost(ctx context.Context, p InitialCostParams) (core.InitialCost, error) {
	record := core.InitialCost{
		ID:          s.newID(),
		Date:        p.Date,
		Vendor:      p.Vendor,
		ItemName:    p.ItemName,
		Quantity:    p.Quantity,
		UnitPrice:   p.UnitPrice,
		ShippingFee: p.ShippingFee,
		TotalPrice:  core.TotalPrice(p.Quantity, p.UnitPrice, p.ShippingFee),
	}
	if err := record.Validate(); err != nil {
		return core.InitialCost{}, err
	}

	s.mu.Lock()
	s.state.InitialCosts = append([]core.InitialCost{record}, s.state.InitialCosts...)
	err := s.persist(ctx)
	s.mu.Unlock()

	s.published(ctx, KindInitialCost, record.ID, true)
	return record, err
}

// AddIncome validates, prepends and persists.
func (s *Store) AddIncome(ctx context.Context, p IncomeParams) (core.Income, error) {
	record := core.Income{
		ID:     s.newID(),
		Date:   p.Date,
		Source: p.Source,
		Amount: p.Amount,
	}
	if err := record.Validate(); err != nil {
		return core.Income{}, err
	}

	s.mu.Lock()
	s.state.Incomes = append([]core.Income{record}, s.state.Incomes...)
	err := s.persist(ctx)
	s.mu.Unlock()

	s.published(ctx, KindIncome, record.ID, true)
	return record, err
}

// Remove deletes the record with the given id from the kind's sequence.
// An absent id is a no-op, not an error; nothing is persisted for it.
func (s *Store) Remove(ctx context.Context, kind, id string) error {
	s.mu.Lock()
	removed := false
	switch kind {
	case KindLivingExpense:
		s.state.LivingExpenses, removed = removeByID(s.state.LivingExpenses, id, func(e core.LivingExpense) string { return e.ID })
	case KindMedicalExpense:
		s.state.MedicalExpenses, removed = removeByID(s.state.MedicalExpenses, id, func(e core.MedicalExpense) string { return e.ID })
	case KindInitialCost:
		s.state.InitialCosts, removed = removeByID(s.state.InitialCosts, id, func(c core.InitialCost) string { return c.ID })
	case KindIncome:
		s.state.Incomes, removed = removeByID(s.state.Incomes, id, func(i core.Income) string { return i.ID })
	default:
		s.mu.Unlock()
		return fmt.Errorf("unknown record kind: %s", kind)
	}
	if !removed {
		s.mu.Unlock()
		return nil
	}
	err := s.persist(ctx)
	s.mu.Unlock()

	s.published(ctx, kind, id, false)
	return err
}

// Snapshot returns a deep copy of the current state for aggregation and
// filtering. Mutating the copy does not affect the store.
func (s *Store) Snapshot() core.Ledger {
	s.mu.Lock()
	defer s.mu.Unlock()
	return core.Ledger{
		LivingExpenses:  append([]core.LivingExpense{}, s.state.LivingExpenses...),
		MedicalExpenses: append([]core.MedicalExpense{}, s.state.MedicalExpenses...),
		InitialCosts:    append([]core.InitialCost{}, s.state.InitialCosts...),
		Incomes:         append([]core.Income{}, s.state.Incomes...),
	}
}

// persist re-serializes the full state. Callers hold the mutex. A save
// failure leaves the in-memory mutation in place; the session stays
// authoritative and the caller surfaces the degradation.
func (s *Store) persist(ctx context.Context) error {
	blob, err := encodeState(s.state)
	if err != nil {
		return err
	}
	if err := s.blobs.Save(ctx, blob); err != nil {
		slog.WarnContext(ctx, "Ledger save failed, in-memory state retained",
			"error", err, "blob_bytes", len(blob))
		return fmt.Errorf("persist ledger: %w", err)
	}
	return nil
}

// published notifies the optional event publisher. Failures are logged and
// swallowed: the mutation already happened.
func (s *Store) published(ctx context.Context, kind, id string, created bool) {
	if s.events == nil {
		return
	}
	var err error
	if created {
		err = s.events.RecordCreated(ctx, kind, id)
	} else {
		err = s.events.RecordRemoved(ctx, kind, id)
	}
	if err != nil {
		slog.WarnContext(ctx, "Failed to publish ledger event",
			"kind", kind, "id", id, "created", created, "error", err)
	}
}

func removeByID[T any](items []T, id string, idOf func(T) string) ([]T, bool) {
	for i, item := range items {
		if idOf(item) == id {
			return append(items[:i:i], items[i+1:]...), true
		}
	}
	return items, false
}
