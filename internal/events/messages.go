package events

import (
	"encoding/json"
	"fmt"
	"time"
)

// Actions carried by ledger events.
const (
	ActionCreated = "created"
	ActionRemoved = "removed"
)

// LedgerEvent notifies an external archiver that one record changed.
// Events carry identifiers only; the archiver reads full state elsewhere.
type LedgerEvent struct {
	Kind       string    `json:"kind"`
	RecordID   string    `json:"record_id"`
	Action     string    `json:"action"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewLedgerEvent builds an event stamped with the current time.
func NewLedgerEvent(kind, recordID, action string) *LedgerEvent {
	return &LedgerEvent{
		Kind:       kind,
		RecordID:   recordID,
		Action:     action,
		OccurredAt: time.Now().UTC(),
	}
}

// ToJSON serializes the event for publishing.
func (e *LedgerEvent) ToJSON() ([]byte, error) {
	body, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal ledger event: %w", err)
	}
	return body, nil
}

// LedgerEventFromJSON parses a published event.
func LedgerEventFromJSON(body []byte) (*LedgerEvent, error) {
	var e LedgerEvent
	if err := json.Unmarshal(body, &e); err != nil {
		return nil, fmt.Errorf("unmarshal ledger event: %w", err)
	}
	return &e, nil
}
