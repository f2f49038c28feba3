package websocket

import (
	"encoding/json"
	"time"

	"risparmio/internal/domain"
)

// Event is the message sent to dashboard clients when a dataset changes.
// Format: { type, sheet, payload, timestamp }
type Event struct {
	Type      string       `json:"type"`
	Sheet     domain.Sheet `json:"sheet,omitempty"`
	Payload   interface{}  `json:"payload,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// DatasetRefreshed creates a dataset.refreshed event for one sheet. Clients
// re-fetch the affected reports when they receive it.
func DatasetRefreshed(sheet domain.Sheet, payload interface{}) Event {
	return Event{
		Type:      "dataset.refreshed",
		Sheet:     sheet,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON serializes the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}
