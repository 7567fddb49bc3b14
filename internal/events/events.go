package events

import (
	"encoding/json"
	"time"
)

// Event types published on the board's stream.
const (
	TypePing           = "ping"
	TypeCatalogLoading = "catalog_loading"
	TypeCatalogLoaded  = "catalog_loaded"
	TypeCatalogFailed  = "catalog_failed"
	TypeApply          = "apply"
)

type Event struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// Publisher is the part of Hub producers depend on.
type Publisher interface {
	Publish(evt string)
}

// Discard drops every event.
type Discard struct{}

func (Discard) Publish(string) {}

func MakeEvent(reqID, typ string, v int, data any) string {
	var raw json.RawMessage
	if data != nil {
		b, _ := json.Marshal(data)
		raw = b
	}
	e := Event{
		Type:      typ,
		Version:   v,
		At:        time.Now().UTC(),
		RequestID: reqID,
		Data:      raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}
