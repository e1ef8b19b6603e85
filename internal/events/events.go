package events

import "time"

// EventType describes the kind of event emitted by the game.
type EventType string

const (
	EventTypeCyclePaid        EventType = "CyclePaid"
	EventTypeBusinessUpgraded EventType = "BusinessUpgraded"
	EventTypeUpgradeRejected  EventType = "UpgradeRejected"
	EventTypeSelectionMoved   EventType = "SelectionMoved"
)

// CyclePaidData is the payload for a completed production cycle.
type CyclePaidData struct {
	Business  string
	Amount    float64
	CashAfter float64
}

// BusinessUpgradedData is the payload for a purchased level.
type BusinessUpgradedData struct {
	Business  string
	Level     int
	Cost      float64
	CashAfter float64
}

// UpgradeRejectedData is the payload for an unaffordable upgrade.
type UpgradeRejectedData struct {
	Business string
	Cost     float64
	Cash     float64
}

// SelectionMovedData is the payload for a selection change.
type SelectionMovedData struct {
	Direction string
	From      int
	To        int
}

// Event represents a game event produced by a tick or a command.
type Event struct {
	ID        uint64
	At        time.Time
	CommandID string
	Type      EventType
	Data      any
}

// New constructs a new Event with the provided fields.
func New(id uint64, at time.Time, commandID string, eventType EventType, data any) Event {
	return Event{
		ID:        id,
		At:        at,
		CommandID: commandID,
		Type:      eventType,
		Data:      data,
	}
}

// Amount returns the money moved by the event, zero when none moved.
func (e Event) Amount() float64 {
	switch d := e.Data.(type) {
	case CyclePaidData:
		return d.Amount
	case BusinessUpgradedData:
		return -d.Cost
	default:
		return 0
	}
}

// Business returns the business the event concerns, if any.
func (e Event) Business() string {
	switch d := e.Data.(type) {
	case CyclePaidData:
		return d.Business
	case BusinessUpgradedData:
		return d.Business
	case UpgradeRejectedData:
		return d.Business
	default:
		return ""
	}
}
