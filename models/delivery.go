package models

import "strings"

// FulfillmentMode says how the client wants to receive the order.
type FulfillmentMode string

const (
	ModeDelivery FulfillmentMode = "delivery"
	ModePickup   FulfillmentMode = "pickup"
)

// ValidFulfillmentMode reports whether mode is one of the known values.
func ValidFulfillmentMode(mode FulfillmentMode) bool {
	switch mode {
	case ModeDelivery, ModePickup:
		return true
	default:
		return false
	}
}

// Coordinates is a WGS84 position in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DeliveryDraft is the transient checkout form state for a session.
// Name and time are free text; only emptiness matters. The captured
// coordinate lives on the session's LocationProbe, not here.
type DeliveryDraft struct {
	Mode          FulfillmentMode `json:"mode"`
	ClientName    string          `json:"client_name"`
	RequestedTime string          `json:"requested_time"`
}

// DefaultDeliveryDraft returns a fresh draft: delivery mode, no name,
// no requested time.
func DefaultDeliveryDraft() DeliveryDraft {
	return DeliveryDraft{Mode: ModeDelivery}
}

// TrimmedName returns the client name with surrounding whitespace
// removed; empty means "not provided".
func (d DeliveryDraft) TrimmedName() string {
	return strings.TrimSpace(d.ClientName)
}

// TrimmedTime returns the requested time with surrounding whitespace
// removed; empty means "not provided".
func (d DeliveryDraft) TrimmedTime() string {
	return strings.TrimSpace(d.RequestedTime)
}
