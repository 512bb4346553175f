package tracking

import "time"

const (
	StatusPacked     = "packed"
	StatusDispatched = "dispatched"
	StatusDelivered  = "delivered"
	StatusReturned   = "returned"
)

// Package is one physical parcel. Code is the short identifier printed on
// the QR label and keyed into lookups; it never changes after creation.
type Package struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Product   string    `json:"product"`
	BatchNo   string    `json:"batchNo,omitempty"`
	WeightKg  *float64  `json:"weightKg,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ScanEvent is an append-only history entry recorded whenever a label is
// scanned and the package moves to a new status.
type ScanEvent struct {
	ID        string    `json:"id"`
	PackageID string    `json:"packageId"`
	Status    string    `json:"status"`
	Note      string    `json:"note,omitempty"`
	ScannedAt time.Time `json:"scannedAt"`
}

func ValidStatus(value string) bool {
	switch value {
	case StatusPacked, StatusDispatched, StatusDelivered, StatusReturned:
		return true
	default:
		return false
	}
}
