package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending      Status = "pending"
	StatusConfirmed    Status = "confirmed"
	StatusInProduction Status = "in_production"
	StatusCompleted    Status = "completed"
	StatusCanceled     Status = "canceled"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Upgrade is a priced add-on snapshotted onto the order.
type Upgrade struct {
	ID         string
	Name       string
	PriceCents int64
}

// Order is the persisted record of a placed truck order. The truck fields
// are a snapshot of the catalog entry at purchase time.
type Order struct {
	Number        string
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	Address       string
	City          string
	State         string
	ZipCode       string
	TruckName     string
	TruckSize     string
	TruckType     string
	TruckImage    string
	TruckImages   []string
	Upgrades      []Upgrade
	PriceCents    int64
	TotalCents    int64
	PaymentMethod string
	PaymentStatus PaymentStatus
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewNumber generates a unique customer-facing order number.
func NewNumber() string {
	return "TC-" + strings.ToUpper(uuid.NewString()[:8])
}

// New stamps an order with a fresh number, pending statuses and timestamps.
func New(o Order) Order {
	now := time.Now().UTC()
	o.Number = NewNumber()
	o.PaymentStatus = PaymentPending
	o.Status = StatusPending
	o.CreatedAt = now
	o.UpdatedAt = now
	return o
}
