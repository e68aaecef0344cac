package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Truck is an admin-managed inventory row for the shop page. Monetary fields
// are optional (unlisted trucks have no sticker price) and stored in cents.
// Features and Options are free-form JSON owned by the storefront.
type Truck struct {
	ID                   string
	Name                 string
	Slug                 string
	Size                 string
	Type                 string
	Description          string
	PriceCents           *int64
	MonthlyEstimateCents *int64
	Images               []string
	Features             json.RawMessage
	Options              json.RawMessage
	Available            bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// New stamps a truck with an id and timestamps.
func New(t Truck) Truck {
	now := time.Now().UTC()
	t.ID = uuid.NewString()
	t.CreatedAt = now
	t.UpdatedAt = now
	return t
}
