package domain

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusQuoted    Status = "quoted"
	StatusClosed    Status = "closed"
)

// BuildRequest is the back-office record of a submitted custom-design
// inquiry. Unlike an order it carries no payment obligation; it exists so
// sales can follow up.
type BuildRequest struct {
	ID              string
	FirstName       string
	LastName        string
	Email           string
	PhoneNumber     string
	ZipCode         string
	PaymentMethods  string
	TrailerSize     string
	RangeHood       string
	FireSuppression string
	ExteriorColor   string
	InteriorFinish  string
	Budget          string
	NeedFinancing   string
	Refrigeration   []string
	Equipment       map[string]string
	TotalPriceCents int64
	AdditionalInfo  string
	Status          Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// New stamps a build request with an id, new status and timestamps.
func New(r BuildRequest) BuildRequest {
	now := time.Now().UTC()
	r.ID = uuid.NewString()
	r.Status = StatusNew
	r.CreatedAt = now
	r.UpdatedAt = now
	return r
}
