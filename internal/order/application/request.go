package application

import (
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// SubmitRequest is the order submission payload. Monetary amounts arrive as
// dollars and are converted to cents past the boundary.
type SubmitRequest struct {
	FirstName     string             `json:"firstName"`
	LastName      string             `json:"lastName"`
	Email         string             `json:"email"`
	Phone         string             `json:"phone"`
	Address       string             `json:"address"`
	City          string             `json:"city"`
	State         string             `json:"state"`
	ZipCode       string             `json:"zipCode"`
	TruckName     string             `json:"truckName"`
	TruckSize     string             `json:"truckSize"`
	TruckType     string             `json:"truckType,omitempty"`
	TruckImage    string             `json:"truckImage"`
	TruckImages   []string           `json:"truckImages"`
	Upgrades      []UpgradeSelection `json:"upgrades"`
	Price         float64            `json:"price"`
	Total         float64            `json:"total"`
	PaymentMethod string             `json:"paymentMethod"`
}

type UpgradeSelection struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// FieldError is one schema violation surfaced to the caller.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the full list of field violations. It never maps
// to a server failure; callers translate it to a 400.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string { return "validation failed" }

// Validate checks the payload and returns field-level violations, or nil.
func (r SubmitRequest) Validate() []FieldError {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Required),
		validation.Field(&r.LastName, validation.Required),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Phone, validation.Required),
		validation.Field(&r.Address, validation.Required),
		validation.Field(&r.City, validation.Required),
		validation.Field(&r.State, validation.Required),
		validation.Field(&r.ZipCode, validation.Required),
		validation.Field(&r.TruckName, validation.Required),
		validation.Field(&r.TruckSize, validation.Required),
		validation.Field(&r.TruckImage, validation.Required),
		validation.Field(&r.Price, validation.Required, validation.Min(0.01).Error("must be a positive number")),
		validation.Field(&r.Total, validation.Required, validation.Min(0.01).Error("must be a positive number")),
		validation.Field(&r.PaymentMethod, validation.Required),
	)
	return fieldErrors(err)
}

// fieldErrors flattens an ozzo error into a deterministic field/message list.
func fieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	errs, ok := err.(validation.Errors)
	if !ok {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(errs))
	for field, ferr := range errs {
		out = append(out, FieldError{Field: field, Message: ferr.Error()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}
