package application

import (
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// SubmitRequest is the custom-design inquiry payload. Field names match the
// configurator's persisted configuration record.
type SubmitRequest struct {
	FirstName       string   `json:"firstName"`
	LastName        string   `json:"lastName"`
	Email           string   `json:"email"`
	PhoneNumber     string   `json:"phoneNumber"`
	ZipCode         string   `json:"zipcode"`
	PaymentMethods  string   `json:"paymentMethods"`
	TrailerSize     string   `json:"trailerSize"`
	RangeHood       string   `json:"rangeHood"`
	FireSuppression string   `json:"fireSuppressionSystem"`
	ExteriorColor   string   `json:"exteriorColor"`
	InteriorFinish  string   `json:"interiorFinish"`
	Budget          string   `json:"budget"`
	NeedFinancing   string   `json:"needFinancing"`
	Refrigeration   []string `json:"refrigeration"`
	Griddle         string   `json:"griddle,omitempty"`
	Charbroiler     string   `json:"charbroiler,omitempty"`
	DeepFryer       string   `json:"deepFryer,omitempty"`
	Range           string   `json:"range,omitempty"`
	SteamWell       string   `json:"steamWell,omitempty"`
	WarmingCabinet  string   `json:"warmingCabinet,omitempty"`
	TotalPrice      float64  `json:"totalPrice,omitempty"`
	AdditionalInfo  string   `json:"additionalInfo,omitempty"`
}

// FieldError is one schema violation surfaced to the caller.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string { return "validation failed" }

func (r SubmitRequest) Validate() []FieldError {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Required),
		validation.Field(&r.LastName, validation.Required),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.PhoneNumber, validation.Required, validation.Length(10, 0)),
		validation.Field(&r.ZipCode, validation.Required, validation.Length(5, 0)),
		validation.Field(&r.PaymentMethods, validation.Required),
		validation.Field(&r.TrailerSize, validation.Required),
		validation.Field(&r.RangeHood, validation.Required),
		validation.Field(&r.FireSuppression, validation.Required),
		validation.Field(&r.ExteriorColor, validation.Required),
		validation.Field(&r.InteriorFinish, validation.Required),
		validation.Field(&r.Budget, validation.Required),
		validation.Field(&r.NeedFinancing, validation.Required),
	)
	return fieldErrors(err)
}

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
