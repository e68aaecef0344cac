package application

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/trailercraft/storefront/internal/design/domain"
)

type fakeRepo struct {
	saved   []domain.BuildRequest
	saveErr error
}

func (f *fakeRepo) Save(_ context.Context, r domain.BuildRequest) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, r)
	return nil
}

func (f *fakeRepo) List(_ context.Context, _, _ int) ([]domain.BuildRequest, error) {
	return f.saved, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id string, status domain.Status) error {
	for i := range f.saved {
		if f.saved[i].ID == id {
			f.saved[i].Status = status
			return nil
		}
	}
	return errors.New("not found")
}

type fakeMailer struct {
	sent int
	err  error
}

func (f *fakeMailer) Send(_ context.Context, _, _, _ string) error {
	if f.err != nil {
		return f.err
	}
	f.sent++
	return nil
}

func validRequest() SubmitRequest {
	return SubmitRequest{
		FirstName:       "June",
		LastName:        "Park",
		Email:           "june@example.com",
		PhoneNumber:     "5125550142",
		ZipCode:         "78701",
		PaymentMethods:  "cash",
		TrailerSize:     "8x20",
		RangeHood:       "8ft",
		FireSuppression: "yes",
		ExteriorColor:   "matte-black",
		InteriorFinish:  "stainless",
		Budget:          "50k-75k",
		NeedFinancing:   "yes",
		Refrigeration:   []string{"reach-in", "freezer"},
		Griddle:         "36in",
		TotalPrice:      48250.50,
	}
}

func TestSubmitHappyPath(t *testing.T) {
	repo := &fakeRepo{}
	mail := &fakeMailer{}
	svc := NewService(slog.Default(), repo, mail, "sales@trailercraft.example")

	res, err := svc.Submit(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.RequestID == "" {
		t.Error("empty request id")
	}
	if !res.EmailSent {
		t.Error("emailSent = false, want true")
	}
	if len(repo.saved) != 1 {
		t.Fatalf("saved = %d, want 1", len(repo.saved))
	}

	r := repo.saved[0]
	if r.Status != domain.StatusNew {
		t.Errorf("status = %s, want new", r.Status)
	}
	if r.TotalPriceCents != 4825050 {
		t.Errorf("total cents = %d, want 4825050", r.TotalPriceCents)
	}
	if r.Equipment["griddle"] != "36in" {
		t.Errorf("equipment = %v, want griddle 36in", r.Equipment)
	}
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SubmitRequest)
		field  string
	}{
		{"short phone", func(r *SubmitRequest) { r.PhoneNumber = "555123" }, "phoneNumber"},
		{"short zip", func(r *SubmitRequest) { r.ZipCode = "787" }, "zipcode"},
		{"bad email", func(r *SubmitRequest) { r.Email = "nope" }, "email"},
		{"missing size", func(r *SubmitRequest) { r.TrailerSize = "" }, "trailerSize"},
		{"missing budget", func(r *SubmitRequest) { r.Budget = "" }, "budget"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			svc := NewService(slog.Default(), repo, &fakeMailer{}, "sales@trailercraft.example")

			req := validRequest()
			tt.mutate(&req)

			_, err := svc.Submit(context.Background(), req)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err = %v, want ValidationError", err)
			}

			found := false
			for _, f := range verr.Fields {
				if f.Field == tt.field {
					found = true
				}
			}
			if !found {
				t.Errorf("no violation for %s: %+v", tt.field, verr.Fields)
			}
			if len(repo.saved) != 0 {
				t.Error("request persisted despite validation failure")
			}
		})
	}
}

func TestSubmitEmailFailureStillSucceeds(t *testing.T) {
	repo := &fakeRepo{}
	mail := &fakeMailer{err: errors.New("smtp down")}
	svc := NewService(slog.Default(), repo, mail, "sales@trailercraft.example")

	res, err := svc.Submit(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.EmailSent {
		t.Error("emailSent = true despite failure")
	}
	if len(repo.saved) != 1 {
		t.Error("build request should still be recorded")
	}
}

func TestUpdateStatusRejectsUnknown(t *testing.T) {
	svc := NewService(slog.Default(), &fakeRepo{}, &fakeMailer{}, "sales@trailercraft.example")
	if err := svc.UpdateStatus(context.Background(), "id", "shipped"); err == nil {
		t.Error("unknown status accepted")
	}
}
