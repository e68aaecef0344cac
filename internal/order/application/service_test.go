package application

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/trailercraft/storefront/internal/order/domain"
)

type fakeRepo struct {
	saved   []domain.Order
	saveErr error
}

func (f *fakeRepo) Save(_ context.Context, o domain.Order) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, o)
	return nil
}

func (f *fakeRepo) GetByNumber(_ context.Context, number string) (domain.Order, error) {
	for _, o := range f.saved {
		if o.Number == number {
			return o, nil
		}
	}
	return domain.Order{}, errors.New("not found")
}

func (f *fakeRepo) List(_ context.Context, _, _ int) ([]domain.Order, error) {
	return f.saved, nil
}

type fakeMailer struct {
	sent    []string // recipients, in order
	failFor map[string]error
}

func (f *fakeMailer) Send(_ context.Context, to, _, _ string) error {
	if err := f.failFor[to]; err != nil {
		return err
	}
	f.sent = append(f.sent, to)
	return nil
}

func validRequest() SubmitRequest {
	return SubmitRequest{
		FirstName:     "June",
		LastName:      "Park",
		Email:         "june@example.com",
		Phone:         "5125550142",
		Address:       "410 Brazos St",
		City:          "Austin",
		State:         "TX",
		ZipCode:       "78701",
		TruckName:     "The Workhorse",
		TruckSize:     "8x20",
		TruckImage:    "https://cdn.example.com/workhorse.jpg",
		TruckImages:   []string{"https://cdn.example.com/workhorse.jpg"},
		Upgrades:      []UpgradeSelection{{ID: "generator", Name: "Onboard Generator", Price: 4500}},
		Price:         52000,
		Total:         56500,
		PaymentMethod: "financing",
	}
}

func newTestService(repo *fakeRepo, mail *fakeMailer) *Service {
	return NewService(slog.Default(), repo, mail, "sales@trailercraft.example")
}

func TestSubmitHappyPath(t *testing.T) {
	repo := &fakeRepo{}
	mail := &fakeMailer{}
	svc := newTestService(repo, mail)

	res, err := svc.Submit(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if res.OrderNumber == "" {
		t.Error("empty order number")
	}
	if !res.EmailsSent.Customer || !res.EmailsSent.Sales {
		t.Errorf("emailsSent = %+v, want both true", res.EmailsSent)
	}
	if len(repo.saved) != 1 {
		t.Fatalf("saved orders = %d, want 1", len(repo.saved))
	}

	o := repo.saved[0]
	if o.Status != domain.StatusPending || o.PaymentStatus != domain.PaymentPending {
		t.Errorf("statuses = %s/%s, want pending/pending", o.Status, o.PaymentStatus)
	}
	if o.TotalCents != 5650000 {
		t.Errorf("total cents = %d, want 5650000", o.TotalCents)
	}
	if len(mail.sent) != 2 || mail.sent[0] != "june@example.com" || mail.sent[1] != "sales@trailercraft.example" {
		t.Errorf("emails sent to %v, want customer then sales", mail.sent)
	}
}

func TestSubmitRejectsNonPositiveTotal(t *testing.T) {
	for _, total := range []float64{0, -100} {
		repo := &fakeRepo{}
		mail := &fakeMailer{}
		svc := newTestService(repo, mail)

		req := validRequest()
		req.Total = total

		_, err := svc.Submit(context.Background(), req)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("total=%v: err = %v, want ValidationError", total, err)
		}

		found := false
		for _, f := range verr.Fields {
			if f.Field == "total" {
				found = true
			}
		}
		if !found {
			t.Errorf("total=%v: no error referencing total field: %+v", total, verr.Fields)
		}

		// Rejected before any persistence or email attempt.
		if len(repo.saved) != 0 {
			t.Errorf("total=%v: order persisted despite validation failure", total)
		}
		if len(mail.sent) != 0 {
			t.Errorf("total=%v: email sent despite validation failure", total)
		}
	}
}

func TestSubmitValidationCollectsFields(t *testing.T) {
	svc := newTestService(&fakeRepo{}, &fakeMailer{})

	req := validRequest()
	req.FirstName = ""
	req.Email = "not-an-email"
	req.TruckName = ""

	_, err := svc.Submit(context.Background(), req)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}

	want := map[string]bool{"firstName": false, "email": false, "truckName": false}
	for _, f := range verr.Fields {
		if _, ok := want[f.Field]; ok {
			want[f.Field] = true
		}
		if f.Message == "" {
			t.Errorf("field %s has empty message", f.Field)
		}
	}
	for field, seen := range want {
		if !seen {
			t.Errorf("missing violation for %s", field)
		}
	}
}

func TestSubmitSalesEmailFailureStillSucceeds(t *testing.T) {
	repo := &fakeRepo{}
	mail := &fakeMailer{failFor: map[string]error{
		"sales@trailercraft.example": errors.New("smtp down"),
	}}
	svc := newTestService(repo, mail)

	res, err := svc.Submit(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !res.EmailsSent.Customer {
		t.Error("customer email should have succeeded")
	}
	if res.EmailsSent.Sales {
		t.Error("sales email reported sent despite failure")
	}
	if len(repo.saved) != 1 {
		t.Error("order should remain persisted when an email fails")
	}
}

func TestSubmitCustomerEmailFailureStillSucceeds(t *testing.T) {
	repo := &fakeRepo{}
	mail := &fakeMailer{failFor: map[string]error{
		"june@example.com": errors.New("mailbox full"),
	}}
	svc := newTestService(repo, mail)

	res, err := svc.Submit(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.EmailsSent.Customer {
		t.Error("customer email reported sent despite failure")
	}
	if !res.EmailsSent.Sales {
		t.Error("sales email should still be attempted and succeed")
	}
}

func TestSubmitPersistenceFailure(t *testing.T) {
	repo := &fakeRepo{saveErr: errors.New("connection refused")}
	mail := &fakeMailer{}
	svc := newTestService(repo, mail)

	_, err := svc.Submit(context.Background(), validRequest())
	if err == nil {
		t.Fatal("expected error")
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		t.Error("persistence failure misclassified as validation error")
	}
	if len(mail.sent) != 0 {
		t.Error("no email should be sent when the order was not persisted")
	}
}
