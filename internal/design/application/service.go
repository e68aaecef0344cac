package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/trailercraft/storefront/internal/design/domain"
	"github.com/trailercraft/storefront/internal/pricing"
)

type Result struct {
	RequestID string
	EmailSent bool
}

type Service struct {
	log        *slog.Logger
	repo       BuildRequestRepository
	mail       EmailSender
	salesEmail string
}

func NewService(log *slog.Logger, repo BuildRequestRepository, mail EmailSender, salesEmail string) *Service {
	return &Service{log: log, repo: repo, mail: mail, salesEmail: salesEmail}
}

// Submit validates the inquiry, records it as a build request and sends one
// best-effort notification to sales. The inquiry is durably captured by the
// record itself, so an email failure still reports overall success.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (Result, error) {
	if fields := req.Validate(); len(fields) > 0 {
		return Result{}, &ValidationError{Fields: fields}
	}

	r := domain.New(buildRequestFrom(req))
	if err := s.repo.Save(ctx, r); err != nil {
		return Result{}, fmt.Errorf("save build request: %w", err)
	}

	res := Result{RequestID: r.ID}
	if err := s.mail.Send(ctx, s.salesEmail, designSubject(r), designBody(r)); err != nil {
		s.log.Error("design request email failed", "request", r.ID, "err", err)
	} else {
		res.EmailSent = true
	}

	return res, nil
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.BuildRequest, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	switch status {
	case domain.StatusNew, domain.StatusContacted, domain.StatusQuoted, domain.StatusClosed:
	default:
		return fmt.Errorf("unknown status %q", status)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func buildRequestFrom(req SubmitRequest) domain.BuildRequest {
	equipment := map[string]string{}
	for name, v := range map[string]string{
		"griddle":        req.Griddle,
		"charbroiler":    req.Charbroiler,
		"deepFryer":      req.DeepFryer,
		"range":          req.Range,
		"steamWell":      req.SteamWell,
		"warmingCabinet": req.WarmingCabinet,
	} {
		if v != "" && v != "none" {
			equipment[name] = v
		}
	}

	return domain.BuildRequest{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		ZipCode:         req.ZipCode,
		PaymentMethods:  req.PaymentMethods,
		TrailerSize:     req.TrailerSize,
		RangeHood:       req.RangeHood,
		FireSuppression: req.FireSuppression,
		ExteriorColor:   req.ExteriorColor,
		InteriorFinish:  req.InteriorFinish,
		Budget:          req.Budget,
		NeedFinancing:   req.NeedFinancing,
		Refrigeration:   req.Refrigeration,
		Equipment:       equipment,
		TotalPriceCents: pricing.Cents(req.TotalPrice),
		AdditionalInfo:  req.AdditionalInfo,
	}
}

func designSubject(r domain.BuildRequest) string {
	return fmt.Sprintf("New custom design request from %s %s", r.FirstName, r.LastName)
}

func designBody(r domain.BuildRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Custom design request %s\n\n", r.ID)
	fmt.Fprintf(&b, "Customer: %s %s\n", r.FirstName, r.LastName)
	fmt.Fprintf(&b, "Email: %s\nPhone: %s\nZip: %s\n\n", r.Email, r.PhoneNumber, r.ZipCode)
	fmt.Fprintf(&b, "Trailer size: %s\n", r.TrailerSize)
	fmt.Fprintf(&b, "Range hood: %s\nFire suppression: %s\n", r.RangeHood, r.FireSuppression)
	fmt.Fprintf(&b, "Exterior: %s\nInterior: %s\n", r.ExteriorColor, r.InteriorFinish)
	if len(r.Refrigeration) > 0 {
		fmt.Fprintf(&b, "Refrigeration: %s\n", strings.Join(r.Refrigeration, ", "))
	}
	for name, v := range r.Equipment {
		fmt.Fprintf(&b, "%s: %s\n", name, v)
	}
	fmt.Fprintf(&b, "\nBudget: %s\nFinancing: %s\nPayment: %s\n", r.Budget, r.NeedFinancing, r.PaymentMethods)
	if r.TotalPriceCents > 0 {
		fmt.Fprintf(&b, "Configured total: $%.2f\n", pricing.Dollars(r.TotalPriceCents))
	}
	if r.AdditionalInfo != "" {
		fmt.Fprintf(&b, "\nNotes: %s\n", r.AdditionalInfo)
	}
	return b.String()
}
