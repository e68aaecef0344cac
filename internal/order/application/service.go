package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/trailercraft/storefront/internal/order/domain"
	"github.com/trailercraft/storefront/internal/pricing"
)

// EmailsSent reports per-recipient delivery outcome. Email failures never
// fail the submission; the order is placed once persisted.
type EmailsSent struct {
	Customer bool `json:"customer"`
	Sales    bool `json:"sales"`
}

type Result struct {
	OrderNumber string
	EmailsSent  EmailsSent
}

type Service struct {
	log        *slog.Logger
	repo       OrderRepository
	mail       EmailSender
	salesEmail string
}

func NewService(log *slog.Logger, repo OrderRepository, mail EmailSender, salesEmail string) *Service {
	return &Service{log: log, repo: repo, mail: mail, salesEmail: salesEmail}
}

// Submit validates the payload, persists the order and sends the customer
// confirmation and sales notification sequentially. Returns *ValidationError
// on bad input; any other error means the order was not persisted.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (Result, error) {
	if fields := req.Validate(); len(fields) > 0 {
		return Result{}, &ValidationError{Fields: fields}
	}

	o := domain.New(orderFromRequest(req))
	if err := s.repo.Save(ctx, o); err != nil {
		return Result{}, fmt.Errorf("save order: %w", err)
	}

	res := Result{OrderNumber: o.Number}

	if err := s.mail.Send(ctx, o.Email, customerSubject(o), customerBody(o)); err != nil {
		s.log.Error("customer confirmation email failed", "order", o.Number, "err", err)
	} else {
		res.EmailsSent.Customer = true
	}

	if err := s.mail.Send(ctx, s.salesEmail, salesSubject(o), salesBody(o)); err != nil {
		s.log.Error("sales notification email failed", "order", o.Number, "err", err)
	} else {
		res.EmailsSent.Sales = true
	}

	return res, nil
}

func (s *Service) GetByNumber(ctx context.Context, number string) (domain.Order, error) {
	return s.repo.GetByNumber(ctx, number)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.Order, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, limit, offset)
}

func orderFromRequest(req SubmitRequest) domain.Order {
	upgrades := make([]domain.Upgrade, 0, len(req.Upgrades))
	for _, u := range req.Upgrades {
		upgrades = append(upgrades, domain.Upgrade{
			ID:         u.ID,
			Name:       u.Name,
			PriceCents: pricing.Cents(u.Price),
		})
	}

	return domain.Order{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		ZipCode:       req.ZipCode,
		TruckName:     req.TruckName,
		TruckSize:     req.TruckSize,
		TruckType:     req.TruckType,
		TruckImage:    req.TruckImage,
		TruckImages:   req.TruckImages,
		Upgrades:      upgrades,
		PriceCents:    pricing.Cents(req.Price),
		TotalCents:    pricing.Cents(req.Total),
		PaymentMethod: req.PaymentMethod,
	}
}
