package application

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/trailercraft/storefront/internal/catalog/domain"
)

// FieldError is one schema violation surfaced to the caller.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string { return "validation failed" }

type Service struct {
	repo TruckRepository
}

func NewService(repo TruckRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, t domain.Truck) (domain.Truck, error) {
	if err := validateTruck(t); err != nil {
		return domain.Truck{}, err
	}
	if t.Slug == "" {
		t.Slug = slugify(t.Name)
	}
	t = domain.New(t)
	if err := s.repo.Save(ctx, t); err != nil {
		return domain.Truck{}, fmt.Errorf("save truck: %w", err)
	}
	return t, nil
}

func (s *Service) Update(ctx context.Context, t domain.Truck) (domain.Truck, error) {
	if err := validateTruck(t); err != nil {
		return domain.Truck{}, err
	}
	t.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, t); err != nil {
		return domain.Truck{}, fmt.Errorf("update truck %s: %w", t.ID, err)
	}
	return t, nil
}

func (s *Service) Get(ctx context.Context, id string) (domain.Truck, error) {
	return s.repo.Get(ctx, id)
}

// ListAvailable serves the public shop page.
func (s *Service) ListAvailable(ctx context.Context) ([]domain.Truck, error) {
	return s.repo.List(ctx, true)
}

// ListAll serves the back office, including unlisted trucks.
func (s *Service) ListAll(ctx context.Context) ([]domain.Truck, error) {
	return s.repo.List(ctx, false)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func validateTruck(t domain.Truck) error {
	err := validation.ValidateStruct(&t,
		validation.Field(&t.Name, validation.Required),
		validation.Field(&t.Size, validation.Required),
	)
	if err == nil {
		return nil
	}

	errs, ok := err.(validation.Errors)
	if !ok {
		return err
	}
	fields := make([]FieldError, 0, len(errs))
	for field, ferr := range errs {
		fields = append(fields, FieldError{Field: strings.ToLower(field), Message: ferr.Error()})
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Field < fields[j].Field })
	return &ValidationError{Fields: fields}
}

func slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	lastDash := false
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			b.WriteRune(c)
			lastDash = false
		default:
			if !lastDash && b.Len() > 0 {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
