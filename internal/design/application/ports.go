package application

import (
	"context"

	"github.com/trailercraft/storefront/internal/design/domain"
)

type BuildRequestRepository interface {
	Save(ctx context.Context, r domain.BuildRequest) error
	List(ctx context.Context, limit, offset int) ([]domain.BuildRequest, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status) error
}

type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}
