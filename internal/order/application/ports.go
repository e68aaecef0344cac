package application

import (
	"context"

	"github.com/trailercraft/storefront/internal/order/domain"
)

type OrderRepository interface {
	Save(ctx context.Context, o domain.Order) error
	GetByNumber(ctx context.Context, number string) (domain.Order, error)
	List(ctx context.Context, limit, offset int) ([]domain.Order, error)
}

// EmailSender delivers one message. Implementations must treat failures as
// non-fatal to their callers; sends are best effort and never retried.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}
