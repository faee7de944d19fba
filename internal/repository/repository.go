package repository

import (
	"context"
	"errors"

	"github.com/ecoezer/byaliundmesut/internal/domain"
)

// CartRepository defines the durable storage port for the cart's line
// collection. Consumers define this interface, not the implementation.
type CartRepository interface {
	Load(ctx context.Context) ([]domain.OrderLine, error)
	Save(ctx context.Context, lines []domain.OrderLine) error
}

var ErrCartNotFound = errors.New("cart not found")
