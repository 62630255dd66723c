//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=drink_test
package drink

import (
	"context"

	"github.com/google/uuid"
	"restbucks/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Drink, error)
	GetAll(ctx context.Context) ([]entities.Drink, error)
	FindByNamePrefix(ctx context.Context, prefix string) ([]entities.Drink, error)
}
