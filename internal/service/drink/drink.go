package drink

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"restbucks/internal/entities"
)

type Drink struct {
	repository Repository
}

func New(repository Repository) *Drink {
	return &Drink{
		repository: repository,
	}
}

func (s *Drink) GetDrink(ctx context.Context, id uuid.UUID) (*entities.Drink, error) {
	if id == uuid.Nil {
		return nil, ErrDrinkNotFound
	}

	drink, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get drink: %w", err)
	}
	return drink, nil
}

func (s *Drink) GetDrinks(ctx context.Context) ([]entities.Drink, error) {
	drinks, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get drinks: %w", err)
	}
	return drinks, nil
}

// FindByName matches drinks whose name starts with query, ignoring case. An empty query
// lists the whole menu.
func (s *Drink) FindByName(ctx context.Context, query string) ([]entities.Drink, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.GetDrinks(ctx)
	}

	drinks, err := s.repository.FindByNamePrefix(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("find drinks by name: %w", err)
	}
	return drinks, nil
}
