package drink

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"restbucks/internal/entities"
	"restbucks/internal/service/drink"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var drinkColumns = []string{"id", "name", "milk", "size", "price_amount::text", "price_currency"}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Drink, error) {
	query, args, err := qb.Select(drinkColumns...).
		From("drinks").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected drink repository getbyid error: %w", err)
	}

	var drinkModel DrinkDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&drinkModel.ID,
		&drinkModel.Name,
		&drinkModel.Milk,
		&drinkModel.Size,
		&drinkModel.PriceAmount,
		&drinkModel.PriceCurrency,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, drink.ErrDrinkNotFound
		}
		return nil, fmt.Errorf("unexpected drink repository getbyid error: %w", err)
	}

	return ToDomain(&drinkModel)
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Drink, error) {
	return r.selectDrinks(ctx, qb.Select(drinkColumns...).From("drinks").OrderBy("name"))
}

// FindByNamePrefix matches case-insensitively. LIKE wildcards in prefix are taken literally.
func (r *Repository) FindByNamePrefix(ctx context.Context, prefix string) ([]entities.Drink, error) {
	escaper := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

	builder := qb.Select(drinkColumns...).
		From("drinks").
		Where(sq.ILike{"name": escaper.Replace(prefix) + "%"}).
		OrderBy("name")

	return r.selectDrinks(ctx, builder)
}

func (r *Repository) selectDrinks(ctx context.Context, builder sq.SelectBuilder) ([]entities.Drink, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected drink repository select error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected drink repository select error: %w", err)
	}
	defer rows.Close()

	drinkModels := make([]DrinkDB, 0, 4)
	for rows.Next() {
		var drinkModel DrinkDB
		err := rows.Scan(
			&drinkModel.ID,
			&drinkModel.Name,
			&drinkModel.Milk,
			&drinkModel.Size,
			&drinkModel.PriceAmount,
			&drinkModel.PriceCurrency,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected drink repository select error: %w", err)
		}
		drinkModels = append(drinkModels, drinkModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected drink repository select error: %w", err)
	}

	return ToDomainList(drinkModels)
}
