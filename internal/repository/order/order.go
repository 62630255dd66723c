package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"restbucks/internal/entities"
	"restbucks/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var orderColumns = []string{"id", "location", "status", "ordered_date", "version", "preparing_since"}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create stores the order with its line items. Callers run it inside a transaction.
func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) error {
	orderModel, items := FromDomain(&orderEntity)

	query, args, err := qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			orderModel.ID,
			orderModel.Location,
			orderModel.Status,
			orderModel.OrderedDate,
			orderModel.Version,
			orderModel.PreparingSince,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected order repository create error: %w", err)
	}

	if _, err := r.querier.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return r.insertLineItems(ctx, items)
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	query, args, err := qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	var orderModel OrderDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&orderModel.ID,
		&orderModel.Location,
		&orderModel.Status,
		&orderModel.OrderedDate,
		&orderModel.Version,
		&orderModel.PreparingSince,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	items, err := r.lineItems(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}

	return ToDomain(&orderModel, items[id])
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Order, error) {
	return r.selectOrders(ctx, qb.Select(orderColumns...).From("orders").OrderBy("ordered_date", "id"))
}

// GetByStatus returns orders in any of statuses, oldest first.
func (r *Repository) GetByStatus(ctx context.Context, statuses ...entities.OrderStatus) ([]entities.Order, error) {
	if len(statuses) == 0 {
		return []entities.Order{}, nil
	}

	values := make([]string, 0, len(statuses))
	for _, status := range statuses {
		values = append(values, status.String())
	}

	builder := qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"status": values}).
		OrderBy("ordered_date", "id")

	return r.selectOrders(ctx, builder)
}

// Update writes the order if nobody changed it since it was read, bumping its version.
// Line items are replaced as a whole.
func (r *Repository) Update(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	orderModel, items := FromDomain(&orderEntity)

	query, args, err := qb.Update("orders").
		Set("location", orderModel.Location).
		Set("status", orderModel.Status).
		Set("preparing_since", orderModel.PreparingSince).
		Set("version", sq.Expr("version + 1")).
		Where(sq.Eq{"id": orderModel.ID, "version": orderModel.Version}).
		Suffix("RETURNING version").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	var version int64
	err = r.querier.QueryRow(ctx, query, args...).Scan(&version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.missingOrConflict(ctx, orderModel.ID)
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	_, err = r.querier.Exec(ctx, `DELETE FROM order_line_items WHERE order_id = $1`, orderModel.ID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}
	if err := r.insertLineItems(ctx, items); err != nil {
		return nil, err
	}

	orderEntity.Version = version
	return &orderEntity, nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.querier.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("unexpected order repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

func (r *Repository) missingOrConflict(ctx context.Context, id uuid.UUID) error {
	var exists bool
	err := r.querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("unexpected order repository update error: %w", err)
	}
	if exists {
		return order.ErrVersionConflict
	}
	return order.ErrOrderNotFound
}

func (r *Repository) insertLineItems(ctx context.Context, items []LineItemDB) error {
	if len(items) == 0 {
		return nil
	}

	builder := qb.Insert("order_line_items").
		Columns("order_id", "position", "drink_id", "name", "price_amount", "price_currency")
	for _, item := range items {
		builder = builder.Values(
			item.OrderID,
			item.Position,
			item.DrinkID,
			item.Name,
			sq.Expr("?::numeric", item.PriceAmount),
			item.PriceCurrency,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected order repository line items error: %w", err)
	}

	if _, err := r.querier.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("unexpected order repository line items error: %w", err)
	}
	return nil
}

func (r *Repository) selectOrders(ctx context.Context, builder sq.SelectBuilder) ([]entities.Order, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository select error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository select error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderModel OrderDB
		err := rows.Scan(
			&orderModel.ID,
			&orderModel.Location,
			&orderModel.Status,
			&orderModel.OrderedDate,
			&orderModel.Version,
			&orderModel.PreparingSince,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository select error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository select error: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(orderModels))
	for _, orderModel := range orderModels {
		ids = append(ids, orderModel.ID)
	}
	items, err := r.lineItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	orders := make([]entities.Order, 0, len(orderModels))
	for i := range orderModels {
		orderEntity, err := ToDomain(&orderModels[i], items[orderModels[i].ID])
		if err != nil {
			return nil, err
		}
		orders = append(orders, *orderEntity)
	}
	return orders, nil
}

func (r *Repository) lineItems(ctx context.Context, orderIDs []uuid.UUID) (map[uuid.UUID][]LineItemDB, error) {
	itemsByOrder := make(map[uuid.UUID][]LineItemDB, len(orderIDs))
	if len(orderIDs) == 0 {
		return itemsByOrder, nil
	}

	query, args, err := qb.Select("order_id", "position", "drink_id", "name", "price_amount::text", "price_currency").
		From("order_line_items").
		Where(sq.Eq{"order_id": orderIDs}).
		OrderBy("order_id", "position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository line items error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository line items error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item LineItemDB
		err := rows.Scan(
			&item.OrderID,
			&item.Position,
			&item.DrinkID,
			&item.Name,
			&item.PriceAmount,
			&item.PriceCurrency,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository line items error: %w", err)
		}
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository line items error: %w", err)
	}

	return itemsByOrder, nil
}
