package payment

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"restbucks/internal/entities"
	"restbucks/internal/repository"
	"restbucks/internal/service/payment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create fails with payment.ErrOrderAlreadyPaid when the order already has a payment and
// with payment.ErrOrderNotFound when the order was deleted meanwhile.
func (r *Repository) Create(ctx context.Context, paymentEntity entities.Payment) error {
	paymentModel := FromDomain(&paymentEntity)

	query, args, err := qb.Insert("payments").
		Columns("id", "order_id", "card_number", "amount", "currency", "payment_date").
		Values(
			paymentModel.ID,
			paymentModel.OrderID,
			paymentModel.CardNumber,
			sq.Expr("?::numeric", paymentModel.Amount),
			paymentModel.Currency,
			paymentModel.PaymentDate,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected payment repository create error: %w", err)
	}

	if _, err := r.querier.Exec(ctx, query, args...); err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return payment.ErrOrderAlreadyPaid
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			if repository.ViolatedConstraint(err) == "payments_card_number_fkey" {
				return payment.ErrCreditCardNotFound
			}
			return payment.ErrOrderNotFound
		}
		return fmt.Errorf("unexpected payment repository create error: %w", err)
	}

	return nil
}

func (r *Repository) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entities.Payment, error) {
	query := `SELECT id, order_id, card_number, amount::text, currency, payment_date
		FROM payments
		WHERE order_id = $1`

	var paymentModel PaymentDB
	err := r.querier.QueryRow(ctx, query, orderID).Scan(
		&paymentModel.ID,
		&paymentModel.OrderID,
		&paymentModel.CardNumber,
		&paymentModel.Amount,
		&paymentModel.Currency,
		&paymentModel.PaymentDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payment.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("unexpected payment repository getbyorderid error: %w", err)
	}

	return ToDomain(&paymentModel)
}

type CreditCardRepository struct {
	querier Querier
}

func NewCreditCardRepository(querier Querier) *CreditCardRepository {
	return &CreditCardRepository{
		querier: querier,
	}
}

func (r *CreditCardRepository) GetByNumber(ctx context.Context, number string) (*entities.CreditCard, error) {
	query := `SELECT number, card_holder_name, expiry_month, expiry_year
		FROM credit_cards
		WHERE number = $1`

	var cardModel CreditCardDB
	err := r.querier.QueryRow(ctx, query, number).Scan(
		&cardModel.Number,
		&cardModel.CardHolderName,
		&cardModel.ExpiryMonth,
		&cardModel.ExpiryYear,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payment.ErrCreditCardNotFound
		}
		return nil, fmt.Errorf("unexpected credit card repository getbynumber error: %w", err)
	}

	return ToCreditCardDomain(&cardModel), nil
}
