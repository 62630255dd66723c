package payment_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"restbucks/internal/dto"
	"restbucks/internal/representation"
	"restbucks/internal/service/payment"
	"restbucks/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var req dto.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		representation.RenderError(w, h.log, http.StatusBadRequest, err)
		return
	}

	paymentEntity, err := h.service.Pay(r.Context(), orderID, req.Number)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, payment.ErrOrderAlreadyPaid):
			representation.RenderError(w, h.log, http.StatusConflict, err)
		case errors.Is(err, payment.ErrInvalidCardNumber),
			errors.Is(err, payment.ErrCreditCardNotFound),
			errors.Is(err, payment.ErrCreditCardExpired):
			representation.RenderError(w, h.log, http.StatusBadRequest, err)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("pay order")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	h.log.Info("order paid", logger.NewField("order_id", orderID.String()))

	uris := representation.FromRequest(r)
	w.Header().Set("Location", uris.Payment(orderID))
	representation.Render(w, r, h.log, http.StatusCreated, representation.Payment(uris, *paymentEntity))
}
