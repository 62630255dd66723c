package receipt_delete

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
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

// ServeHTTP takes the receipt, which hands the drinks over to the customer.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	receipt, err := h.service.TakeReceipt(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrOrderNotFound),
			errors.Is(err, payment.ErrReceiptNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, payment.ErrOrderNotReady):
			representation.RenderError(w, h.log, http.StatusConflict, err)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("take receipt")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	h.log.Info("order delivered", logger.NewField("order_id", orderID.String()))

	doc := representation.Receipt(representation.FromRequest(r), *receipt)
	representation.Render(w, r, h.log, http.StatusOK, doc)
}
