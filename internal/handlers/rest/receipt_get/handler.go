package receipt_get

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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	receipt, err := h.service.GetReceipt(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrOrderNotFound),
			errors.Is(err, payment.ErrReceiptNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("get receipt")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	doc := representation.Receipt(representation.FromRequest(r), *receipt)
	representation.Render(w, r, h.log, http.StatusOK, doc)
}
