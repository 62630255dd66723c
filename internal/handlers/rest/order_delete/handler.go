package order_delete

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"restbucks/internal/service/order"
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

// ServeHTTP cancels an order. Paid orders can no longer be deleted.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.CancelOrder(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrOrderNotModifiable):
			w.Header().Set("Allow", "GET")
			w.WriteHeader(http.StatusMethodNotAllowed)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("cancel order")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	h.log.Info("order cancelled", logger.NewField("order_id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}
