package orders_get

import (
	"net/http"

	"restbucks/internal/representation"
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
	orders, err := h.service.GetOrders(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("get orders")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	doc := representation.Orders(representation.FromRequest(r), orders)
	representation.Render(w, r, h.log, http.StatusOK, doc)
}
