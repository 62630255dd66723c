package drinks_get

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
	drinks, err := h.service.GetDrinks(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("get drinks")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	doc := representation.Drinks(representation.FromRequest(r), drinks)
	representation.Render(w, r, h.log, http.StatusOK, doc)
}
