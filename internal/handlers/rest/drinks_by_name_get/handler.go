package drinks_by_name_get

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

// ServeHTTP answers with HAL-FORMS options for the drinks property of the order form.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	drinks, err := h.service.FindByName(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("find drinks by name")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	options := representation.DrinkOptions(representation.FromRequest(r), drinks)
	representation.RenderJSON(w, h.log, http.StatusOK, options)
}
