package root_get

import (
	"net/http"

	"restbucks/internal/representation"
)

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	handlerLog := log.With()

	return &Handler{
		log: handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	doc := representation.Root(representation.FromRequest(r))
	representation.Render(w, r, h.log, http.StatusOK, doc)
}
