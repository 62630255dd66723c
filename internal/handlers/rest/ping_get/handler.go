package ping_get

import (
	"net/http"

	"restbucks/internal/dto"
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
	message := "pong"
	representation.RenderJSON(w, h.log, http.StatusOK, dto.PingResponse{
		Message: &message,
	})
}
