package order_get

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"restbucks/internal/representation"
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

// ServeHTTP supports conditional requests: an If-None-Match naming the current version of
// the negotiated representation is answered with 304 and no body.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderEntity, err := h.service.GetOrder(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("get order")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	etag := representation.RequestETag(r, *orderEntity)
	w.Header().Set("ETag", etag)
	w.Header().Set("Vary", "Accept")
	if representation.MatchesETag(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	doc := representation.Order(representation.FromRequest(r), *orderEntity)
	representation.Render(w, r, h.log, http.StatusOK, doc)
}
