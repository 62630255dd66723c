package drink_get

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"restbucks/internal/representation"
	"restbucks/internal/service/drink"
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
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	drinkEntity, err := h.service.GetDrink(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, drink.ErrDrinkNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("get drink")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	doc := representation.Drink(representation.FromRequest(r), *drinkEntity)
	representation.Render(w, r, h.log, http.StatusOK, doc)
}
