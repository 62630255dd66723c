package orders_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"restbucks/internal/dto"
	"restbucks/internal/entities"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dto.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		representation.RenderError(w, h.log, http.StatusBadRequest, err)
		return
	}

	drinkIDs := make([]uuid.UUID, 0, len(req.Drinks))
	for _, drinkURI := range req.Drinks {
		id, err := representation.ParseDrinkURI(drinkURI)
		if err != nil {
			representation.RenderError(w, h.log, http.StatusBadRequest, err)
			return
		}
		drinkIDs = append(drinkIDs, id)
	}

	orderEntity, err := h.service.CreateOrder(r.Context(), entities.OrderCreate{
		Location: entities.Location(req.Location),
		DrinkIDs: drinkIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidLocation),
			errors.Is(err, order.ErrMissingDrinks),
			errors.Is(err, order.ErrDrinkNotFound):
			representation.RenderError(w, h.log, http.StatusBadRequest, err)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("create order")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	uris := representation.FromRequest(r)
	w.Header().Set("Location", uris.Order(orderEntity.ID))
	w.Header().Set("ETag", representation.RequestETag(r, *orderEntity))
	representation.Render(w, r, h.log, http.StatusCreated, representation.Order(uris, *orderEntity))
}
