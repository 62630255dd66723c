package order_patch

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
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
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var req dto.OrderPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		representation.RenderError(w, h.log, http.StatusBadRequest, err)
		return
	}

	orderModify := entities.OrderModify{ID: id}
	if req.Location != nil {
		location := entities.Location(*req.Location)
		orderModify.Location = &location
	}
	if req.Drinks != nil {
		orderModify.DrinkIDs = make([]uuid.UUID, 0, len(*req.Drinks))
		for _, drinkURI := range *req.Drinks {
			drinkID, err := representation.ParseDrinkURI(drinkURI)
			if err != nil {
				representation.RenderError(w, h.log, http.StatusBadRequest, err)
				return
			}
			orderModify.DrinkIDs = append(orderModify.DrinkIDs, drinkID)
		}
	}

	orderEntity, err := h.service.UpdateOrder(r.Context(), orderModify)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrOrderNotModifiable):
			w.Header().Set("Allow", "GET")
			w.WriteHeader(http.StatusMethodNotAllowed)
		case errors.Is(err, order.ErrVersionConflict):
			representation.RenderError(w, h.log, http.StatusConflict, err)
		case errors.Is(err, order.ErrInvalidLocation),
			errors.Is(err, order.ErrMissingDrinks),
			errors.Is(err, order.ErrDrinkNotFound):
			representation.RenderError(w, h.log, http.StatusBadRequest, err)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("update order")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("ETag", representation.RequestETag(r, *orderEntity))
	doc := representation.Order(representation.FromRequest(r), *orderEntity)
	representation.Render(w, r, h.log, http.StatusOK, doc)
}
