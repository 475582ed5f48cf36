package delivery_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"fleet/internal/dto"
	"fleet/internal/repository"
	"fleet/internal/service/delivery"
	"fleet/pkg/logger"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	view, err := h.service.GetDelivery(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, repository.ErrUnavailable):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	deliveryDTO := dto.DeliveryView{
		Delivery: dto.Delivery{
			ID:              view.ID,
			TruckID:         view.TruckID,
			DriverID:        view.DriverID,
			CargoType:       view.CargoType.String(),
			CargoValue:      view.CargoValue,
			SurchargedValue: view.SurchargedValue,
			Destination:     view.Destination,
			Region:          view.Region.String(),
			HasInsurance:    view.HasInsurance,
			IsHighValue:     view.IsHighValue,
			IsHazardous:     view.IsHazardous,
			StartDate:       view.StartDate,
			EndDate:         view.EndDate,
			Status:          view.Status.String(),
		},
		DriverName: view.DriverName,
		TruckModel: view.TruckModel,
		TruckPlate: view.TruckPlate,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(deliveryDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
