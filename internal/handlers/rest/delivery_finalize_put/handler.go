package delivery_finalize_put

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
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	finalized, err := h.service.Finalize(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, delivery.ErrNotInProgress):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, repository.ErrUnavailable):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.DeliveryView{
		Delivery: dto.Delivery{
			ID:              finalized.ID,
			TruckID:         finalized.TruckID,
			DriverID:        finalized.DriverID,
			CargoType:       finalized.CargoType.String(),
			CargoValue:      finalized.CargoValue,
			SurchargedValue: finalized.SurchargedValue,
			Destination:     finalized.Destination,
			Region:          finalized.Region.String(),
			HasInsurance:    finalized.HasInsurance,
			IsHighValue:     finalized.IsHighValue,
			IsHazardous:     finalized.IsHazardous,
			StartDate:       finalized.StartDate,
			EndDate:         finalized.EndDate,
			Status:          finalized.Status.String(),
		},
		DriverName: finalized.DriverName,
		TruckModel: finalized.TruckModel,
		TruckPlate: finalized.TruckPlate,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
