package deliveries_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleet/internal/dto"
	"fleet/internal/repository"
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
	views, err := h.service.GetDeliveries(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUnavailable):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	deliveryDTOs := make([]dto.DeliveryView, len(views))
	for i, view := range views {
		deliveryDTOs[i] = dto.DeliveryView{
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
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(deliveryDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
