package trucks_get

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
	truckEntities, err := h.service.GetTrucks(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUnavailable):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	truckDTOs := make([]dto.Truck, len(truckEntities))
	for i, truckEntity := range truckEntities {
		truckDTOs[i].ID = truckEntity.ID
		truckDTOs[i].Plate = truckEntity.Plate
		truckDTOs[i].Model = truckEntity.Model
		truckDTOs[i].CapacityKg = truckEntity.CapacityKg
		truckDTOs[i].Status = truckEntity.Status.String()
		truckDTOs[i].DeliveryID = truckEntity.DeliveryID
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(truckDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
