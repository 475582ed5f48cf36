package truck_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleet/internal/dto"
	"fleet/internal/entities"
	"fleet/internal/repository"
	"fleet/internal/service/truck"
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
	var truckUpdateDTO dto.TruckUpdate
	err := json.NewDecoder(r.Body).Decode(&truckUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	truckModifyEntity := entities.TruckModify{
		ID: &truckUpdateDTO.ID,
	}

	if truckUpdateDTO.Plate != nil {
		truckModifyEntity.Plate = truckUpdateDTO.Plate
	}
	if truckUpdateDTO.Model != nil {
		truckModifyEntity.Model = truckUpdateDTO.Model
	}
	if truckUpdateDTO.CapacityKg != nil {
		truckModifyEntity.CapacityKg = truckUpdateDTO.CapacityKg
	}
	if truckUpdateDTO.Status != nil {
		statusType := entities.TruckStatusType(*truckUpdateDTO.Status)
		truckModifyEntity.Status = &statusType
	}

	res, err := h.service.UpdateTruck(r.Context(), truckModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, truck.ErrMissingRequiredFields),
			errors.Is(err, truck.ErrInvalidPlate),
			errors.Is(err, truck.ErrInvalidModel),
			errors.Is(err, truck.ErrInvalidCapacity),
			errors.Is(err, truck.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, truck.ErrTruckNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, truck.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, repository.ErrUnavailable):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Truck{
		ID:         res.ID,
		Plate:      res.Plate,
		Model:      res.Model,
		CapacityKg: res.CapacityKg,
		Status:     res.Status.String(),
		DeliveryID: res.DeliveryID,
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
