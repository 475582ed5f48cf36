package delivery_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"fleet/internal/dto"
	"fleet/internal/entities"
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

	var deliveryUpdateDTO dto.DeliveryUpdate
	err = json.NewDecoder(r.Body).Decode(&deliveryUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	deliveryModifyEntity := entities.DeliveryModify{
		ID: &id,
	}

	if deliveryUpdateDTO.CargoType != nil {
		cargoType := entities.CargoType(*deliveryUpdateDTO.CargoType)
		deliveryModifyEntity.CargoType = &cargoType
	}
	if deliveryUpdateDTO.CargoValue != nil {
		deliveryModifyEntity.CargoValue = deliveryUpdateDTO.CargoValue
	}
	if deliveryUpdateDTO.Destination != nil {
		deliveryModifyEntity.Destination = deliveryUpdateDTO.Destination
	}
	if deliveryUpdateDTO.Region != nil {
		region := entities.RegionType(*deliveryUpdateDTO.Region)
		deliveryModifyEntity.Region = &region
	}
	if deliveryUpdateDTO.HasInsurance != nil {
		deliveryModifyEntity.HasInsurance = deliveryUpdateDTO.HasInsurance
	}

	res, err := h.service.UpdateDelivery(r.Context(), deliveryModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrMissingRequiredFields),
			errors.Is(err, delivery.ErrInvalidCargoType),
			errors.Is(err, delivery.ErrInvalidRegion),
			errors.Is(err, delivery.ErrInvalidCargoValue):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, repository.ErrUnavailable):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Delivery{
		ID:              res.ID,
		TruckID:         res.TruckID,
		DriverID:        res.DriverID,
		CargoType:       res.CargoType.String(),
		CargoValue:      res.CargoValue,
		SurchargedValue: res.SurchargedValue,
		Destination:     res.Destination,
		Region:          res.Region.String(),
		HasInsurance:    res.HasInsurance,
		IsHighValue:     res.IsHighValue,
		IsHazardous:     res.IsHazardous,
		StartDate:       res.StartDate,
		EndDate:         res.EndDate,
		Status:          res.Status.String(),
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
