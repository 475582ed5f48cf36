package delivery_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"fleet/internal/dto"
	"fleet/internal/entities"
	"fleet/internal/pkg/factory/cargo_pricing"
	"fleet/internal/repository"
	"fleet/internal/service/delivery"
	"fleet/internal/service/driver"
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
	var deliveryCreateDTO dto.DeliveryCreate
	err := json.NewDecoder(r.Body).Decode(&deliveryCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	startDate, err := parseDate(deliveryCreateDTO.StartDate)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	endDate, err := parseDate(deliveryCreateDTO.EndDate)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	cargoType := entities.CargoType(deliveryCreateDTO.CargoType)
	region := entities.RegionType(deliveryCreateDTO.Region)
	deliveryModifyEntity := entities.DeliveryModify{
		TruckID:      &deliveryCreateDTO.TruckID,
		DriverID:     &deliveryCreateDTO.DriverID,
		CargoType:    &cargoType,
		CargoValue:   &deliveryCreateDTO.CargoValue,
		Destination:  &deliveryCreateDTO.Destination,
		Region:       &region,
		HasInsurance: deliveryCreateDTO.HasInsurance,
		StartDate:    &startDate,
		EndDate:      &endDate,
	}

	created, err := h.service.Create(r.Context(), deliveryModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrMissingRequiredFields),
			errors.Is(err, delivery.ErrInvalidCargoType),
			errors.Is(err, delivery.ErrInvalidRegion),
			errors.Is(err, delivery.ErrInvalidCargoValue),
			errors.Is(err, delivery.ErrInvalidWindow),
			errors.Is(err, delivery.ErrStartInPast),
			errors.Is(err, delivery.ErrEndInPast),
			errors.Is(err, cargo_pricing.ErrInsuranceFlagRequired):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, delivery.ErrNortheastLimit),
			errors.Is(err, delivery.ErrTruckMonthQuota),
			errors.Is(err, delivery.ErrDriverOverlap),
			errors.Is(err, delivery.ErrDriverMonthQuota),
			errors.Is(err, delivery.ErrDriverBusy),
			errors.Is(err, delivery.ErrTruckClaimed):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, truck.ErrTruckNotFound),
			errors.Is(err, driver.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, repository.ErrUnavailable):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.DeliveryCreateResponse{
		ID:              created.ID,
		Status:          created.Status.String(),
		SurchargedValue: created.SurchargedValue,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// parseDate accepts a full timestamp or a bare calendar date.
func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
