package driver_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleet/internal/dto"
	"fleet/internal/entities"
	"fleet/internal/repository"
	"fleet/internal/service/driver"
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
	var driverUpdateDTO dto.DriverUpdate
	err := json.NewDecoder(r.Body).Decode(&driverUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	driverModifyEntity := entities.DriverModify{
		ID: &driverUpdateDTO.ID,
	}

	if driverUpdateDTO.Name != nil {
		driverModifyEntity.Name = driverUpdateDTO.Name
	}
	if driverUpdateDTO.CPF != nil {
		driverModifyEntity.CPF = driverUpdateDTO.CPF
	}
	if driverUpdateDTO.Phone != nil {
		driverModifyEntity.Phone = driverUpdateDTO.Phone
	}
	if driverUpdateDTO.Status != nil {
		statusType := entities.DriverStatusType(*driverUpdateDTO.Status)
		driverModifyEntity.Status = &statusType
	}

	res, err := h.service.UpdateDriver(r.Context(), driverModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, driver.ErrMissingRequiredFields),
			errors.Is(err, driver.ErrInvalidName),
			errors.Is(err, driver.ErrInvalidCPF),
			errors.Is(err, driver.ErrInvalidPhone),
			errors.Is(err, driver.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, driver.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, driver.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, repository.ErrUnavailable):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Driver{
		ID:                  res.ID,
		Name:                res.Name,
		CPF:                 res.CPF,
		Phone:               res.Phone,
		Status:              res.Status.String(),
		NortheastActive:     res.NortheastActive,
		DeliveriesThisMonth: res.DeliveriesThisMonth,
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
