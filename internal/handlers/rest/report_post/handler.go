package report_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleet/internal/dto"
	"fleet/internal/entities"
	"fleet/internal/repository"
	"fleet/internal/service/report"
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
	var reportCreateDTO dto.ReportCreate
	err := json.NewDecoder(r.Body).Decode(&reportCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	reportModifyEntity := entities.ReportModify{
		Title:       &reportCreateDTO.Title,
		Description: &reportCreateDTO.Description,
		Image:       reportCreateDTO.Image,
		CreatedBy:   reportCreateDTO.CreatedBy,
	}

	id, err := h.service.CreateReport(r.Context(), reportModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, report.ErrMissingRequiredFields),
			errors.Is(err, report.ErrInvalidTitle):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, repository.ErrUnavailable):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.ReportCreateResponse{
		ID: id,
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
