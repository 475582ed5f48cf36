package report_put

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
	var reportUpdateDTO dto.ReportUpdate
	err := json.NewDecoder(r.Body).Decode(&reportUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	reportModifyEntity := entities.ReportModify{
		ID: &reportUpdateDTO.ID,
	}

	if reportUpdateDTO.Title != nil {
		reportModifyEntity.Title = reportUpdateDTO.Title
	}
	if reportUpdateDTO.Description != nil {
		reportModifyEntity.Description = reportUpdateDTO.Description
	}
	if reportUpdateDTO.Image != nil {
		reportModifyEntity.Image = reportUpdateDTO.Image
	}

	res, err := h.service.UpdateReport(r.Context(), reportModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, report.ErrMissingRequiredFields),
			errors.Is(err, report.ErrInvalidTitle):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, report.ErrReportNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, repository.ErrUnavailable):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Report{
		ID:          res.ID,
		Title:       res.Title,
		Description: res.Description,
		Image:       res.Image,
		IsActive:    res.IsActive,
		CreatedBy:   res.CreatedBy,
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
