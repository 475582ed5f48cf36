package reports_get

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
	reportEntities, err := h.service.GetReports(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUnavailable):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	reportDTOs := make([]dto.Report, len(reportEntities))
	for i, reportEntity := range reportEntities {
		reportDTOs[i].ID = reportEntity.ID
		reportDTOs[i].Title = reportEntity.Title
		reportDTOs[i].Description = reportEntity.Description
		reportDTOs[i].Image = reportEntity.Image
		reportDTOs[i].IsActive = reportEntity.IsActive
		reportDTOs[i].CreatedBy = reportEntity.CreatedBy
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(reportDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
