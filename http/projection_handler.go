package http

import (
	"net/http"

	"pyme-calc/domain"
	"pyme-calc/logging"
	"pyme-calc/service"
)

type ProjectionHandler struct {
	service *service.ProjectionService
	logger  *logging.Logger
}

func NewProjectionHandler(service *service.ProjectionService, logger *logging.Logger) *ProjectionHandler {
	return &ProjectionHandler{service: service, logger: logger}
}

func (h *ProjectionHandler) Project(w http.ResponseWriter, r *http.Request) {
	var input domain.ProjectionInput
	if !decodeJSON(w, r, h.logger, &input) {
		return
	}

	projection, err := h.service.Project(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, projection)
}

func (h *ProjectionHandler) BreakEven(w http.ResponseWriter, r *http.Request) {
	var input domain.BreakEvenInput
	if !decodeJSON(w, r, h.logger, &input) {
		return
	}

	result, err := h.service.BreakEven(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, result)
}
