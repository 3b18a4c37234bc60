package http

import (
	"net/http"

	"pyme-calc/domain"
	"pyme-calc/logging"
	"pyme-calc/service"
)

type ScenarioHandler struct {
	service *service.ScenarioService
	logger  *logging.Logger
}

func NewScenarioHandler(service *service.ScenarioService, logger *logging.Logger) *ScenarioHandler {
	return &ScenarioHandler{service: service, logger: logger}
}

func (h *ScenarioHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var input domain.ScenarioInput
	if !decodeJSON(w, r, h.logger, &input) {
		return
	}

	scenarios, err := h.service.Calculate(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, scenarios)
}
