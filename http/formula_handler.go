package http

import (
	"net/http"

	"pyme-calc/domain"
	"pyme-calc/logging"
	"pyme-calc/service"
)

type FormulaHandler struct {
	service *service.FormulaService
	logger  *logging.Logger
}

func NewFormulaHandler(service *service.FormulaService, logger *logging.Logger) *FormulaHandler {
	return &FormulaHandler{service: service, logger: logger}
}

// Evaluate runs one formula. Missing inputs still answer 200: the result
// carries them.
func (h *FormulaHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req domain.FormulaRequest
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}

	result, err := h.service.Evaluate(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, result)
}

func (h *FormulaHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	writeJSON(w, h.logger, http.StatusOK, map[string][]string{"formulas": service.Formulas()})
}
