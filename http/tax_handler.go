package http

import (
	"net/http"

	"pyme-calc/domain"
	"pyme-calc/logging"
	"pyme-calc/service"
)

type TaxHandler struct {
	service *service.TaxService
	logger  *logging.Logger
}

func NewTaxHandler(service *service.TaxService, logger *logging.Logger) *TaxHandler {
	return &TaxHandler{service: service, logger: logger}
}

func (h *TaxHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var input domain.TaxInput
	if !decodeJSON(w, r, h.logger, &input) {
		return
	}

	result, err := h.service.Calculate(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, result)
}

func (h *TaxHandler) MonotributoThreshold(w http.ResponseWriter, r *http.Request) {
	var input domain.ThresholdInput
	if !decodeJSON(w, r, h.logger, &input) {
		return
	}

	result, err := h.service.WillExceed(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, result)
}

func (h *TaxHandler) Categories(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	writeJSON(w, h.logger, http.StatusOK, h.service.Categories())
}
