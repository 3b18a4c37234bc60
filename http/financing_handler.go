package http

import (
	"net/http"

	"pyme-calc/domain"
	"pyme-calc/logging"
	"pyme-calc/service"
)

type FinancingHandler struct {
	loans     *service.LoanService
	financing *service.FinancingService
	logger    *logging.Logger
}

func NewFinancingHandler(
	loans *service.LoanService,
	financing *service.FinancingService,
	logger *logging.Logger,
) *FinancingHandler {
	return &FinancingHandler{loans: loans, financing: financing, logger: logger}
}

func (h *FinancingHandler) Options(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	writeJSON(w, h.logger, http.StatusOK, h.financing.Options())
}

func (h *FinancingHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	var input domain.LoanInput
	if !decodeJSON(w, r, h.logger, &input) {
		return
	}

	result, err := h.loans.CalculateLoan(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, result)
}

type compareRequest struct {
	Amount float64 `json:"amount"`
}

func (h *FinancingHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}

	result, err := h.financing.Compare(r.Context(), req.Amount)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, result)
}
