package http

import (
	"net/http"
	"strconv"

	"pyme-calc/logging"
	"pyme-calc/service"
)

type HistoryHandler struct {
	service *service.HistoryService
	logger  *logging.Logger
}

func NewHistoryHandler(service *service.HistoryService, logger *logging.Logger) *HistoryHandler {
	return &HistoryHandler{service: service, logger: logger}
}

// Recent lists the latest calculations. ?limit=N caps the list.
func (h *HistoryHandler) Recent(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be a number")
			return
		}
		limit = n
	}

	records, err := h.service.Recent(r.Context(), limit)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, records)
}
