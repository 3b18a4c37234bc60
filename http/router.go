package http

import (
	"net/http"
	"time"

	"pyme-calc/logging"
)

// Handlers groups the handlers mounted by NewRouter.
type Handlers struct {
	Formulas   *FormulaHandler
	Projection *ProjectionHandler
	Scenarios  *ScenarioHandler
	Taxes      *TaxHandler
	Financing  *FinancingHandler
	History    *HistoryHandler
}

// NewRouter mounts every endpoint under /finance behind the rate limiter.
// /health is left unlimited.
func NewRouter(h Handlers, limiter *RateLimiter, logger *logging.Logger) http.Handler {
	mux := http.NewServeMux()

	limited := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, RateLimitMiddleware(limiter, fn))
	}

	limited("/finance/formulas", h.Formulas.Evaluate)
	limited("/finance/formulas/list", h.Formulas.List)
	limited("/finance/projection", h.Projection.Project)
	limited("/finance/break-even", h.Projection.BreakEven)
	limited("/finance/scenarios", h.Scenarios.Calculate)
	limited("/finance/taxes", h.Taxes.Calculate)
	limited("/finance/taxes/monotributo-threshold", h.Taxes.MonotributoThreshold)
	limited("/finance/taxes/categories", h.Taxes.Categories)
	limited("/finance/financing", h.Financing.Options)
	limited("/finance/financing/simulate", h.Financing.Simulate)
	limited("/finance/financing/compare", h.Financing.Compare)
	limited("/finance/history", h.History.Recent)

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if !allowGet(w, r) {
			return
		}
		writeJSON(w, logger, http.StatusOK, map[string]string{"status": "ok"})
	})

	return requestLogger(logger, mux)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.InfoContext(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start))
	})
}
