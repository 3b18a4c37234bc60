package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pyme-calc/domain"
	"pyme-calc/finance"
	"pyme-calc/logging"
	"pyme-calc/repository"
	"pyme-calc/service"
)

type testServer struct {
	repo    *repository.CalculationRepositoryMemory
	handler http.Handler
}

func newTestServer(t *testing.T, limit int) *testServer {
	t.Helper()

	logger := logging.Discard()
	repo := repository.NewCalculationRepositoryMemory()
	cache := repository.NewMemoryCache(time.Minute)

	limiter := NewRateLimiter(limit, time.Minute)
	t.Cleanup(limiter.Stop)

	handlers := Handlers{
		Formulas:   NewFormulaHandler(service.NewFormulaService(repo, logger), logger),
		Projection: NewProjectionHandler(service.NewProjectionService(repo, logger, 0), logger),
		Scenarios:  NewScenarioHandler(service.NewScenarioService(repo, cache, logger), logger),
		Taxes:      NewTaxHandler(service.NewTaxService(repo, logger), logger),
		Financing: NewFinancingHandler(
			service.NewLoanService(repo, logger),
			service.NewFinancingService(repo, logger),
			logger,
		),
		History: NewHistoryHandler(service.NewHistoryService(repo), logger),
	}
	return &testServer{repo: repo, handler: NewRouter(handlers, limiter, logger)}
}

func (s *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestFormulaHandler_OK(t *testing.T) {
	srv := newTestServer(t, 100)

	w := srv.do(http.MethodPost, "/finance/formulas",
		`{"formula": "unit-margin", "price": 1000, "costPerUnit": 400}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	result := decode[domain.CalculationResult](t, w)
	assert.Equal(t, domain.StatusOK, result.Status)
	require.NotNil(t, result.Value)
	assert.Equal(t, 600.0, *result.Value)
}

func TestFormulaHandler_MissingInputsAnswer200(t *testing.T) {
	srv := newTestServer(t, 100)

	w := srv.do(http.MethodPost, "/finance/formulas", `{"formula": "ltv", "arpu": 5000}`)

	require.Equal(t, http.StatusOK, w.Code)
	result := decode[domain.CalculationResult](t, w)
	assert.Nil(t, result.Value)
	assert.Equal(t, domain.StatusMissingInputs, result.Status)
	assert.Equal(t, []string{"Churn mensual %"}, result.MissingInputs)
}

func TestFormulaHandler_DegenerateBreakEven(t *testing.T) {
	srv := newTestServer(t, 100)

	w := srv.do(http.MethodPost, "/finance/formulas",
		`{"formula": "break-even-units", "fixedCosts": 100000, "unitMargin": 0}`)

	require.Equal(t, http.StatusOK, w.Code)
	result := decode[domain.CalculationResult](t, w)
	assert.Equal(t, domain.StatusInvalid, result.Status)
	assert.Equal(t, []string{finance.WarningNonViableMargin}, result.MissingInputs)
}

func TestFormulaHandler_UnknownFormula(t *testing.T) {
	srv := newTestServer(t, 100)

	w := srv.do(http.MethodPost, "/finance/formulas", `{"formula": "roi"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[errorResponse](t, w).Error, "fórmula inválida")
}

func TestFormulaHandler_List(t *testing.T) {
	srv := newTestServer(t, 100)

	w := srv.do(http.MethodGet, "/finance/formulas/list", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, service.Formulas(), decode[map[string][]string](t, w)["formulas"])
}

func TestHandlers_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, 100)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/finance/formulas"},
		{http.MethodGet, "/finance/projection"},
		{http.MethodGet, "/finance/break-even"},
		{http.MethodGet, "/finance/scenarios"},
		{http.MethodPut, "/finance/taxes"},
		{http.MethodGet, "/finance/taxes/monotributo-threshold"},
		{http.MethodPost, "/finance/taxes/categories"},
		{http.MethodPost, "/finance/financing"},
		{http.MethodGet, "/finance/financing/simulate"},
		{http.MethodGet, "/finance/financing/compare"},
		{http.MethodPost, "/finance/history"},
		{http.MethodPost, "/health"},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := srv.do(tc.method, tc.path, "")
			assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		})
	}
}

func TestHandlers_BadRequest(t *testing.T) {
	srv := newTestServer(t, 100)

	cases := []struct {
		name string
		path string
		body string
	}{
		{"invalid json", "/finance/projection", `{invalid-json}`},
		{"unknown field", "/finance/taxes", `{"ingresos": 1000}`},
		{"negative months", "/finance/projection", `{"baseRevenue": 1000, "months": -1}`},
		{"unknown regime", "/finance/taxes", `{"monthlyRevenue": 1000, "regime": "simplificado"}`},
		{"unknown option", "/finance/financing/simulate", `{"optionId": "nope", "amount": 1000}`},
		{"zero amount", "/finance/financing/compare", `{"amount": 0}`},
		{"scenario without months", "/finance/scenarios", `{"baseRevenue": 1000, "loanAmount": 5000, "loanRate": 40}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := srv.do(http.MethodPost, tc.path, tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			assert.NotEmpty(t, decode[errorResponse](t, w).Error)
		})
	}
}

func TestHandlers_UnsupportedMediaType(t *testing.T) {
	srv := newTestServer(t, 100)

	req := httptest.NewRequest(http.MethodPost, "/finance/taxes", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()
	srv.handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestProjectionHandler_Project(t *testing.T) {
	srv := newTestServer(t, 100)

	w := srv.do(http.MethodPost, "/finance/projection", `{
		"baseRevenue": 1000000,
		"fixedCosts": 300000,
		"variableCostPercentage": 40,
		"baseTaxes": 50000,
		"inflationRate": 5,
		"months": 6,
		"canTransferInflation": true
	}`)

	require.Equal(t, http.StatusOK, w.Code)
	rows := decode[[]domain.MonthlyProjection](t, w)
	require.Len(t, rows, 6)
	assert.Equal(t, 1, rows[0].Month)
	assert.InDelta(t, 1050000.0, rows[0].NominalRevenue, 0.01)
	assert.InDelta(t, 265000/1.05, rows[0].RealProfit, 0.01)
}

func TestProjectionHandler_BreakEven(t *testing.T) {
	srv := newTestServer(t, 100)

	w := srv.do(http.MethodPost, "/finance/break-even", `{
		"monthlyRevenue": 100000,
		"fixedCosts": 200000,
		"variableCostPercentage": 50
	}`)

	require.Equal(t, http.StatusOK, w.Code)
	result := decode[domain.BreakEvenResult](t, w)
	assert.False(t, result.Reached)
	assert.Equal(t, finance.NoBreakEven, result.Month)
	assert.Equal(t, finance.DefaultBreakEvenHorizon, result.Horizon)
}

func TestScenarioHandler_Calculate(t *testing.T) {
	srv := newTestServer(t, 100)

	w := srv.do(http.MethodPost, "/finance/scenarios", `{
		"baseRevenue": 2000000,
		"fixedCosts": 500000,
		"variableCostPercentage": 35,
		"taxes": 80000,
		"loanAmount": 3000000,
		"loanRate": 45,
		"loanMonths": 24
	}`)

	require.Equal(t, http.StatusOK, w.Code)
	scenarios := decode[domain.Scenarios](t, w)
	assert.Len(t, scenarios.Pessimistic, 12)
	assert.Len(t, scenarios.Realistic, 12)
	assert.Len(t, scenarios.Optimistic, 12)
	assert.Zero(t, scenarios.Optimistic[0].LoanPayment)
}

func TestTaxHandler_Calculate(t *testing.T) {
	srv := newTestServer(t, 100)

	w := srv.do(http.MethodPost, "/finance/taxes",
		`{"monthlyRevenue": 1000000, "regime": "general", "isFacturaB": true}`)

	require.Equal(t, http.StatusOK, w.Code)
	result := decode[domain.TaxResult](t, w)
	assert.InDelta(t, 35000, result.Amount, 0.001)
	assert.Nil(t, result.Category)
}

func TestTaxHandler_Monotributo(t *testing.T) {
	srv := newTestServer(t, 100)

	w := srv.do(http.MethodPost, "/finance/taxes",
		`{"monthlyRevenue": 500000, "regime": "monotributo"}`)

	require.Equal(t, http.StatusOK, w.Code)
	result := decode[domain.TaxResult](t, w)
	require.NotNil(t, result.Category)
	assert.Equal(t, "A", result.Category.Category)
	assert.Equal(t, result.Category.MonthlyTax, result.Amount)
}

func TestTaxHandler_MonotributoThreshold(t *testing.T) {
	srv := newTestServer(t, 100)

	w := srv.do(http.MethodPost, "/finance/taxes/monotributo-threshold",
		`{"currentMonthlyRevenue": 5000000, "month": 3, "inflationRate": 5}`)

	require.Equal(t, http.StatusOK, w.Code)
	result := decode[domain.ThresholdResult](t, w)
	assert.True(t, result.WillExceed)
	assert.Equal(t, finance.MaxMonotributoLimit(), result.MaxAnnualLimit)
}

func TestTaxHandler_Categories(t *testing.T) {
	srv := newTestServer(t, 100)

	w := srv.do(http.MethodGet, "/finance/taxes/categories", "")

	require.Equal(t, http.StatusOK, w.Code)
	categories := decode[[]domain.MonotributoCategory](t, w)
	require.Len(t, categories, 11)
	assert.Equal(t, "A", categories[0].Category)
	assert.Equal(t, "K", categories[10].Category)
}

func TestFinancingHandler_OptionsAndSimulate(t *testing.T) {
	srv := newTestServer(t, 100)

	w := srv.do(http.MethodGet, "/finance/financing", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, finance.FinancingOptions(), decode[[]domain.FinancingOption](t, w))

	w = srv.do(http.MethodPost, "/finance/financing/simulate",
		`{"optionId": "fondo-semilla", "amount": 4800000}`)
	require.Equal(t, http.StatusOK, w.Code)
	result := decode[domain.LoanResult](t, w)
	assert.Equal(t, 100000.0, result.MonthlyPayment)
	assert.Zero(t, result.TotalInterest)
	assert.Len(t, result.Schedule, 48)
}

func TestFinancingHandler_Compare(t *testing.T) {
	srv := newTestServer(t, 100)

	w := srv.do(http.MethodPost, "/finance/financing/compare", `{"amount": 1000000}`)

	require.Equal(t, http.StatusOK, w.Code)
	comparison := decode[domain.FinancingComparison](t, w)
	require.NotEmpty(t, comparison.Options)
	assert.Equal(t, "fondo-semilla", comparison.Options[0].Option.ID)
}

func TestHistoryHandler_Recent(t *testing.T) {
	srv := newTestServer(t, 100)

	srv.do(http.MethodPost, "/finance/taxes", `{"monthlyRevenue": 1000000, "regime": "general"}`)
	srv.do(http.MethodPost, "/finance/formulas", `{"formula": "ltv", "arpu": 5000, "monthlyChurn": 5}`)

	w := srv.do(http.MethodGet, "/finance/history?limit=1", "")
	require.Equal(t, http.StatusOK, w.Code)
	records := decode[[]domain.CalculationRecord](t, w)
	require.Len(t, records, 1)
	assert.Equal(t, service.KindFormula, records[0].Kind)

	w = srv.do(http.MethodGet, "/finance/history?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = srv.do(http.MethodGet, "/finance/history?limit=-1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, 1)

	for range 3 {
		w := srv.do(http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRouter_RateLimited(t *testing.T) {
	srv := newTestServer(t, 2)

	body := `{"formula": "unit-margin", "price": 10, "costPerUnit": 4}`
	assert.Equal(t, http.StatusOK, srv.do(http.MethodPost, "/finance/formulas", body).Code)
	assert.Equal(t, http.StatusOK, srv.do(http.MethodPost, "/finance/formulas", body).Code)

	w := srv.do(http.MethodPost, "/finance/formulas", body)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}
