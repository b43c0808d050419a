package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rgehrsitz/fvgo/internal/calculation"
	"github.com/rgehrsitz/fvgo/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const basicFV = `{"kind":"basic_fv","name":"nest egg","inputs":{"principal":10000,"rate":5,"years":10}}`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	st, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "calc.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return NewServer(calculation.NewEngine(), st, nil, 1000, 1000)
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCalculate(t *testing.T) {
	h := newTestServer(t).Router()

	rec := do(t, h, http.MethodPost, "/api/v1/calculate", basicFV)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Kind   string            `json:"kind"`
		Name   string            `json:"name"`
		Result map[string]string `json:"result"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "basic_fv", body.Kind)
	assert.Equal(t, "nest egg", body.Name)
	assert.Equal(t, "16288.95", body.Result["future_value"])
	assert.Equal(t, "6288.95", body.Result["interest"])
}

func TestCalculate_Errors(t *testing.T) {
	h := newTestServer(t).Router()

	tests := []struct {
		name string
		body string
		code int
	}{
		{"malformed json", `{"kind":`, http.StatusBadRequest},
		{"unknown kind", `{"kind":"lottery","inputs":{}}`, http.StatusBadRequest},
		{"out of domain", `{"kind":"basic_fv","inputs":{"principal":10000,"rate":5,"years":0}}`, http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/v1/calculate", tt.body)
			assert.Equal(t, tt.code, rec.Code, rec.Body.String())
		})
	}

	rec := do(t, h, http.MethodPost, "/api/v1/calculate", `{"kind":"basic_fv","inputs":{"principal":10000,"rate":5,"years":0}}`)
	var e errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	assert.Equal(t, "years", e.Field)
}

func TestCalculate_Warnings(t *testing.T) {
	h := newTestServer(t).Router()

	rec := do(t, h, http.MethodPost, "/api/v1/calculate",
		`{"kind":"withdrawals","inputs":{"initial_balance":12000,"monthly_withdrawal":1100,"annual_rate":0,"years":1}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "Balance is depleted after 11 months")
}

func TestCalculators(t *testing.T) {
	h := newTestServer(t).Router()

	rec := do(t, h, http.MethodGet, "/api/v1/calculators", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var infos []struct {
		Kind   string `json:"kind"`
		Title  string `json:"title"`
		Fields []struct {
			Field string `json:"field"`
		} `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &infos))
	require.Len(t, infos, 11)
	assert.Equal(t, "Basic FV", infos[0].Title)
	assert.NotEmpty(t, infos[0].Fields)
}

func TestSavedCalculations(t *testing.T) {
	h := newTestServer(t).Router()

	rec := do(t, h, http.MethodGet, "/api/v1/calculations", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))

	rec = do(t, h, http.MethodPost, "/api/v1/calculations", basicFV)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var saved struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "nest egg", saved.Name)

	rec = do(t, h, http.MethodGet, "/api/v1/calculations/"+saved.ID, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"future_value":"16288.95"`)

	rec = do(t, h, http.MethodGet, "/api/v1/calculations", "")
	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	rec = do(t, h, http.MethodDelete, "/api/v1/calculations/"+saved.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodDelete, "/api/v1/calculations/"+saved.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	do(t, h, http.MethodPost, "/api/v1/calculations", basicFV)
	do(t, h, http.MethodPost, "/api/v1/calculations", basicFV)
	rec = do(t, h, http.MethodDelete, "/api/v1/calculations", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/calculations", "")
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestSavedCalculations_InvalidInputIsNotStored(t *testing.T) {
	s := newTestServer(t)
	h := s.Router()

	rec := do(t, h, http.MethodPost, "/api/v1/calculations", `{"kind":"sip","inputs":{"monthly_investment":1000,"annual_rate":50,"years":10}}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	records, err := s.Store.List(t.Context())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestNoStoreDisablesSavedRoutes(t *testing.T) {
	h := NewServer(calculation.NewEngine(), nil, nil, 100, 100).Router()

	rec := do(t, h, http.MethodGet, "/api/v1/calculations", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/calculate", basicFV)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit(t *testing.T) {
	h := NewServer(calculation.NewEngine(), nil, nil, 0.001, 2).Router()

	for i := 0; i < 2; i++ {
		rec := do(t, h, http.MethodGet, "/healthz", "")
		require.Equal(t, http.StatusOK, rec.Code)
	}
	rec := do(t, h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

type recordingLogger struct {
	calculation.NopLogger
	infos []string
}

func (l *recordingLogger) Infof(format string, args ...any) {
	l.infos = append(l.infos, format)
}

func TestRequestsAreLogged(t *testing.T) {
	logger := &recordingLogger{}
	h := NewServer(calculation.NewEngine(), nil, logger, 100, 100).Router()

	do(t, h, http.MethodGet, "/healthz", "")
	assert.Len(t, logger.infos, 1)
}
