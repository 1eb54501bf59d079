package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropadvisor/internal/advisor"
	"cropadvisor/internal/location"
	"cropadvisor/internal/rules"
	"cropadvisor/internal/testkit"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	frame := testkit.Frame(
		testkit.Row("Ranipet", "tamil nadu", "Kharif", "paddy", "25", "35", "30", "0.42", "0.50", "0.38"),
	)
	stub := testkit.NewStubClassifier(
		[]string{"paddy", "millet", "groundnut"},
		[]float64{0.5, 0.3, 0.2},
	)
	adv := advisor.New(
		frame,
		stub,
		location.NewResolver(nil),
		rules.NewMarketEngine(nil),
		advisor.WithClock(func() time.Time {
			return time.Date(2025, time.July, 10, 9, 0, 0, 0, time.UTC)
		}),
	)
	return NewServer(adv, stub, gin.TestMode)
}

func doJSON(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	rec := doJSON(t, newTestServer(t), http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestPredictEndpoint(t *testing.T) {
	rec := doJSON(t, newTestServer(t), http.MethodPost, "/api/predict", `{"district":"Ranipet"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"top3_crops":["paddy","millet","groundnut"]`)
	assert.Contains(t, body, `"fallback_level":"DISTRICT"`)
	assert.Contains(t, body, `"season":"Kharif"`)
	assert.Contains(t, body, `"explanation"`)
	assert.Contains(t, body, `"request_id"`)
}

func TestPredictEndpointBadBody(t *testing.T) {
	rec := doJSON(t, newTestServer(t), http.MethodPost, "/api/predict", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid request body")
}

func TestPredictEndpointEmptyDistrict(t *testing.T) {
	rec := doJSON(t, newTestServer(t), http.MethodPost, "/api/predict", `{"district":"  "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
