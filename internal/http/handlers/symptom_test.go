package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/aarogyaai/aarogya-backend/internal/domain"
	"github.com/aarogyaai/aarogya-backend/internal/pkg/logger"
	"github.com/aarogyaai/aarogya-backend/internal/services"
)

// handlerSymptomRepo lets the real symptom service run against the
// handler, so the computed fields reach the response unmodified.
type handlerSymptomRepo struct {
	created *domain.SymptomCheck
}

func (f *handlerSymptomRepo) Create(_ context.Context, check *domain.SymptomCheck) (string, error) {
	f.created = check
	return "sc1", nil
}

func (f *handlerSymptomRepo) List(_ context.Context, _ string, _ int64) ([]bson.M, error) {
	return []bson.M{}, nil
}

func symptomRouter(t *testing.T, repo *handlerSymptomRepo) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log, err := logger.New("development")
	require.NoError(t, err)

	r := gin.New()
	h := NewSymptomHandler(services.NewSymptomService(log, repo))
	r.POST("/api/symptoms", h.Submit)
	r.GET("/api/symptoms", h.List)
	return r
}

func TestSubmitSymptomsComputesRisk(t *testing.T) {
	repo := &handlerSymptomRepo{}
	r := symptomRouter(t, repo)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/symptoms",
		strings.NewReader(`{"symptoms":["cough","fever"],"severity":"moderate"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		ID         string  `json:"id"`
		RiskScore  float64 `json:"risk_score"`
		Assessment string  `json:"assessment"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "sc1", body.ID)
	assert.InDelta(t, 0.90, body.RiskScore, 1e-9)
	assert.NotEmpty(t, body.Assessment)
}

func TestSubmitSymptomsIgnoresClientComputedFields(t *testing.T) {
	repo := &handlerSymptomRepo{}
	r := symptomRouter(t, repo)

	// risk_score and assessment are not part of the input type, so
	// client-supplied values are silently dropped.
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/symptoms",
		strings.NewReader(`{"symptoms":["cough"],"risk_score":0.01,"assessment":"all good"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, repo.created)
	assert.InDelta(t, 0.35, repo.created.RiskScore, 1e-9)
	assert.NotEqual(t, "all good", repo.created.Assessment)
}

func TestSubmitSymptomsRequiresSymptoms(t *testing.T) {
	r := symptomRouter(t, &handlerSymptomRepo{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/symptoms", strings.NewReader(`{"severity":"mild"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListSymptomsLimitBounds(t *testing.T) {
	r := symptomRouter(t, &handlerSymptomRepo{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/symptoms?limit=200", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
