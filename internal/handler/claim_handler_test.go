package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Fahad-1515/fnol-agent/internal/domain"
	"github.com/Fahad-1515/fnol-agent/mocks"
)

func setupClaimRouter(svc *mocks.MockClaimService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewClaimHandler(svc)
	r.POST("/api/v1/claims", h.Process)
	r.GET("/api/v1/claims", h.List)
	r.GET("/api/v1/claims/:id", h.GetByID)
	r.DELETE("/api/v1/claims/:id", h.Delete)
	return r
}

func TestProcess_DryRun(t *testing.T) {
	svc := new(mocks.MockClaimService)
	svc.On("ProcessText", mock.Anything, "inline", "Policy Number: AUTO-1").
		Return(&domain.ProcessResult{
			Status:           domain.ProcessStatusSuccess,
			RecommendedRoute: domain.RouteManualReview,
			Reasoning:        "Damage amount not specified or could not be extracted",
		})

	body, _ := json.Marshal(gin.H{"text": "Policy Number: AUTO-1", "dry_run": true})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/claims", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	setupClaimRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	svc.AssertExpectations(t)
}

func TestProcess_MissingText(t *testing.T) {
	svc := new(mocks.MockClaimService)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/claims", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	setupClaimRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "ProcessAndStore")
}

func TestProcess_Stores(t *testing.T) {
	svc := new(mocks.MockClaimService)
	svc.On("ProcessAndStore", mock.Anything, "report.txt", "Policy Number: AUTO-1").
		Return(&domain.Claim{ID: uuid.New(), Route: domain.RouteManualReview},
			&domain.ProcessResult{Status: domain.ProcessStatusSuccess}, nil)

	body, _ := json.Marshal(gin.H{"document_name": "report.txt", "text": "Policy Number: AUTO-1"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/claims", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	setupClaimRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertExpectations(t)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := new(mocks.MockClaimService)
	id := uuid.New()
	svc.On("GetByID", mock.Anything, id).Return(nil, domain.ErrClaimNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/claims/"+id.String(), nil)
	w := httptest.NewRecorder()
	setupClaimRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "CLAIM_NOT_FOUND", resp.Error.Code)
}

func TestGetByID_InvalidID(t *testing.T) {
	svc := new(mocks.MockClaimService)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/claims/not-a-uuid", nil)
	w := httptest.NewRecorder()
	setupClaimRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestList_Paginated(t *testing.T) {
	svc := new(mocks.MockClaimService)
	svc.On("List", mock.Anything, domain.RouteFastTrack, 0, 50).
		Return([]domain.Claim{{ID: uuid.New(), Route: domain.RouteFastTrack}}, 1, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/claims?route=Fast-track", nil)
	w := httptest.NewRecorder()
	setupClaimRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 1, resp.Meta.Total)
	svc.AssertExpectations(t)
}

func TestDelete(t *testing.T) {
	svc := new(mocks.MockClaimService)
	id := uuid.New()
	svc.On("Delete", mock.Anything, id).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/claims/"+id.String(), nil)
	w := httptest.NewRecorder()
	setupClaimRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}
