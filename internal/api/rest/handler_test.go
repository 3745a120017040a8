package rest_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopsledger/pickboard/internal/api/middleware"
	"github.com/hoopsledger/pickboard/internal/api/rest"
	"github.com/hoopsledger/pickboard/internal/api/shared/dto"
	apierrors "github.com/hoopsledger/pickboard/internal/api/shared/errors"
	"github.com/hoopsledger/pickboard/internal/domain"
	"github.com/hoopsledger/pickboard/internal/mocks"
)

func setupRouter(t *testing.T, authCfg middleware.AuthConfig) (*gin.Engine, *mocks.MockAPIExecutor) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	exec := mocks.NewMockAPIExecutor(ctrl)

	router := gin.New()
	rest.SetupRoutes(router, rest.NewHandler(exec), authCfg)

	return router, exec
}

func doGet(router *gin.Engine, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetPicks_PinsViewAndPassesSelection(t *testing.T) {
	router, exec := setupRouter(t, middleware.AuthConfig{})

	exec.EXPECT().
		NormalizeSelection(domain.RawSelection{View: "grid", Year: "2028", Round: "1", Team: "nyk", Lens: "critical"}).
		Return(domain.Selection{View: domain.ViewGrid, Year: 2028, Round: 1, Team: "NYK", Sort: domain.SortBoard, Lens: domain.LensCritical})
	exec.EXPECT().
		GetPicks(gomock.Any(), domain.Selection{View: domain.ViewPicks, Year: 2028, Round: 1, Team: "NYK", Sort: domain.SortBoard, Lens: domain.LensCritical}).
		Return(&dto.PickListResponse{Total: 1, Picks: []dto.PickSummaryResponse{{PickKey: "NYK-2028-1"}}}, nil)

	w := doGet(router, "/api/v1/picks?view=grid&year=2028&round=1&team=nyk&lens=critical", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var body dto.PickListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Total)
	assert.Equal(t, "NYK-2028-1", body.Picks[0].PickKey)
}

func TestGetGrid(t *testing.T) {
	router, exec := setupRouter(t, middleware.AuthConfig{})

	exec.EXPECT().NormalizeSelection(gomock.Any()).Return(domain.Selection{Year: 2028})
	exec.EXPECT().
		GetGrid(gomock.Any(), domain.Selection{View: domain.ViewGrid, Year: 2028}).
		Return(&dto.GridResponse{Years: []int{2028}}, nil)

	w := doGet(router, "/api/v1/grid", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"years":[2028]`)
}

func TestGetSelections_DatabaseErrorMapsTo500(t *testing.T) {
	router, exec := setupRouter(t, middleware.AuthConfig{})

	exec.EXPECT().NormalizeSelection(gomock.Any()).Return(domain.Selection{Year: 2020})
	exec.EXPECT().
		GetSelections(gomock.Any(), gomock.Any()).
		Return(nil, apierrors.NewDatabaseError("Failed to list draft selections: boom"))

	w := doGet(router, "/api/v1/selections?year=2020", nil)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body apierrors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, apierrors.ErrCodeDatabaseError, body.Code)
}

func TestGetDashboard_UnexpectedErrorIsInternal(t *testing.T) {
	router, exec := setupRouter(t, middleware.AuthConfig{})

	exec.EXPECT().GetDashboard(gomock.Any(), domain.RawSelection{View: "picks"}).Return(nil, errors.New("unexpected"))

	w := doGet(router, "/api/v1/dashboard?view=picks", nil)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body apierrors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, apierrors.ErrCodeInternalError, body.Code)
	assert.Equal(t, "Failed to get dashboard", body.Message)
}

func TestGetPick(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		setup       func(exec *mocks.MockAPIExecutor)
		wantStatus  int
		wantCode    apierrors.ErrorCode
		wantDetails string
	}{
		{
			name: "found, key upper-cased",
			path: "/api/v1/picks/nyk-2028-1",
			setup: func(exec *mocks.MockAPIExecutor) {
				exec.EXPECT().
					GetPick(gomock.Any(), domain.NewPickKey("NYK", 2028, 1)).
					Return(&dto.PickDetailResponse{Pick: dto.PickSummaryResponse{PickKey: "NYK-2028-1"}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "no rows",
			path: "/api/v1/picks/BOS-2030-2",
			setup: func(exec *mocks.MockAPIExecutor) {
				exec.EXPECT().GetPick(gomock.Any(), domain.NewPickKey("BOS", 2030, 2)).Return(nil, nil)
			},
			wantStatus:  http.StatusNotFound,
			wantCode:    apierrors.ErrCodeNotFound,
			wantDetails: "BOS-2030-2",
		},
		{
			name:       "malformed key",
			path:        "/api/v1/picks/NYK-28-1",
			setup:       func(exec *mocks.MockAPIExecutor) {},
			wantStatus:  http.StatusBadRequest,
			wantCode:    apierrors.ErrCodeBadRequest,
			wantDetails: "invalid pick key",
		},
		{
			name:       "round out of range",
			path:       "/api/v1/picks/NYK-2028-3",
			setup:      func(exec *mocks.MockAPIExecutor) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apierrors.ErrCodeBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, exec := setupRouter(t, middleware.AuthConfig{})
			tt.setup(exec)

			w := doGet(router, tt.path, nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantCode != "" {
				var body apierrors.APIError
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.wantCode, body.Code)
				assert.Contains(t, body.Details, tt.wantDetails)
			}
		})
	}
}

func TestHealthCheck(t *testing.T) {
	router, exec := setupRouter(t, middleware.AuthConfig{APIKeys: []string{"secret"}})

	exec.EXPECT().GetHealth(gomock.Any()).Return(&dto.HealthResponse{Status: "ok"}, nil)

	// health is never behind auth
	w := doGet(router, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestRoutes_AuthOnlyWhenConfigured(t *testing.T) {
	router, exec := setupRouter(t, middleware.AuthConfig{APIKeys: []string{"secret"}})

	w := doGet(router, "/api/v1/grid", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doGet(router, "/api/v1/grid", map[string]string{"Authorization": "ApiKey wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	exec.EXPECT().NormalizeSelection(gomock.Any()).Return(domain.Selection{Year: 2028})
	exec.EXPECT().GetGrid(gomock.Any(), gomock.Any()).Return(&dto.GridResponse{}, nil)

	w = doGet(router, "/api/v1/grid", map[string]string{"Authorization": "ApiKey secret"})
	assert.Equal(t, http.StatusOK, w.Code)
}
