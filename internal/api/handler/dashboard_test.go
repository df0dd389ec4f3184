package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/srihariharan14/auto-sales-dashboard/internal/api/handler/router"
	"github.com/srihariharan14/auto-sales-dashboard/internal/domain"
	"github.com/srihariharan14/auto-sales-dashboard/internal/usecases/classifying"
	"github.com/srihariharan14/auto-sales-dashboard/internal/usecases/dashboarding"
	dashboardingmocks "github.com/srihariharan14/auto-sales-dashboard/internal/usecases/dashboarding/mocks"
	"github.com/srihariharan14/auto-sales-dashboard/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRouter(dashboardService dashboarding.Dashboarder, classifierService classifying.Classifier) http.Handler {
	configs := []router.ConfigRouter{
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Page()...),
		router.WithNotFound(NotFound()),
	}

	if dashboardService != nil {
		configs = append(configs, router.WithRoutes(Dashboard(dashboardService)...))
	}

	if classifierService != nil {
		configs = append(configs, router.WithRoutes(Model(classifierService)...))
	}

	rt := router.New(configs...)
	return rt
}

func decodeError(t *testing.T, body []byte) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(body, &apiErr))
	return apiErr
}

func TestGetDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := dashboardingmocks.NewMockDashboarder(ctrl)

	expectedSelection := domain.FilterSelection{
		Manufacturers: []string{"Toyota", "Ford"},
		Regions:       []string{"East"},
		Category:      "High",
		PeriodStart:   "2023-01",
		PeriodEnd:     "2023-06",
	}

	service.EXPECT().
		GetDashboard(expectedSelection).
		Return(&domain.DashboardSnapshot{
			Filters:         expectedSelection,
			FilteredRecords: 7,
			KPIs:            domain.KPISummary{TotalSalesVolumeLabel: "1,200"},
		}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/v1/dashboard?manufacturer=Toyota&manufacturer=Ford&region=East&category=High&period_start=2023-01&period_end=2023-06", nil)

	newTestRouter(service, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var snapshot domain.DashboardSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
	assert.Equal(t, 7, snapshot.FilteredRecords)
	assert.Equal(t, "1,200", snapshot.KPIs.TotalSalesVolumeLabel)
}

func TestGetDashboard_InvalidPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := dashboardingmocks.NewMockDashboarder(ctrl)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard?period_start=Jan-2023", nil)

	newTestRouter(service, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec.Body.Bytes()).Code)
}

func TestGetDashboard_RenderFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := dashboardingmocks.NewMockDashboarder(ctrl)

	service.EXPECT().
		GetDashboard(gomock.Any()).
		Return(nil, errors.New("falha inesperada"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)

	newTestRouter(service, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, apiErrors.ErrRenderFailure, decodeError(t, rec.Body.Bytes()).Code)
}

func TestGetChart(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := dashboardingmocks.NewMockDashboarder(ctrl)

	service.EXPECT().
		GetChart("sales-trend", domain.FilterSelection{Regions: []string{"East"}}).
		Return(&domain.ChartSpec{ID: "sales-trend", Type: domain.ChartTypeLine}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/charts/sales-trend?region=East", nil)

	newTestRouter(service, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var spec domain.ChartSpec
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &spec))
	assert.Equal(t, "sales-trend", spec.ID)
}

func TestGetChart_Unknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := dashboardingmocks.NewMockDashboarder(ctrl)

	service.EXPECT().
		GetChart("nao-existe", domain.FilterSelection{}).
		Return(nil, errors.Wrap(dashboarding.ErrUnknownChart, `id "nao-existe"`))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/charts/nao-existe", nil)

	newTestRouter(service, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrUnknownChart, decodeError(t, rec.Body.Bytes()).Code)
}

func TestGetLayout(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := dashboardingmocks.NewMockDashboarder(ctrl)

	service.EXPECT().Layout().Return(&domain.DashboardLayout{
		Title: "Automobile Sales Classification Dashboard",
		KPICards: []domain.KPICard{
			{ID: "kpi-total-sales", Label: "Total Sales Volume"},
		},
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/layout", nil)

	newTestRouter(service, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var layout domain.DashboardLayout
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &layout))
	assert.Equal(t, "Automobile Sales Classification Dashboard", layout.Title)
}

func TestGetFilterDimensions(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := dashboardingmocks.NewMockDashboarder(ctrl)

	service.EXPECT().Dimensions().Return(domain.Dimensions{
		Manufacturers: []string{"Ford", "Toyota"},
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/filters", nil)

	newTestRouter(service, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var dims domain.Dimensions
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dims))
	assert.Equal(t, []string{"Ford", "Toyota"}, dims.Manufacturers)
}

func TestNotFound(t *testing.T) {
	handler := newTestRouter(nil, nil)

	// Rota desconhecida da API responde 404 em JSON
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/nao-existe", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrRouteNotFound, decodeError(t, rec.Body.Bytes()).Code)

	// Qualquer outro caminho serve a página do dashboard
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/qualquer-coisa", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
}

func TestIndexPage(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(nil, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<html")
}
