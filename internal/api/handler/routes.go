package handler

import (
	"net/http"

	"github.com/srihariharan14/auto-sales-dashboard/internal/api/handler/router"
	"github.com/srihariharan14/auto-sales-dashboard/internal/usecases/classifying"
	"github.com/srihariharan14/auto-sales-dashboard/internal/usecases/dashboarding"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/layout",
			Method:  http.MethodGet,
			Handler: GetLayout(service),
		},
		{
			Path:    "/v1/filters",
			Method:  http.MethodGet,
			Handler: GetFilterDimensions(service),
		},
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/charts/:id",
			Method:  http.MethodGet,
			Handler: GetChart(service),
		},
	}
}

func Model(service classifying.Classifier) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/model",
			Method:  http.MethodGet,
			Handler: GetModelInfo(service),
		},
		{
			Path:    "/v1/classify",
			Method:  http.MethodPost,
			Handler: ClassifySale(service),
		},
	}
}

func Page() []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: IndexPage(),
		},
	}
}
