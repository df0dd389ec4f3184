package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/srihariharan14/auto-sales-dashboard/internal/domain"
	"github.com/srihariharan14/auto-sales-dashboard/internal/usecases/dashboarding"
	"github.com/srihariharan14/auto-sales-dashboard/pkg/apiErrors"
	"github.com/srihariharan14/auto-sales-dashboard/pkg/log"
	"github.com/srihariharan14/auto-sales-dashboard/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetLayout retorna a estrutura estática da página: cabeçalho, cards de KPI,
// controles de filtro com opções e containers de gráfico.
func GetLayout(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		writeJSON(w, logger, "layout", service.Layout())
	})
}

// GetFilterDimensions retorna os valores distintos de cada coluna filtrável.
func GetFilterDimensions(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		writeJSON(w, logger, "filters", service.Dimensions())
	})
}

// GetDashboard recomputa o snapshot completo (KPIs e todos os gráficos) para
// a seleção de filtros da query string.
func GetDashboard(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		selection, err := parseFilterSelection(r)
		if err != nil {
			logger.WithError(err).Warn("dashboard: seleção de filtros inválida")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		snapshot, err := service.GetDashboard(selection)
		if err != nil {
			logger.WithError(err).Error("dashboard: erro ao montar o snapshot")
			apiErrors.WriteError(w, apiErrors.ErrRenderFailure, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"filtered_records": snapshot.FilteredRecords,
			"charts":           len(snapshot.Charts),
		}).Info("dashboard: snapshot recomputado")

		writeJSON(w, logger, "dashboard", snapshot)
	})
}

// GetChart recomputa um único gráfico pelo identificador da rota.
func GetChart(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		selection, err := parseFilterSelection(r)
		if err != nil {
			logger.WithError(err).WithField("chart_id", id).Warn("charts: seleção de filtros inválida")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		spec, err := service.GetChart(id, selection)
		if err != nil {
			if errors.Is(err, dashboarding.ErrUnknownChart) {
				logger.WithField("chart_id", id).Warn("charts: gráfico desconhecido")
				apiErrors.WriteError(w, apiErrors.ErrUnknownChart, err.Error(), nil)
				return
			}

			logger.WithError(err).WithField("chart_id", id).Error("charts: erro ao renderizar")
			apiErrors.WriteError(w, apiErrors.ErrRenderFailure, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"chart_id": id,
			"no_data":  spec.NoData,
		}).Info("charts: gráfico recomputado")

		writeJSON(w, logger, "charts", spec)
	})
}

// parseFilterSelection monta a seleção de filtros a partir da query string.
// Parâmetros multivalorados se repetem (?manufacturer=A&manufacturer=B).
func parseFilterSelection(r *http.Request) (domain.FilterSelection, error) {
	query := r.URL.Query()

	periodStart, err := utils.ParsePeriod(query.Get("period_start"))
	if err != nil {
		return domain.FilterSelection{}, errors.Wrap(err, "period_start inválido, use o formato YYYY-MM")
	}

	periodEnd, err := utils.ParsePeriod(query.Get("period_end"))
	if err != nil {
		return domain.FilterSelection{}, errors.Wrap(err, "period_end inválido, use o formato YYYY-MM")
	}

	return domain.FilterSelection{
		Manufacturers: query["manufacturer"],
		Regions:       query["region"],
		Category:      query.Get("category"),
		PeriodStart:   periodStart,
		PeriodEnd:     periodEnd,
	}, nil
}

func writeJSON(w http.ResponseWriter, logger log.Logger, scope string, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Errorf("%s: erro ao codificar resposta", scope)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
