package dashboarding

import (
	"github.com/pkg/errors"
	"github.com/srihariharan14/auto-sales-dashboard/internal/domain"
	"github.com/srihariharan14/auto-sales-dashboard/internal/usecases/charting"
	"github.com/srihariharan14/auto-sales-dashboard/internal/usecases/filtering"
)

// ErrUnknownChart indica um identificador de gráfico que não existe na página.
var ErrUnknownChart = errors.New("gráfico desconhecido")

// Service é o despachante de atualização do dashboard: a cada mudança de
// filtro, filtra a tabela de vendas e invoca os renderizadores, devolvendo
// os specs recomputados. Sem retries nem resultados parciais.
type Service struct {
	source RecordSource
	layout *domain.DashboardLayout
}

// NewService cria o serviço de dashboard sobre a tabela carregada. O layout
// é construído uma única vez, já que o schema do dataset não muda em runtime.
func NewService(source RecordSource, title string) *Service {
	return &Service{
		source: source,
		layout: buildLayout(source.Dimensions(), title),
	}
}

// Layout retorna a estrutura estática da página.
func (s *Service) Layout() *domain.DashboardLayout {
	return s.layout
}

// Dimensions retorna os valores distintos disponíveis para filtragem.
func (s *Service) Dimensions() domain.Dimensions {
	return s.source.Dimensions()
}

// GetDashboard aplica a seleção sobre a tabela e recomputa os KPIs e todos
// os gráficos da página.
func (s *Service) GetDashboard(selection domain.FilterSelection) (*domain.DashboardSnapshot, error) {
	filtered := filtering.Apply(s.source.Records(), selection)

	charts := make([]domain.ChartSpec, 0, len(charting.ChartIDs()))
	for _, id := range charting.ChartIDs() {
		spec, ok := charting.Render(id, filtered)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownChart, "id %q", id)
		}
		charts = append(charts, spec)
	}

	return &domain.DashboardSnapshot{
		Filters:         selection,
		FilteredRecords: len(filtered),
		KPIs:            charting.Summarize(filtered),
		Charts:          charts,
	}, nil
}

// GetChart aplica a seleção sobre a tabela e recomputa um único gráfico.
func (s *Service) GetChart(id string, selection domain.FilterSelection) (*domain.ChartSpec, error) {
	filtered := filtering.Apply(s.source.Records(), selection)

	spec, ok := charting.Render(id, filtered)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownChart, "id %q", id)
	}

	return &spec, nil
}
