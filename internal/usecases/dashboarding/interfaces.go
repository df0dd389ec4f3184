package dashboarding

import (
	"github.com/srihariharan14/auto-sales-dashboard/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/dashboarder_mock.go -package=mocks

// RecordSource é a visão somente leitura da tabela de vendas que o
// dashboard consome.
type RecordSource interface {
	// Records retorna o conjunto completo de registros carregados
	Records() []domain.SaleRecord

	// Dimensions retorna os valores distintos ordenados por coluna filtrável
	Dimensions() domain.Dimensions
}

// Dashboarder monta a estrutura da página e os snapshots do dashboard a
// partir de uma seleção de filtros.
type Dashboarder interface {
	// Layout retorna a estrutura estática da página com os controles populados
	Layout() *domain.DashboardLayout

	// Dimensions retorna os valores distintos disponíveis para filtragem
	Dimensions() domain.Dimensions

	// GetDashboard filtra a tabela e recomputa KPIs e todos os gráficos
	GetDashboard(selection domain.FilterSelection) (*domain.DashboardSnapshot, error)

	// GetChart filtra a tabela e recomputa um único gráfico pelo identificador
	GetChart(id string, selection domain.FilterSelection) (*domain.ChartSpec, error)
}
