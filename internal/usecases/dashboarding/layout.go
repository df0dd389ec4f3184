package dashboarding

import (
	"github.com/srihariharan14/auto-sales-dashboard/internal/domain"
	"github.com/srihariharan14/auto-sales-dashboard/internal/usecases/charting"
)

// Identificadores dos controles de filtro da página.
const (
	FilterManufacturer = "manufacturer-filter"
	FilterRegion       = "region-filter"
	FilterCategory     = "sales-category-radio"
	FilterPeriodStart  = "period-start-filter"
	FilterPeriodEnd    = "period-end-filter"
)

// buildLayout monta a estrutura estática da página a partir do schema do
// dataset: cabeçalho, cards de KPI, controles de filtro com as opções
// distintas de cada coluna e os containers de gráfico.
func buildLayout(dims domain.Dimensions, title string) *domain.DashboardLayout {
	return &domain.DashboardLayout{
		Title:       title,
		Description: "Interactive dashboard showcasing sales patterns, regional performance trends, and ML classification targets.",
		KPICards: []domain.KPICard{
			{ID: "kpi-total-sales", Label: "Total Sales Volume"},
			{ID: "kpi-avg-price", Label: "Average Vehicle Price"},
			{ID: "kpi-success-rate", Label: "Success Rate (ML Target)"},
		},
		Filters: []domain.FilterControl{
			{
				ID:      FilterManufacturer,
				Label:   "Manufacturer Filter",
				Type:    domain.ControlDropdown,
				Multi:   true,
				Options: options(dims.Manufacturers),
				// Por padrão todos os fabricantes ficam selecionados
				Default: dims.Manufacturers,
			},
			{
				ID:      FilterRegion,
				Label:   "Region Filter",
				Type:    domain.ControlDropdown,
				Multi:   true,
				Options: options(dims.Regions),
				Default: dims.Regions,
			},
			{
				ID:      FilterCategory,
				Label:   "Sales Category",
				Type:    domain.ControlRadio,
				Options: categoryOptions(dims.Categories),
				Default: []string{domain.CategoryAll},
			},
			{
				ID:      FilterPeriodStart,
				Label:   "Period From",
				Type:    domain.ControlDropdown,
				Options: options(dims.Periods),
			},
			{
				ID:      FilterPeriodEnd,
				Label:   "Period To",
				Type:    domain.ControlDropdown,
				Options: options(dims.Periods),
			},
		},
		Charts: []domain.ChartContainer{
			{ID: charting.ChartSalesTrend, Title: "Sales Volume Trend Over Time"},
			{ID: charting.ChartRegionalHeatmap, Title: "Sales Volume Heatmap by Region and Manufacturer"},
			{ID: charting.ChartCategoryPerformance, Title: "Average Price by Sales Category (k)"},
			{ID: charting.ChartSuccessClassification, Title: "Sales Classification Distribution (Target Variable)"},
		},
	}
}

func options(values []string) []domain.FilterOption {
	opts := make([]domain.FilterOption, 0, len(values))
	for _, v := range values {
		opts = append(opts, domain.FilterOption{Label: v, Value: v})
	}
	return opts
}

// categoryOptions acrescenta a opção "All Categories" depois das categorias
// do dataset.
func categoryOptions(categories []string) []domain.FilterOption {
	opts := make([]domain.FilterOption, 0, len(categories)+1)
	for _, c := range categories {
		opts = append(opts, domain.FilterOption{Label: c + " Sales", Value: c})
	}
	opts = append(opts, domain.FilterOption{Label: "All Categories", Value: domain.CategoryAll})
	return opts
}
