// Package charting contém os renderizadores de gráfico do dashboard. Cada
// renderizador é uma função pura: recebe o subconjunto filtrado e devolve
// um ChartSpec declarativo. Um subconjunto vazio produz um spec "sem dados"
// bem definido, nunca um panic.
package charting

import (
	"sort"

	"github.com/srihariharan14/auto-sales-dashboard/internal/domain"
)

// Identificadores estáveis dos gráficos do dashboard.
const (
	ChartSalesTrend            = "sales-trend"
	ChartCategoryPerformance   = "category-performance"
	ChartRegionalHeatmap       = "regional-heatmap"
	ChartSuccessClassification = "success-classification"
)

const (
	templatePlotlyWhite = "plotly_white"
	heatmapColorscale   = "Viridis"
	noDataTitle         = "No data to display based on filters."

	successColor      = "#4CAF50"
	unsuccessfulColor = "#F44336"

	successLabel      = "Successful Sales"
	unsuccessfulLabel = "Unsuccessful Sales"
)

// ChartIDs retorna os identificadores dos gráficos na ordem em que aparecem
// na página.
func ChartIDs() []string {
	return []string{
		ChartSalesTrend,
		ChartRegionalHeatmap,
		ChartCategoryPerformance,
		ChartSuccessClassification,
	}
}

// SalesTrend agrega o volume de vendas por período e produz o gráfico de
// linha da tendência temporal.
func SalesTrend(records []domain.SaleRecord) domain.ChartSpec {
	if len(records) == 0 {
		return noDataSpec(ChartSalesTrend, domain.ChartTypeLine)
	}

	totals := make(map[string]float64)
	for _, r := range records {
		totals[r.TimePeriod] += float64(r.SalesVolume)
	}

	periods := sortedKeys(totals)
	values := make([]float64, len(periods))
	for i, p := range periods {
		values[i] = totals[p]
	}

	return domain.ChartSpec{
		ID:       ChartSalesTrend,
		Type:     domain.ChartTypeLine,
		Title:    "Sales Volume Trend Over Time",
		Template: templatePlotlyWhite,
		XAxis:    &domain.Axis{Title: "TimePeriod"},
		YAxis:    &domain.Axis{Title: "SalesVolume"},
		Series: []domain.Series{{
			Name:   "SalesVolume",
			Labels: periods,
			Values: values,
		}},
	}
}

// CategoryPerformance calcula o preço médio por categoria de venda e produz
// o gráfico de barras comparativo.
func CategoryPerformance(records []domain.SaleRecord) domain.ChartSpec {
	if len(records) == 0 {
		return noDataSpec(ChartCategoryPerformance, domain.ChartTypeBar)
	}

	sums := make(map[string]float64)
	counts := make(map[string]float64)
	for _, r := range records {
		sums[r.SalesCategory] += r.PriceK
		counts[r.SalesCategory]++
	}

	categories := sortedKeys(sums)
	averages := make([]float64, len(categories))
	for i, c := range categories {
		averages[i] = sums[c] / counts[c]
	}

	return domain.ChartSpec{
		ID:       ChartCategoryPerformance,
		Type:     domain.ChartTypeBar,
		Title:    "Average Price by Sales Category (k)",
		Template: templatePlotlyWhite,
		XAxis:    &domain.Axis{Title: "Sales_Category"},
		YAxis:    &domain.Axis{Title: "Price_k"},
		Series: []domain.Series{{
			Name:   "Price_k",
			Labels: categories,
			Values: averages,
		}},
	}
}

// RegionalHeatmap agrega o volume de vendas por região e fabricante.
// Combinações ausentes no subconjunto entram como zero na matriz.
func RegionalHeatmap(records []domain.SaleRecord) domain.ChartSpec {
	if len(records) == 0 {
		return noDataSpec(ChartRegionalHeatmap, domain.ChartTypeHeatmap)
	}

	type cell struct{ region, manufacturer string }

	totals := make(map[cell]float64)
	regionSet := make(map[string]float64)
	manufacturerSet := make(map[string]float64)

	for _, r := range records {
		totals[cell{r.Region, r.Manufacturer}] += float64(r.SalesVolume)
		regionSet[r.Region] = 0
		manufacturerSet[r.Manufacturer] = 0
	}

	regions := sortedKeys(regionSet)
	manufacturers := sortedKeys(manufacturerSet)

	matrix := make([][]float64, len(manufacturers))
	for i, m := range manufacturers {
		row := make([]float64, len(regions))
		for j, reg := range regions {
			row[j] = totals[cell{reg, m}]
		}
		matrix[i] = row
	}

	return domain.ChartSpec{
		ID:         ChartRegionalHeatmap,
		Type:       domain.ChartTypeHeatmap,
		Title:      "Sales Volume Heatmap by Region and Manufacturer",
		Colorscale: heatmapColorscale,
		XAxis:      &domain.Axis{Title: "Region"},
		YAxis:      &domain.Axis{Title: "Manufacturer"},
		Series: []domain.Series{{
			Name:    "SalesVolume",
			Columns: regions,
			Rows:    manufacturers,
			Matrix:  matrix,
		}},
	}
}

// SuccessClassification conta os registros por rótulo do classificador e
// produz o gráfico de pizza da distribuição do alvo.
func SuccessClassification(records []domain.SaleRecord) domain.ChartSpec {
	if len(records) == 0 {
		return noDataSpec(ChartSuccessClassification, domain.ChartTypePie)
	}

	var successes, failures float64
	for _, r := range records {
		if r.IsSuccess {
			successes++
		} else {
			failures++
		}
	}

	return domain.ChartSpec{
		ID:       ChartSuccessClassification,
		Type:     domain.ChartTypePie,
		Title:    "Sales Classification Distribution (Target Variable)",
		Template: templatePlotlyWhite,
		Colors:   []string{successColor, unsuccessfulColor},
		Series: []domain.Series{{
			Labels: []string{successLabel, unsuccessfulLabel},
			Values: []float64{successes, failures},
		}},
	}
}

// Render despacha para o renderizador do gráfico informado. Retorna false
// quando o identificador é desconhecido.
func Render(id string, records []domain.SaleRecord) (domain.ChartSpec, bool) {
	switch id {
	case ChartSalesTrend:
		return SalesTrend(records), true
	case ChartCategoryPerformance:
		return CategoryPerformance(records), true
	case ChartRegionalHeatmap:
		return RegionalHeatmap(records), true
	case ChartSuccessClassification:
		return SuccessClassification(records), true
	}
	return domain.ChartSpec{}, false
}

func noDataSpec(id string, chartType domain.ChartType) domain.ChartSpec {
	return domain.ChartSpec{
		ID:       id,
		Type:     chartType,
		Title:    noDataTitle,
		Template: templatePlotlyWhite,
		NoData:   true,
	}
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
