package charting

import (
	"testing"

	"github.com/srihariharan14/auto-sales-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []domain.SaleRecord {
	return []domain.SaleRecord{
		{Manufacturer: "Toyota", Region: "East", SalesCategory: "High", TimePeriod: "2023-02", SalesVolume: 300, PriceK: 20, IsSuccess: true},
		{Manufacturer: "Toyota", Region: "West", SalesCategory: "High", TimePeriod: "2023-01", SalesVolume: 400, PriceK: 24, IsSuccess: true},
		{Manufacturer: "Ford", Region: "East", SalesCategory: "Low", TimePeriod: "2023-01", SalesVolume: 100, PriceK: 50, IsSuccess: false},
	}
}

func TestSalesTrend(t *testing.T) {
	spec := SalesTrend(sampleRecords())

	assert.Equal(t, ChartSalesTrend, spec.ID)
	assert.Equal(t, domain.ChartTypeLine, spec.Type)
	assert.False(t, spec.NoData)

	require.Len(t, spec.Series, 1)
	// Períodos ordenados, volumes somados por período
	assert.Equal(t, []string{"2023-01", "2023-02"}, spec.Series[0].Labels)
	assert.Equal(t, []float64{500, 300}, spec.Series[0].Values)
}

func TestCategoryPerformance(t *testing.T) {
	spec := CategoryPerformance(sampleRecords())

	assert.Equal(t, ChartCategoryPerformance, spec.ID)
	assert.Equal(t, domain.ChartTypeBar, spec.Type)

	require.Len(t, spec.Series, 1)
	assert.Equal(t, []string{"High", "Low"}, spec.Series[0].Labels)
	// Preço médio por categoria: High = (20+24)/2, Low = 50
	assert.Equal(t, []float64{22, 50}, spec.Series[0].Values)
}

func TestRegionalHeatmap(t *testing.T) {
	spec := RegionalHeatmap(sampleRecords())

	assert.Equal(t, ChartRegionalHeatmap, spec.ID)
	assert.Equal(t, domain.ChartTypeHeatmap, spec.Type)
	assert.Equal(t, "Viridis", spec.Colorscale)

	require.Len(t, spec.Series, 1)
	series := spec.Series[0]
	assert.Equal(t, []string{"East", "West"}, series.Columns)
	assert.Equal(t, []string{"Ford", "Toyota"}, series.Rows)

	// Combinações ausentes entram como zero
	assert.Equal(t, [][]float64{
		{100, 0},
		{300, 400},
	}, series.Matrix)
}

func TestSuccessClassification(t *testing.T) {
	spec := SuccessClassification(sampleRecords())

	assert.Equal(t, ChartSuccessClassification, spec.ID)
	assert.Equal(t, domain.ChartTypePie, spec.Type)
	assert.Equal(t, []string{"#4CAF50", "#F44336"}, spec.Colors)

	require.Len(t, spec.Series, 1)
	assert.Equal(t, []string{"Successful Sales", "Unsuccessful Sales"}, spec.Series[0].Labels)
	assert.Equal(t, []float64{2, 1}, spec.Series[0].Values)
}

func TestRenderers_EmptySubset(t *testing.T) {
	// Subconjunto vazio nunca gera panic: todo renderizador devolve um spec
	// "sem dados" bem definido
	for _, id := range ChartIDs() {
		t.Run(id, func(t *testing.T) {
			spec, ok := Render(id, nil)

			require.True(t, ok)
			assert.Equal(t, id, spec.ID)
			assert.True(t, spec.NoData)
			assert.Equal(t, "No data to display based on filters.", spec.Title)
			assert.Empty(t, spec.Series)
		})
	}
}

func TestRender_UnknownID(t *testing.T) {
	_, ok := Render("nao-existe", sampleRecords())
	assert.False(t, ok)
}

func TestRenderers_Deterministic(t *testing.T) {
	records := sampleRecords()

	for _, id := range ChartIDs() {
		first, _ := Render(id, records)
		second, _ := Render(id, records)
		assert.Equal(t, first, second, "renderização de %s deve ser determinística", id)
	}
}

func TestSummarize(t *testing.T) {
	kpis := Summarize(sampleRecords())

	assert.Equal(t, int64(800), kpis.TotalSalesVolume)
	assert.InDelta(t, 31.3, kpis.AveragePriceK, 0.01)
	assert.InDelta(t, 66.666, kpis.SuccessRate, 0.01)

	assert.Equal(t, "800", kpis.TotalSalesVolumeLabel)
	assert.Equal(t, "$31.3k", kpis.AveragePriceLabel)
	assert.Equal(t, "66.7%", kpis.SuccessRateLabel)
}

func TestSummarize_Empty(t *testing.T) {
	kpis := Summarize(nil)

	assert.Equal(t, "0", kpis.TotalSalesVolumeLabel)
	assert.Equal(t, "$0k", kpis.AveragePriceLabel)
	assert.Equal(t, "0.0%", kpis.SuccessRateLabel)
}

func TestSummarize_ThousandsSeparator(t *testing.T) {
	records := []domain.SaleRecord{
		{SalesVolume: 1234567, PriceK: 30, IsSuccess: true},
	}

	kpis := Summarize(records)
	assert.Equal(t, "1,234,567", kpis.TotalSalesVolumeLabel)
}
