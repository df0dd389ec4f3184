package domain

// KPISummary resume o subconjunto filtrado: volume total de vendas, preço
// médio e taxa de sucesso segundo o alvo do classificador. Os campos *Label
// carregam os valores já formatados para exibição nos cards.
type KPISummary struct {
	TotalSalesVolume int64   `json:"total_sales_volume"`
	AveragePriceK    float64 `json:"average_price_k"`
	SuccessRate      float64 `json:"success_rate"` // percentual, 0-100

	TotalSalesVolumeLabel string `json:"total_sales_volume_label"`
	AveragePriceLabel     string `json:"average_price_label"`
	SuccessRateLabel      string `json:"success_rate_label"`
}

// DashboardSnapshot é a resposta completa de uma atualização do dashboard:
// KPIs e todos os gráficos recomputados para a seleção de filtros.
type DashboardSnapshot struct {
	Filters         FilterSelection `json:"filters"`
	FilteredRecords int             `json:"filtered_records"`
	KPIs            KPISummary      `json:"kpis"`
	Charts          []ChartSpec     `json:"charts"`
}
