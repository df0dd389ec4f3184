package domain

// SaleRecord representa uma observação de venda do dataset processado.
// Os registros são imutáveis após o carregamento.
type SaleRecord struct {
	Manufacturer  string  `json:"manufacturer"`
	Region        string  `json:"region"`
	SalesCategory string  `json:"sales_category"`
	TimePeriod    string  `json:"time_period"` // formato YYYY-MM
	SalesVolume   int64   `json:"sales_volume"`
	PriceK        float64 `json:"price_k"` // preço em milhares de dólares
	IsSuccess     bool    `json:"is_success"`
}

// Dimensions contém os valores distintos (ordenados) de cada coluna filtrável,
// usados para popular os controles de filtro do dashboard.
type Dimensions struct {
	Manufacturers []string `json:"manufacturers"`
	Regions       []string `json:"regions"`
	Categories    []string `json:"categories"`
	Periods       []string `json:"periods"`
}
