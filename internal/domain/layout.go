package domain

// Tipos de controle de filtro suportados pela página.
const (
	ControlDropdown = "dropdown"
	ControlRadio    = "radio"
)

// FilterOption é uma opção selecionável de um controle de filtro.
type FilterOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// FilterControl descreve um controle interativo do dashboard e suas opções,
// derivadas dos valores distintos do dataset.
type FilterControl struct {
	ID      string         `json:"id"`
	Label   string         `json:"label"`
	Type    string         `json:"type"`
	Multi   bool           `json:"multi"`
	Options []FilterOption `json:"options"`
	Default []string       `json:"default,omitempty"`
}

// KPICard é o placeholder de um indicador atualizado a cada filtragem.
type KPICard struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ChartContainer é o placeholder de um gráfico na página.
type ChartContainer struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// DashboardLayout é a estrutura estática da página: cabeçalho, cards de
// KPI, controles de filtro e containers de gráfico.
type DashboardLayout struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	KPICards    []KPICard        `json:"kpi_cards"`
	Filters     []FilterControl  `json:"filters"`
	Charts      []ChartContainer `json:"charts"`
}
