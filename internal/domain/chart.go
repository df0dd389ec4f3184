package domain

// ChartType identifica o tipo de visualização de um ChartSpec.
type ChartType string

const (
	ChartTypeLine    ChartType = "line"
	ChartTypeBar     ChartType = "bar"
	ChartTypeHeatmap ChartType = "heatmap"
	ChartTypePie     ChartType = "pie"
)

// Axis descreve um eixo de um gráfico cartesiano.
type Axis struct {
	Title string `json:"title"`
}

// Series é uma série de dados de um gráfico. Gráficos de linha, barra e
// pizza usam Labels/Values; heatmaps usam Rows/Columns/Matrix.
type Series struct {
	Name    string      `json:"name,omitempty"`
	Labels  []string    `json:"labels,omitempty"`
	Values  []float64   `json:"values,omitempty"`
	Rows    []string    `json:"rows,omitempty"`
	Columns []string    `json:"columns,omitempty"`
	Matrix  [][]float64 `json:"matrix,omitempty"`
}

// ChartSpec é a descrição declarativa de um gráfico, independente da
// biblioteca de renderização. É sempre recomputado, nunca mutado.
type ChartSpec struct {
	ID         string    `json:"id"`
	Type       ChartType `json:"type"`
	Title      string    `json:"title"`
	Template   string    `json:"template,omitempty"`
	Colors     []string  `json:"colors,omitempty"`
	Colorscale string    `json:"colorscale,omitempty"`
	XAxis      *Axis     `json:"x_axis,omitempty"`
	YAxis      *Axis     `json:"y_axis,omitempty"`
	Series     []Series  `json:"series,omitempty"`
	NoData     bool      `json:"no_data"`
}
