package domain

// CategoryAll é o valor do controle de categoria que desativa a restrição.
const CategoryAll = "All"

// FilterSelection é o conjunto de restrições escolhidas pelo usuário.
// Listas vazias e strings vazias significam "sem restrição". A seleção
// existe apenas durante a requisição, não há estado de sessão no servidor.
type FilterSelection struct {
	Manufacturers []string `json:"manufacturers,omitempty"`
	Regions       []string `json:"regions,omitempty"`
	Category      string   `json:"category,omitempty"`
	PeriodStart   string   `json:"period_start,omitempty"` // YYYY-MM, inclusivo
	PeriodEnd     string   `json:"period_end,omitempty"`   // YYYY-MM, inclusivo
}

// Matches informa se o registro satisfaz todas as restrições não vazias
// da seleção (correspondência conjuntiva).
func (f FilterSelection) Matches(r SaleRecord) bool {
	if len(f.Manufacturers) > 0 && !containsValue(f.Manufacturers, r.Manufacturer) {
		return false
	}

	if len(f.Regions) > 0 && !containsValue(f.Regions, r.Region) {
		return false
	}

	if f.Category != "" && f.Category != CategoryAll && r.SalesCategory != f.Category {
		return false
	}

	// Períodos YYYY-MM com zero à esquerda ordenam lexicograficamente
	if f.PeriodStart != "" && r.TimePeriod < f.PeriodStart {
		return false
	}

	if f.PeriodEnd != "" && r.TimePeriod > f.PeriodEnd {
		return false
	}

	return true
}

// IsEmpty informa se nenhuma restrição está ativa.
func (f FilterSelection) IsEmpty() bool {
	return len(f.Manufacturers) == 0 &&
		len(f.Regions) == 0 &&
		(f.Category == "" || f.Category == CategoryAll) &&
		f.PeriodStart == "" &&
		f.PeriodEnd == ""
}

func containsValue(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
