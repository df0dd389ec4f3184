// Package filtering aplica a seleção de filtros do usuário sobre a tabela
// de vendas. A filtragem é pura: a mesma seleção sobre os mesmos registros
// produz sempre o mesmo subconjunto, na mesma ordem.
package filtering

import (
	"github.com/srihariharan14/auto-sales-dashboard/internal/domain"
)

// Apply retorna o subconjunto de registros que satisfaz todas as restrições
// não vazias da seleção. A ordem relativa dos registros é preservada.
func Apply(records []domain.SaleRecord, selection domain.FilterSelection) []domain.SaleRecord {
	if selection.IsEmpty() {
		return records
	}

	filtered := make([]domain.SaleRecord, 0, len(records))
	for _, record := range records {
		if selection.Matches(record) {
			filtered = append(filtered, record)
		}
	}

	return filtered
}
