package filtering

import (
	"testing"

	"github.com/srihariharan14/auto-sales-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleRecords() []domain.SaleRecord {
	return []domain.SaleRecord{
		{Manufacturer: "A", Region: "East", SalesCategory: "High", TimePeriod: "2023-01", SalesVolume: 400, PriceK: 20, IsSuccess: true},
		{Manufacturer: "B", Region: "East", SalesCategory: "Low", TimePeriod: "2023-02", SalesVolume: 90, PriceK: 55, IsSuccess: false},
		{Manufacturer: "A", Region: "West", SalesCategory: "Medium", TimePeriod: "2023-03", SalesVolume: 200, PriceK: 33, IsSuccess: true},
	}
}

func TestApply(t *testing.T) {
	records := sampleRecords()

	tests := []struct {
		name      string
		selection domain.FilterSelection
		expected  int
	}{
		{
			name:      "sem restrições retorna o conjunto completo",
			selection: domain.FilterSelection{},
			expected:  3,
		},
		{
			name:      "categoria All não restringe",
			selection: domain.FilterSelection{Category: domain.CategoryAll},
			expected:  3,
		},
		{
			name:      "uma região",
			selection: domain.FilterSelection{Regions: []string{"East"}},
			expected:  2,
		},
		{
			name:      "região e fabricante são conjuntivos",
			selection: domain.FilterSelection{Regions: []string{"East"}, Manufacturers: []string{"A"}},
			expected:  1,
		},
		{
			name:      "categoria específica",
			selection: domain.FilterSelection{Category: "Medium"},
			expected:  1,
		},
		{
			name:      "intervalo de períodos inclusivo",
			selection: domain.FilterSelection{PeriodStart: "2023-02", PeriodEnd: "2023-03"},
			expected:  2,
		},
		{
			name:      "combinação sem correspondência",
			selection: domain.FilterSelection{Manufacturers: []string{"B"}, Regions: []string{"West"}},
			expected:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := Apply(records, tt.selection)

			assert.Len(t, filtered, tt.expected)

			// Sem falsos positivos: todo registro do resultado satisfaz a seleção
			for _, r := range filtered {
				assert.True(t, tt.selection.Matches(r))
			}
		})
	}
}

func TestApply_SpecificRecord(t *testing.T) {
	records := sampleRecords()

	filtered := Apply(records, domain.FilterSelection{
		Regions:       []string{"East"},
		Manufacturers: []string{"A"},
	})

	assert.Equal(t, []domain.SaleRecord{records[0]}, filtered)
}

func TestApply_Deterministic(t *testing.T) {
	records := sampleRecords()
	selection := domain.FilterSelection{Regions: []string{"East"}}

	first := Apply(records, selection)
	second := Apply(records, selection)

	assert.Equal(t, first, second)
}

func TestFilterSelection_IsEmpty(t *testing.T) {
	assert.True(t, domain.FilterSelection{}.IsEmpty())
	assert.True(t, domain.FilterSelection{Category: domain.CategoryAll}.IsEmpty())
	assert.False(t, domain.FilterSelection{Category: "High"}.IsEmpty())
	assert.False(t, domain.FilterSelection{PeriodStart: "2023-01"}.IsEmpty())
}
