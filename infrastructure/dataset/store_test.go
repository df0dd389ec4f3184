package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCSV = `Manufacturer,Region,SalesVolume,Price_k,Is_Success,TimePeriod,Sales_Category
Toyota,East,320,25.5,1,2023-01,Medium
Ford,East,110,42.0,0,2023-01,Low
Toyota,West,410,23.1,1,2023-02,High
BMW,North,95,61.3,0,2023-02,Low
`

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cleaned_data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewStore(t *testing.T) {
	store, err := NewStore(writeTempCSV(t, validCSV))
	require.NoError(t, err)

	assert.Equal(t, 4, store.Len())

	first := store.Records()[0]
	assert.Equal(t, "Toyota", first.Manufacturer)
	assert.Equal(t, "East", first.Region)
	assert.Equal(t, int64(320), first.SalesVolume)
	assert.Equal(t, 25.5, first.PriceK)
	assert.True(t, first.IsSuccess)
	assert.Equal(t, "2023-01", first.TimePeriod)
	assert.Equal(t, "Medium", first.SalesCategory)
}

func TestNewStore_Dimensions(t *testing.T) {
	store, err := NewStore(writeTempCSV(t, validCSV))
	require.NoError(t, err)

	dims := store.Dimensions()

	// Valores distintos, sempre ordenados
	assert.Equal(t, []string{"BMW", "Ford", "Toyota"}, dims.Manufacturers)
	assert.Equal(t, []string{"East", "North", "West"}, dims.Regions)
	assert.Equal(t, []string{"High", "Low", "Medium"}, dims.Categories)
	assert.Equal(t, []string{"2023-01", "2023-02"}, dims.Periods)
}

func TestNewStore_MissingFile(t *testing.T) {
	_, err := NewStore(filepath.Join(t.TempDir(), "nao_existe.csv"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "erro ao abrir o dataset")
}

func TestNewStore_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "arquivo vazio",
			content: "",
		},
		{
			name: "coluna obrigatória ausente",
			content: `Manufacturer,Region,SalesVolume,Price_k,Is_Success,TimePeriod
Toyota,East,320,25.5,1,2023-01
`,
		},
		{
			name: "volume não numérico",
			content: `Manufacturer,Region,SalesVolume,Price_k,Is_Success,TimePeriod,Sales_Category
Toyota,East,muitos,25.5,1,2023-01,Medium
`,
		},
		{
			name: "rótulo de sucesso fora de 0/1",
			content: `Manufacturer,Region,SalesVolume,Price_k,Is_Success,TimePeriod,Sales_Category
Toyota,East,320,25.5,talvez,2023-01,Medium
`,
		},
		{
			name: "período fora do formato YYYY-MM",
			content: `Manufacturer,Region,SalesVolume,Price_k,Is_Success,TimePeriod,Sales_Category
Toyota,East,320,25.5,1,Jan/2023,Medium
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStore(writeTempCSV(t, tt.content))
			assert.Error(t, err)
		})
	}
}
