package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/srihariharan14/auto-sales-dashboard/internal/domain"
	"github.com/srihariharan14/auto-sales-dashboard/pkg/utils"
)

// Colunas esperadas no CSV processado pelo pipeline de limpeza.
const (
	columnManufacturer  = "Manufacturer"
	columnRegion        = "Region"
	columnSalesVolume   = "SalesVolume"
	columnPriceK        = "Price_k"
	columnIsSuccess     = "Is_Success"
	columnTimePeriod    = "TimePeriod"
	columnSalesCategory = "Sales_Category"
)

var requiredColumns = []string{
	columnManufacturer,
	columnRegion,
	columnSalesVolume,
	columnPriceK,
	columnIsSuccess,
	columnTimePeriod,
	columnSalesCategory,
}

// Store é a tabela de vendas em memória, carregada uma única vez na
// inicialização e somente leitura depois disso. Por ser imutável, pode ser
// compartilhada entre requisições sem sincronização.
type Store struct {
	records    []domain.SaleRecord
	dimensions domain.Dimensions
}

// NewStore carrega o CSV de vendas do caminho informado. Qualquer falha de
// leitura ou de parsing é devolvida ao chamador, que deve abortar a
// inicialização antes do servidor abrir a porta.
func NewStore(path string) (*Store, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir o dataset de vendas em %s", path)
	}
	defer file.Close()

	records, err := parseRecords(file)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao interpretar o dataset de vendas em %s", path)
	}

	store := &Store{
		records:    records,
		dimensions: buildDimensions(records),
	}

	logrus.WithFields(logrus.Fields{
		"path":          path,
		"records":       len(records),
		"manufacturers": len(store.dimensions.Manufacturers),
		"regions":       len(store.dimensions.Regions),
		"periods":       len(store.dimensions.Periods),
	}).Info("dataset: tabela de vendas carregada")

	return store, nil
}

// Records retorna o conjunto completo de registros. O slice retornado não
// deve ser modificado.
func (s *Store) Records() []domain.SaleRecord {
	return s.records
}

// Dimensions retorna os valores distintos ordenados de cada coluna filtrável.
func (s *Store) Dimensions() domain.Dimensions {
	return s.dimensions
}

// Len retorna o total de registros carregados.
func (s *Store) Len() int {
	return len(s.records)
}

func parseRecords(r io.Reader) ([]domain.SaleRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "cabeçalho ausente ou ilegível")
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	for _, column := range requiredColumns {
		if _, ok := index[column]; !ok {
			return nil, errors.Errorf("coluna obrigatória %q ausente no cabeçalho", column)
		}
	}

	var records []domain.SaleRecord
	line := 1

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, errors.Wrapf(err, "linha %d inválida", line)
		}

		record, err := parseRow(row, index)
		if err != nil {
			return nil, errors.Wrapf(err, "linha %d inválida", line)
		}

		records = append(records, record)
	}

	return records, nil
}

func parseRow(row []string, index map[string]int) (domain.SaleRecord, error) {
	volume, err := strconv.ParseInt(row[index[columnSalesVolume]], 10, 64)
	if err != nil {
		return domain.SaleRecord{}, errors.Wrapf(err, "%s não é um inteiro", columnSalesVolume)
	}

	price, err := strconv.ParseFloat(row[index[columnPriceK]], 64)
	if err != nil {
		return domain.SaleRecord{}, errors.Wrapf(err, "%s não é um número", columnPriceK)
	}

	success, err := parseSuccessFlag(row[index[columnIsSuccess]])
	if err != nil {
		return domain.SaleRecord{}, err
	}

	period := row[index[columnTimePeriod]]
	if err := utils.ValidatePeriod(period); err != nil {
		return domain.SaleRecord{}, err
	}

	return domain.SaleRecord{
		Manufacturer:  row[index[columnManufacturer]],
		Region:        row[index[columnRegion]],
		SalesCategory: row[index[columnSalesCategory]],
		TimePeriod:    period,
		SalesVolume:   volume,
		PriceK:        price,
		IsSuccess:     success,
	}, nil
}

// parseSuccessFlag aceita o rótulo binário como 0/1 (formato do pipeline)
// ou true/false.
func parseSuccessFlag(value string) (bool, error) {
	switch value {
	case "1", "true", "True":
		return true, nil
	case "0", "false", "False":
		return false, nil
	}
	return false, errors.Errorf("%s deve ser 0 ou 1, recebido %q", columnIsSuccess, value)
}

func buildDimensions(records []domain.SaleRecord) domain.Dimensions {
	return domain.Dimensions{
		Manufacturers: distinct(records, func(r domain.SaleRecord) string { return r.Manufacturer }),
		Regions:       distinct(records, func(r domain.SaleRecord) string { return r.Region }),
		Categories:    distinct(records, func(r domain.SaleRecord) string { return r.SalesCategory }),
		Periods:       distinct(records, func(r domain.SaleRecord) string { return r.TimePeriod }),
	}
}

func distinct(records []domain.SaleRecord, value func(domain.SaleRecord) string) []string {
	seen := make(map[string]struct{})
	var values []string

	for _, r := range records {
		v := value(r)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}

	sort.Strings(values)
	return values
}
