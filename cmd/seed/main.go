// Gera os artefatos simulados que o dashboard consome: o CSV de vendas
// limpas e o modelo de classificação serializado. Substitui o pipeline de
// treino externo em ambientes de desenvolvimento.
package main

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/srihariharan14/auto-sales-dashboard/infrastructure/classifier"
	"github.com/srihariharan14/auto-sales-dashboard/internal/config"
	"github.com/srihariharan14/auto-sales-dashboard/pkg/utils"
)

var (
	manufacturers = []string{"BMW", "Ford", "Honda", "Hyundai", "Toyota"}
	regions       = []string{"East", "North", "South", "West"}
)

// Semente fixa: rodar o seed duas vezes produz exatamente o mesmo dataset.
const randomSeed = 42

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	model := buildModel()

	if err := writeModel(cfg.Data.ModelPath, model); err != nil {
		logrus.WithError(err).Fatal("Erro ao gravar o artefato de modelo")
	}
	logrus.WithField("path", cfg.Data.ModelPath).Info("seed: artefato de modelo gravado")
	logrus.Debug(utils.PrettyJSON(model))

	total, err := writeDataset(cfg.Data.SalesPath, model)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao gravar o dataset de vendas")
	}

	logrus.WithFields(logrus.Fields{
		"path":    cfg.Data.SalesPath,
		"records": total,
	}).Info("seed: dataset de vendas gravado")
}

// buildModel monta a regressão logística usada para rotular o dataset: o
// rótulo Is_Success gravado no CSV é exatamente a saída deste modelo.
func buildModel() *classifier.Model {
	return &classifier.Model{
		ModelType: classifier.ModelTypeLogisticRegression,
		Version:   "1.0.0",
		TrainedAt: time.Date(2024, 11, 3, 9, 30, 0, 0, time.UTC),
		Features:  []string{"price_k", "sales_volume"},
		Coefficients: map[string]float64{
			"price_k":      -0.08,
			"sales_volume": 0.012,
		},
		Intercept: -0.5,
		Threshold: 0.5,
	}
}

func writeModel(path string, model *classifier.Model) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(utils.PrettyJSON(model)), 0o644)
}

func writeDataset(path string, model *classifier.Model) (int, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, err
	}

	file, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Manufacturer", "Region", "SalesVolume", "Price_k", "Is_Success", "TimePeriod", "Sales_Category"}
	if err := writer.Write(header); err != nil {
		return 0, err
	}

	rng := rand.New(rand.NewSource(randomSeed))
	total := 0

	for month := 1; month <= 12; month++ {
		period := fmt.Sprintf("2023-%02d", month)

		for _, manufacturer := range manufacturers {
			for _, region := range regions {
				volume := int64(50 + rng.Intn(450))
				price := utils.RoundWithOneDecimalPlace(18 + rng.Float64()*42)

				score, err := model.Score(map[string]float64{
					"price_k":      price,
					"sales_volume": float64(volume),
				})
				if err != nil {
					return 0, err
				}

				success := "0"
				if score >= model.Threshold {
					success = "1"
				}

				row := []string{
					manufacturer,
					region,
					strconv.FormatInt(volume, 10),
					strconv.FormatFloat(price, 'f', 1, 64),
					success,
					period,
					category(volume),
				}
				if err := writer.Write(row); err != nil {
					return 0, err
				}
				total++
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return 0, err
	}

	return total, nil
}

// category discretiza o volume nas faixas usadas pelo controle de categoria.
func category(volume int64) string {
	switch {
	case volume >= 350:
		return "High"
	case volume >= 180:
		return "Medium"
	default:
		return "Low"
	}
}
