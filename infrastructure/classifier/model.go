package classifier

import (
	"math"
	"os"
	"sort"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/srihariharan14/auto-sales-dashboard/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ModelTypeLogisticRegression é o único tipo de artefato suportado: o
// pipeline de treino exporta o modelo de classificação como uma regressão
// logística serializada em JSON.
const ModelTypeLogisticRegression = "logistic_regression"

const defaultThreshold = 0.5

// Model é o artefato de classificação treinado fora deste repositório.
// É carregado e validado uma única vez na inicialização; somente leitura
// depois disso.
type Model struct {
	ModelType    string             `json:"model_type"`
	Version      string             `json:"version"`
	TrainedAt    time.Time          `json:"trained_at"`
	Features     []string           `json:"features"`
	Coefficients map[string]float64 `json:"coefficients"`
	Intercept    float64            `json:"intercept"`
	Threshold    float64            `json:"threshold"`
}

// Load lê e valida o artefato de modelo do caminho informado. Falhas devem
// abortar a inicialização do processo.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir o artefato de modelo em %s", path)
	}

	model := &Model{}
	if err := json.Unmarshal(data, model); err != nil {
		return nil, errors.Wrapf(err, "erro ao interpretar o artefato de modelo em %s", path)
	}

	if err := model.validate(); err != nil {
		return nil, errors.Wrapf(err, "artefato de modelo inválido em %s", path)
	}

	if model.Threshold == 0 {
		model.Threshold = defaultThreshold
	}

	logrus.WithFields(logrus.Fields{
		"path":       path,
		"model_type": model.ModelType,
		"features":   len(model.Features),
		"threshold":  model.Threshold,
	}).Info("classifier: artefato de modelo carregado")

	return model, nil
}

func (m *Model) validate() error {
	if m.ModelType != ModelTypeLogisticRegression {
		return errors.Errorf("tipo de modelo não suportado: %q", m.ModelType)
	}

	if len(m.Features) == 0 {
		return errors.New("lista de features vazia")
	}

	for _, feature := range m.Features {
		if _, ok := m.Coefficients[feature]; !ok {
			return errors.Errorf("coeficiente ausente para a feature %q", feature)
		}
	}

	if m.Threshold < 0 || m.Threshold >= 1 {
		return errors.Errorf("threshold fora do intervalo [0,1): %v", m.Threshold)
	}

	return nil
}

// Score calcula a probabilidade de sucesso para o vetor de features
// informado. Todas as features do modelo devem estar presentes.
func (m *Model) Score(features map[string]float64) (float64, error) {
	z := m.Intercept

	for _, feature := range m.Features {
		value, ok := features[feature]
		if !ok {
			return 0, errors.Errorf("feature obrigatória ausente: %q", feature)
		}
		z += m.Coefficients[feature] * value
	}

	return 1 / (1 + math.Exp(-z)), nil
}

// Info retorna os metadados do artefato, com as features ordenadas para
// resposta determinística.
func (m *Model) Info() domain.ModelInfo {
	features := make([]string, len(m.Features))
	copy(features, m.Features)
	sort.Strings(features)

	return domain.ModelInfo{
		ModelType: m.ModelType,
		Version:   m.Version,
		TrainedAt: m.TrainedAt,
		Features:  features,
		Threshold: m.Threshold,
	}
}
