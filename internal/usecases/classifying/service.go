// Package classifying expõe o modelo de classificação pré-treinado: seus
// metadados e a pontuação de vendas candidatas. Os gráficos do dashboard
// leem o rótulo pré-computado na tabela; este serviço cobre a pontuação ao
// vivo de registros fora dela.
package classifying

import (
	"github.com/pkg/errors"
	"github.com/srihariharan14/auto-sales-dashboard/infrastructure/classifier"
	"github.com/srihariharan14/auto-sales-dashboard/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/classifier_mock.go -package=mocks

// ErrMissingFeatures indica uma requisição de classificação sem vetor de
// features.
var ErrMissingFeatures = errors.New("nenhuma feature informada")

// Rótulos do alvo binário, os mesmos exibidos no gráfico de distribuição.
const (
	LabelSuccess      = "Successful Sale"
	LabelUnsuccessful = "Unsuccessful Sale"
)

// Classifier pontua vendas candidatas com o modelo carregado.
type Classifier interface {
	// ModelInfo retorna os metadados do artefato carregado
	ModelInfo() domain.ModelInfo

	// Classify pontua uma venda candidata e aplica o threshold do modelo
	Classify(request domain.ClassificationRequest) (*domain.ClassificationResult, error)
}

type Service struct {
	model *classifier.Model
}

func NewService(model *classifier.Model) *Service {
	return &Service{model: model}
}

// ModelInfo retorna os metadados do artefato carregado.
func (s *Service) ModelInfo() domain.ModelInfo {
	return s.model.Info()
}

// Classify pontua a venda candidata. Feature ausente ou requisição vazia é
// erro do chamador, não do servidor.
func (s *Service) Classify(request domain.ClassificationRequest) (*domain.ClassificationResult, error) {
	if len(request.Features) == 0 {
		return nil, ErrMissingFeatures
	}

	probability, err := s.model.Score(request.Features)
	if err != nil {
		return nil, err
	}

	result := &domain.ClassificationResult{
		Probability: probability,
		IsSuccess:   probability >= s.model.Threshold,
	}

	if result.IsSuccess {
		result.Label = LabelSuccess
	} else {
		result.Label = LabelUnsuccessful
	}

	return result, nil
}
