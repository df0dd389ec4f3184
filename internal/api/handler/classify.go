package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/srihariharan14/auto-sales-dashboard/internal/domain"
	"github.com/srihariharan14/auto-sales-dashboard/internal/usecases/classifying"
	"github.com/srihariharan14/auto-sales-dashboard/pkg/apiErrors"
	"github.com/srihariharan14/auto-sales-dashboard/pkg/log"
)

// GetModelInfo retorna os metadados do artefato de modelo carregado na
// inicialização.
func GetModelInfo(service classifying.Classifier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		writeJSON(w, logger, "model", service.ModelInfo())
	})
}

// ClassifySale pontua uma venda candidata com o modelo pré-treinado.
func ClassifySale(service classifying.Classifier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request domain.ClassificationRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.WithError(err).Warn("classify: corpo da requisição inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "corpo da requisição inválido", nil)
			return
		}

		result, err := service.Classify(request)
		if err != nil {
			if errors.Is(err, classifying.ErrMissingFeatures) {
				logger.Warn("classify: requisição sem features")
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
				return
			}

			// Feature ausente ou desconhecida para o modelo carregado
			logger.WithError(err).Warn("classify: vetor de features rejeitado")
			apiErrors.WriteError(w, apiErrors.ErrUnknownFeature, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"probability": result.Probability,
			"is_success":  result.IsSuccess,
		}).Info("classify: venda candidata pontuada")

		writeJSON(w, logger, "classify", result)
	})
}
