package domain

import "time"

// ModelInfo são os metadados do artefato de modelo carregado na inicialização.
type ModelInfo struct {
	ModelType string    `json:"model_type"`
	Version   string    `json:"version,omitempty"`
	TrainedAt time.Time `json:"trained_at"`
	Features  []string  `json:"features"`
	Threshold float64   `json:"threshold"`
}

// ClassificationRequest é uma venda candidata a ser pontuada pelo modelo.
type ClassificationRequest struct {
	Features map[string]float64 `json:"features"`
}

// ClassificationResult é a saída do modelo para uma venda candidata.
type ClassificationResult struct {
	Probability float64 `json:"probability"`
	IsSuccess   bool    `json:"is_success"`
	Label       string  `json:"label"`
}
