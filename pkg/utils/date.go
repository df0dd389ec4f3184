package utils

import "time"

// periodLayout é o formato dos períodos do dataset (ano-mês).
const periodLayout = "2006-01"

// ParsePeriod interpreta um período YYYY-MM. String vazia é tratada como
// "sem restrição" e retorna vazio sem erro.
func ParsePeriod(periodStr string) (string, error) {
	if periodStr == "" {
		return "", nil
	}

	parsed, err := time.Parse(periodLayout, periodStr)
	if err != nil {
		return "", err
	}

	// Normaliza para garantir zero à esquerda no mês
	return parsed.Format(periodLayout), nil
}

// ValidatePeriod valida um período YYYY-MM não vazio.
func ValidatePeriod(periodStr string) error {
	_, err := time.Parse(periodLayout, periodStr)
	return err
}
