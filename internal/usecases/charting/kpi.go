package charting

import (
	"fmt"

	"github.com/srihariharan14/auto-sales-dashboard/internal/domain"
	"github.com/srihariharan14/auto-sales-dashboard/pkg/utils"
)

// Summarize calcula os KPIs do subconjunto filtrado: volume total, preço
// médio e taxa de sucesso. Subconjunto vazio produz os placeholders "0",
// "$0k" e "0.0%".
func Summarize(records []domain.SaleRecord) domain.KPISummary {
	if len(records) == 0 {
		return domain.KPISummary{
			TotalSalesVolumeLabel: "0",
			AveragePriceLabel:     "$0k",
			SuccessRateLabel:      "0.0%",
		}
	}

	var totalVolume int64
	var priceSum float64
	var successes int

	for _, r := range records {
		totalVolume += r.SalesVolume
		priceSum += r.PriceK
		if r.IsSuccess {
			successes++
		}
	}

	avgPrice := utils.RoundWithOneDecimalPlace(priceSum / float64(len(records)))
	successRate := float64(successes) / float64(len(records)) * 100

	return domain.KPISummary{
		TotalSalesVolume: totalVolume,
		AveragePriceK:    avgPrice,
		SuccessRate:      successRate,

		TotalSalesVolumeLabel: utils.FormatThousands(totalVolume),
		AveragePriceLabel:     fmt.Sprintf("$%vk", avgPrice),
		SuccessRateLabel:      fmt.Sprintf("%.1f%%", successRate),
	}
}
