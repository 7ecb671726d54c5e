// Package formatter renders the result of a finder run for display.
package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"

	"glassfinder/internal/config"
	"glassfinder/internal/models"
	"glassfinder/pkg/utils"
)

const (
	ruleWidth = 70
	// noLink is shown when the winning record has no product link.
	noLink = "N/A"
)

// FormatReport renders the full search result: a price-sorted listing of
// every record with the winner marked, followed by the cheapest-item summary.
// Pure formatting; printing is the caller's decision.
func FormatReport(records []models.Record, cheapest models.Record, cfg *config.ReportConfig) string {
	var sb strings.Builder

	rule := strings.Repeat("=", ruleWidth)

	sb.WriteString(rule + "\n")
	sb.WriteString("RESULTADO DA BUSCA\n")
	sb.WriteString(rule + "\n\n")
	sb.WriteString(fmt.Sprintf("📊 Total de produtos encontrados: %d\n", len(records)))

	if cfg.ShowAll && len(records) > 0 {
		sb.WriteString("\n🏷️  TODOS OS PRODUTOS:\n")
		sb.WriteString(strings.Repeat("-", ruleWidth) + "\n")

		sorted := make([]models.Record, len(records))
		copy(sorted, records)
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price < sorted[j].Price })

		for i, r := range sorted {
			marker := "   "
			if r == cheapest {
				marker = "👉 "
			}

			name := utils.Truncate(r.Name, cfg.MaxNameWidth)
			sb.WriteString(fmt.Sprintf("%s%d. %s %s %7.2f\n",
				marker, i+1, padName(name, cfg.MaxNameWidth), cfg.CurrencyPrefix, r.Price))
		}
	}

	sb.WriteString("\n" + rule + "\n")
	sb.WriteString("🏆 ÓCULOS MAIS BARATO:\n")
	sb.WriteString(rule + "\n")
	sb.WriteString(fmt.Sprintf("  📝 Nome: %s\n", cheapest.Name))
	sb.WriteString(fmt.Sprintf("  💰 Preço: %s %.2f\n", cfg.CurrencyPrefix, cheapest.Price))

	link := cheapest.URL
	if link == "" {
		link = noLink
	}

	sb.WriteString(fmt.Sprintf("  🔗 Link: %s\n", link))
	sb.WriteString(rule + "\n")

	return sb.String()
}

// padName right-pads name to width display cells. Product names carry
// accented text, so byte or rune counts would misalign the column.
func padName(name string, width int) string {
	w := runewidth.StringWidth(name)
	if w >= width {
		return name
	}

	return name + strings.Repeat(" ", width-w)
}
