package utils

import (
	"github.com/rs/zerolog/log"

	"github.com/h4mmerjp/nikkeihyou/dto"
	"github.com/h4mmerjp/nikkeihyou/utils/eradate"
)

// AggregationStrategy selects which summary source is authoritative for the
// category aggregates. Table extraction degrades when the report formatting
// drifts; text regex degrades when reflow changes column spacing. Keeping
// both behind one switch lets deployments pick per report variant and lets
// tests cross-validate the two.
type AggregationStrategy string

const (
	// StrategyText derives category totals from the printed total rows via
	// regex. This matches the report's own arithmetic.
	StrategyText AggregationStrategy = "text"
	// StrategyTable recomputes category totals from the accepted line items.
	StrategyTable AggregationStrategy = "table"
)

// ParseStrategy normalizes a configured strategy name, defaulting to text.
func ParseStrategy(name string) AggregationStrategy {
	if AggregationStrategy(name) == StrategyTable {
		return StrategyTable
	}
	return StrategyText
}

// ExtractReport runs the full extraction pipeline over decoded pages:
// date resolution from page 1, line-item parsing over every table, and
// both aggregation strategies, reconciled per the configured strategy.
// It is a pure function of its input; identical pages yield an identical
// result.
func ExtractReport(pages []dto.Page, strategy AggregationStrategy) dto.ExtractionResult {
	var firstPageText string
	if len(pages) > 0 {
		firstPageText = pages[0].Text
	}
	date := eradate.Resolve(firstPageText)

	items := collectLineItems(pages)

	pageTexts := make([]string, len(pages))
	for i, page := range pages {
		pageTexts[i] = page.Text
	}

	tableSummary := AggregateLineItems(items)
	textSummary := AggregateText(pageTexts)

	return Assemble(date, items, tableSummary, textSummary, strategy)
}

// collectLineItems parses every table on every page, skipping header rows
// and printed subtotal rows. A row that fails to parse is dropped whole
// with a warning so a malformed row never contaminates the output; rows
// after it are unaffected.
func collectLineItems(pages []dto.Page) []dto.LineItem {
	items := []dto.LineItem{}
	for pageIdx, page := range pages {
		for _, table := range page.Tables {
			if len(table.Rows) < 2 {
				continue
			}
			// Rows[0] is the printed header.
			for _, row := range table.Rows[1:] {
				if !AcceptRow(row) {
					continue
				}
				item, err := ParseLineItem(row)
				if err != nil {
					log.Warn().Err(err).Int("page", pageIdx+1).Msg("dropping unparseable table row")
					continue
				}
				items = append(items, item)
			}
		}
	}
	return items
}

// Assemble merges the two partial summaries into the final result. The
// configured strategy is authoritative for the category aggregates; any
// field the authoritative summary left at zero is filled from the other,
// so values only one strategy produces (前回差額 from the text grand-total
// row, per-category point totals from the table) survive the merge.
//
// TodayDifference is always recomputed as the sum of per-line 差額 and is
// reported alongside the carried-over 前回差額, never in its place; the two
// are different concepts.
func Assemble(date string, items []dto.LineItem, tableSummary, textSummary dto.ReportSummary, strategy AggregationStrategy) dto.ExtractionResult {
	var summary dto.ReportSummary
	if strategy == StrategyTable {
		summary = mergeSummaries(tableSummary, textSummary)
	} else {
		summary = mergeSummaries(textSummary, tableSummary)
	}

	summary.Date = date
	summary.LineItemCount = len(items)

	return dto.ExtractionResult{
		Summary:         summary,
		LineItems:       items,
		TodayDifference: TodayDifference(items),
	}
}

// TodayDifference is the document's net per-line difference: the exact sum
// of Sagaku over the accepted line items, zero when there are none.
func TodayDifference(items []dto.LineItem) int {
	total := 0
	for _, item := range items {
		total += item.Sagaku
	}
	return total
}

// mergeSummaries returns the primary summary with zero-valued fields filled
// from the secondary one. The primary is never overwritten, so when the two
// strategies disagree on a populated field the configured strategy wins by
// construction rather than by evaluation order.
func mergeSummaries(primary, secondary dto.ReportSummary) dto.ReportSummary {
	merged := primary

	fill := func(dst *int, v int) {
		if *dst == 0 {
			*dst = v
		}
	}

	fill(&merged.ShahoCount, secondary.ShahoCount)
	fill(&merged.ShahoPoints, secondary.ShahoPoints)
	fill(&merged.ShahoAmount, secondary.ShahoAmount)
	fill(&merged.KokuhoCount, secondary.KokuhoCount)
	fill(&merged.KokuhoPoints, secondary.KokuhoPoints)
	fill(&merged.KokuhoAmount, secondary.KokuhoAmount)
	fill(&merged.KoukiCount, secondary.KoukiCount)
	fill(&merged.KoukiPoints, secondary.KoukiPoints)
	fill(&merged.KoukiAmount, secondary.KoukiAmount)
	fill(&merged.HokenNashiCount, secondary.HokenNashiCount)
	fill(&merged.HokenNashiPoints, secondary.HokenNashiPoints)
	fill(&merged.HokenNashiAmount, secondary.HokenNashiAmount)
	fill(&merged.JihiAmount, secondary.JihiAmount)
	fill(&merged.TotalCount, secondary.TotalCount)
	fill(&merged.TotalAmount, secondary.TotalAmount)
	fill(&merged.InsuredCount, secondary.InsuredCount)
	fill(&merged.ReceiptTotal, secondary.ReceiptTotal)
	fill(&merged.BushanAmount, secondary.BushanAmount)
	fill(&merged.KaigoAmount, secondary.KaigoAmount)
	fill(&merged.ZenkaiSagaku, secondary.ZenkaiSagaku)

	return merged
}
