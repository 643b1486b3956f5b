package utils

import "github.com/h4mmerjp/nikkeihyou/dto"

// AggregateLineItems derives a ReportSummary directly from the accepted
// line items. Per-category counts, point totals, and burden amounts cover
// the four insured categories only; the cross-cutting sums (自費, 物販,
// 介護負担, 前回差額, 領収額) run over every item regardless of category.
// This strategy is self-consistent by construction and is the preferred
// source of truth when table extraction succeeded.
func AggregateLineItems(items []dto.LineItem) dto.ReportSummary {
	var s dto.ReportSummary

	for _, item := range items {
		switch ClassifyInsurance(item.InsuranceType) {
		case CategoryShaho:
			s.ShahoCount++
			s.ShahoPoints += item.Points
			s.ShahoAmount += item.BurdenAmount
		case CategoryKokuho:
			s.KokuhoCount++
			s.KokuhoPoints += item.Points
			s.KokuhoAmount += item.BurdenAmount
		case CategoryKouki:
			s.KoukiCount++
			s.KoukiPoints += item.Points
			s.KoukiAmount += item.BurdenAmount
		case CategoryHokenNashi:
			s.HokenNashiCount++
			s.HokenNashiPoints += item.Points
			s.HokenNashiAmount += item.BurdenAmount
		}

		s.TotalAmount += item.BurdenAmount
		s.JihiAmount += item.Jihi
		s.BushanAmount += item.Bushan
		s.KaigoAmount += item.KaigoBurden
		s.ZenkaiSagaku += item.ZenkaiSagaku
		s.ReceiptTotal += item.ReceiptAmount
	}

	s.LineItemCount = len(items)
	s.InsuredCount = s.ShahoCount + s.KokuhoCount + s.KoukiCount + s.HokenNashiCount
	s.TotalCount = s.LineItemCount

	return s
}
