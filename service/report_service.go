package service

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/h4mmerjp/nikkeihyou/dto"
	"github.com/h4mmerjp/nikkeihyou/utils"
)

// ReportStore persists parsed reports and verification results. Implemented
// by client.NotionClient in production.
type ReportStore interface {
	SaveDailyReport(pdfBytes []byte, summary dto.ReportSummary) (string, error)
	SaveVerification(req *dto.VerificationRequest, screenPDF []byte) error
}

// ReportService runs the daily-report pipeline: decode the uploaded PDF,
// extract the normalized data model, persist it, and shape the response.
type ReportService struct {
	pdfProcessor PDFProcessor
	store        ReportStore
	strategy     utils.AggregationStrategy
}

func NewReportService(pdfProcessor PDFProcessor, store ReportStore, strategy utils.AggregationStrategy) *ReportService {
	return &ReportService{
		pdfProcessor: pdfProcessor,
		store:        store,
		strategy:     strategy,
	}
}

// ParseDailyReport processes one uploaded report PDF end to end.
//
// Extraction itself cannot fail: a report with no recognizable rows or
// totals yields a zero-filled, date-defaulted summary. Persistence failures
// do not fail the request either — the frontend still needs the parsed
// numbers for on-screen verification — so the Notion error is folded into
// the returned page id the way the original service behaved.
func (s *ReportService) ParseDailyReport(pdfBytes []byte) (*dto.ParseReportResponse, error) {
	pages, err := s.pdfProcessor.ExtractPages(pdfBytes)
	if err != nil {
		return nil, fmt.Errorf("decode daily report: %w", err)
	}

	result := utils.ExtractReport(pages, s.strategy)

	log.Info().
		Str("date", result.Summary.Date).
		Int("line_items", len(result.LineItems)).
		Int("total_amount", result.Summary.TotalAmount).
		Msg("daily report extracted")

	pageID, err := s.store.SaveDailyReport(pdfBytes, result.Summary)
	if err != nil {
		log.Warn().Err(err).Msg("Notion save failed, returning parse result anyway")
		pageID = fmt.Sprintf("error-%.50s", err.Error())
	}

	return &dto.ParseReportResponse{
		Success: true,
		Data: dto.ReportData{
			ReportSummary:      result.Summary,
			PreviousDifference: result.Summary.ZenkaiSagaku,
			TodayDifference:    result.TodayDifference,
		},
		Patients:     result.LineItems,
		NotionPageID: pageID,
	}, nil
}

// UpdateVerification records the frontend's cash-verification outcome.
func (s *ReportService) UpdateVerification(req *dto.VerificationRequest, screenPDF []byte) error {
	if err := s.store.SaveVerification(req, screenPDF); err != nil {
		return fmt.Errorf("save verification: %w", err)
	}
	return nil
}
