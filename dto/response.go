package dto

import "errors"

// Custom errors
var (
	ErrNoFileUploaded = errors.New("no file uploaded")
	ErrFileTooLarge   = errors.New("uploaded file exceeds the size limit")
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ReportData is the "data" object of the parse response: the summary plus
// the two difference fields the frontend displays side by side.
type ReportData struct {
	ReportSummary
	PreviousDifference int `json:"previous_difference"`
	TodayDifference    int `json:"today_difference"`
}

// ParseReportResponse is the response of POST /api/parse_daily_report.
type ParseReportResponse struct {
	Success      bool       `json:"success"`
	Data         ReportData `json:"data"`
	Patients     []LineItem `json:"patients"`
	NotionPageID string     `json:"notion_page_id"`
}

// VerificationResponse is the response of POST /api/update_verification.
type VerificationResponse struct {
	Success bool `json:"success"`
}
