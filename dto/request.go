package dto

import "errors"

// VerificationRequest is the JSON body of POST /api/update_verification.
// The frontend sends its rendered verification screen as a base64 PDF.
type VerificationRequest struct {
	NotionPageID      string `json:"notion_page_id" binding:"required"`
	IsMatched         bool   `json:"is_matched"`
	CashInput         int    `json:"cash_input"`
	FrontendPDFBase64 string `json:"frontend_pdf_base64"`
	Date              string `json:"date"` // YYYY-MM-DD, optional
}

// Validate performs basic validation on the request
func (r *VerificationRequest) Validate() error {
	if r.NotionPageID == "" {
		return errors.New("notion_page_id is required")
	}
	if r.FrontendPDFBase64 == "" {
		return errors.New("frontend_pdf_base64 is required")
	}
	return nil
}
