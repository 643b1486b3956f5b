package handler

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/h4mmerjp/nikkeihyou/dto"
	"github.com/h4mmerjp/nikkeihyou/service"
)

type VerificationHandler struct {
	reportService *service.ReportService
}

func NewVerificationHandler(reportService *service.ReportService) *VerificationHandler {
	return &VerificationHandler{reportService: reportService}
}

// UpdateVerification handles POST /api/update_verification: the frontend
// posts the cash-count outcome together with its verification screen
// rendered as a base64 PDF.
func (h *VerificationHandler) UpdateVerification(c *gin.Context) {
	var req dto.VerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.sendError(c, http.StatusBadRequest, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, err)
		return
	}

	screenPDF, err := base64.StdEncoding.DecodeString(req.FrontendPDFBase64)
	if err != nil {
		h.sendError(c, http.StatusBadRequest, err)
		return
	}

	log.Info().
		Str("page_id", req.NotionPageID).
		Bool("matched", req.IsMatched).
		Int("cash_input", req.CashInput).
		Msg("updating verification result")

	if err := h.reportService.UpdateVerification(&req, screenPDF); err != nil {
		h.sendError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, dto.VerificationResponse{Success: true})
}

func (h *VerificationHandler) sendError(c *gin.Context, statusCode int, err error) {
	log.Error().Err(err).Int("status", statusCode).Msg("verification request failed")
	c.JSON(statusCode, dto.ErrorResponse{
		Success: false,
		Error:   err.Error(),
	})
}
