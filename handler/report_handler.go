package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/h4mmerjp/nikkeihyou/dto"
	"github.com/h4mmerjp/nikkeihyou/service"
)

type ReportHandler struct {
	reportService *service.ReportService
	maxFileSize   int64
}

func NewReportHandler(reportService *service.ReportService, maxFileSize int64) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		maxFileSize:   maxFileSize,
	}
}

// ParseDailyReport handles POST /api/parse_daily_report: a multipart upload
// with the report PDF in the "file" field.
func (h *ReportHandler) ParseDailyReport(c *gin.Context) {
	log.Info().Msg("received daily report parse request")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, dto.ErrNoFileUploaded)
		return
	}
	if fileHeader.Size > h.maxFileSize {
		h.sendError(c, http.StatusRequestEntityTooLarge, dto.ErrFileTooLarge)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		h.sendError(c, http.StatusBadRequest, err)
		return
	}
	defer f.Close()

	pdfBytes, err := io.ReadAll(f)
	if err != nil {
		h.sendError(c, http.StatusBadRequest, err)
		return
	}

	log.Info().Str("filename", fileHeader.Filename).Int("bytes", len(pdfBytes)).Msg("parsing uploaded report")

	response, err := h.reportService.ParseDailyReport(pdfBytes)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// sendError sends a structured error response
func (h *ReportHandler) sendError(c *gin.Context, statusCode int, err error) {
	log.Error().Err(err).Int("status", statusCode).Msg("daily report request failed")
	c.JSON(statusCode, dto.ErrorResponse{
		Success: false,
		Error:   err.Error(),
	})
}
