package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/h4mmerjp/nikkeihyou/dto"
)

// The File Upload API requires 2025-05-20 or later.
const notionVersion = "2025-09-03"

// Notion rejects uploads above 5 MB on the free tier.
const maxNotionFileSize = 5 * 1024 * 1024

// NotionClient persists parsed daily reports to a Notion database: the
// original PDF as an uploaded file, the summary as page properties, and
// the later cash-verification result as a property update.
type NotionClient struct {
	httpClient *http.Client
	baseURL    string
	token      string
	databaseID string
}

// NewNotionClient creates a Notion API client. The endpoint can be
// overridden with NOTION_API_URL (used by tests and proxies).
func NewNotionClient(token, databaseID string) *NotionClient {
	baseURL := os.Getenv("NOTION_API_URL")
	if baseURL == "" {
		baseURL = "https://api.notion.com"
	}

	return &NotionClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		token:      token,
		databaseID: databaseID,
	}
}

// SaveDailyReport uploads the report PDF, creates the database page with
// the summary properties, and attaches the PDF as a page block. It returns
// the created page id.
func (c *NotionClient) SaveDailyReport(pdfBytes []byte, summary dto.ReportSummary) (string, error) {
	filename := fmt.Sprintf("日計表_%s.pdf", summary.Date)

	fileUploadID, err := c.UploadFile(filename, "application/pdf", pdfBytes)
	if err != nil {
		return "", fmt.Errorf("upload report pdf: %w", err)
	}

	pageID, err := c.createReportPage(summary)
	if err != nil {
		return "", fmt.Errorf("create report page: %w", err)
	}

	if err := c.appendFileBlock(pageID, "📄 日計表PDF", "元の日計表", fileUploadID); err != nil {
		return "", fmt.Errorf("attach report pdf: %w", err)
	}

	log.Info().Str("page_id", pageID).Str("date", summary.Date).Msg("daily report saved to Notion")
	return pageID, nil
}

// SaveVerification records the cash-verification outcome on an existing
// report page and, when it fits the upload limit, attaches the frontend
// verification-screen PDF.
func (c *NotionClient) SaveVerification(req *dto.VerificationRequest, screenPDF []byte) error {
	filename := verificationFilename(req.Date)

	fileUploadID := ""
	if len(screenPDF) > maxNotionFileSize {
		log.Warn().Int("size", len(screenPDF)).Msg("verification pdf exceeds upload limit, skipping attachment")
	} else {
		id, err := c.UploadFile(filename, "application/pdf", screenPDF)
		if err != nil {
			return fmt.Errorf("upload verification pdf: %w", err)
		}
		fileUploadID = id
	}

	state := "不一致"
	if req.IsMatched {
		state = "一致"
	}

	properties := map[string]interface{}{
		"照合状態": map[string]interface{}{
			"select": map[string]interface{}{"name": state},
		},
		"入力金額": map[string]interface{}{"number": req.CashInput},
		"照合日時": map[string]interface{}{
			"date": map[string]interface{}{"start": time.Now().Format(time.RFC3339)},
		},
	}
	if fileUploadID != "" {
		properties["照合画面PDF"] = map[string]interface{}{
			"files": []interface{}{
				map[string]interface{}{
					"type":        "file_upload",
					"file_upload": map[string]interface{}{"id": fileUploadID},
					"name":        filename,
				},
			},
		}
	}

	payload := map[string]interface{}{"properties": properties}
	if err := c.doJSON(http.MethodPatch, "/v1/pages/"+req.NotionPageID, payload, nil); err != nil {
		return fmt.Errorf("update verification properties: %w", err)
	}

	if fileUploadID != "" {
		caption := fmt.Sprintf("照合結果: %s", state)
		if err := c.appendFileBlock(req.NotionPageID, "✅ 照合画面PDF", caption, fileUploadID); err != nil {
			return fmt.Errorf("attach verification pdf: %w", err)
		}
	}

	return nil
}

// UploadFile performs Notion's two-step file upload: create the file-upload
// object, then send the bytes. It returns the file_upload id used when
// referencing the file from properties and blocks.
func (c *NotionClient) UploadFile(filename, contentType string, data []byte) (string, error) {
	var created struct {
		ID string `json:"id"`
	}
	payload := map[string]interface{}{
		"filename":     filename,
		"content_type": contentType,
	}
	if err := c.doJSON(http.MethodPost, "/v1/file_uploads", payload, &created); err != nil {
		return "", fmt.Errorf("create file upload: %w", err)
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("write multipart body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/v1/file_uploads/"+created.ID+"/send", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", notionVersion)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send file upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("file send failed (%d): %s", resp.StatusCode, string(respBody))
	}

	return created.ID, nil
}

// createReportPage creates the database page holding the daily summary.
// Property names match the Notion database schema.
func (c *NotionClient) createReportPage(summary dto.ReportSummary) (string, error) {
	number := func(v int) map[string]interface{} {
		return map[string]interface{}{"number": v}
	}

	payload := map[string]interface{}{
		"parent": map[string]interface{}{"database_id": c.databaseID},
		"properties": map[string]interface{}{
			"日付": map[string]interface{}{
				"date": map[string]interface{}{"start": summary.Date},
			},
			"社保人数":   number(summary.ShahoCount),
			"社保金額":   number(summary.ShahoAmount),
			"国保人数":   number(summary.KokuhoCount),
			"国保金額":   number(summary.KokuhoAmount),
			"後期人数":   number(summary.KoukiCount),
			"後期金額":   number(summary.KoukiAmount),
			"自費人数":   number(summary.JihiCount),
			"自費金額":   number(summary.JihiAmount),
			"保険なし人数": number(summary.HokenNashiCount),
			"保険なし金額": number(summary.HokenNashiAmount),
			"合計人数":   number(summary.TotalCount),
			"合計金額":   number(summary.TotalAmount),
			"物販":     number(summary.BushanAmount),
			"介護":     number(summary.KaigoAmount),
			"前回差額":   number(summary.ZenkaiSagaku),
			"照合状態": map[string]interface{}{
				"select": map[string]interface{}{"name": "未照合"},
			},
		},
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := c.doJSON(http.MethodPost, "/v1/pages", payload, &created); err != nil {
		return "", err
	}
	return created.ID, nil
}

// appendFileBlock appends a heading and an uploaded-file block to a page.
func (c *NotionClient) appendFileBlock(pageID, heading, caption, fileUploadID string) error {
	payload := map[string]interface{}{
		"children": []interface{}{
			map[string]interface{}{
				"object": "block",
				"type":   "heading_2",
				"heading_2": map[string]interface{}{
					"rich_text": []interface{}{richText(heading)},
				},
			},
			map[string]interface{}{
				"object": "block",
				"type":   "file",
				"file": map[string]interface{}{
					"type":        "file_upload",
					"file_upload": map[string]interface{}{"id": fileUploadID},
					"caption":     []interface{}{richText(caption)},
				},
			},
		},
	}
	return c.doJSON(http.MethodPatch, "/v1/blocks/"+pageID+"/children", payload, nil)
}

// doJSON issues an authenticated JSON request and decodes the response into
// out when it is non-nil.
func (c *NotionClient) doJSON(method, path string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request payload: %w", err)
	}

	req, err := http.NewRequest(method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", notionVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call Notion API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("Notion API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode Notion response: %w", err)
		}
	}
	return nil
}

func richText(content string) map[string]interface{} {
	return map[string]interface{}{
		"type": "text",
		"text": map[string]interface{}{"content": content},
	}
}

func verificationFilename(date string) string {
	if date != "" {
		return fmt.Sprintf("照合画面_%s.pdf", date)
	}
	return fmt.Sprintf("照合画面_%s.pdf", time.Now().Format("20060102_150405"))
}
