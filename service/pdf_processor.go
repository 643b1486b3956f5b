package service

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/rs/zerolog/log"

	"github.com/h4mmerjp/nikkeihyou/dto"
)

// PDFProcessor decodes raw daily-report bytes into per-page text and cell
// grids. The extraction engine consumes only the decoded pages and never
// touches the document bytes itself.
type PDFProcessor interface {
	ExtractPages(pdfData []byte) ([]dto.Page, error)
}

type pdfProcessor struct {
	// columnBounds are the X coordinates separating the report's fixed
	// columns. Words on a text row are bucketed into cells by these bounds.
	columnBounds []float64
}

// defaultColumnBounds matches the column ruling of the current report
// family (A4 landscape). Twelve bounds produce the thirteen-cell layout
// including the trailing remarks column.
var defaultColumnBounds = []float64{
	58, 150, 228, 272, 322, 368, 414, 460, 506, 556, 612, 668,
}

// NewPDFProcessor returns a processor tuned to the default column layout.
func NewPDFProcessor() PDFProcessor {
	return &pdfProcessor{columnBounds: defaultColumnBounds}
}

// NewPDFProcessorWithColumns returns a processor with custom column bounds
// for report revisions whose ruling shifted.
func NewPDFProcessorWithColumns(bounds []float64) PDFProcessor {
	return &pdfProcessor{columnBounds: bounds}
}

// ExtractPages decodes every page of the PDF into plain text plus one cell
// grid. The grid is a best-effort positional bucketing of each text row;
// rows that are not line items (titles, totals, ruling artifacts) survive
// into the grid and are filtered out later by the row acceptance rule.
func (p *pdfProcessor) ExtractPages(pdfData []byte) ([]dto.Page, error) {
	if _, err := pdfapi.PageCount(bytes.NewReader(pdfData), model.NewDefaultConfiguration()); err != nil {
		return nil, fmt.Errorf("invalid pdf document: %w", err)
	}

	r, err := pdf.NewReader(bytes.NewReader(pdfData), int64(len(pdfData)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	var pages []dto.Page
	totalPages := r.NumPage()
	for pageIndex := 1; pageIndex <= totalPages; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			pages = append(pages, dto.Page{})
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			log.Warn().Err(err).Int("page", pageIndex).Msg("text extraction failed, emitting empty page")
			pages = append(pages, dto.Page{})
			continue
		}

		var textBuilder strings.Builder
		var gridRows [][]string
		for _, row := range rows {
			words := make([]string, 0, len(row.Content))
			for _, word := range row.Content {
				words = append(words, word.S)
			}
			textBuilder.WriteString(strings.Join(words, " "))
			textBuilder.WriteString("\n")

			gridRows = append(gridRows, p.bucketRow(row))
		}

		decoded := dto.Page{Text: textBuilder.String()}
		if len(gridRows) > 0 {
			decoded.Tables = []dto.Table{{Rows: gridRows}}
		}
		pages = append(pages, decoded)
	}

	log.Debug().Int("pages", len(pages)).Msg("decoded daily report pdf")
	return pages, nil
}

// bucketRow assigns each positioned word of a text row to a cell using the
// fixed column bounds. Words falling into the same cell are joined with a
// space; cells with no word stay empty.
func (p *pdfProcessor) bucketRow(row *pdf.Row) []string {
	cells := make([]string, len(p.columnBounds)+1)
	for _, word := range row.Content {
		idx := p.columnIndex(word.X)
		if cells[idx] == "" {
			cells[idx] = word.S
		} else {
			cells[idx] += " " + word.S
		}
	}
	for i, cell := range cells {
		cells[i] = strings.TrimSpace(cell)
	}
	return cells
}

func (p *pdfProcessor) columnIndex(x float64) int {
	for i, bound := range p.columnBounds {
		if x < bound {
			return i
		}
	}
	return len(p.columnBounds)
}
