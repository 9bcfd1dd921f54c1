// Package pdf renders expense reports as A4 PDF documents.
package pdf

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/heartmarshall/expense-tracker/internal/domain"
)

// ContentType is the MIME type of rendered documents.
const ContentType = "application/pdf"

const (
	dateLayout      = "02 Jan, 2006"
	timestampLayout = "02 Jan, 2006 15:04"

	fontFamily = "Helvetica"
	rowHeight  = 8.0
)

type column struct {
	title string
	width float64
	align string
}

// Widths add up to the 190mm printable width of A4 with 10mm margins.
var columns = []column{
	{title: "Date", width: 32, align: "L"},
	{title: "Description", width: 88, align: "L"},
	{title: "Category", width: 34, align: "L"},
	{title: "Amount (INR)", width: 36, align: "R"},
}

type rgb struct{ r, g, b int }

var (
	headerFill = rgb{44, 62, 80}
	headerText = rgb{255, 255, 255}
	bodyText   = rgb{33, 37, 41}
	mutedText  = rgb{108, 117, 125}
	gridLine   = rgb{222, 226, 230}
)

// Renderer turns a domain.Report into PDF bytes.
type Renderer struct {
	compress bool
}

// NewRenderer creates a renderer producing compressed documents.
func NewRenderer() *Renderer {
	return &Renderer{compress: true}
}

func (r *Renderer) ContentType() string { return ContentType }

// Render lays out the report: title, period description, a grid table whose
// header repeats on every page, a bold total row and a page footer.
// Row dates are UTC calendar days. The footer timestamp keeps the location
// of GeneratedAt.
func (r *Renderer) Render(report *domain.Report) ([]byte, error) {
	if report == nil || len(report.Rows) == 0 {
		return nil, fmt.Errorf("pdf.Render: %w", domain.ErrNoData)
	}

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetCompression(r.compress)
	doc.SetTitle(report.Title, true)
	doc.SetCreator("expense-tracker", true)
	doc.SetMargins(10, 15, 10)
	doc.SetAutoPageBreak(true, 20)
	doc.AliasNbPages("")

	tr := doc.UnicodeTranslatorFromDescriptor("")

	inTable := false
	doc.SetHeaderFunc(func() {
		if inTable {
			drawHeaderRow(doc)
		}
	})
	doc.SetFooterFunc(func() {
		drawFooter(doc, report.GeneratedAt.Format(timestampLayout))
	})

	doc.AddPage()

	doc.SetFont(fontFamily, "B", 18)
	setText(doc, bodyText)
	doc.CellFormat(0, 10, tr(report.Title), "", 1, "L", false, 0, "")

	doc.SetFont(fontFamily, "", 11)
	setText(doc, mutedText)
	doc.CellFormat(0, 7, tr(report.Description), "", 1, "L", false, 0, "")
	doc.Ln(4)

	drawHeaderRow(doc)
	inTable = true

	doc.SetFont(fontFamily, "", 10)
	setText(doc, bodyText)
	setDraw(doc, gridLine)
	for _, e := range report.Rows {
		cells := []string{
			e.Date.UTC().Format(dateLayout),
			fitText(doc, tr(e.Description), columns[1].width-2),
			tr(e.Category.String()),
			domain.FormatINR(e.Amount),
		}
		for i, c := range columns {
			ln := 0
			if i == len(columns)-1 {
				ln = 1
			}
			doc.CellFormat(c.width, rowHeight, cells[i], "1", ln, c.align, false, 0, "")
		}
	}

	doc.SetFont(fontFamily, "B", 10)
	labelWidth := columns[0].width + columns[1].width
	doc.CellFormat(labelWidth, rowHeight, "", "1", 0, "L", false, 0, "")
	doc.CellFormat(columns[2].width, rowHeight, "Total Expenses:", "1", 0, "L", false, 0, "")
	doc.CellFormat(columns[3].width, rowHeight, domain.FormatINR(report.Total), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf.Render: %w", err)
	}
	if buf.Len() == 0 {
		return nil, errors.New("pdf.Render: empty document")
	}

	return buf.Bytes(), nil
}

func drawHeaderRow(doc *fpdf.Fpdf) {
	doc.SetFont(fontFamily, "B", 10)
	setFill(doc, headerFill)
	setText(doc, headerText)
	setDraw(doc, headerFill)
	for i, c := range columns {
		ln := 0
		if i == len(columns)-1 {
			ln = 1
		}
		doc.CellFormat(c.width, rowHeight, c.title, "1", ln, c.align, true, 0, "")
	}
	doc.SetFont(fontFamily, "", 10)
	setText(doc, bodyText)
	setDraw(doc, gridLine)
}

func drawFooter(doc *fpdf.Fpdf, generated string) {
	pageW, _ := doc.GetPageSize()
	left, _, right, _ := doc.GetMargins()
	half := (pageW - left - right) / 2

	doc.SetY(-15)
	doc.SetFont(fontFamily, "I", 8)
	setText(doc, mutedText)
	doc.CellFormat(half, 10, fmt.Sprintf("Page %d of {nb}", doc.PageNo()), "", 0, "L", false, 0, "")
	doc.CellFormat(half, 10, "Report Generated: "+generated, "", 0, "R", false, 0, "")
}

// fitText shortens s with a trailing "..." until it fits within width.
// s is already translated to the single-byte core-font encoding, so it is
// cut byte by byte.
func fitText(doc *fpdf.Fpdf, s string, width float64) string {
	if doc.GetStringWidth(s) <= width {
		return s
	}
	for n := len(s) - 1; n > 0; n-- {
		if candidate := s[:n] + "..."; doc.GetStringWidth(candidate) <= width {
			return candidate
		}
	}
	return "..."
}

func setFill(doc *fpdf.Fpdf, c rgb) { doc.SetFillColor(c.r, c.g, c.b) }
func setText(doc *fpdf.Fpdf, c rgb) { doc.SetTextColor(c.r, c.g, c.b) }
func setDraw(doc *fpdf.Fpdf, c rgb) { doc.SetDrawColor(c.r, c.g, c.b) }
