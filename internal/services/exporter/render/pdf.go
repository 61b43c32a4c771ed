package render

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"loanexport/internal/models"
)

// PDFRenderer emits the paginated-document variant: a landscape page
// with the loan header, the disbursement summary, and a bordered
// alternating-striped table. The page footer carries the generation
// timestamp, which is the one non-deterministic byte range in the
// whole pipeline.
type PDFRenderer struct{}

func NewPDF() *PDFRenderer { return &PDFRenderer{} }

func (r *PDFRenderer) ContentType() string { return "application/pdf" }

func (r *PDFRenderer) Extension() string { return "pdf" }

func (r *PDFRenderer) Render(doc models.ExportDocument) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		footer := fmt.Sprintf("Generated on %s    Page %d", time.Now().Format("2006-01-02 15:04"), pdf.PageNo())
		pdf.CellFormat(0, 8, tr(footer), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, tr(doc.Title), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	meta := doc.Meta
	details := [][2]string{
		{"Loan ID", fmt.Sprintf("%d", meta.LoanID)},
		{"Account No", meta.AccountNo},
		{"Client", meta.ClientName},
		{"Product", meta.ProductName},
		{"Status", meta.StatusLabel},
		{"Currency", meta.CurrencyCode},
		{"Disbursement Date", textOrDash(meta.DisbursementDate)},
		{"Maturity Date", textOrDash(meta.MaturityDate)},
	}
	pdf.SetFont("Helvetica", "", 9)
	for _, kv := range details {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(45, 5.5, tr(kv[0]), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(0, 5.5, tr(kv[1]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	sum := doc.Summary
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Disbursement Summary", "", 1, "L", false, 0, "")
	summaryLine(pdf, tr, "Approved Amount", money(sum.ApprovedAmount), false)
	for _, item := range sum.UpfrontFeeItems {
		summaryLine(pdf, tr, "  "+item.Name, money(item.Amount), false)
	}
	if len(sum.UpfrontFeeItems) > 0 {
		summaryLine(pdf, tr, "Total Upfront Fees", money(sum.UpfrontFeesTotal), false)
	}
	summaryLine(pdf, tr, "Net Paid to Client", money(sum.NetPaidToClient), true)
	summaryLine(pdf, tr, "Disbursement Date", textOrDash(sum.DisbursementDate), false)
	pdf.Ln(4)

	widths := columnWidths(pdf, len(doc.Table.Columns))

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(68, 114, 196)
	pdf.SetTextColor(255, 255, 255)
	for i, col := range doc.Table.Columns {
		pdf.CellFormat(widths[i], 7, tr(col), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFillColor(245, 245, 245)
	fill := false
	for _, cells := range doc.Table.Rows {
		tableRow(pdf, tr, widths, cells, fill, true)
		fill = !fill
	}
	if doc.Table.Totals != nil {
		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetFillColor(220, 220, 220)
		tableRow(pdf, tr, widths, doc.Table.Totals, true, false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func summaryLine(pdf *gofpdf.Fpdf, tr func(string) string, label, value string, em bool) {
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(55, 5.5, tr(label), "", 0, "L", false, 0, "")
	if em {
		pdf.SetFont("Helvetica", "B", 9)
	}
	pdf.CellFormat(0, 5.5, tr(value), "", 1, "L", false, 0, "")
}

// columnWidths spreads the printable width over the table, giving the
// label column (second) extra room.
func columnWidths(pdf *gofpdf.Fpdf, n int) []float64 {
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	printable := pageW - left - right

	weights := make([]float64, n)
	var sum float64
	for i := range weights {
		w := 1.0
		if i == 1 {
			w = 1.6
		}
		weights[i] = w
		sum += w
	}
	widths := make([]float64, n)
	for i, w := range weights {
		widths[i] = printable * w / sum
	}
	return widths
}

func tableRow(pdf *gofpdf.Fpdf, tr func(string) string, widths []float64, cells []models.Cell, fill, dashEmpty bool) {
	for i, c := range cells {
		text, align := c.Text, "L"
		if c.Kind == models.CellMoney {
			text, align = money(c.Amount), "R"
		} else if text == "" && dashEmpty && i > 0 {
			text = "—"
			align = "C"
		}
		pdf.CellFormat(widths[i], 6, tr(text), "1", 0, align, fill, 0, "")
	}
	pdf.Ln(-1)
}
