package render_test

import (
	"bytes"
	"testing"

	"loanexport/internal/models"
	"loanexport/internal/services/exporter"
	"loanexport/internal/services/exporter/render"
)

func TestPDF_renders(t *testing.T) {
	out, err := render.NewPDF().Render(scheduleDoc())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF, starts with %q", out[:min(8, len(out))])
	}
}

func TestPDF_statementVariant(t *testing.T) {
	doc := scheduleDoc()
	doc.Title = "Loan Account Statement"
	doc.Table = exporter.BuildStatementTable([]models.StatementRow{
		{Date: "2024-01-01", TypeLabel: "Disbursement", Amount: dec("1000"), PrincipalOutstanding: dec("1000")},
		{Date: "2024-02-01", TypeLabel: "Repayment", Amount: dec("120"), PrincipalPortion: dec("100"), InterestPortion: dec("20"), PrincipalOutstanding: dec("900")},
	})

	out, err := render.NewPDF().Render(doc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("empty PDF output")
	}
}

func TestPDF_emptyTable(t *testing.T) {
	doc := scheduleDoc()
	doc.Table = exporter.BuildScheduleTable(nil)

	out, err := render.NewPDF().Render(doc)
	if err != nil {
		t.Fatalf("an empty schedule must still render: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("empty PDF output")
	}
}
