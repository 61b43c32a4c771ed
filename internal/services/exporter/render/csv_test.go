package render_test

import (
	"bytes"
	"encoding/csv"
	"io"
	"testing"

	"github.com/shopspring/decimal"

	"loanexport/internal/models"
	"loanexport/internal/services/exporter"
	"loanexport/internal/services/exporter/render"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func scheduleDoc() models.ExportDocument {
	rows := []models.ScheduleRow{
		{Installment: 1, DueDate: "2024-02-01", PrincipalDue: dec("100.10"), InterestDue: dec("10.01"), FeesDue: dec("1"), PenaltiesDue: dec("0"), TotalDue: dec("111.11"), PrincipalOutstanding: dec("899.90")},
		{Installment: 2, DueDate: "2024-03-01", PrincipalDue: dec("100.20"), InterestDue: dec("9.02"), FeesDue: dec("0"), PenaltiesDue: dec("0.50"), TotalDue: dec("109.72"), PrincipalOutstanding: dec("799.70")},
	}
	return models.ExportDocument{
		Title: "Loan Repayment Schedule",
		Meta: models.LoanMetadata{
			LoanID:       42,
			AccountNo:    "000000042",
			ClientName:   `Doe, Jane "JJ"`,
			ProductName:  "SME Working Capital",
			StatusLabel:  "Active",
			CurrencyCode: "KES",
		},
		Summary: models.DisbursementSummary{
			ApprovedAmount: dec("1000"),
			UpfrontFeeItems: []models.UpfrontFeeItem{
				{Name: "Processing Fee", Amount: dec("20")},
			},
			UpfrontFeesTotal: dec("20"),
			NetPaidToClient:  dec("980"),
			DisbursementDate: "2024-01-01",
		},
		Table: exporter.BuildScheduleTable(rows),
	}
}

func readAll(t *testing.T, out []byte) [][]string {
	t.Helper()
	r := csv.NewReader(bytes.NewReader(out))
	r.FieldsPerRecord = -1
	var recs [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("output is not valid CSV: %v", err)
		}
		recs = append(recs, rec)
	}
	return recs
}

func findRow(recs [][]string, first string) []string {
	for _, rec := range recs {
		if len(rec) > 0 && rec[0] == first {
			return rec
		}
	}
	return nil
}

func TestCSV_structure(t *testing.T) {
	out, err := render.NewCSV().Render(scheduleDoc())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	recs := readAll(t, out)

	if recs[0][0] != "Loan Repayment Schedule" {
		t.Fatalf("first record must be the title, got %v", recs[0])
	}

	if row := findRow(recs, "Client"); row == nil || row[1] != `Doe, Jane "JJ"` {
		t.Fatalf("client row wrong (escaping must round-trip): %v", row)
	}
	if row := findRow(recs, "Approved Amount"); row == nil || row[1] != "1000.00" {
		t.Fatalf("approved amount row wrong: %v", row)
	}
	if row := findRow(recs, "  Processing Fee"); row == nil || row[1] != "20.00" {
		t.Fatalf("fee line must be two-space indented with 2dp amount: %v", row)
	}
	if row := findRow(recs, "Net Paid to Client"); row == nil || row[1] != "980.00" {
		t.Fatalf("net row wrong: %v", row)
	}
	if row := findRow(recs, "Installment"); row == nil || row[len(row)-1] != "Principal Outstanding" {
		t.Fatalf("table header wrong: %v", row)
	}
}

func TestCSV_totalsRow(t *testing.T) {
	out, err := render.NewCSV().Render(scheduleDoc())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	recs := readAll(t, out)

	total := findRow(recs, "TOTAL")
	if total == nil {
		t.Fatal("schedule CSV must carry a TOTAL row")
	}
	want := []string{"TOTAL", "", "200.30", "19.03", "1.00", "0.50", "220.83", ""}
	if len(total) != len(want) {
		t.Fatalf("TOTAL row shape: got %v", total)
	}
	for i := range want {
		if total[i] != want[i] {
			t.Fatalf("TOTAL[%d] = %q, want %q", i, total[i], want[i])
		}
	}
}

func TestCSV_deterministic(t *testing.T) {
	r := render.NewCSV()
	a, err := r.Render(scheduleDoc())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	b, err := r.Render(scheduleDoc())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatal("CSV output must be byte-identical for identical input")
	}
}

func TestCSV_statementHasNoTotals(t *testing.T) {
	doc := scheduleDoc()
	doc.Title = "Loan Account Statement"
	doc.Table = exporter.BuildStatementTable([]models.StatementRow{
		{Date: "2024-01-01", TypeLabel: "Disbursement", Amount: dec("1000"), PrincipalOutstanding: dec("1000")},
	})

	out, err := render.NewCSV().Render(doc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if findRow(readAll(t, out), "TOTAL") != nil {
		t.Fatal("statement CSV must not carry a TOTAL row")
	}
}
