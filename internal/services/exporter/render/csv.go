package render

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/shopspring/decimal"

	"loanexport/internal/models"
)

// CSVRenderer emits the delimited-text variant. Money is plain decimal
// notation with exactly two places and no thousands separators so the
// output stays machine-parseable; escaping is standard CSV quoting.
type CSVRenderer struct{}

func NewCSV() *CSVRenderer { return &CSVRenderer{} }

func (r *CSVRenderer) ContentType() string { return "text/csv; charset=utf-8" }

func (r *CSVRenderer) Extension() string { return "csv" }

func (r *CSVRenderer) Render(doc models.ExportDocument) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	write := func(fields ...string) error { return w.Write(fields) }
	blank := func() error { return w.Write([]string{""}) }

	if err := write(doc.Title); err != nil {
		return nil, err
	}
	if err := blank(); err != nil {
		return nil, err
	}

	meta := doc.Meta
	header := [][2]string{
		{"Loan ID", strconv.FormatInt(meta.LoanID, 10)},
		{"Account No", meta.AccountNo},
		{"Client", meta.ClientName},
		{"Product", meta.ProductName},
		{"Status", meta.StatusLabel},
		{"Currency", meta.CurrencyCode},
		{"Disbursement Date", meta.DisbursementDate},
		{"Maturity Date", meta.MaturityDate},
	}
	for _, kv := range header {
		if err := write(kv[0], kv[1]); err != nil {
			return nil, err
		}
	}
	if err := blank(); err != nil {
		return nil, err
	}

	sum := doc.Summary
	if err := write("Disbursement Summary"); err != nil {
		return nil, err
	}
	if err := write("Approved Amount", money(sum.ApprovedAmount)); err != nil {
		return nil, err
	}
	if len(sum.UpfrontFeeItems) > 0 {
		for _, item := range sum.UpfrontFeeItems {
			if err := write("  "+item.Name, money(item.Amount)); err != nil {
				return nil, err
			}
		}
		if err := write("Total Upfront Fees", money(sum.UpfrontFeesTotal)); err != nil {
			return nil, err
		}
	}
	if err := write("Net Paid to Client", money(sum.NetPaidToClient)); err != nil {
		return nil, err
	}
	if err := write("Disbursement Date", sum.DisbursementDate); err != nil {
		return nil, err
	}
	if err := blank(); err != nil {
		return nil, err
	}

	if err := w.Write(doc.Table.Columns); err != nil {
		return nil, err
	}
	for _, row := range doc.Table.Rows {
		if err := w.Write(cellStrings(row)); err != nil {
			return nil, err
		}
	}
	if doc.Table.Totals != nil {
		if err := w.Write(cellStrings(doc.Table.Totals)); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func cellStrings(cells []models.Cell) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		if c.Kind == models.CellMoney {
			out[i] = money(c.Amount)
		} else {
			out[i] = c.Text
		}
	}
	return out
}

func money(d decimal.Decimal) string { return d.StringFixed(2) }
