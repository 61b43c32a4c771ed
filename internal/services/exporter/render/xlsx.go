package render

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"loanexport/internal/models"
)

const sheetName = "Report"

// XLSXRenderer emits the spreadsheet variant: the same logical sections
// as the text output, as native styled cells.
type XLSXRenderer struct{}

func NewXLSX() *XLSXRenderer { return &XLSXRenderer{} }

func (r *XLSXRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (r *XLSXRenderer) Extension() string { return "xlsx" }

type xlsxStyles struct {
	title   int
	section int
	header  int
	money   int
	total   int
	bold    int
	netPaid int
}

func newXLSXStyles(f *excelize.File) (xlsxStyles, error) {
	var s xlsxStyles
	var err error

	if s.title, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	}); err != nil {
		return s, err
	}
	if s.section, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"D9D9D9"}, Pattern: 1},
	}); err != nil {
		return s, err
	}
	if s.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
	}); err != nil {
		return s, err
	}
	moneyFmt := "0.00"
	if s.money, err = f.NewStyle(&excelize.Style{
		CustomNumFmt: &moneyFmt,
	}); err != nil {
		return s, err
	}
	if s.total, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		CustomNumFmt: &moneyFmt,
	}); err != nil {
		return s, err
	}
	if s.bold, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	}); err != nil {
		return s, err
	}
	if s.netPaid, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true, Color: "008000"},
		CustomNumFmt: &moneyFmt,
	}); err != nil {
		return s, err
	}
	return s, nil
}

func (r *XLSXRenderer) Render(doc models.ExportDocument) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}
	styles, err := newXLSXStyles(f)
	if err != nil {
		return nil, err
	}

	if err := f.SetColWidth(sheetName, "A", "B", 24); err != nil {
		return nil, err
	}
	lastCol, err := excelize.ColumnNumberToName(len(doc.Table.Columns))
	if err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheetName, "C", lastCol, 16); err != nil {
		return nil, err
	}

	row := 1
	if err := setText(f, 1, row, doc.Title, styles.title); err != nil {
		return nil, err
	}
	row += 2

	if err := setText(f, 1, row, "Loan Details", styles.section); err != nil {
		return nil, err
	}
	row++

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
	for _, kv := range details {
		if err := setText(f, 1, row, kv[0], 0); err != nil {
			return nil, err
		}
		if err := setText(f, 2, row, kv[1], 0); err != nil {
			return nil, err
		}
		row++
	}
	row++

	if err := setText(f, 1, row, "Disbursement Summary", styles.section); err != nil {
		return nil, err
	}
	row++

	sum := doc.Summary
	if err := setText(f, 1, row, "Approved Amount", 0); err != nil {
		return nil, err
	}
	if err := setMoney(f, 2, row, sum.ApprovedAmount, styles.money); err != nil {
		return nil, err
	}
	row++
	if len(sum.UpfrontFeeItems) > 0 {
		for _, item := range sum.UpfrontFeeItems {
			if err := setText(f, 1, row, "  "+item.Name, 0); err != nil {
				return nil, err
			}
			if err := setMoney(f, 2, row, item.Amount, styles.money); err != nil {
				return nil, err
			}
			row++
		}
		if err := setText(f, 1, row, "Total Upfront Fees", 0); err != nil {
			return nil, err
		}
		if err := setMoney(f, 2, row, sum.UpfrontFeesTotal, styles.money); err != nil {
			return nil, err
		}
		row++
	}
	if err := setText(f, 1, row, "Net Paid to Client", 0); err != nil {
		return nil, err
	}
	if err := setMoney(f, 2, row, sum.NetPaidToClient, styles.netPaid); err != nil {
		return nil, err
	}
	row++
	if err := setText(f, 1, row, "Disbursement Date", 0); err != nil {
		return nil, err
	}
	if err := setText(f, 2, row, textOrDash(sum.DisbursementDate), 0); err != nil {
		return nil, err
	}
	row += 2

	for i, col := range doc.Table.Columns {
		if err := setText(f, i+1, row, col, styles.header); err != nil {
			return nil, err
		}
	}
	row++

	for _, cells := range doc.Table.Rows {
		if err := setCells(f, row, cells, styles.money, 0); err != nil {
			return nil, err
		}
		row++
	}
	if doc.Table.Totals != nil {
		if err := setCells(f, row, doc.Table.Totals, styles.total, styles.bold); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func setText(f *excelize.File, col, row int, v string, style int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheetName, cell, v); err != nil {
		return err
	}
	if style != 0 {
		return f.SetCellStyle(sheetName, cell, cell, style)
	}
	return nil
}

func setMoney(f *excelize.File, col, row int, d decimal.Decimal, style int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheetName, cell, d.InexactFloat64()); err != nil {
		return err
	}
	return f.SetCellStyle(sheetName, cell, cell, style)
}

func setCells(f *excelize.File, row int, cells []models.Cell, moneyStyle, textStyle int) error {
	for i, c := range cells {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if c.Kind == models.CellMoney {
			if err := f.SetCellValue(sheetName, cell, c.Amount.InexactFloat64()); err != nil {
				return err
			}
			if err := f.SetCellStyle(sheetName, cell, cell, moneyStyle); err != nil {
				return err
			}
			continue
		}
		if err := f.SetCellValue(sheetName, cell, c.Text); err != nil {
			return err
		}
		if textStyle != 0 && c.Text != "" {
			if err := f.SetCellStyle(sheetName, cell, cell, textStyle); err != nil {
				return err
			}
		}
	}
	return nil
}

func textOrDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
